package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/kazi-link/job-portal/internal/api/dto"
	"github.com/kazi-link/job-portal/internal/auth"
	"github.com/kazi-link/job-portal/internal/domain"
	"github.com/kazi-link/job-portal/internal/service"
	apperrors "github.com/kazi-link/job-portal/pkg/util"
)

// PostingsHandler manages job posting and catalog endpoints.
type PostingsHandler struct {
	service *service.PostingService
}

// NewPostingsHandler constructs handler.
func NewPostingsHandler(postingService *service.PostingService) *PostingsHandler {
	return &PostingsHandler{service: postingService}
}

// CreatePosting POST /api/postings.
func (h *PostingsHandler) CreatePosting(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.CreatePostingRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Title == "" || req.CategoryID == "" || req.JobTypeID == "" {
		return apperrors.NewValidationError("title, category_id, job_type_id required", nil)
	}

	posting, err := h.service.CreatePosting(c.Context(), principal.User, service.PostingCreateInput{
		Title:            req.Title,
		OfferType:        req.OfferType,
		CompanyName:      req.CompanyName,
		Location:         req.Location,
		JobTypeID:        req.JobTypeID,
		CategoryID:       req.CategoryID,
		ExperienceLevel:  req.ExperienceLevel,
		SalaryRange:      req.SalaryRange,
		EmployeesNeeded:  req.EmployeesNeeded,
		Description:      req.Description,
		Requirements:     req.Requirements,
		Responsibilities: req.Responsibilities,
		Benefits:         req.Benefits,
		Deadline:         req.Deadline,
		Status:           req.Status,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": postingResponse(posting)})
}

// GetPosting GET /api/postings/:id.
func (h *PostingsHandler) GetPosting(c *fiber.Ctx) error {
	posting, err := h.service.GetPosting(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": postingResponse(posting)})
}

// ListPostings GET /api/postings — public listing of active postings.
func (h *PostingsHandler) ListPostings(c *fiber.Ctx) error {
	postings, err := h.service.ListPublicPostings(c.Context(), parsePostingQuery(c))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": postingResponses(postings)})
}

// ListOwnPostings GET /api/postings/mine.
func (h *PostingsHandler) ListOwnPostings(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("authentication required")
	}
	postings, err := h.service.ListOwnPostings(c.Context(), principal.User.ID, parsePostingQuery(c))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": postingResponses(postings)})
}

// UpdatePosting PATCH /api/postings/:id.
func (h *PostingsHandler) UpdatePosting(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.UpdatePostingRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	posting, err := h.service.UpdatePosting(c.Context(), principal.User, c.Params("id"), service.PostingUpdateInput{
		Title:            req.Title,
		Location:         req.Location,
		SalaryRange:      req.SalaryRange,
		EmployeesNeeded:  req.EmployeesNeeded,
		Description:      req.Description,
		Requirements:     req.Requirements,
		Responsibilities: req.Responsibilities,
		Benefits:         req.Benefits,
		Deadline:         req.Deadline,
		Status:           req.Status,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": postingResponse(posting)})
}

// ClosePosting POST /api/postings/:id/close.
func (h *PostingsHandler) ClosePosting(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("authentication required")
	}
	posting, err := h.service.ClosePosting(c.Context(), principal.User, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": postingResponse(posting)})
}

// DeletePosting DELETE /api/postings/:id.
func (h *PostingsHandler) DeletePosting(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("authentication required")
	}
	if err := h.service.DeletePosting(c.Context(), principal.User, c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// CreateCategory POST /api/categories, admin only.
func (h *PostingsHandler) CreateCategory(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.CatalogEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	category, err := h.service.CreateCategory(c.Context(), principal.User, req.Name, req.Description)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.CatalogEntryResponse{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description,
		CreatedAt:   category.CreatedAt,
	}})
}

// ListCategories GET /api/categories.
func (h *PostingsHandler) ListCategories(c *fiber.Ctx) error {
	categories, err := h.service.ListCategories(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.CatalogEntryResponse, 0, len(categories))
	for _, category := range categories {
		items = append(items, dto.CatalogEntryResponse{
			ID:          category.ID,
			Name:        category.Name,
			Description: category.Description,
			CreatedAt:   category.CreatedAt,
		})
	}
	return c.JSON(fiber.Map{"data": items})
}

// CreateJobType POST /api/job-types, admin only.
func (h *PostingsHandler) CreateJobType(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.CatalogEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	jobType, err := h.service.CreateJobType(c.Context(), principal.User, req.Name, req.Description)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.CatalogEntryResponse{
		ID:          jobType.ID,
		Name:        jobType.Name,
		Description: jobType.Description,
		CreatedAt:   jobType.CreatedAt,
	}})
}

// ListJobTypes GET /api/job-types.
func (h *PostingsHandler) ListJobTypes(c *fiber.Ctx) error {
	jobTypes, err := h.service.ListJobTypes(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.CatalogEntryResponse, 0, len(jobTypes))
	for _, jobType := range jobTypes {
		items = append(items, dto.CatalogEntryResponse{
			ID:          jobType.ID,
			Name:        jobType.Name,
			Description: jobType.Description,
			CreatedAt:   jobType.CreatedAt,
		})
	}
	return c.JSON(fiber.Map{"data": items})
}

func parsePostingQuery(c *fiber.Ctx) service.PostingListFilter {
	filter := service.PostingListFilter{
		CategoryID: optionalQuery(c, "category_id"),
		JobTypeID:  optionalQuery(c, "job_type_id"),
		SearchTerm: optionalQuery(c, "search"),
	}
	if level := strings.TrimSpace(c.Query("experience_level")); level != "" {
		experience := domain.ExperienceLevel(level)
		filter.ExperienceLevel = &experience
	}
	filter.Limit, filter.Offset = parsePagination(c)
	return filter
}

func postingResponse(posting *domain.JobPosting) dto.PostingResponse {
	return dto.PostingResponse{
		ID:               posting.ID,
		Title:            posting.Title,
		OfferType:        posting.OfferType,
		CompanyName:      posting.CompanyName,
		Location:         posting.Location,
		JobTypeID:        posting.JobTypeID,
		CategoryID:       posting.CategoryID,
		ExperienceLevel:  posting.ExperienceLevel,
		SalaryRange:      posting.SalaryRange,
		EmployeesNeeded:  posting.EmployeesNeeded,
		Description:      posting.Description,
		Requirements:     posting.Requirements,
		Responsibilities: posting.Responsibilities,
		Benefits:         posting.Benefits,
		Deadline:         posting.Deadline,
		Status:           posting.Status,
		CreatedBy:        posting.CreatedBy,
		CreatedAt:        posting.CreatedAt,
		UpdatedAt:        posting.UpdatedAt,
	}
}

func postingResponses(postings []domain.JobPosting) []dto.PostingResponse {
	items := make([]dto.PostingResponse, 0, len(postings))
	for i := range postings {
		items = append(items, postingResponse(&postings[i]))
	}
	return items
}
