package handlers

import (
	"context"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/kazi-link/job-portal/internal/api/dto"
	"github.com/kazi-link/job-portal/internal/auth"
	"github.com/kazi-link/job-portal/internal/domain"
	"github.com/kazi-link/job-portal/internal/service"
	apperrors "github.com/kazi-link/job-portal/pkg/util"
)

// ApplicationsHandler manages application lifecycle endpoints.
type ApplicationsHandler struct {
	service *service.ApplicationService
}

// NewApplicationsHandler constructs handler.
func NewApplicationsHandler(applicationService *service.ApplicationService) *ApplicationsHandler {
	return &ApplicationsHandler{service: applicationService}
}

// Submit POST /api/applications.
func (h *ApplicationsHandler) Submit(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.SubmitApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.PostingID == "" {
		return apperrors.NewValidationError("posting_id required", nil)
	}

	application, err := h.service.SubmitApplication(c.Context(), principal.User, service.ApplicationSubmitInput{
		PostingID:           req.PostingID,
		CoverLetter:         req.CoverLetter,
		ResumeKey:           req.ResumeKey,
		AdditionalDocuments: req.AdditionalDocuments,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": applicationResponse(application)})
}

// ListMine GET /api/applications.
func (h *ApplicationsHandler) ListMine(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("authentication required")
	}
	filter := parseApplicationListQuery(c)
	applications, err := h.service.ListMyApplications(c.Context(), principal.User.ID, filter)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": applicationResponses(applications)})
}

// ListAll GET /api/applications/all, admin only.
func (h *ApplicationsHandler) ListAll(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("authentication required")
	}
	applications, err := h.service.ListAllApplications(c.Context(), principal.User, parseApplicationListQuery(c))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": applicationResponses(applications)})
}

// ListForPosting GET /api/postings/:id/applications.
func (h *ApplicationsHandler) ListForPosting(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("authentication required")
	}
	applications, err := h.service.ListPostingApplications(c.Context(), principal.User, c.Params("id"), parseApplicationListQuery(c))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": applicationResponses(applications)})
}

// Get GET /api/applications/:id.
func (h *ApplicationsHandler) Get(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("authentication required")
	}
	application, err := h.service.GetApplicationForActor(c.Context(), principal.User, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": applicationResponse(application)})
}

// UpdateStatus PATCH /api/applications/:id/status.
func (h *ApplicationsHandler) UpdateStatus(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.UpdateApplicationStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	application, err := h.service.TransitionStatus(c.Context(), principal.User, c.Params("id"), req.Status, req.Feedback)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": applicationResponse(application)})
}

// Accept PUT /api/applications/:id/accept.
func (h *ApplicationsHandler) Accept(c *fiber.Ctx) error {
	return h.reviewerAction(c, h.service.AcceptApplication)
}

// Reject PUT /api/applications/:id/reject.
func (h *ApplicationsHandler) Reject(c *fiber.Ctx) error {
	return h.reviewerAction(c, h.service.RejectApplication)
}

// Shortlist PUT /api/applications/:id/shortlist.
func (h *ApplicationsHandler) Shortlist(c *fiber.Ctx) error {
	return h.reviewerAction(c, h.service.ShortlistApplication)
}

// Withdraw PUT /api/applications/:id/withdraw.
func (h *ApplicationsHandler) Withdraw(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("authentication required")
	}
	application, err := h.service.WithdrawApplication(c.Context(), principal.User, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": applicationResponse(application)})
}

// UpdateDocuments PATCH /api/applications/:id/documents.
func (h *ApplicationsHandler) UpdateDocuments(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.UpdateApplicationDocumentsRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	application, err := h.service.UpdateDocuments(c.Context(), principal.User, c.Params("id"), service.ApplicationDocumentsInput{
		CoverLetter:         req.CoverLetter,
		ResumeKey:           req.ResumeKey,
		AdditionalDocuments: req.AdditionalDocuments,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": applicationResponse(application)})
}

// Delete DELETE /api/applications/:id.
func (h *ApplicationsHandler) Delete(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("authentication required")
	}
	if err := h.service.DeleteApplication(c.Context(), principal.User, c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

type reviewerActionFn func(ctx context.Context, actor *domain.User, applicationID string, feedback *string) (*domain.Application, error)

func (h *ApplicationsHandler) reviewerAction(c *fiber.Ctx, action reviewerActionFn) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.ApplicationFeedbackRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return apperrors.NewValidationError("invalid payload", nil)
		}
	}
	application, err := action(c.Context(), principal.User, c.Params("id"), req.Feedback)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": applicationResponse(application)})
}

func parseApplicationListQuery(c *fiber.Ctx) service.ApplicationListFilter {
	filter := service.ApplicationListFilter{
		Statuses: parseApplicationStatuses(c),
	}
	filter.Limit, filter.Offset = parsePagination(c)
	return filter
}

func applicationResponse(application *domain.Application) dto.ApplicationResponse {
	return dto.ApplicationResponse{
		ID:                  application.ID,
		ApplicantID:         application.ApplicantID,
		PostingID:           application.PostingID,
		SeekerProfileID:     application.SeekerProfileID,
		CoverLetter:         application.CoverLetter,
		ResumeKey:           application.ResumeKey,
		AdditionalDocuments: application.AdditionalDocuments,
		Status:              application.Status,
		Feedback:            application.Feedback,
		AppliedAt:           application.AppliedAt,
		UpdatedAt:           application.UpdatedAt,
		ReviewedBy:          application.ReviewedBy,
		ReviewedAt:          application.ReviewedAt,
	}
}

func applicationResponses(applications []domain.Application) []dto.ApplicationResponse {
	items := make([]dto.ApplicationResponse, 0, len(applications))
	for i := range applications {
		items = append(items, applicationResponse(&applications[i]))
	}
	return items
}
