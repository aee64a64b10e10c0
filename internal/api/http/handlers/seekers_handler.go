package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/kazi-link/job-portal/internal/api/dto"
	"github.com/kazi-link/job-portal/internal/auth"
	"github.com/kazi-link/job-portal/internal/domain"
	"github.com/kazi-link/job-portal/internal/service"
	apperrors "github.com/kazi-link/job-portal/pkg/util"
)

// SeekersHandler manages job seeker profile endpoints.
type SeekersHandler struct {
	service *service.SeekerService
}

// NewSeekersHandler constructs handler.
func NewSeekersHandler(seekerService *service.SeekerService) *SeekersHandler {
	return &SeekersHandler{service: seekerService}
}

// CreateProfile POST /api/seekers.
func (h *SeekersHandler) CreateProfile(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.SeekerProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	profile, err := h.service.CreateProfile(c.Context(), principal.User, seekerInput(req))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": seekerResponse(profile)})
}

// GetOwnProfile GET /api/seekers/me.
func (h *SeekersHandler) GetOwnProfile(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("authentication required")
	}
	profile, err := h.service.GetOwnProfile(c.Context(), principal.User.ID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": seekerResponse(profile)})
}

// UpdateProfile PUT /api/seekers/me.
func (h *SeekersHandler) UpdateProfile(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.SeekerProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	profile, err := h.service.UpdateProfile(c.Context(), principal.User, seekerInput(req))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": seekerResponse(profile)})
}

// GetProfile GET /api/seekers/:id.
func (h *SeekersHandler) GetProfile(c *fiber.Ctx) error {
	profile, err := h.service.GetProfile(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": seekerResponse(profile)})
}

// SetActive PATCH /api/seekers/:id/activation.
func (h *SeekersHandler) SetActive(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.SeekerActivationRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	profile, err := h.service.SetProfileActive(c.Context(), principal.User, c.Params("id"), req.Active)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": seekerResponse(profile)})
}

// ListProfiles GET /api/seekers, admin only.
func (h *SeekersHandler) ListProfiles(c *fiber.Ctx) error {
	limit, offset := parsePagination(c)
	profiles, err := h.service.ListProfiles(c.Context(), limit, offset)
	if err != nil {
		return err
	}
	items := make([]dto.SeekerProfileResponse, 0, len(profiles))
	for i := range profiles {
		items = append(items, seekerResponse(&profiles[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

func seekerInput(req dto.SeekerProfileRequest) service.SeekerProfileInput {
	return service.SeekerProfileInput{
		FirstName:           req.FirstName,
		MiddleName:          req.MiddleName,
		LastName:            req.LastName,
		Gender:              req.Gender,
		Skills:              req.Skills,
		ExperienceYears:     req.ExperienceYears,
		EducationLevel:      req.EducationLevel,
		EducationSector:     req.EducationSector,
		ResumeKey:           req.ResumeKey,
		ExpectedSalaryRange: req.ExpectedSalaryRange,
	}
}

func seekerResponse(profile *domain.SeekerProfile) dto.SeekerProfileResponse {
	return dto.SeekerProfileResponse{
		ID:                  profile.ID,
		UserID:              profile.UserID,
		FirstName:           profile.FirstName,
		MiddleName:          profile.MiddleName,
		LastName:            profile.LastName,
		Gender:              profile.Gender,
		Skills:              profile.Skills,
		ExperienceYears:     profile.ExperienceYears,
		EducationLevel:      profile.EducationLevel,
		EducationSector:     profile.EducationSector,
		ResumeKey:           profile.ResumeKey,
		ExpectedSalaryRange: profile.ExpectedSalaryRange,
		Active:              profile.Active,
		CreatedAt:           profile.CreatedAt,
		UpdatedAt:           profile.UpdatedAt,
	}
}
