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

// AdvertisementsHandler manages advertisement and testimonial endpoints.
type AdvertisementsHandler struct {
	ads          *service.AdvertisementService
	testimonials *service.TestimonialService
}

// NewAdvertisementsHandler constructs handler.
func NewAdvertisementsHandler(adService *service.AdvertisementService, testimonialService *service.TestimonialService) *AdvertisementsHandler {
	return &AdvertisementsHandler{ads: adService, testimonials: testimonialService}
}

// CreateAd POST /api/advertisements.
func (h *AdvertisementsHandler) CreateAd(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.AdvertisementRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	view, err := h.ads.CreateAdvertisement(c.Context(), principal.User, adInput(req))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": adResponse(view)})
}

// GetAd GET /api/advertisements/:id.
func (h *AdvertisementsHandler) GetAd(c *fiber.Ctx) error {
	view, err := h.ads.GetAdvertisement(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": adResponse(view)})
}

// ListAds GET /api/advertisements.
func (h *AdvertisementsHandler) ListAds(c *fiber.Ctx) error {
	limit, offset := parsePagination(c)
	views, err := h.ads.ListAdvertisements(c.Context(), limit, offset)
	if err != nil {
		return err
	}
	items := make([]dto.AdvertisementResponse, 0, len(views))
	for i := range views {
		items = append(items, adResponse(&views[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// UpdateAd PUT /api/advertisements/:id.
func (h *AdvertisementsHandler) UpdateAd(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.AdvertisementRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	view, err := h.ads.UpdateAdvertisement(c.Context(), principal.User, c.Params("id"), adInput(req))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": adResponse(view)})
}

// DeleteAd DELETE /api/advertisements/:id.
func (h *AdvertisementsHandler) DeleteAd(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("authentication required")
	}
	if err := h.ads.DeleteAdvertisement(c.Context(), principal.User, c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// CreateTestimonial POST /api/testimonials.
func (h *AdvertisementsHandler) CreateTestimonial(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.TestimonialRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	testimonial, err := h.testimonials.CreateTestimonial(c.Context(), principal.User, service.TestimonialInput{
		Job:         req.Job,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": testimonialResponse(testimonial)})
}

// ListTestimonials GET /api/testimonials.
func (h *AdvertisementsHandler) ListTestimonials(c *fiber.Ctx) error {
	limit, offset := parsePagination(c)
	testimonials, err := h.testimonials.ListTestimonials(c.Context(), limit, offset)
	if err != nil {
		return err
	}
	items := make([]dto.TestimonialResponse, 0, len(testimonials))
	for i := range testimonials {
		items = append(items, testimonialResponse(&testimonials[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// GetTestimonial GET /api/testimonials/:id.
func (h *AdvertisementsHandler) GetTestimonial(c *fiber.Ctx) error {
	testimonial, err := h.testimonials.GetTestimonial(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": testimonialResponse(testimonial)})
}

// DeleteTestimonial DELETE /api/testimonials/:id.
func (h *AdvertisementsHandler) DeleteTestimonial(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("authentication required")
	}
	if err := h.testimonials.DeleteTestimonial(c.Context(), principal.User, c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func adInput(req dto.AdvertisementRequest) service.AdvertisementInput {
	return service.AdvertisementInput{
		Title:       req.Title,
		Description: req.Description,
		ImageKey:    req.ImageKey,
		ContactInfo: req.ContactInfo,
		Price:       req.Price,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	}
}

func adResponse(view *service.AdvertisementView) dto.AdvertisementResponse {
	ad := view.Advertisement
	return dto.AdvertisementResponse{
		ID:          ad.ID,
		CreatedBy:   ad.CreatedBy,
		Title:       ad.Title,
		Description: ad.Description,
		ImageKey:    ad.ImageKey,
		ContactInfo: ad.ContactInfo,
		Price:       ad.Price,
		StartDate:   ad.StartDate,
		EndDate:     ad.EndDate,
		Status:      view.Status,
		CreatedAt:   ad.CreatedAt,
	}
}

func testimonialResponse(testimonial *domain.Testimonial) dto.TestimonialResponse {
	return dto.TestimonialResponse{
		ID:          testimonial.ID,
		Job:         testimonial.Job,
		Description: testimonial.Description,
		FirstName:   testimonial.FirstName,
		LastName:    testimonial.LastName,
		CreatedAt:   testimonial.CreatedAt,
	}
}
