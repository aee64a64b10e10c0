package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/kazi-link/job-portal/internal/domain"
	"github.com/kazi-link/job-portal/internal/repository"
	apperrors "github.com/kazi-link/job-portal/pkg/util"
)

// TestimonialService manages portal testimonials. Author names are copied
// from the seeker profile when one exists.
type TestimonialService struct {
	testimonials repository.TestimonialRepository
	seekers      repository.SeekerRepository
}

// TestimonialInput describes the creation payload.
type TestimonialInput struct {
	Job         string
	Description string
}

// NewTestimonialService constructs the service.
func NewTestimonialService(testimonials repository.TestimonialRepository, seekers repository.SeekerRepository) *TestimonialService {
	return &TestimonialService{testimonials: testimonials, seekers: seekers}
}

// CreateTestimonial records feedback from the actor.
func (s *TestimonialService) CreateTestimonial(ctx context.Context, actor *domain.User, input TestimonialInput) (*domain.Testimonial, error) {
	if strings.TrimSpace(input.Description) == "" {
		return nil, apperrors.NewValidationError("description is required", nil)
	}

	testimonial := &domain.Testimonial{
		CreatedBy:   actor.ID,
		Job:         strings.TrimSpace(input.Job),
		Description: strings.TrimSpace(input.Description),
	}
	if profile, err := s.seekers.GetByUserID(ctx, actor.ID); err == nil {
		testimonial.FirstName = &profile.FirstName
		testimonial.LastName = &profile.LastName
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	if err := s.testimonials.Create(ctx, testimonial); err != nil {
		return nil, err
	}
	return testimonial, nil
}

// GetTestimonial fetches one testimonial.
func (s *TestimonialService) GetTestimonial(ctx context.Context, id string) (*domain.Testimonial, error) {
	return s.testimonials.GetByID(ctx, id)
}

// DeleteTestimonial removes a testimonial, author or admin only.
func (s *TestimonialService) DeleteTestimonial(ctx context.Context, actor *domain.User, id string) error {
	testimonial, err := s.testimonials.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if testimonial.CreatedBy != actor.ID && !actor.IsAdmin() {
		return apperrors.NewForbidden("you are not allowed to delete this testimonial")
	}
	return s.testimonials.Delete(ctx, id)
}

// ListTestimonials returns paginated testimonials.
func (s *TestimonialService) ListTestimonials(ctx context.Context, limit, offset int) ([]domain.Testimonial, error) {
	return s.testimonials.List(ctx, limit, offset)
}
