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

// SeekerService manages job seeker profiles.
type SeekerService struct {
	seekers repository.SeekerRepository
}

// SeekerProfileInput describes profile creation and update payloads.
type SeekerProfileInput struct {
	FirstName           string
	MiddleName          string
	LastName            string
	Gender              domain.Gender
	Skills              string
	ExperienceYears     int
	EducationLevel      domain.EducationLevel
	EducationSector     *string
	ResumeKey           *string
	ExpectedSalaryRange string
}

// NewSeekerService constructs the service.
func NewSeekerService(seekers repository.SeekerRepository) *SeekerService {
	return &SeekerService{seekers: seekers}
}

// CreateProfile creates the actor's seeker profile. One profile per user.
func (s *SeekerService) CreateProfile(ctx context.Context, actor *domain.User, input SeekerProfileInput) (*domain.SeekerProfile, error) {
	if strings.TrimSpace(input.FirstName) == "" || strings.TrimSpace(input.LastName) == "" {
		return nil, apperrors.NewValidationError("first and last name are required", nil)
	}
	if _, err := s.seekers.GetByUserID(ctx, actor.ID); err == nil {
		return nil, apperrors.NewConflict("profile already exists", nil)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	profile := &domain.SeekerProfile{
		UserID:              actor.ID,
		FirstName:           strings.TrimSpace(input.FirstName),
		MiddleName:          strings.TrimSpace(input.MiddleName),
		LastName:            strings.TrimSpace(input.LastName),
		Gender:              input.Gender,
		Skills:              input.Skills,
		ExperienceYears:     input.ExperienceYears,
		EducationLevel:      input.EducationLevel,
		EducationSector:     input.EducationSector,
		ResumeKey:           input.ResumeKey,
		ExpectedSalaryRange: strings.TrimSpace(input.ExpectedSalaryRange),
		Active:              true,
	}
	if err := s.seekers.Create(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// GetOwnProfile returns the actor's profile.
func (s *SeekerService) GetOwnProfile(ctx context.Context, actorID string) (*domain.SeekerProfile, error) {
	return s.seekers.GetByUserID(ctx, actorID)
}

// GetProfile returns a profile by id.
func (s *SeekerService) GetProfile(ctx context.Context, profileID string) (*domain.SeekerProfile, error) {
	return s.seekers.GetByID(ctx, profileID)
}

// UpdateProfile updates the actor's own profile.
func (s *SeekerService) UpdateProfile(ctx context.Context, actor *domain.User, input SeekerProfileInput) (*domain.SeekerProfile, error) {
	profile, err := s.seekers.GetByUserID(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(input.FirstName) != "" {
		profile.FirstName = strings.TrimSpace(input.FirstName)
	}
	if strings.TrimSpace(input.LastName) != "" {
		profile.LastName = strings.TrimSpace(input.LastName)
	}
	profile.MiddleName = strings.TrimSpace(input.MiddleName)
	if input.Gender != "" {
		profile.Gender = input.Gender
	}
	if input.Skills != "" {
		profile.Skills = input.Skills
	}
	if input.ExperienceYears >= 0 {
		profile.ExperienceYears = input.ExperienceYears
	}
	if input.EducationLevel != "" {
		profile.EducationLevel = input.EducationLevel
	}
	if input.EducationSector != nil {
		profile.EducationSector = input.EducationSector
	}
	if input.ResumeKey != nil {
		profile.ResumeKey = input.ResumeKey
	}
	if strings.TrimSpace(input.ExpectedSalaryRange) != "" {
		profile.ExpectedSalaryRange = strings.TrimSpace(input.ExpectedSalaryRange)
	}

	if err := s.seekers.Update(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// SetProfileActive toggles a profile, used by the owner to pause job hunting
// or by an admin to suspend it.
func (s *SeekerService) SetProfileActive(ctx context.Context, actor *domain.User, profileID string, active bool) (*domain.SeekerProfile, error) {
	profile, err := s.seekers.GetByID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if profile.UserID != actor.ID && !actor.IsAdmin() {
		return nil, apperrors.NewForbidden("you are not allowed to change this profile")
	}
	profile.Active = active
	if err := s.seekers.Update(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// ListProfiles returns paginated profiles for admin views.
func (s *SeekerService) ListProfiles(ctx context.Context, limit, offset int) ([]domain.SeekerProfile, error) {
	return s.seekers.List(ctx, limit, offset)
}
