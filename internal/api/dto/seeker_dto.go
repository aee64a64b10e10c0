package dto

import (
	"time"

	"github.com/kazi-link/job-portal/internal/domain"
)

// SeekerProfileRequest payload for creating or updating a profile.
type SeekerProfileRequest struct {
	FirstName           string                `json:"first_name"`
	MiddleName          string                `json:"middle_name"`
	LastName            string                `json:"last_name"`
	Gender              domain.Gender         `json:"gender"`
	Skills              string                `json:"skills"`
	ExperienceYears     int                   `json:"experience_years"`
	EducationLevel      domain.EducationLevel `json:"education_level"`
	EducationSector     *string               `json:"education_sector"`
	ResumeKey           *string               `json:"resume_key"`
	ExpectedSalaryRange string                `json:"expected_salary_range"`
}

// SeekerActivationRequest payload for pausing or resuming a profile.
type SeekerActivationRequest struct {
	Active bool `json:"active"`
}

// SeekerProfileResponse mirrors a profile.
type SeekerProfileResponse struct {
	ID                  string                `json:"id"`
	UserID              string                `json:"user_id"`
	FirstName           string                `json:"first_name"`
	MiddleName          string                `json:"middle_name,omitempty"`
	LastName            string                `json:"last_name"`
	Gender              domain.Gender         `json:"gender"`
	Skills              string                `json:"skills"`
	ExperienceYears     int                   `json:"experience_years"`
	EducationLevel      domain.EducationLevel `json:"education_level"`
	EducationSector     *string               `json:"education_sector,omitempty"`
	ResumeKey           *string               `json:"resume_key,omitempty"`
	ExpectedSalaryRange string                `json:"expected_salary_range"`
	Active              bool                  `json:"active"`
	CreatedAt           time.Time             `json:"created_at"`
	UpdatedAt           time.Time             `json:"updated_at"`
}
