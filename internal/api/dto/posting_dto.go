package dto

import (
	"time"

	"github.com/kazi-link/job-portal/internal/domain"
)

// CreatePostingRequest payload.
type CreatePostingRequest struct {
	Title            string                 `json:"title"`
	OfferType        domain.OfferType       `json:"offer_type"`
	CompanyName      *string                `json:"company_name"`
	Location         string                 `json:"location"`
	JobTypeID        string                 `json:"job_type_id"`
	CategoryID       string                 `json:"category_id"`
	ExperienceLevel  domain.ExperienceLevel `json:"experience_level"`
	SalaryRange      string                 `json:"salary_range"`
	EmployeesNeeded  int                    `json:"employees_needed"`
	Description      string                 `json:"description"`
	Requirements     string                 `json:"requirements"`
	Responsibilities string                 `json:"responsibilities"`
	Benefits         *string                `json:"benefits"`
	Deadline         time.Time              `json:"deadline"`
	Status           domain.PostingStatus   `json:"status"`
}

// UpdatePostingRequest carries optional field updates.
type UpdatePostingRequest struct {
	Title            *string               `json:"title"`
	Location         *string               `json:"location"`
	SalaryRange      *string               `json:"salary_range"`
	EmployeesNeeded  *int                  `json:"employees_needed"`
	Description      *string               `json:"description"`
	Requirements     *string               `json:"requirements"`
	Responsibilities *string               `json:"responsibilities"`
	Benefits         *string               `json:"benefits"`
	Deadline         *time.Time            `json:"deadline"`
	Status           *domain.PostingStatus `json:"status"`
}

// PostingResponse mirrors a job posting.
type PostingResponse struct {
	ID               string                 `json:"id"`
	Title            string                 `json:"title"`
	OfferType        domain.OfferType       `json:"offer_type"`
	CompanyName      *string                `json:"company_name,omitempty"`
	Location         string                 `json:"location"`
	JobTypeID        string                 `json:"job_type_id"`
	CategoryID       string                 `json:"category_id"`
	ExperienceLevel  domain.ExperienceLevel `json:"experience_level"`
	SalaryRange      string                 `json:"salary_range"`
	EmployeesNeeded  int                    `json:"employees_needed"`
	Description      string                 `json:"description"`
	Requirements     string                 `json:"requirements"`
	Responsibilities string                 `json:"responsibilities"`
	Benefits         *string                `json:"benefits,omitempty"`
	Deadline         time.Time              `json:"deadline"`
	Status           domain.PostingStatus   `json:"status"`
	CreatedBy        string                 `json:"created_by"`
	CreatedAt        time.Time              `json:"created_at"`
	UpdatedAt        time.Time              `json:"updated_at"`
}

// CatalogEntryRequest payload for categories and job types.
type CatalogEntryRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// CatalogEntryResponse mirrors a category or job type.
type CatalogEntryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
