package domain

import "time"

// PostingStatus enumerates lifecycle states for job postings.
type PostingStatus string

const (
	PostingStatusDraft   PostingStatus = "draft"
	PostingStatusActive  PostingStatus = "active"
	PostingStatusClosed  PostingStatus = "closed"
	PostingStatusExpired PostingStatus = "expired"
)

// OfferType distinguishes company postings from individual ones.
type OfferType string

const (
	OfferTypeCompany    OfferType = "company"
	OfferTypeIndividual OfferType = "individual"
)

// ExperienceLevel enumerates seniority bands.
type ExperienceLevel string

const (
	ExperienceEntry   ExperienceLevel = "entry"
	ExperienceMid     ExperienceLevel = "mid"
	ExperienceSenior  ExperienceLevel = "senior"
	ExperienceLead    ExperienceLevel = "lead"
	ExperienceManager ExperienceLevel = "manager"
)

// JobPosting is the aggregate for job offers.
type JobPosting struct {
	ID               string
	Title            string
	OfferType        OfferType
	CompanyName      *string
	Location         string
	JobTypeID        string
	CategoryID       string
	ExperienceLevel  ExperienceLevel
	SalaryRange      string
	EmployeesNeeded  int
	Description      string
	Requirements     string
	Responsibilities string
	Benefits         *string
	Deadline         time.Time
	Status           PostingStatus
	CreatedBy        string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// AcceptsApplications reports whether the posting status allows new
// applications. Drafts accept applications.
func (p *JobPosting) AcceptsApplications() bool {
	return p.Status == PostingStatusActive || p.Status == PostingStatusDraft
}

// DeadlinePassed reports whether the deadline date is before the given day.
func (p *JobPosting) DeadlinePassed(today time.Time) bool {
	deadline := p.Deadline.UTC().Truncate(24 * time.Hour)
	return deadline.Before(today.UTC().Truncate(24 * time.Hour))
}

// JobCategory groups postings by field.
type JobCategory struct {
	ID          string
	Name        string
	Description *string
	CreatedBy   string
	CreatedAt   time.Time
}

// JobType describes the employment form (full time, contract, ...).
type JobType struct {
	ID          string
	Name        string
	Description *string
	CreatedBy   string
	CreatedAt   time.Time
}
