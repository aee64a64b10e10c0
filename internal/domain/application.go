package domain

import "time"

// ApplicationStatus enumerates lifecycle states for job applications.
type ApplicationStatus string

const (
	ApplicationStatusPending     ApplicationStatus = "pending"
	ApplicationStatusReviewing   ApplicationStatus = "reviewing"
	ApplicationStatusShortlisted ApplicationStatus = "shortlisted"
	ApplicationStatusAccepted    ApplicationStatus = "accepted"
	ApplicationStatusRejected    ApplicationStatus = "rejected"
	ApplicationStatusWithdrawn   ApplicationStatus = "withdrawn"
)

// ValidApplicationStatus reports whether status is a recognized value.
func ValidApplicationStatus(status ApplicationStatus) bool {
	switch status {
	case ApplicationStatusPending, ApplicationStatusReviewing, ApplicationStatusShortlisted,
		ApplicationStatusAccepted, ApplicationStatusRejected, ApplicationStatusWithdrawn:
		return true
	}
	return false
}

// Application is one applicant's submission against one posting. At most one
// non-withdrawn application may exist per (applicant, posting) pair.
type Application struct {
	ID                  string
	ApplicantID         string
	PostingID           string
	SeekerProfileID     *string
	CoverLetter         *string
	ResumeKey           *string
	AdditionalDocuments []string
	Status              ApplicationStatus
	Feedback            *string
	AppliedAt           time.Time
	UpdatedAt           time.Time
	ReviewedBy          *string
	ReviewedAt          *time.Time
}
