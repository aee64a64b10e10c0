package dto

import (
	"time"

	"github.com/kazi-link/job-portal/internal/domain"
)

// SubmitApplicationRequest payload.
type SubmitApplicationRequest struct {
	PostingID           string   `json:"posting_id"`
	CoverLetter         *string  `json:"cover_letter"`
	ResumeKey           *string  `json:"resume_key"`
	AdditionalDocuments []string `json:"additional_documents"`
}

// UpdateApplicationStatusRequest payload for status transitions.
type UpdateApplicationStatusRequest struct {
	Status   domain.ApplicationStatus `json:"status"`
	Feedback *string                  `json:"feedback"`
}

// ApplicationFeedbackRequest payload for the convenience endpoints.
type ApplicationFeedbackRequest struct {
	Feedback *string `json:"feedback"`
}

// UpdateApplicationDocumentsRequest payload for document updates.
type UpdateApplicationDocumentsRequest struct {
	CoverLetter         *string  `json:"cover_letter"`
	ResumeKey           *string  `json:"resume_key"`
	AdditionalDocuments []string `json:"additional_documents"`
}

// ApplicationResponse mirrors an application.
type ApplicationResponse struct {
	ID                  string                   `json:"id"`
	ApplicantID         string                   `json:"applicant_id"`
	PostingID           string                   `json:"posting_id"`
	SeekerProfileID     *string                  `json:"seeker_profile_id,omitempty"`
	CoverLetter         *string                  `json:"cover_letter,omitempty"`
	ResumeKey           *string                  `json:"resume_key,omitempty"`
	AdditionalDocuments []string                 `json:"additional_documents,omitempty"`
	Status              domain.ApplicationStatus `json:"status"`
	Feedback            *string                  `json:"feedback,omitempty"`
	AppliedAt           time.Time                `json:"applied_at"`
	UpdatedAt           time.Time                `json:"updated_at"`
	ReviewedBy          *string                  `json:"reviewed_by,omitempty"`
	ReviewedAt          *time.Time               `json:"reviewed_at,omitempty"`
}
