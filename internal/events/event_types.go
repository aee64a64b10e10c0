package events

import (
	"time"

	"github.com/kazi-link/job-portal/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventApplicationSubmitted     EventType = "application_submitted"
	EventApplicationStatusChanged EventType = "application_status_changed"
	EventApplicationDeleted       EventType = "application_deleted"
	EventPostingExpired           EventType = "posting_expired"
	EventChatMessageSent          EventType = "chat_message_sent"
)

// Actor encapsulates actor metadata for an event.
type Actor struct {
	UserID string          `json:"user_id"`
	Role   domain.UserRole `json:"role"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID            string      `json:"id"`
	Type          EventType   `json:"type"`
	ApplicationID string      `json:"application_id,omitempty"`
	Actor         Actor       `json:"actor"`
	Timestamp     time.Time   `json:"timestamp"`
	Payload       interface{} `json:"payload"`
}

// ApplicationSubmittedPayload payload.
type ApplicationSubmittedPayload struct {
	PostingID      string  `json:"posting_id"`
	PostingOwnerID string  `json:"posting_owner_id"`
	PostingTitle   string  `json:"posting_title"`
	ApplicantID    string  `json:"applicant_id"`
	SeekerID       *string `json:"seeker_id,omitempty"`
}

// ApplicationStatusChangedPayload payload.
type ApplicationStatusChangedPayload struct {
	PostingID      string                   `json:"posting_id"`
	PostingOwnerID string                   `json:"posting_owner_id"`
	PostingTitle   string                   `json:"posting_title"`
	ApplicantID    string                   `json:"applicant_id"`
	SeekerID       *string                  `json:"seeker_id,omitempty"`
	OldStatus      domain.ApplicationStatus `json:"old_status"`
	NewStatus      domain.ApplicationStatus `json:"new_status"`
	Feedback       *string                  `json:"feedback,omitempty"`
}

// ApplicationDeletedPayload payload.
type ApplicationDeletedPayload struct {
	PostingID   string                   `json:"posting_id"`
	ApplicantID string                   `json:"applicant_id"`
	LastStatus  domain.ApplicationStatus `json:"last_status"`
}

// PostingExpiredPayload payload.
type PostingExpiredPayload struct {
	PostingID string    `json:"posting_id"`
	OwnerID   string    `json:"owner_id"`
	Deadline  time.Time `json:"deadline"`
}

// ChatMessageSentPayload payload.
type ChatMessageSentPayload struct {
	RoomID      string  `json:"room_id"`
	MessageID   string  `json:"message_id"`
	RecipientID string  `json:"recipient_id"`
	SenderID    *string `json:"sender_id,omitempty"`
	BodyPreview string  `json:"body_preview"`
}
