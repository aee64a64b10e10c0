package dto

import (
	"time"

	"github.com/kazi-link/job-portal/internal/domain"
)

// ChatRoomRequest payload for get-or-create.
type ChatRoomRequest struct {
	SeekerID      *string         `json:"seeker_id"`
	OtherUserID   *string         `json:"other_user_id"`
	ApplicationID *string         `json:"application_id"`
	ChatType      domain.ChatType `json:"chat_type"`
	Title         *string         `json:"title"`
}

// ChatRoomResponse mirrors a room.
type ChatRoomResponse struct {
	ID            string          `json:"id"`
	SeekerID      string          `json:"seeker_id"`
	SeekerUserID  string          `json:"seeker_user_id"`
	OtherUserID   string          `json:"other_user_id"`
	ApplicationID *string         `json:"application_id,omitempty"`
	ChatType      domain.ChatType `json:"chat_type"`
	Title         *string         `json:"title,omitempty"`
	Active        bool            `json:"active"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ChatMessageRequest payload for posting a message.
type ChatMessageRequest struct {
	Body string `json:"body"`
}

// ChatMessageResponse mirrors a message.
type ChatMessageResponse struct {
	ID          string                 `json:"id"`
	RoomID      string                 `json:"room_id"`
	SenderID    *string                `json:"sender_id,omitempty"`
	MessageType domain.ChatMessageType `json:"message_type"`
	Body        string                 `json:"body"`
	Read        bool                   `json:"read"`
	CreatedAt   time.Time              `json:"created_at"`
}

// ChatNotificationResponse mirrors a notification.
type ChatNotificationResponse struct {
	ID               string                      `json:"id"`
	SenderID         *string                     `json:"sender_id,omitempty"`
	RoomID           string                      `json:"room_id"`
	NotificationType domain.ChatNotificationType `json:"notification_type"`
	Title            string                      `json:"title"`
	Message          string                      `json:"message"`
	Read             bool                        `json:"read"`
	CreatedAt        time.Time                   `json:"created_at"`
}
