package domain

import "time"

// ChatType categorizes chat rooms.
type ChatType string

const (
	ChatTypeGeneral      ChatType = "general"
	ChatTypeApplication  ChatType = "application"
	ChatTypeSupport      ChatType = "support"
	ChatTypeConsultation ChatType = "consultation"
)

// ChatRoom links a seeker with another user, optionally scoped to an
// application. The (seeker, other user, application) triple is unique.
type ChatRoom struct {
	ID            string
	SeekerID      string
	SeekerUserID  string
	OtherUserID   string
	ApplicationID *string
	ChatType      ChatType
	Title         *string
	Active        bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Participants returns the user IDs allowed into the room.
func (r *ChatRoom) Participants() []string {
	return []string{r.SeekerUserID, r.OtherUserID}
}

// CanAccess reports whether userID is a room participant.
func (r *ChatRoom) CanAccess(userID string) bool {
	return userID == r.SeekerUserID || userID == r.OtherUserID
}

// OtherParticipant returns the counterpart of userID in the room, or empty
// when userID is not a participant.
func (r *ChatRoom) OtherParticipant(userID string) string {
	switch userID {
	case r.SeekerUserID:
		return r.OtherUserID
	case r.OtherUserID:
		return r.SeekerUserID
	}
	return ""
}

// ChatMessageType distinguishes user text from system notices.
type ChatMessageType string

const (
	ChatMessageText   ChatMessageType = "text"
	ChatMessageSystem ChatMessageType = "system"
)

// ChatMessage is one entry in a room's thread. System messages carry a nil
// sender.
type ChatMessage struct {
	ID          string
	RoomID      string
	SenderID    *string
	MessageType ChatMessageType
	Body        string
	Read        bool
	CreatedAt   time.Time
}

// ChatNotificationType categorizes chat notifications.
type ChatNotificationType string

const (
	NotificationNewMessage            ChatNotificationType = "new_message"
	NotificationApplicationDiscussion ChatNotificationType = "application_discussion"
)

// ChatNotification is a per-recipient alert about chat activity.
type ChatNotification struct {
	ID               string
	RecipientID      string
	SenderID         *string
	RoomID           string
	NotificationType ChatNotificationType
	Title            string
	Message          string
	Read             bool
	CreatedAt        time.Time
}
