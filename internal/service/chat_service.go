package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/kazi-link/job-portal/internal/domain"
	"github.com/kazi-link/job-portal/internal/events"
	"github.com/kazi-link/job-portal/internal/repository"
	apperrors "github.com/kazi-link/job-portal/pkg/util"
)

// ChatService manages chat rooms, messages, and notification fan-out. Each
// participant has a Redis channel (chat:user:<id>) that downstream gateways
// subscribe to.
type ChatService struct {
	rooms         repository.ChatRoomRepository
	messages      repository.ChatMessageRepository
	notifications repository.ChatNotificationRepository
	seekers       repository.SeekerRepository
	redisClient   *redis.Client
	dispatcher    events.Dispatcher
	logger        *zap.Logger
}

// ChatDependencies bundles collaborators for the chat service.
type ChatDependencies struct {
	RoomRepo         repository.ChatRoomRepository
	MessageRepo      repository.ChatMessageRepository
	NotificationRepo repository.ChatNotificationRepository
	SeekerRepo       repository.SeekerRepository
	RedisClient      *redis.Client
	Dispatcher       events.Dispatcher
	Logger           *zap.Logger
}

// ChatRoomInput describes a get-or-create room request.
type ChatRoomInput struct {
	SeekerID      *string
	OtherUserID   *string
	ApplicationID *string
	ChatType      domain.ChatType
	Title         *string
}

// chatWireMessage is the payload published on participant Redis channels.
type chatWireMessage struct {
	Kind      string    `json:"kind"`
	RoomID    string    `json:"room_id"`
	MessageID string    `json:"message_id,omitempty"`
	SenderID  *string   `json:"sender_id,omitempty"`
	Body      string    `json:"body"`
	Title     string    `json:"title,omitempty"`
	SentAt    time.Time `json:"sent_at"`
}

// NewChatService constructs the service.
func NewChatService(deps ChatDependencies) *ChatService {
	return &ChatService{
		rooms:         deps.RoomRepo,
		messages:      deps.MessageRepo,
		notifications: deps.NotificationRepo,
		seekers:       deps.SeekerRepo,
		redisClient:   deps.RedisClient,
		dispatcher:    deps.Dispatcher,
		logger:        deps.Logger,
	}
}

// GetOrCreateRoom resolves or creates the room for the (seeker, other user,
// application) triple. When the actor is the seeker, OtherUserID identifies
// the counterpart; otherwise SeekerID names the seeker profile to chat with.
func (s *ChatService) GetOrCreateRoom(ctx context.Context, actor *domain.User, input ChatRoomInput) (*domain.ChatRoom, error) {
	var seeker *domain.SeekerProfile
	var otherUserID string

	if profile, err := s.seekers.GetByUserID(ctx, actor.ID); err == nil && (input.SeekerID == nil || *input.SeekerID == profile.ID) {
		if input.OtherUserID == nil {
			return nil, apperrors.NewValidationError("other_user_id is required", nil)
		}
		seeker = profile
		otherUserID = *input.OtherUserID
	} else if input.SeekerID != nil {
		profile, err := s.seekers.GetByID(ctx, *input.SeekerID)
		if err != nil {
			return nil, err
		}
		seeker = profile
		otherUserID = actor.ID
	} else {
		return nil, apperrors.NewValidationError("seeker_id is required", nil)
	}

	if seeker.UserID == otherUserID {
		return nil, apperrors.NewValidationError("cannot open a chat with yourself", nil)
	}

	chatType := input.ChatType
	if chatType == "" {
		chatType = domain.ChatTypeGeneral
	}
	if input.ApplicationID != nil {
		chatType = domain.ChatTypeApplication
	}

	room, err := s.getOrCreateRoom(ctx, seeker, otherUserID, input.ApplicationID, chatType, input.Title)
	if err != nil {
		return nil, err
	}
	if !room.CanAccess(actor.ID) {
		return nil, apperrors.NewForbidden("you are not a participant of this chat")
	}
	return room, nil
}

// GetOrCreateApplicationRoom resolves the room scoped to one application,
// creating it between the applicant's seeker profile and the posting owner.
// Used by the notification pipeline.
func (s *ChatService) GetOrCreateApplicationRoom(ctx context.Context, seekerID, ownerUserID, applicationID, postingTitle string) (*domain.ChatRoom, error) {
	seeker, err := s.seekers.GetByID(ctx, seekerID)
	if err != nil {
		return nil, err
	}
	title := "Application: " + postingTitle
	return s.getOrCreateRoom(ctx, seeker, ownerUserID, &applicationID, domain.ChatTypeApplication, &title)
}

func (s *ChatService) getOrCreateRoom(ctx context.Context, seeker *domain.SeekerProfile, otherUserID string, applicationID *string, chatType domain.ChatType, title *string) (*domain.ChatRoom, error) {
	room, err := s.rooms.GetByTriple(ctx, seeker.ID, otherUserID, applicationID)
	if err == nil {
		return room, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	room = &domain.ChatRoom{
		SeekerID:      seeker.ID,
		SeekerUserID:  seeker.UserID,
		OtherUserID:   otherUserID,
		ApplicationID: applicationID,
		ChatType:      chatType,
		Title:         title,
		Active:        true,
	}
	if err := s.rooms.Create(ctx, room); err != nil {
		// lost a concurrent create; re-read the winner
		if existing, readErr := s.rooms.GetByTriple(ctx, seeker.ID, otherUserID, applicationID); readErr == nil {
			return existing, nil
		}
		return nil, err
	}
	return room, nil
}

// ListRooms returns the actor's rooms ordered by recent activity.
func (s *ChatService) ListRooms(ctx context.Context, actorID string, limit, offset int) ([]domain.ChatRoom, error) {
	return s.rooms.ListForUser(ctx, actorID, limit, offset)
}

// SendMessage appends a text message, notifies the counterpart, and fans the
// message out on the recipient's Redis channel.
func (s *ChatService) SendMessage(ctx context.Context, actor *domain.User, roomID, body string) (*domain.ChatMessage, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, apperrors.NewValidationError("message body is required", nil)
	}
	room, err := s.rooms.GetByID(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if !room.CanAccess(actor.ID) {
		return nil, apperrors.NewForbidden("you are not a participant of this chat")
	}

	senderID := actor.ID
	message := &domain.ChatMessage{
		RoomID:      room.ID,
		SenderID:    &senderID,
		MessageType: domain.ChatMessageText,
		Body:        body,
	}
	if err := s.messages.Create(ctx, message); err != nil {
		return nil, err
	}
	if err := s.rooms.Touch(ctx, room.ID); err != nil && s.logger != nil {
		s.logger.Warn("chat room touch failed", zap.String("room_id", room.ID), zap.Error(err))
	}

	recipientID := room.OtherParticipant(actor.ID)
	s.notify(ctx, room, message, recipientID, domain.NotificationNewMessage, "New message")
	s.publishToChannel(ctx, recipientID, chatWireMessage{
		Kind:      "message",
		RoomID:    room.ID,
		MessageID: message.ID,
		SenderID:  message.SenderID,
		Body:      message.Body,
		SentAt:    message.CreatedAt,
	})
	s.publishEvent(ctx, actor, room, message, recipientID)
	return message, nil
}

// PostSystemMessage appends a sender-less message to the room and notifies
// the given recipient. Used for application lifecycle announcements.
func (s *ChatService) PostSystemMessage(ctx context.Context, roomID, body, recipientID, title string) (*domain.ChatMessage, error) {
	room, err := s.rooms.GetByID(ctx, roomID)
	if err != nil {
		return nil, err
	}
	message := &domain.ChatMessage{
		RoomID:      room.ID,
		MessageType: domain.ChatMessageSystem,
		Body:        body,
	}
	if err := s.messages.Create(ctx, message); err != nil {
		return nil, err
	}
	if err := s.rooms.Touch(ctx, room.ID); err != nil && s.logger != nil {
		s.logger.Warn("chat room touch failed", zap.String("room_id", room.ID), zap.Error(err))
	}

	s.notify(ctx, room, message, recipientID, domain.NotificationApplicationDiscussion, title)
	s.publishToChannel(ctx, recipientID, chatWireMessage{
		Kind:      "system",
		RoomID:    room.ID,
		MessageID: message.ID,
		Body:      message.Body,
		Title:     title,
		SentAt:    message.CreatedAt,
	})
	return message, nil
}

// ListMessages returns the room thread for a participant and marks the
// actor's pending notifications for that room as read.
func (s *ChatService) ListMessages(ctx context.Context, actor *domain.User, roomID string, limit, offset int) ([]domain.ChatMessage, error) {
	room, err := s.rooms.GetByID(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if !room.CanAccess(actor.ID) {
		return nil, apperrors.NewForbidden("you are not a participant of this chat")
	}

	msgs, err := s.messages.ListByRoom(ctx, room.ID, limit, offset)
	if err != nil {
		return nil, err
	}
	if err := s.messages.MarkRoomRead(ctx, room.ID, actor.ID); err != nil && s.logger != nil {
		s.logger.Warn("mark messages read failed", zap.String("room_id", room.ID), zap.Error(err))
	}
	if err := s.notifications.MarkRoomRead(ctx, room.ID, actor.ID); err != nil && s.logger != nil {
		s.logger.Warn("mark notifications read failed", zap.String("room_id", room.ID), zap.Error(err))
	}
	return msgs, nil
}

// ListNotifications returns the actor's chat notifications.
func (s *ChatService) ListNotifications(ctx context.Context, actorID string, unreadOnly bool, limit, offset int) ([]domain.ChatNotification, error) {
	return s.notifications.ListForRecipient(ctx, actorID, unreadOnly, limit, offset)
}

// MarkNotificationRead marks one of the actor's notifications as read.
func (s *ChatService) MarkNotificationRead(ctx context.Context, actorID, notificationID string) error {
	return s.notifications.MarkRead(ctx, notificationID, actorID)
}

func (s *ChatService) notify(ctx context.Context, room *domain.ChatRoom, message *domain.ChatMessage, recipientID string, notificationType domain.ChatNotificationType, title string) {
	if recipientID == "" {
		return
	}
	notification := &domain.ChatNotification{
		RecipientID:      recipientID,
		SenderID:         message.SenderID,
		RoomID:           room.ID,
		NotificationType: notificationType,
		Title:            title,
		Message:          stringPreview(message.Body, 120),
	}
	if err := s.notifications.Create(ctx, notification); err != nil && s.logger != nil {
		s.logger.Warn("chat notification create failed", zap.String("room_id", room.ID), zap.Error(err))
	}
}

func (s *ChatService) publishToChannel(ctx context.Context, recipientID string, wire chatWireMessage) {
	if s.redisClient == nil || recipientID == "" {
		return
	}
	payload, err := json.Marshal(wire)
	if err != nil {
		return
	}
	if err := s.redisClient.Publish(ctx, "chat:user:"+recipientID, payload).Err(); err != nil && s.logger != nil {
		s.logger.Warn("chat fan-out publish failed", zap.String("recipient_id", recipientID), zap.Error(err))
	}
}

func (s *ChatService) publishEvent(ctx context.Context, actor *domain.User, room *domain.ChatRoom, message *domain.ChatMessage, recipientID string) {
	if s.dispatcher == nil {
		return
	}
	event := events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventChatMessageSent,
		Actor:     events.Actor{UserID: actor.ID, Role: actor.Role},
		Timestamp: time.Now(),
		Payload: events.ChatMessageSentPayload{
			RoomID:      room.ID,
			MessageID:   message.ID,
			RecipientID: recipientID,
			SenderID:    message.SenderID,
			BodyPreview: stringPreview(message.Body, 120),
		},
	}
	if room.ApplicationID != nil {
		event.ApplicationID = *room.ApplicationID
	}
	_ = s.dispatcher.Publish(ctx, event)
}

func stringPreview(text string, max int) string {
	if len(text) <= max {
		return text
	}
	return text[:max]
}
