package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/kazi-link/job-portal/internal/api/dto"
	"github.com/kazi-link/job-portal/internal/auth"
	"github.com/kazi-link/job-portal/internal/domain"
	"github.com/kazi-link/job-portal/internal/service"
	apperrors "github.com/kazi-link/job-portal/pkg/util"
)

// ChatHandler manages chat room, message, and notification endpoints.
type ChatHandler struct {
	service *service.ChatService
}

// NewChatHandler constructs handler.
func NewChatHandler(chatService *service.ChatService) *ChatHandler {
	return &ChatHandler{service: chatService}
}

// GetOrCreateRoom POST /api/chat/rooms.
func (h *ChatHandler) GetOrCreateRoom(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.ChatRoomRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	room, err := h.service.GetOrCreateRoom(c.Context(), principal.User, service.ChatRoomInput{
		SeekerID:      req.SeekerID,
		OtherUserID:   req.OtherUserID,
		ApplicationID: req.ApplicationID,
		ChatType:      req.ChatType,
		Title:         req.Title,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": chatRoomResponse(room)})
}

// ListRooms GET /api/chat/rooms.
func (h *ChatHandler) ListRooms(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("authentication required")
	}
	limit, offset := parsePagination(c)
	rooms, err := h.service.ListRooms(c.Context(), principal.User.ID, limit, offset)
	if err != nil {
		return err
	}
	items := make([]dto.ChatRoomResponse, 0, len(rooms))
	for i := range rooms {
		items = append(items, chatRoomResponse(&rooms[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// ListMessages GET /api/chat/rooms/:id/messages.
func (h *ChatHandler) ListMessages(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("authentication required")
	}
	limit, offset := parsePagination(c)
	messages, err := h.service.ListMessages(c.Context(), principal.User, c.Params("id"), limit, offset)
	if err != nil {
		return err
	}
	items := make([]dto.ChatMessageResponse, 0, len(messages))
	for i := range messages {
		items = append(items, chatMessageResponse(&messages[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// SendMessage POST /api/chat/rooms/:id/messages.
func (h *ChatHandler) SendMessage(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.ChatMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	message, err := h.service.SendMessage(c.Context(), principal.User, c.Params("id"), req.Body)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": chatMessageResponse(message)})
}

// ListNotifications GET /api/chat/notifications.
func (h *ChatHandler) ListNotifications(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("authentication required")
	}
	limit, offset := parsePagination(c)
	unreadOnly := c.QueryBool("unread")
	notifications, err := h.service.ListNotifications(c.Context(), principal.User.ID, unreadOnly, limit, offset)
	if err != nil {
		return err
	}
	items := make([]dto.ChatNotificationResponse, 0, len(notifications))
	for i := range notifications {
		items = append(items, chatNotificationResponse(&notifications[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// MarkNotificationRead POST /api/chat/notifications/:id/read.
func (h *ChatHandler) MarkNotificationRead(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("authentication required")
	}
	if err := h.service.MarkNotificationRead(c.Context(), principal.User.ID, c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"read": true}})
}

func chatRoomResponse(room *domain.ChatRoom) dto.ChatRoomResponse {
	return dto.ChatRoomResponse{
		ID:            room.ID,
		SeekerID:      room.SeekerID,
		SeekerUserID:  room.SeekerUserID,
		OtherUserID:   room.OtherUserID,
		ApplicationID: room.ApplicationID,
		ChatType:      room.ChatType,
		Title:         room.Title,
		Active:        room.Active,
		CreatedAt:     room.CreatedAt,
		UpdatedAt:     room.UpdatedAt,
	}
}

func chatMessageResponse(message *domain.ChatMessage) dto.ChatMessageResponse {
	return dto.ChatMessageResponse{
		ID:          message.ID,
		RoomID:      message.RoomID,
		SenderID:    message.SenderID,
		MessageType: message.MessageType,
		Body:        message.Body,
		Read:        message.Read,
		CreatedAt:   message.CreatedAt,
	}
}

func chatNotificationResponse(notification *domain.ChatNotification) dto.ChatNotificationResponse {
	return dto.ChatNotificationResponse{
		ID:               notification.ID,
		SenderID:         notification.SenderID,
		RoomID:           notification.RoomID,
		NotificationType: notification.NotificationType,
		Title:            notification.Title,
		Message:          notification.Message,
		Read:             notification.Read,
		CreatedAt:        notification.CreatedAt,
	}
}
