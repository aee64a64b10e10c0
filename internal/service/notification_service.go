package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/kazi-link/job-portal/internal/config"
	"github.com/kazi-link/job-portal/internal/events"
)

// NotificationService consumes lifecycle events and turns them into chat
// activity: a system message in the application's room plus a notification
// for the affected participant. Handler errors are logged, never propagated.
type NotificationService struct {
	dispatcher events.Dispatcher
	chat       *ChatService
	logger     *zap.Logger
	cfg        config.NotificationConfig
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, chat *ChatService, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		chat:       chat,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventApplicationSubmitted, n.handleApplicationSubmitted)
	n.dispatcher.Subscribe(events.EventApplicationStatusChanged, n.handleApplicationStatusChanged)
	n.dispatcher.Subscribe(events.EventApplicationDeleted, n.handleApplicationDeleted)
	n.dispatcher.Subscribe(events.EventPostingExpired, n.handlePostingExpired)
}

func (n *NotificationService) handleApplicationSubmitted(ctx context.Context, event events.Event) error {
	n.logger.Info("ApplicationSubmitted", zap.String("application_id", event.ApplicationID), zap.Any("payload", event.Payload))
	payload, ok := event.Payload.(events.ApplicationSubmittedPayload)
	if !ok {
		return nil
	}
	n.sendEmailNotificationStub(ctx, event)

	if n.chat == nil || payload.SeekerID == nil {
		return nil
	}
	room, err := n.chat.GetOrCreateApplicationRoom(ctx, *payload.SeekerID, payload.PostingOwnerID, event.ApplicationID, payload.PostingTitle)
	if err != nil {
		n.logger.Warn("application room create failed", zap.String("application_id", event.ApplicationID), zap.Error(err))
		return nil
	}
	body := fmt.Sprintf("A new application was submitted for %q.", payload.PostingTitle)
	if _, err := n.chat.PostSystemMessage(ctx, room.ID, body, payload.PostingOwnerID, "New application"); err != nil {
		n.logger.Warn("application room announce failed", zap.String("room_id", room.ID), zap.Error(err))
	}
	return nil
}

func (n *NotificationService) handleApplicationStatusChanged(ctx context.Context, event events.Event) error {
	n.logger.Info("ApplicationStatusChanged", zap.String("application_id", event.ApplicationID), zap.Any("payload", event.Payload))
	payload, ok := event.Payload.(events.ApplicationStatusChangedPayload)
	if !ok {
		return nil
	}
	n.sendEmailNotificationStub(ctx, event)
	n.sendWebhookNotificationStub(ctx, event)

	if n.chat == nil || payload.SeekerID == nil || payload.PostingOwnerID == "" {
		return nil
	}
	room, err := n.chat.GetOrCreateApplicationRoom(ctx, *payload.SeekerID, payload.PostingOwnerID, event.ApplicationID, payload.PostingTitle)
	if err != nil {
		n.logger.Warn("application room create failed", zap.String("application_id", event.ApplicationID), zap.Error(err))
		return nil
	}

	body := fmt.Sprintf("Application status changed from %s to %s.", payload.OldStatus, payload.NewStatus)
	if payload.Feedback != nil && strings.TrimSpace(*payload.Feedback) != "" {
		body += " Feedback: " + strings.TrimSpace(*payload.Feedback)
	}
	// the applicant hears about reviewer decisions, the owner about withdrawals
	recipientID := payload.ApplicantID
	if event.Actor.UserID == payload.ApplicantID {
		recipientID = payload.PostingOwnerID
	}
	if _, err := n.chat.PostSystemMessage(ctx, room.ID, body, recipientID, "Application update"); err != nil {
		n.logger.Warn("application room announce failed", zap.String("room_id", room.ID), zap.Error(err))
	}
	return nil
}

func (n *NotificationService) handleApplicationDeleted(ctx context.Context, event events.Event) error {
	n.logger.Info("ApplicationDeleted", zap.String("application_id", event.ApplicationID), zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handlePostingExpired(ctx context.Context, event events.Event) error {
	n.logger.Info("PostingExpired", zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) sendEmailNotificationStub(ctx context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.EmailFrom) == "" {
		return
	}
	n.logger.Debug("sendEmailNotificationStub",
		zap.String("from", n.cfg.EmailFrom),
		zap.String("application_id", event.ApplicationID),
		zap.String("event_type", string(event.Type)))
}

func (n *NotificationService) sendWebhookNotificationStub(ctx context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookNotificationStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("application_id", event.ApplicationID),
		zap.String("event_type", string(event.Type)))
}
