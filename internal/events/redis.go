package events

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const channelPrefix = "events:"

// redisMirror decorates a Dispatcher, mirroring every published event onto a
// Redis channel ("events:<type>") for out-of-process consumers such as a
// websocket gateway. Mirror failures are logged and never fail the publish.
type redisMirror struct {
	inner  Dispatcher
	client *redis.Client
	logger *zap.Logger
}

// NewRedisMirror wraps inner with Redis mirroring. A nil client returns inner
// unchanged.
func NewRedisMirror(inner Dispatcher, client *redis.Client, logger *zap.Logger) Dispatcher {
	if client == nil {
		return inner
	}
	return &redisMirror{inner: inner, client: client, logger: logger}
}

func (m *redisMirror) Publish(ctx context.Context, event Event) error {
	if payload, err := json.Marshal(event); err != nil {
		m.logger.Warn("marshal event for redis mirror", zap.Error(err))
	} else if err := m.client.Publish(ctx, channelPrefix+string(event.Type), payload).Err(); err != nil {
		m.logger.Warn("mirror event to redis",
			zap.String("event_type", string(event.Type)), zap.Error(err))
	}
	return m.inner.Publish(ctx, event)
}

func (m *redisMirror) Subscribe(eventType EventType, handler EventHandler) {
	m.inner.Subscribe(eventType, handler)
}
