package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryDispatcher(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	var seen []Event
	dispatcher.Subscribe(EventApplicationSubmitted, func(_ context.Context, event Event) error {
		seen = append(seen, event)
		return nil
	})

	err := dispatcher.Publish(context.Background(), Event{ID: "evt-1", Type: EventApplicationSubmitted})
	require.NoError(t, err)
	err = dispatcher.Publish(context.Background(), Event{ID: "evt-2", Type: EventApplicationStatusChanged})
	require.NoError(t, err)

	require.Len(t, seen, 1)
	assert.Equal(t, "evt-1", seen[0].ID)
}

func TestPublishContinuesPastFailingHandler(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	var calls int
	dispatcher.Subscribe(EventPostingExpired, func(context.Context, Event) error {
		calls++
		return errors.New("boom")
	})
	dispatcher.Subscribe(EventPostingExpired, func(context.Context, Event) error {
		calls++
		return nil
	})

	err := dispatcher.Publish(context.Background(), Event{Type: EventPostingExpired})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestPublishWithoutSubscribers(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()
	assert.NoError(t, dispatcher.Publish(context.Background(), Event{Type: EventChatMessageSent}))
}
