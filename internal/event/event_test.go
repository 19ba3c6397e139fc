package event

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryBus_PublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	handled := false

	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		assert.Equal(t, eventType, event.Type)
		assert.Equal(t, "payload", event.Payload)
		handled = true
		return nil
	})

	err := bus.Publish(context.Background(), Event{Version: "1.0", Type: eventType, Payload: "payload"})
	require.NoError(t, err)
	assert.True(t, handled)
}

func TestMemoryBus_PublishMultipleHandlers(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	count := 0

	handler := func(ctx context.Context, event Event) error {
		count++
		return nil
	}
	bus.Subscribe(eventType, handler)
	bus.Subscribe(eventType, handler)

	require.NoError(t, bus.Publish(context.Background(), Event{Version: "1.0", Type: eventType}))
	assert.Equal(t, 2, count)
}

func TestMemoryBus_PublishNoSubscribers(t *testing.T) {
	bus := NewMemoryBus()
	assert.NoError(t, bus.Publish(context.Background(), Event{Type: "nobody"}))
}

func TestMemoryBus_PublishError(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")

	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		return errors.New("handler error")
	})

	err := bus.Publish(context.Background(), Event{Version: "1.0", Type: eventType})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "handler error")
}

func TestNewUpdateCheckedEvent(t *testing.T) {
	evt := NewUpdateCheckedEvent("Kit", "1.0", "1.1", true)
	assert.Equal(t, UpdateAvailable, evt.Type)
	payload, ok := evt.Payload.(UpdateCheckedPayloadV1)
	require.True(t, ok)
	assert.Equal(t, "1.1", payload.LastVersion)
	assert.True(t, payload.UpdateRequired)

	evt = NewUpdateCheckedEvent("Kit", "1.1", "1.1", false)
	assert.Equal(t, UpdateChecked, evt.Type)
	assert.Equal(t, EventSchemaVersion, evt.Version)
}

func TestGetMetadataValue(t *testing.T) {
	evt := Event{Metadata: map[string]interface{}{"source": "test"}}
	assert.Equal(t, "test", evt.GetMetadataValue("source"))
	assert.Nil(t, Event{}.GetMetadataValue("source"))
}
