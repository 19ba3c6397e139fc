package sse

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PluginKit_Go/internal/testing/leaktest"
)

func startHub(t *testing.T) *Hub {
	t.Helper()
	hub := NewHub()
	hub.Start()
	t.Cleanup(hub.Stop)
	return hub
}

func register(t *testing.T, hub *Hub, types ...string) *Client {
	t.Helper()
	want := hub.ClientCount() + 1
	client := hub.Register(types)
	require.NotNil(t, client)
	require.Eventually(t, func() bool { return hub.ClientCount() == want }, time.Second, 5*time.Millisecond)
	return client
}

func receive(t *testing.T, c *Client) Event {
	t.Helper()
	select {
	case evt, ok := <-c.EventChannel:
		require.True(t, ok, "channel closed")
		return evt
	case <-time.After(time.Second):
		t.Fatal("no event received")
		return Event{}
	}
}

func TestHub_BroadcastReachesAllClients(t *testing.T) {
	hub := startHub(t)
	a := register(t, hub)
	b := register(t, hub)

	hub.Broadcast(EventTypeItemsDropped, map[string]int{"amount": 3})

	for _, c := range []*Client{a, b} {
		evt := receive(t, c)
		assert.Equal(t, EventTypeItemsDropped, evt.Type)
		assert.NotEmpty(t, evt.ID)
		assert.NotZero(t, evt.Timestamp)
	}
}

func TestHub_Filter(t *testing.T) {
	hub := startHub(t)
	updates := register(t, hub, EventTypeUpdateAvailable, " ", "")
	all := register(t, hub)

	assert.Equal(t, map[string]bool{EventTypeUpdateAvailable: true}, updates.EventFilter)
	assert.Nil(t, all.EventFilter)

	hub.Broadcast(EventTypeItemsRemoved, nil)
	hub.Broadcast(EventTypeUpdateAvailable, nil)

	assert.Equal(t, EventTypeUpdateAvailable, receive(t, updates).Type)
	assert.Equal(t, EventTypeItemsRemoved, receive(t, all).Type)
	assert.Equal(t, EventTypeUpdateAvailable, receive(t, all).Type)
}

func TestHub_Unregister(t *testing.T) {
	hub := startHub(t)
	c := register(t, hub)

	hub.Unregister(c.ID)

	require.Eventually(t, func() bool { return hub.ClientCount() == 0 }, time.Second, 5*time.Millisecond)
	_, ok := <-c.EventChannel
	assert.False(t, ok)
}

func TestHub_SlowClientDoesNotBlock(t *testing.T) {
	hub := startHub(t)
	slow := register(t, hub)

	for i := 0; i < ClientEventBuffer*2; i++ {
		hub.Broadcast(EventTypeItemsDropped, i)
	}
	require.Eventually(t, func() bool { return len(hub.broadcast) == 0 }, time.Second, 5*time.Millisecond)

	fast := register(t, hub)
	hub.Broadcast(EventTypeUpdateChecked, nil)
	assert.Equal(t, EventTypeUpdateChecked, receive(t, fast).Type)
	assert.Len(t, slow.EventChannel, ClientEventBuffer)
}

func TestHub_Stop(t *testing.T) {
	leaktest.CheckNoGoroutineLeak(t, func() {
		hub := NewHub()
		hub.Start()
		c := register(t, hub)

		hub.Stop()
		hub.Stop()

		_, ok := <-c.EventChannel
		assert.False(t, ok)
		assert.Equal(t, 0, hub.ClientCount())
		assert.Nil(t, hub.Register(nil))
		assert.NotPanics(t, func() { hub.Unregister(c.ID) })
	})
}

func TestFormatSSEMessage(t *testing.T) {
	tests := []struct {
		name    string
		event   Event
		wantID  bool
		payload string
	}{
		{
			name:    "with id",
			event:   Event{ID: "abc", Type: EventTypeItemsRemoved, Timestamp: 1, Payload: map[string]int{"amount": 2}},
			wantID:  true,
			payload: `"payload":{"amount":2}`,
		},
		{
			name:    "keepalive has no id",
			event:   Event{Type: EventTypeKeepalive, Timestamp: 1},
			payload: `"payload":null`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, err := FormatSSEMessage(tt.event)
			require.NoError(t, err)

			s := string(msg)
			assert.True(t, strings.HasSuffix(s, "\n\n"))
			assert.Contains(t, s, "event: "+tt.event.Type+"\n")
			assert.Contains(t, s, tt.payload)
			assert.Equal(t, tt.wantID, strings.HasPrefix(s, "id: "+tt.event.ID+"\n"))
		})
	}
}

func TestFormatSSEMessage_UnencodablePayload(t *testing.T) {
	_, err := FormatSSEMessage(Event{Type: "x", Payload: make(chan int)})
	assert.Error(t, err)
}
