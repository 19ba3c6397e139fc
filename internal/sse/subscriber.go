package sse

import (
	"context"
	"log/slog"

	"github.com/osse101/PluginKit_Go/internal/event"
)

// Subscriber forwards kit events from the in-process bus to the hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{hub: hub, bus: bus}
}

// streamed maps bus event types to stream event types
var streamed = map[event.Type]string{
	event.UpdateChecked:   EventTypeUpdateChecked,
	event.UpdateAvailable: EventTypeUpdateAvailable,
	event.ItemsRemoved:    EventTypeItemsRemoved,
	event.ItemsDropped:    EventTypeItemsDropped,
}

// Subscribe registers the forwarding handler for every streamed event type
func (s *Subscriber) Subscribe() {
	types := make([]string, 0, len(streamed))
	for busType := range streamed {
		s.bus.Subscribe(busType, s.forward)
		types = append(types, string(busType))
	}
	slog.Info(LogMsgSubscriberReady, "types", types)
}

func (s *Subscriber) forward(_ context.Context, evt event.Event) error {
	streamType, ok := streamed[evt.Type]
	if !ok {
		return nil
	}
	s.hub.Broadcast(streamType, evt.Payload)
	slog.Debug(LogMsgEventBroadcast, "event_type", streamType, "clients", s.hub.ClientCount())
	return nil
}
