package metrics

import (
	"context"

	"github.com/osse101/PluginKit_Go/internal/event"
	"github.com/osse101/PluginKit_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) {
	eventTypes := []event.Type{
		event.UpdateChecked,
		event.UpdateAvailable,
		event.ItemsRemoved,
		event.ItemsDropped,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch payload := evt.Payload.(type) {
	case event.UpdateCheckedPayloadV1:
		if payload.UpdateRequired {
			UpdateAvailable.Set(1)
		} else {
			UpdateAvailable.Set(0)
		}
	case event.ItemsPayloadV1:
		switch evt.Type {
		case event.ItemsRemoved:
			ItemsRemoved.Add(float64(payload.Amount))
		case event.ItemsDropped:
			ItemsDropped.WithLabelValues(payload.Material).Add(float64(payload.Amount))
		}
	default:
		log.Debug(LogMsgUnexpectedPayload, "type", evt.Type)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
