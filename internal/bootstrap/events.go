package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/PluginKit_Go/internal/event"
	"github.com/osse101/PluginKit_Go/internal/metrics"
	"github.com/osse101/PluginKit_Go/internal/sse"
)

// InitializeEventSystem creates the in-process bus and attaches the metrics
// collector and the update log subscriber
func InitializeEventSystem() *event.MemoryBus {
	bus := event.NewMemoryBus()

	metrics.NewEventMetricsCollector().Register(bus)
	slog.Info(LogMsgMetricsCollectorRegistered)

	bus.Subscribe(event.UpdateAvailable, logUpdateAvailable)

	slog.Info(LogMsgEventSystemInitialized)
	return bus
}

func logUpdateAvailable(ctx context.Context, evt event.Event) error {
	if p, ok := evt.Payload.(event.UpdateCheckedPayloadV1); ok {
		slog.InfoContext(ctx, LogMsgUpdateAvailable,
			"plugin", p.Plugin,
			"current", p.CurrentVersion,
			"latest", p.LastVersion)
	}
	return nil
}

// InitializeEventStream starts the stream hub and forwards bus events to it
func InitializeEventStream(bus event.Bus) *sse.Hub {
	hub := sse.NewHub()
	hub.Start()
	sse.NewSubscriber(hub, bus).Subscribe()
	return hub
}
