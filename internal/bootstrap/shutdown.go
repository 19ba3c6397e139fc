package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/PluginKit_Go/internal/server"
	"github.com/osse101/PluginKit_Go/internal/sse"
)

// ShutdownComponents holds all components that need graceful shutdown
type ShutdownComponents struct {
	Server   *server.Server
	Events   *sse.Hub
	Services *Services
	// Cancel stops the tick queue and the update checker's periodic task
	Cancel context.CancelFunc
}

// GracefulShutdown closes open event streams, stops the HTTP server so no new
// work arrives, then the background tasks, then the workers. Errors are
// logged and the sequence continues.
func GracefulShutdown(ctx context.Context, c ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	// streams never finish on their own and would hold Shutdown until ctx expires
	if c.Events != nil {
		c.Events.Stop()
	}

	if c.Server != nil {
		if err := c.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if c.Cancel != nil {
		c.Cancel()
	}

	if c.Services != nil {
		slog.Info(LogMsgStoppingScheduler, "active", c.Services.Scheduler.Active())
		c.Services.Scheduler.Stop()

		slog.Info(LogMsgStoppingWorkers)
		c.Services.Pool.Stop()
	}

	slog.Info(LogMsgServerStopped)
}
