package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/osse101/PluginKit_Go/internal/config"
	"github.com/osse101/PluginKit_Go/internal/event"
	"github.com/osse101/PluginKit_Go/internal/handler"
	"github.com/osse101/PluginKit_Go/internal/itemstr"
	"github.com/osse101/PluginKit_Go/internal/logger"
	"github.com/osse101/PluginKit_Go/internal/registry"
	"github.com/osse101/PluginKit_Go/internal/scheduler"
	"github.com/osse101/PluginKit_Go/internal/updatecheck"
	"github.com/osse101/PluginKit_Go/internal/worker"
)

// Services is everything the HTTP surface and the shutdown path need
type Services struct {
	Registry  *registry.Registry
	Pool      *worker.Pool
	Scheduler *scheduler.Scheduler
	Queue     *scheduler.TickQueue
	Items     *itemstr.Engine
	Updates   *updatecheck.Checker
}

// BuildServices loads the registry and wires the engine and the checker.
// The worker pool is started; nothing is scheduled yet.
func BuildServices(cfg *config.Config, bus event.Publisher) (*Services, error) {
	reg, err := registry.Load(cfg.RegistryPath)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLoadRegistry, err)
	}
	slog.Info(LogMsgRegistryLoaded,
		"version", reg.Version(),
		"materials", len(reg.Materials()),
		"path", cfg.RegistryPath)

	pool := worker.NewPool(cfg.WorkerCount, cfg.WorkerQueueSize)
	pool.Start()
	slog.Info(LogMsgWorkersStarted, "workers", cfg.WorkerCount, "queue_size", cfg.WorkerQueueSize)

	queue := scheduler.NewTickQueue()

	engine, err := itemstr.New(reg,
		itemstr.WithLogger(logger.Component("itemstr")),
		itemstr.WithQueue(queue),
		itemstr.WithPublisher(bus),
		itemstr.WithCacheSize(cfg.ItemCacheSize),
		itemstr.WithPlaceholderMaterial(cfg.PlaceholderMaterial),
	)
	if err != nil {
		pool.Stop()
		return nil, fmt.Errorf(ErrMsgCreateEngine, err)
	}
	slog.Info(LogMsgEngineReady, "cache_size", cfg.ItemCacheSize, "placeholder_material", cfg.PlaceholderMaterial)

	checker, err := updatecheck.New(updatecheck.Options{
		PluginName:     cfg.PluginName,
		ProjectID:      cfg.CurseProjectID,
		BukkitDevSlug:  cfg.BukkitDevSlug,
		CurrentVersion: cfg.PluginVersion,
		Enabled:        cfg.UpdateCheckEnabled,
		APIBaseURL:     cfg.UpdateAPIURL,
		Permission:     cfg.UpdatePermission,
		Period:         cfg.UpdateCheckPeriod,
		Publisher:      bus,
		Logger:         logger.Component("updatecheck"),
	})
	if err != nil {
		pool.Stop()
		return nil, fmt.Errorf(ErrMsgCreateChecker, err)
	}
	slog.Info(LogMsgCheckerReady, "enabled", checker.Enabled(), "url", checker.URL())

	return &Services{
		Registry:  reg,
		Pool:      pool,
		Scheduler: scheduler.New(pool),
		Queue:     queue,
		Items:     engine,
		Updates:   checker,
	}, nil
}

// Start runs the tick queue and the periodic update check until ctx ends.
// A disabled checker is logged, not treated as a failure.
func (s *Services) Start(ctx context.Context) {
	go s.Queue.Run(ctx)

	if err := s.Updates.Start(ctx, s.Scheduler); err != nil {
		slog.Info(LogMsgCheckerNotStarted, "reason", err)
	}
}

// ReadinessChecks reports whether the registry is loaded and the pool accepts work
func (s *Services) ReadinessChecks() map[string]handler.HealthChecker {
	return map[string]handler.HealthChecker{
		ComponentRegistry: handler.HealthCheckFunc(func(context.Context) error {
			if len(s.Registry.Materials()) == 0 {
				return errors.New("registry has no materials")
			}
			return nil
		}),
		ComponentWorkers: handler.HealthCheckFunc(func(context.Context) error {
			if s.Pool.Stopped() {
				return errors.New("worker pool stopped")
			}
			return nil
		}),
	}
}
