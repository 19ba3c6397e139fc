package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/PluginKit_Go/internal/bootstrap"
	"github.com/osse101/PluginKit_Go/internal/config"
	"github.com/osse101/PluginKit_Go/internal/server"
)

func main() {
	if err := run(); err != nil {
		slog.Error("PluginKit exited with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	// after Load so values from .env are visible
	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	bootstrap.SetupLogger(cfg)
	for _, w := range warnings {
		slog.Warn(bootstrap.LogMsgConfigWarning, "warning", w)
	}

	bus := bootstrap.InitializeEventSystem()
	hub := bootstrap.InitializeEventStream(bus)
	svcs, err := bootstrap.BuildServices(cfg, bus)
	if err != nil {
		hub.Stop()
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	svcs.Start(ctx)

	srv := server.NewServer(server.Options{
		Addr:           cfg.Addr(),
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		RateLimit:      cfg.RateLimit,
	}, server.Dependencies{
		Items:           svcs.Items,
		Updates:         svcs.Updates,
		Readiness:       svcs.ReadinessChecks(),
		Events:          hub,
		Plugin:          cfg.PluginName,
		PluginVersion:   cfg.PluginVersion,
		RegistryVersion: svcs.Registry.Version(),
	})

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(stop)

	select {
	case sig := <-stop:
		slog.Info("Received shutdown signal", "signal", sig.String())
	case err = <-serveErr:
		if err != nil {
			slog.Error("Server failed", "error", err)
		}
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Events:   hub,
		Server:   srv,
		Services: svcs,
		Cancel:   cancel,
	})
	return err
}
