package bootstrap

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PluginKit_Go/internal/config"
	"github.com/osse101/PluginKit_Go/internal/event"
	"github.com/osse101/PluginKit_Go/internal/server"
	"github.com/osse101/PluginKit_Go/internal/sse"
	"github.com/osse101/PluginKit_Go/internal/testing/leaktest"
)

func testConfig() *config.Config {
	return &config.Config{
		Port:            8080,
		LogLevel:        "info",
		LogFormat:       "json",
		Environment:     "test",
		PluginName:      "Kit",
		PluginVersion:   "1.0",
		BukkitDevSlug:   "kit",
		ItemCacheSize:   16,
		WorkerCount:     1,
		WorkerQueueSize: 4,
		ShutdownTimeout: time.Second,
	}
}

func TestBuildServices(t *testing.T) {
	t.Run("embedded registry and disabled checker", func(t *testing.T) {
		svcs, err := BuildServices(testConfig(), event.NewMemoryBus())
		require.NoError(t, err)
		t.Cleanup(svcs.Pool.Stop)

		assert.NotEmpty(t, svcs.Registry.Materials())
		assert.False(t, svcs.Updates.Enabled())

		item, ok := svcs.Items.Parse("DIAMOND*2")
		require.True(t, ok)
		assert.Equal(t, 2, item.Amount)
	})

	t.Run("missing registry file", func(t *testing.T) {
		cfg := testConfig()
		cfg.RegistryPath = "/does/not/exist.json"

		_, err := BuildServices(cfg, event.NewMemoryBus())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load material registry")
	})

	t.Run("invalid checker options", func(t *testing.T) {
		cfg := testConfig()
		cfg.CurseProjectID = "not-numeric"

		_, err := BuildServices(cfg, event.NewMemoryBus())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create update checker")
	})
}

func TestServices_ReadinessChecks(t *testing.T) {
	svcs, err := BuildServices(testConfig(), event.NewMemoryBus())
	require.NoError(t, err)

	checks := svcs.ReadinessChecks()
	require.Contains(t, checks, ComponentRegistry)
	require.Contains(t, checks, ComponentWorkers)

	ctx := context.Background()
	assert.NoError(t, checks[ComponentRegistry].CheckHealth(ctx))
	assert.NoError(t, checks[ComponentWorkers].CheckHealth(ctx))

	svcs.Pool.Stop()
	assert.Error(t, checks[ComponentWorkers].CheckHealth(ctx))
}

func TestServices_StartRunsFirstCheck(t *testing.T) {
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"name":"Kit v1.0"},{"name":"Kit v2.0"}]`))
	}))
	t.Cleanup(api.Close)

	cfg := testConfig()
	cfg.UpdateCheckEnabled = true
	cfg.CurseProjectID = "12345"
	cfg.UpdateAPIURL = api.URL

	bus := event.NewMemoryBus()
	available := make(chan event.Event, 1)
	bus.Subscribe(event.UpdateAvailable, func(_ context.Context, evt event.Event) error {
		select {
		case available <- evt:
		default:
		}
		return nil
	})

	svcs, err := BuildServices(cfg, bus)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	svcs.Start(ctx)
	t.Cleanup(func() { GracefulShutdown(context.Background(), ShutdownComponents{Services: svcs, Cancel: cancel}) })

	select {
	case evt := <-available:
		payload, ok := evt.Payload.(event.UpdateCheckedPayloadV1)
		require.True(t, ok)
		assert.Equal(t, "2.0", payload.LastVersion)
	case <-time.After(2 * time.Second):
		t.Fatal("first update check did not run")
	}
	assert.True(t, svcs.Updates.IsUpdateRequired())
}

func TestGracefulShutdown(t *testing.T) {
	leaktest.CheckNoGoroutineLeak(t, func() {
		svcs, err := BuildServices(testConfig(), event.NewMemoryBus())
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		svcs.Start(ctx)
		hub := InitializeEventStream(event.NewMemoryBus())

		srv := server.NewServer(server.Options{Addr: ":0"}, server.Dependencies{
			Items:     svcs.Items,
			Updates:   svcs.Updates,
			Readiness: svcs.ReadinessChecks(),
			Events:    hub,
		})

		GracefulShutdown(context.Background(), ShutdownComponents{Server: srv, Events: hub, Services: svcs, Cancel: cancel})

		assert.True(t, svcs.Pool.Stopped())
		assert.Equal(t, 0, svcs.Scheduler.Active())
	})
}

func TestGracefulShutdown_NilComponents(t *testing.T) {
	assert.NotPanics(t, func() {
		GracefulShutdown(context.Background(), ShutdownComponents{})
	})
}

func TestInitializeEventSystem(t *testing.T) {
	bus := InitializeEventSystem()
	ctx := context.Background()

	assert.NoError(t, bus.Publish(ctx, event.NewItemsRemovedEvent("Steve", "STONE*2", 2)))
	assert.NoError(t, bus.Publish(ctx, event.NewUpdateCheckedEvent("Kit", "1.0", "1.1", true)))
}

func TestInitializeEventStream(t *testing.T) {
	bus := event.NewMemoryBus()
	hub := InitializeEventStream(bus)
	t.Cleanup(hub.Stop)

	client := hub.Register(nil)
	require.NotNil(t, client)
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)

	require.NoError(t, bus.Publish(context.Background(), event.NewItemsDroppedEvent("Steve", "STONE", 4)))

	select {
	case evt := <-client.EventChannel:
		assert.Equal(t, sse.EventTypeItemsDropped, evt.Type)
	case <-time.After(time.Second):
		t.Fatal("bus event was not streamed")
	}
}

func TestSetupLoggerWithWriter(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	cfg := testConfig()
	cfg.LogLevel = "debug"

	SetupLoggerWithWriter(cfg, &buf)

	out := buf.String()
	assert.Contains(t, out, `"msg":"`+LogMsgStarting+`"`)
	assert.Contains(t, out, `"plugin":"Kit"`)
	assert.Contains(t, out, `"api_key_set":false`)
	assert.NotContains(t, out, `"source"`, "source locations are only added in dev")
}
