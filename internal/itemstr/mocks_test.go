package itemstr

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PluginKit_Go/internal/event"
	"github.com/osse101/PluginKit_Go/internal/registry"
)

// MockPublisher is a mock implementation of event.Publisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, evt event.Event) error {
	args := m.Called(ctx, evt)
	return args.Error(0)
}

func newTestEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	reg, err := registry.Default()
	require.NoError(t, err)

	opts = append([]Option{WithRand(rand.New(rand.NewSource(42)))}, opts...)
	e, err := New(reg, opts...)
	require.NoError(t, err)
	return e
}
