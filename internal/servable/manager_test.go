package servable

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vineetp6/serving/internal/config"
	"github.com/vineetp6/serving/internal/runtime"
)

// --- Mock types ---

type stubLoader struct {
	provider string
	model    runtime.SavedModel
	err      error
}

func (l *stubLoader) Provider() string {
	return l.provider
}

func (l *stubLoader) Load(ctx context.Context, path string) (runtime.SavedModel, error) {
	if l.err != nil {
		return nil, l.err
	}
	return l.model, nil
}

// --- Tests ---

func TestManager_LoadServablesFromConfig(t *testing.T) {
	loaders := runtime.NewRegistry()
	require.NoError(t, loaders.Register(&stubLoader{provider: "tfrt", model: new(mockSavedModel)}))

	manager := NewManager(loaders, nil)

	cfg := &config.Config{
		Servables: map[string]config.ServableConfig{
			"half_plus_two": {Version: 123, Provider: "tfrt", Path: "models/half_plus_two/123"},
			"orphan":        {Version: 1, Provider: "onnx", Path: "models/orphan/1"},
		},
	}

	require.NoError(t, manager.LoadServablesFromConfig(context.Background(), cfg))

	s, ok := manager.Registry().Get("half_plus_two")
	require.True(t, ok)
	assert.Equal(t, "half_plus_two", s.Name())
	assert.Equal(t, int64(123), s.Version())

	// No loader for its provider, so it never reached the registry.
	_, ok = manager.Registry().Get("orphan")
	assert.False(t, ok)
}

func TestManager_ReloadDropsRemovedServables(t *testing.T) {
	loaders := runtime.NewRegistry()
	require.NoError(t, loaders.Register(&stubLoader{provider: "tfrt", model: new(mockSavedModel)}))

	manager := NewManager(loaders, nil)

	first := &config.Config{
		Servables: map[string]config.ServableConfig{
			"a": {Version: 1, Provider: "tfrt", Path: "models/a/1"},
			"b": {Version: 1, Provider: "tfrt", Path: "models/b/1"},
		},
	}
	require.NoError(t, manager.LoadServablesFromConfig(context.Background(), first))
	assert.Len(t, manager.Registry().List(), 2)

	second := &config.Config{
		Servables: map[string]config.ServableConfig{
			"a": {Version: 2, Provider: "tfrt", Path: "models/a/2"},
		},
	}
	require.NoError(t, manager.LoadServablesFromConfig(context.Background(), second))

	servables := manager.Registry().List()
	require.Len(t, servables, 1)
	assert.Equal(t, "a", servables[0].Name())
	assert.Equal(t, int64(2), servables[0].Version())
}
