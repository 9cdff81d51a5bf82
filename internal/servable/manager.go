package servable

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/vineetp6/serving/internal/config"
	"github.com/vineetp6/serving/internal/runtime"
	"github.com/vineetp6/serving/internal/xfs"
)

// Manager builds servables from configuration and keeps the registry in
// step with it across reloads.
type Manager struct {
	registry *Registry
	loaders  *runtime.Registry
	pools    runtime.ThreadPoolFactory
	mu       sync.RWMutex
}

// NewManager creates a manager. pools may be nil; servables then run on the
// runtime's default pools.
func NewManager(loaders *runtime.Registry, pools runtime.ThreadPoolFactory) *Manager {
	return &Manager{
		registry: NewRegistry(),
		loaders:  loaders,
		pools:    pools,
	}
}

// Registry returns the servable registry.
func (m *Manager) Registry() *Registry {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.registry
}

// LoadServablesFromConfig loads models named by the config and updates the
// registry. Servables dropped from the config are removed; servables whose
// provider has no registered loader are skipped with a warning.
func (m *Manager) LoadServablesFromConfig(ctx context.Context, cfg *config.Config) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	loadedKeys := make(map[string]bool)
	for name, sc := range cfg.Servables {
		loader, ok := m.loaders.Get(sc.Provider)
		if !ok {
			slog.Warn("No runtime loader registered for servable", "servable", name, "provider", sc.Provider)
			continue
		}

		model, err := loader.Load(ctx, xfs.ExpandTilde(sc.Path))
		if err != nil {
			return fmt.Errorf("failed to load model for servable %s: %w", name, err)
		}

		m.registry.Set(New(name, sc.Version, sc, model, m.pools))
		loadedKeys[name] = true

		slog.Info("Servable loaded into registry", "servable", name, "version", sc.Version, "provider", sc.Provider)
	}

	// Drop servables no longer present in the config (if any)
	for _, s := range m.registry.List() {
		if !loadedKeys[s.Name()] {
			m.registry.Delete(s.Name())
			slog.Info("Servable unloaded", "servable", s.Name(), "version", s.Version())
		}
	}

	return nil
}
