package runtime

import (
	"context"
	"sync"
)

// Loader opens a saved model from disk for a specific runtime implementation.
type Loader interface {
	// Provider returns the loader identifier used in servable configuration.
	Provider() string

	// Load opens the model at path and returns an executable handle.
	Load(ctx context.Context, path string) (SavedModel, error)
}

// Registry manages runtime loaders by provider name.
type Registry struct {
	loaders map[string]Loader
	mu      sync.RWMutex
}

// NewRegistry creates a new loader registry.
func NewRegistry() *Registry {
	return &Registry{
		loaders: make(map[string]Loader),
	}
}

// Register adds a loader to the registry.
func (r *Registry) Register(l Loader) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.loaders[l.Provider()]; exists {
		return ErrAlreadyRegistered
	}

	r.loaders[l.Provider()] = l
	return nil
}

// Get retrieves a loader by provider name.
func (r *Registry) Get(provider string) (Loader, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.loaders[provider]
	return l, ok
}

// Providers returns the names of all registered loaders.
func (r *Registry) Providers() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	providers := make([]string, 0, len(r.loaders))
	for name := range r.loaders {
		providers = append(providers, name)
	}

	return providers
}
