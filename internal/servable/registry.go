package servable

import "sync"

// Registry stores constructed servables by name.
type Registry struct {
	servables map[string]*Servable
	mu        sync.RWMutex
}

// NewRegistry creates a new servable registry.
func NewRegistry() *Registry {
	return &Registry{
		servables: make(map[string]*Servable),
	}
}

// Set adds or replaces the servable with the given name.
func (r *Registry) Set(s *Servable) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.servables[s.Name()] = s
}

// Get returns the servable with the given name.
func (r *Registry) Get(name string) (*Servable, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.servables[name]
	return s, ok
}

// List returns all servables.
func (r *Registry) List() []*Servable {
	r.mu.RLock()
	defer r.mu.RUnlock()

	servables := make([]*Servable, 0, len(r.servables))
	for _, s := range r.servables {
		servables = append(servables, s)
	}

	return servables
}

// Delete removes the servable with the given name.
func (r *Registry) Delete(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.servables, name)
}
