package copy

import (
	"fmt"
	"sync"

	"server/internal/domain"
)

// Registry is a named lookup of copy providers. It is an explicitly
// constructed instance owned by the composition root, not process-global
// state; tests build their own. Registration is expected once at startup,
// last writer wins.
type Registry struct {
	mu        sync.RWMutex
	providers map[string]Provider
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{providers: make(map[string]Provider)}
}

// Register stores a provider under name, overwriting any prior entry.
func (r *Registry) Register(name string, p Provider) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.providers[name] = p
}

// Resolve returns the provider registered under name, or an error naming
// the missing identifier. No default is ever substituted.
func (r *Registry) Resolve(name string) (Provider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.providers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrProviderNotRegistered, name)
	}
	return p, nil
}

// Clear removes every registration. Test and reset hook.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.providers = make(map[string]Provider)
}
