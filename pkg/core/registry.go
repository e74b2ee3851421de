package core

import (
	"fmt"
	"sort"
	"sync"

	"github.com/go-drift/viewcore/pkg/uiprovider"
)

// View kinds the bundled toolkits register factories for.
const (
	KindWindow = "window"
	KindColumn = "column"
	KindLabel  = "label"
)

// Factory creates the core for one kind of view. It creates the native
// widget and calls New or NewContainer with the given provider and options.
type Factory func(outer OuterView, provider uiprovider.Provider, opts ...Option) (ViewCore, error)

// Registry maps view kinds to core factories and carries the provider and
// options every created core receives.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
	provider  uiprovider.Provider
	opts      []Option
}

// NewRegistry returns an empty registry whose cores use provider.
func NewRegistry(provider uiprovider.Provider, opts ...Option) *Registry {
	return &Registry{
		factories: make(map[string]Factory),
		provider:  provider,
		opts:      opts,
	}
}

// RegisterFactory registers the factory for kind, replacing any previous
// one.
func (r *Registry) RegisterFactory(kind string, factory Factory) {
	r.mu.Lock()
	r.factories[kind] = factory
	r.mu.Unlock()
}

// Provider returns the unit conversion provider handed to factories.
func (r *Registry) Provider() uiprovider.Provider {
	return r.provider
}

// Kinds returns the registered kinds in sorted order.
func (r *Registry) Kinds() []string {
	r.mu.RLock()
	kinds := make([]string, 0, len(r.factories))
	for k := range r.factories {
		kinds = append(kinds, k)
	}
	r.mu.RUnlock()
	sort.Strings(kinds)
	return kinds
}

// Create creates the core for a view of the given kind. Programming errors
// raised by the core constructor propagate as panics.
func (r *Registry) Create(kind string, outer OuterView) (ViewCore, error) {
	r.mu.RLock()
	factory, ok := r.factories[kind]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrViewTypeNotFound, kind)
	}
	return factory(outer, r.provider, r.opts...)
}
