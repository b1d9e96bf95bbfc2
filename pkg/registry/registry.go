package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/aretw0/ckbfx/pkg/param"
	"github.com/aretw0/ckbfx/pkg/protocol"
)

// ErrUnknownEffect is returned by New for a name nobody registered.
var ErrUnknownEffect = errors.New("unknown effect")

// Factory builds an effect bound to the session's parameters. It must look
// its parameters up by name and fail if a required one is missing.
type Factory func(params *param.Set) (protocol.Effect, error)

// Registry maps effect names, as used in manifests, to factories.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
	}
}

// Register adds a factory to the registry.
// If a factory with the same name exists, it is overwritten.
func (r *Registry) Register(name string, fn Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = fn
}

// New looks a factory up by name and builds the effect.
func (r *Registry) New(name string, params *param.Set) (protocol.Effect, error) {
	r.mu.RLock()
	fn, ok := r.factories[name]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEffect, name)
	}

	return fn(params)
}

// Names lists the registered effects in lexical order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
