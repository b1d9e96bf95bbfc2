package ckbfx

import (
	"github.com/aretw0/ckbfx/pkg/effect"
	"github.com/aretw0/ckbfx/pkg/effects/gradient"
	"github.com/aretw0/ckbfx/pkg/manifest"
	"github.com/aretw0/ckbfx/pkg/registry"
)

// Version of the ckbfx module.
const Version = "0.1.0"

// Builtins returns a registry holding the effects shipped with ckbfx.
func Builtins() *registry.Registry {
	reg := registry.NewRegistry()
	gradient.Register(reg)
	return reg
}

type loadOptions struct {
	registry *registry.Registry
}

// Option configures Load.
type Option func(*loadOptions)

// WithRegistry resolves effects through reg instead of Builtins.
func WithRegistry(reg *registry.Registry) Option {
	return func(o *loadOptions) {
		o.registry = reg
	}
}

// Load reads the manifest at path and binds it to its implementation.
func Load(path string, opts ...Option) (*effect.Definition, error) {
	o := loadOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.registry == nil {
		o.registry = Builtins()
	}

	m, err := manifest.Load(path)
	if err != nil {
		return nil, err
	}
	return m.Definition(o.registry)
}
