// Package gradient is a keypress driven effect: pressing a key plays the
// gradient forward on it, releasing plays it back.
package gradient

import (
	_ "embed"
	"fmt"

	"github.com/aretw0/ckbfx/pkg/effect"
	"github.com/aretw0/ckbfx/pkg/manifest"
	"github.com/aretw0/ckbfx/pkg/param"
	"github.com/aretw0/ckbfx/pkg/protocol"
	"github.com/aretw0/ckbfx/pkg/registry"
)

// Name is the registry name used by manifests.
const Name = "gradient"

// ParamGradient is the parameter the effect samples.
const ParamGradient = "gradient"

//go:embed gradient.yaml
var manifestYAML []byte

type animation struct {
	target float64
	phase  float64
}

// Effect animates each pressed key along the gradient parameter.
type Effect struct {
	protocol.Base

	gradient   *param.AGradient
	animations map[string]*animation
}

// New binds an Effect to the "gradient" parameter of params.
func New(params *param.Set) (protocol.Effect, error) {
	p, ok := params.Get(ParamGradient)
	if !ok {
		return nil, fmt.Errorf("gradient effect: missing %q parameter", ParamGradient)
	}
	g, ok := p.(*param.AGradient)
	if !ok {
		return nil, fmt.Errorf("gradient effect: %q must be an agradient, got %s", ParamGradient, p.Kind())
	}
	return &Effect{gradient: g, animations: make(map[string]*animation)}, nil
}

// Register makes the effect available to manifests.
func Register(reg *registry.Registry) {
	reg.Register(Name, New)
}

// Manifest returns the bundled manifest.
func Manifest() (*manifest.Manifest, error) {
	return manifest.Parse(manifestYAML, manifest.FormatYAML)
}

// Definition builds the bundled effect.
func Definition() (*effect.Definition, error) {
	m, err := Manifest()
	if err != nil {
		return nil, err
	}
	reg := registry.NewRegistry()
	Register(reg)
	return m.Definition(reg)
}

func (e *Effect) Keypress(key *protocol.Key, pressed bool) {
	anim, ok := e.animations[key.Name]
	if !ok {
		anim = &animation{}
		e.animations[key.Name] = anim
	}
	if pressed {
		anim.target = 1
	} else {
		anim.target = 0
	}
}

// AdvanceTime moves every animation toward its target. An animation that
// has played back to the start is dropped.
func (e *Effect) AdvanceTime(delta float64) {
	for name, anim := range e.animations {
		switch {
		case anim.target < anim.phase:
			anim.phase = max(0, anim.phase-delta)
		case anim.target > anim.phase:
			anim.phase = min(1, anim.phase+delta)
		case anim.target == 0:
			delete(e.animations, name)
		}
	}
}

func (e *Effect) UpdateColors(keys *protocol.Keymap) {
	for name, anim := range e.animations {
		if key, ok := keys.Get(name); ok {
			key.Color = e.gradient.Value.ColorAt(anim.phase)
		}
	}
}

// Phase reports the animation phase of a key and whether it is animating.
func (e *Effect) Phase(name string) (float64, bool) {
	anim, ok := e.animations[name]
	if !ok {
		return 0, false
	}
	return anim.phase, true
}
