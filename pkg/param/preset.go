package param

import (
	"strings"

	"github.com/aretw0/ckbfx/pkg/wire"
)

// PresetValue is one name=value pair of a preset.
type PresetValue struct {
	Name  string
	Value string
}

// Preset is a named bundle of literal parameter values offered by the daemon
// as a quick-select configuration. Presets are only ever announced.
type Preset struct {
	Name   string
	Values []PresetValue
}

// NewPreset starts an empty preset.
func NewPreset(name string) *Preset {
	return &Preset{Name: name}
}

// Set appends a literal value for the named parameter.
func (p *Preset) Set(name, value string) *Preset {
	p.Values = append(p.Values, PresetValue{Name: name, Value: value})
	return p
}

// SetParam records p's current value in wire form.
func (p *Preset) SetParam(param Param) *Preset {
	return p.Set(param.ParamName(), WireValue(param))
}

// String renders "name k=v k=v". Names and values are percent-encoded.
// A preset without values keeps the separator: "name ".
func (p Preset) String() string {
	pairs := make([]string, len(p.Values))
	for i, v := range p.Values {
		pairs[i] = wire.Quote(v.Name) + "=" + wire.Quote(v.Value)
	}
	return wire.Quote(p.Name) + " " + strings.Join(pairs, " ")
}
