package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/aretw0/ckbfx/pkg/effect"
	"github.com/aretw0/ckbfx/pkg/param"
	"github.com/aretw0/ckbfx/pkg/protocol"
	"github.com/aretw0/ckbfx/pkg/registry"
	"github.com/google/uuid"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Format is the syntax of a manifest file.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

var (
	// ErrInvalidManifest is wrapped by every validation failure.
	ErrInvalidManifest = errors.New("invalid manifest")
	// ErrUnknownFormat is returned for an unsupported file extension.
	ErrUnknownFormat = errors.New("unknown manifest format")
)

// Manifest is the decoded form of an effect manifest.
type Manifest struct {
	GUID        string `mapstructure:"guid"`
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Year        string `mapstructure:"year"`
	Author      string `mapstructure:"author"`
	License     string `mapstructure:"license"`
	Description string `mapstructure:"description"`

	KeypressMode string `mapstructure:"kpmode"`
	TimeMode     string `mapstructure:"time"`
	Repeat       bool   `mapstructure:"repeat"`
	Preempt      bool   `mapstructure:"preempt"`
	ParamMode    string `mapstructure:"parammode"`

	// Effect names the registered implementation.
	Effect string `mapstructure:"effect"`

	Params  []ParamSpec  `mapstructure:"params"`
	Presets []PresetSpec `mapstructure:"presets"`
}

// ParamSpec declares one parameter. Text is used by bool and label
// parameters; Min and Max by long and double.
type ParamSpec struct {
	Kind    string  `mapstructure:"kind"`
	Name    string  `mapstructure:"name"`
	Prefix  string  `mapstructure:"prefix"`
	Postfix string  `mapstructure:"postfix"`
	Text    string  `mapstructure:"text"`
	Default any     `mapstructure:"default"`
	Min     float64 `mapstructure:"min"`
	Max     float64 `mapstructure:"max"`
}

// PresetSpec declares one preset.
type PresetSpec struct {
	Name   string         `mapstructure:"name"`
	Values map[string]any `mapstructure:"values"`
}

// FormatOf picks the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownFormat, path)
}

// Load reads and validates the manifest at path.
func Load(path string) (*Manifest, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	m, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Parse decodes and validates a manifest.
func Parse(data []byte, format Format) (*Manifest, error) {
	raw := map[string]any{}
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse yaml: %w", err)
		}
	case FormatTOML:
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse toml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	var m Manifest
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &m,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidManifest, err)
	}

	guid, err := NormalizeGUID(m.GUID)
	if err != nil {
		return nil, err
	}
	m.GUID = guid

	params, err := m.BuildParams()
	if err != nil {
		return nil, err
	}
	def := effect.Definition{Info: m.Info(), Params: params}
	if err := def.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidManifest, err)
	}
	return &m, nil
}

// NormalizeGUID accepts a UUID with or without braces or a urn:uuid prefix
// and returns it in the braced lower-case form the daemon expects.
func NormalizeGUID(s string) (string, error) {
	if s == "" {
		return "", fmt.Errorf("%w: missing guid", ErrInvalidManifest)
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return "", fmt.Errorf("%w: guid %q: %v", ErrInvalidManifest, s, err)
	}
	return "{" + id.String() + "}", nil
}

// Info returns the info block metadata.
func (m *Manifest) Info() effect.Info {
	return effect.Info{
		GUID:         m.GUID,
		Name:         m.Name,
		Version:      m.Version,
		Year:         m.Year,
		Author:       m.Author,
		License:      m.License,
		Description:  m.Description,
		KeypressMode: effect.KeypressMode(m.KeypressMode),
		TimeMode:     effect.TimeMode(m.TimeMode),
		Repeat:       m.Repeat,
		Preempt:      m.Preempt,
		ParamMode:    effect.ParamMode(m.ParamMode),
	}
}

// BuildParams creates fresh parameters with their declared defaults. Each
// call returns new values, so definitions built from one manifest never
// share state.
func (m *Manifest) BuildParams() ([]param.Param, error) {
	params := make([]param.Param, 0, len(m.Params))
	for i, spec := range m.Params {
		p, err := spec.build()
		if err != nil {
			return nil, fmt.Errorf("%w: params[%d]: %w", ErrInvalidManifest, i, err)
		}
		params = append(params, p)
	}
	return params, nil
}

// BuildPresets renders the declared presets.
func (m *Manifest) BuildPresets() []param.Preset {
	presets := make([]param.Preset, 0, len(m.Presets))
	for _, spec := range m.Presets {
		names := make([]string, 0, len(spec.Values))
		for name := range spec.Values {
			names = append(names, name)
		}
		sort.Strings(names)

		preset := param.NewPreset(spec.Name)
		for _, name := range names {
			preset.Set(name, wireText(spec.Values[name]))
		}
		presets = append(presets, *preset)
	}
	return presets
}

// Definition builds a complete effect definition, resolving the
// implementation through reg. With a nil reg the definition has no
// implementation, which is enough for the info block.
func (m *Manifest) Definition(reg *registry.Registry) (*effect.Definition, error) {
	params, err := m.BuildParams()
	if err != nil {
		return nil, err
	}
	set, err := param.NewSet(params...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidManifest, err)
	}
	var fx protocol.Effect
	if reg != nil {
		if fx, err = reg.New(m.Effect, set); err != nil {
			return nil, err
		}
	}
	return &effect.Definition{
		Info:    m.Info(),
		Params:  params,
		Presets: m.BuildPresets(),
		Effect:  fx,
	}, nil
}

func (s ParamSpec) build() (param.Param, error) {
	var p param.Param
	switch param.Kind(s.Kind) {
	case param.KindLong:
		p = &param.Long{Name: s.Name, Prefix: s.Prefix, Postfix: s.Postfix, Min: int64(s.Min), Max: int64(s.Max)}
	case param.KindDouble:
		p = &param.Double{Name: s.Name, Prefix: s.Prefix, Postfix: s.Postfix, Min: s.Min, Max: s.Max}
	case param.KindBool:
		p = &param.Bool{Name: s.Name, Text: s.Text}
	case param.KindRGB:
		p = &param.RGB{Name: s.Name, Prefix: s.Prefix, Postfix: s.Postfix}
	case param.KindARGB:
		p = &param.ARGB{Name: s.Name, Prefix: s.Prefix, Postfix: s.Postfix}
	case param.KindGradient:
		p = &param.Gradient{Name: s.Name, Prefix: s.Prefix, Postfix: s.Postfix}
	case param.KindAGradient:
		p = &param.AGradient{Name: s.Name, Prefix: s.Prefix, Postfix: s.Postfix}
	case param.KindAngle:
		p = &param.Angle{Name: s.Name, Prefix: s.Prefix, Postfix: s.Postfix}
	case param.KindString:
		p = &param.String{Name: s.Name, Prefix: s.Prefix, Postfix: s.Postfix}
	case param.KindLabel:
		p = &param.Label{Name: s.Name, Text: s.Text}
	default:
		return nil, fmt.Errorf("unknown kind %q", s.Kind)
	}
	if s.Name == "" {
		return nil, fmt.Errorf("%s parameter without a name", s.Kind)
	}

	if s.Default != nil {
		if err := param.SetFromWire(p, wireText(s.Default)); err != nil {
			return nil, err
		}
		param.Commit(p)
	}
	return p, nil
}

// wireText renders a decoded YAML or TOML scalar the way the daemon would
// send it.
func wireText(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		if v {
			return "1"
		}
		return "0"
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float64:
		return param.FormatDouble(v)
	}
	return fmt.Sprint(v)
}
