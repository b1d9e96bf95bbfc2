package manifest_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aretw0/ckbfx/pkg/effect"
	"github.com/aretw0/ckbfx/pkg/manifest"
	"github.com/aretw0/ckbfx/pkg/param"
	"github.com/aretw0/ckbfx/pkg/protocol"
	"github.com/aretw0/ckbfx/pkg/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const configuredInfo = `guid %7B9c1c97d5-c2e1-45a7-aba1-b059cfe9a0f6%7D
name Test
version 1.0.0
year 2017
author Test
license MIT
description Some%20fancy%20description%21
kpmode position
time absolute
repeat on
preempt on
parammode static
param long LONG pre post 0 -1 1
param double DOUBLE pre post 0.0 -1.0 1.0
param bool BOOL text  1
param rgb RGB pre post facade
param argb ARGB pre post deadbeef
param gradient GRADIENT pre post 0%3A000000%20100%3Afacade
param agradient AGRADIENT pre post 0%3A00000000%20100%3Adeadbeef
param angle ANGLE pre post 137
param string STRING pre post ckb-next%20is%20awesome.
param label LABEL text
preset test1 BOOL=0 LONG=1
preset test2 BOOL=1 LONG=-1
`

func TestLoad_InfoBlock(t *testing.T) {
	for _, file := range []string{"configured.yaml", "configured.toml"} {
		t.Run(file, func(t *testing.T) {
			m, err := manifest.Load(filepath.Join("testdata", file))
			require.NoError(t, err)

			def, err := m.Definition(nil)
			require.NoError(t, err)

			var out bytes.Buffer
			require.NoError(t, effect.WriteInfo(&out, def))
			assert.Equal(t, configuredInfo, out.String())
		})
	}
}

func TestParse_Minimal(t *testing.T) {
	m, err := manifest.Parse([]byte("guid: 62909e5a-5f3e-4720-8638-f89c32367fd1\nname: Minimal\n"), manifest.FormatYAML)
	require.NoError(t, err)

	assert.Equal(t, "{62909e5a-5f3e-4720-8638-f89c32367fd1}", m.GUID)
	info := m.Info()
	assert.Equal(t, "Minimal", info.Name)
	assert.Empty(t, m.BuildPresets())
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"missing guid", "name: x\n", "missing guid"},
		{"bad guid", "guid: not-a-uuid\nname: x\n", "guid"},
		{"missing name", "guid: 62909e5a-5f3e-4720-8638-f89c32367fd1\n", "name"},
		{"unknown field", "guid: 62909e5a-5f3e-4720-8638-f89c32367fd1\nname: x\ncolour: red\n", "colour"},
		{"bad kpmode", "guid: 62909e5a-5f3e-4720-8638-f89c32367fd1\nname: x\nkpmode: none\n", "kpmode"},
		{"unknown kind", "guid: 62909e5a-5f3e-4720-8638-f89c32367fd1\nname: x\nparams: [{kind: vector, name: v}]\n", "vector"},
		{"unnamed param", "guid: 62909e5a-5f3e-4720-8638-f89c32367fd1\nname: x\nparams: [{kind: long}]\n", "without a name"},
		{"bad default", "guid: 62909e5a-5f3e-4720-8638-f89c32367fd1\nname: x\nparams: [{kind: rgb, name: c, default: fff}]\n", "cannot decode"},
		{"duplicate param", "guid: 62909e5a-5f3e-4720-8638-f89c32367fd1\nname: x\nparams: [{kind: long, name: a}, {kind: angle, name: a}]\n", "duplicate"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := manifest.Parse([]byte(tt.doc), manifest.FormatYAML)
			require.Error(t, err)
			assert.ErrorIs(t, err, manifest.ErrInvalidManifest)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestParse_SyntaxError(t *testing.T) {
	_, err := manifest.Parse([]byte("name = [unterminated"), manifest.FormatTOML)
	assert.Error(t, err)

	_, err = manifest.Parse(nil, manifest.Format("ini"))
	assert.ErrorIs(t, err, manifest.ErrUnknownFormat)
}

func TestFormatOf(t *testing.T) {
	for path, want := range map[string]manifest.Format{
		"fx.yaml": manifest.FormatYAML,
		"fx.YML":  manifest.FormatYAML,
		"fx.json": manifest.FormatYAML,
		"fx.toml": manifest.FormatTOML,
	} {
		got, err := manifest.FormatOf(path)
		require.NoError(t, err)
		assert.Equal(t, want, got, path)
	}
	_, err := manifest.FormatOf("fx.ini")
	assert.ErrorIs(t, err, manifest.ErrUnknownFormat)
}

func TestNormalizeGUID(t *testing.T) {
	for _, in := range []string{
		"62909e5a-5f3e-4720-8638-f89c32367fd1",
		"{62909E5A-5F3E-4720-8638-F89C32367FD1}",
		"urn:uuid:62909e5a-5f3e-4720-8638-f89c32367fd1",
	} {
		got, err := manifest.NormalizeGUID(in)
		require.NoError(t, err, in)
		assert.Equal(t, "{62909e5a-5f3e-4720-8638-f89c32367fd1}", got)
	}
}

func TestBuildPresets_FloatValues(t *testing.T) {
	for _, format := range []manifest.Format{manifest.FormatYAML, manifest.FormatTOML} {
		t.Run(string(format), func(t *testing.T) {
			doc := strings.Join([]string{
				"guid: 62909e5a-5f3e-4720-8638-f89c32367fd1",
				"name: Pulse",
				"params: [{kind: double, name: duration, default: 1.0}]",
				"presets: [{name: Slow, values: {duration: 2.0}}, {name: Quick, values: {duration: 0.25}}]",
			}, "\n")
			if format == manifest.FormatTOML {
				doc = strings.Join([]string{
					`guid = "62909e5a-5f3e-4720-8638-f89c32367fd1"`,
					`name = "Pulse"`,
					`params = [{kind = "double", name = "duration", default = 1.0}]`,
					`presets = [{name = "Slow", values = {duration = 2.0}}, {name = "Quick", values = {duration = 0.25}}]`,
				}, "\n")
			}
			m, err := manifest.Parse([]byte(doc), format)
			require.NoError(t, err)

			presets := m.BuildPresets()
			require.Len(t, presets, 2)
			assert.Equal(t, "Slow duration=2.0", presets[0].String())
			assert.Equal(t, "Quick duration=0.25", presets[1].String())
		})
	}
}

func TestDefinition_ResolvesEffect(t *testing.T) {
	m, err := manifest.Parse([]byte(strings.Join([]string{
		"guid: 62909e5a-5f3e-4720-8638-f89c32367fd1",
		"name: Solid",
		"effect: solid",
		"params: [{kind: argb, name: color, default: ff00ff00}]",
	}, "\n")), manifest.FormatYAML)
	require.NoError(t, err)

	var bound *param.ARGB
	reg := registry.NewRegistry()
	reg.Register("solid", func(params *param.Set) (protocol.Effect, error) {
		p, _ := params.Get("color")
		bound = p.(*param.ARGB)
		return protocol.Base{}, nil
	})

	def, err := m.Definition(reg)
	require.NoError(t, err)
	require.Len(t, def.Params, 1)
	assert.Same(t, def.Params[0], bound)
	assert.Equal(t, "ff00ff00", bound.Value.String())

	other, err := m.Definition(reg)
	require.NoError(t, err)
	assert.NotSame(t, def.Params[0], other.Params[0])

	m.Effect = "plasma"
	_, err = m.Definition(reg)
	assert.ErrorIs(t, err, registry.ErrUnknownEffect)
}
