package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/aretw0/ckbfx/pkg/color"
	"github.com/aretw0/ckbfx/pkg/effect"
	"github.com/aretw0/ckbfx/pkg/param"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSwatch_ASCIIProfile(t *testing.T) {
	g := color.ParseGradient("0:ff0000 100:0000ff")
	assert.Equal(t, strings.Repeat(swatchCell, 8), Swatch(g, 8, termenv.Ascii))
	assert.Empty(t, Swatch(g, 0, termenv.Ascii))
}

func TestSwatch_TrueColorEnds(t *testing.T) {
	g := color.ParseGradient("0:ff0000 100:0000ff")
	out := Swatch(g, 3, termenv.TrueColor)

	assert.True(t, strings.HasPrefix(out, "\x1b[38;2;255;0;0m"), "%q", out)
	assert.Contains(t, out, "\x1b[38;2;127;0;127m")
	assert.Contains(t, out, "\x1b[38;2;0;0;255m")
}

func TestSwatch_AlphaOverBlack(t *testing.T) {
	g := color.ParseAGradient("0:80ff0000")
	out := Swatch(g, 1, termenv.TrueColor)
	assert.Contains(t, out, "\x1b[38;2;128;0;0m")
}

func TestWidth_NotATerminal(t *testing.T) {
	assert.Equal(t, DefaultWidth, Width(nil))
}

func TestPrintBanner(t *testing.T) {
	var out bytes.Buffer
	PrintBanner(&out, termenv.Ascii)
	assert.Contains(t, out.String(), `/ __|| |/ / '_ \| |_\ \/ /`)
}

func testDefinition() *effect.Definition {
	return &effect.Definition{
		Info: effect.Info{
			GUID:        "{62909e5a-5f3e-4720-8638-f89c32367fd1}",
			Name:        "Gradient",
			Version:     "0.1.0",
			Description: "Transition between two colours",
			Repeat:      true,
		},
		Params: []param.Param{
			&param.AGradient{Name: "gradient", Default: color.ParseAGradient("0:ffffffff")},
			&param.Long{Name: "speed", Default: 3},
			&param.Label{Name: "note", Text: "a | b"},
		},
		Presets: []param.Preset{*param.NewPreset("Rainbow").Set("duration", "2").Set("stop", "0")},
	}
}

func TestDescribe_Markdown(t *testing.T) {
	md := Describe(testDefinition())

	assert.True(t, strings.HasPrefix(md, "# Gradient\n\nTransition between two colours\n"))
	assert.Contains(t, md, "| GUID | `{62909e5a-5f3e-4720-8638-f89c32367fd1}` |\n")
	assert.Contains(t, md, "| Keypresses | name |\n")
	assert.Contains(t, md, "| Repeat | yes |\n")
	assert.NotContains(t, md, "| Author |")
	assert.Contains(t, md, "| `gradient` | agradient | 0:ffffffff |\n")
	assert.Contains(t, md, "| `speed` | long | 3 |\n")
	assert.Contains(t, md, "| `note` | label | a \\| b |\n")
	assert.Contains(t, md, "- **Rainbow**: `duration=2`, `stop=0`\n")
}

func TestRenderer_PlainStyle(t *testing.T) {
	render, err := NewRenderer("notty", 80)
	require.NoError(t, err)

	out, err := render(Describe(testDefinition()))
	require.NoError(t, err)
	assert.Contains(t, out, "Gradient")
	assert.Contains(t, out, "Rainbow")
}
