package tui

import (
	"os"
	"strings"

	"github.com/aretw0/ckbfx/pkg/color"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// DefaultWidth is used when the output is not a terminal.
const DefaultWidth = 60

const swatchCell = "█"

// Width returns the column count of f, or DefaultWidth.
func Width(f *os.File) int {
	if f == nil || !term.IsTerminal(int(f.Fd())) {
		return DefaultWidth
	}
	w, _, err := term.GetSize(int(f.Fd()))
	if err != nil || w <= 0 {
		return DefaultWidth
	}
	return w
}

// Swatch renders g as a row of width cells sampled evenly from phase 0 to 1.
// Translucent colours are shown over black, the way an unlit key looks.
func Swatch[C color.Color](g color.Gradient[C], width int, profile termenv.Profile) string {
	if width <= 0 {
		return ""
	}
	var sb strings.Builder
	for i := 0; i < width; i++ {
		phase := 0.0
		if width > 1 {
			phase = float64(i) / float64(width-1)
		}
		c := visible(g.ColorAt(phase))
		sb.WriteString(profile.String(swatchCell).Foreground(profile.Color("#" + c.String())).String())
	}
	return sb.String()
}

func visible[C color.Color](c C) color.RGB {
	switch c := any(c).(type) {
	case color.RGB:
		return c
	case color.ARGB:
		scale := func(v uint8) uint8 { return uint8(uint16(v) * uint16(c.A) / 255) }
		return color.RGB{R: scale(c.R), G: scale(c.G), B: scale(c.B)}
	}
	return color.Black
}
