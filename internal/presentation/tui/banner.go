package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/ckbfx/pkg/color"
	"github.com/muesli/termenv"
)

var bannerLines = []string{
	"        _    _      __      ",
	"   ___ | | _| |__  / _|_  __",
	"  / __|| |/ / '_ \\| |_\\ \\/ /",
	" | (__ |   <| |_) |  _|>  < ",
	"  \\___||_|\\_\\_.__/|_| /_/\\_\\",
}

var bannerGradient = color.ParseGradient("0:818cf8 50:c084fc 100:fb7185")

// PrintBanner writes the ckbfx banner, shading each line along the banner
// gradient.
func PrintBanner(w io.Writer, profile termenv.Profile) {
	fmt.Fprintln(w)
	for i, line := range bannerLines {
		phase := float64(i) / float64(len(bannerLines)-1)
		c := bannerGradient.ColorAt(phase)
		fmt.Fprintln(w, profile.String(strings.TrimRight(line, " ")).Foreground(profile.Color("#"+c.String())))
	}
	fmt.Fprintln(w)
}
