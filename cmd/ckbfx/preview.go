package main

import (
	"fmt"
	"os"
	"regexp"

	"github.com/aretw0/ckbfx/internal/presentation/tui"
	"github.com/aretw0/ckbfx/pkg/color"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var argbStop = regexp.MustCompile(`:[0-9A-Fa-f]{8}\b`)

var previewCmd = &cobra.Command{
	Use:   "preview <gradient>",
	Short: "Draw a gradient in the terminal",
	Long: `Draws a gradient given as "position:color" stops, e.g.

  ckbfx preview "0:ff0000 50:00ff00 100:0000ff"
  ckbfx preview "0:00000000 100:ffffffff"

Stops with eight hex digits are read as ARGB and shown over black.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		width, _ := cmd.Flags().GetInt("width")
		if width <= 0 {
			width = tui.Width(os.Stdout)
		}
		profile := termenv.ColorProfile()

		var (
			swatch string
			stops  int
			text   string
		)
		if argbStop.MatchString(args[0]) {
			g := color.ParseAGradient(args[0])
			swatch, stops, text = tui.Swatch(g, width, profile), g.Len(), g.String()
		} else {
			g := color.ParseGradient(args[0])
			swatch, stops, text = tui.Swatch(g, width, profile), g.Len(), g.String()
		}
		if stops == 0 {
			return fmt.Errorf("no valid stops in %q", args[0])
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, swatch)
		fmt.Fprintln(out, text)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)
	previewCmd.Flags().Int("width", 0, "Swatch width in columns (default: terminal width)")
}
