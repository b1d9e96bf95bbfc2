package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/ckbfx"
	"github.com/aretw0/ckbfx/pkg/color"
	"github.com/aretw0/ckbfx/pkg/effect"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate [manifest]",
	Short: "Drive an effect without the daemon and print its frames",
	Long: `Feeds the effect a scripted session: a keymap, optional parameter values,
key presses and a fixed number of frames, then prints the colour of every
key in each frame.

  ckbfx simulate effect.yaml --keys esc,f1,f2 --press esc --frames 5 --dt 0.25`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := manifestArg(args)
		if err != nil {
			return err
		}
		def, err := ckbfx.Load(path)
		if err != nil {
			return err
		}

		keys, _ := cmd.Flags().GetStringSlice("keys")
		press, _ := cmd.Flags().GetStringSlice("press")
		params, _ := cmd.Flags().GetStringToString("param")
		frames, _ := cmd.Flags().GetInt("frames")
		dt, _ := cmd.Flags().GetFloat64("dt")

		script := ckbfx.NewScript()
		for i, k := range keys {
			script.Key(k, i, 0)
		}
		for name, value := range params {
			script.Param(name, value)
		}
		script.Start()
		for _, k := range press {
			script.Press(k)
		}
		for i := 0; i < frames; i++ {
			script.Advance(dt).Frame()
		}

		result, err := ckbfx.Simulate(cmd.Context(), def, script, effect.RunOptions{})
		if err != nil {
			return err
		}

		profile := termenv.ColorProfile()
		out := cmd.OutOrStdout()
		for i, frame := range result {
			cells := make([]string, len(frame))
			for j, kc := range frame {
				cells[j] = fmt.Sprintf("%s %s=%s", cell(profile, kc.Color), kc.Name, kc.Color)
			}
			fmt.Fprintf(out, "t=%-6.2f %s\n", float64(i+1)*dt, strings.Join(cells, "  "))
		}
		return nil
	},
}

func cell(profile termenv.Profile, c color.ARGB) string {
	return profile.String("██").Foreground(profile.Color("#" + c.RGB().String())).String()
}

func init() {
	rootCmd.AddCommand(simulateCmd)
	simulateCmd.Flags().StringSlice("keys", []string{"esc", "f1", "f2", "f3"}, "Keys in the simulated keymap")
	simulateCmd.Flags().StringSlice("press", []string{"esc"}, "Keys pressed after start")
	simulateCmd.Flags().StringToString("param", nil, "Parameter values in wire form (name=value)")
	simulateCmd.Flags().Int("frames", 5, "Number of frames to request")
	simulateCmd.Flags().Float64("dt", 0.25, "Seconds between frames")
}
