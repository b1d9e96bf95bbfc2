package main

import (
	"fmt"
	"os"

	"github.com/aretw0/ckbfx/internal/presentation/tui"
	"github.com/aretw0/ckbfx/pkg/manifest"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var describeCmd = &cobra.Command{
	Use:   "describe [manifest]",
	Short: "Show a readable summary of an effect",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := manifestArg(args)
		if err != nil {
			return err
		}
		m, err := manifest.Load(path)
		if err != nil {
			return err
		}
		def, err := m.Definition(nil)
		if err != nil {
			return err
		}

		markdown := tui.Describe(def)
		out := cmd.OutOrStdout()
		if raw, _ := cmd.Flags().GetBool("markdown"); raw {
			fmt.Fprint(out, markdown)
			return nil
		}

		style := ""
		if plain, _ := cmd.Flags().GetBool("plain"); plain {
			style = "notty"
		}
		render, err := tui.NewRenderer(style, tui.Width(os.Stdout))
		if err != nil {
			return err
		}
		text, err := render(markdown)
		if err != nil {
			return err
		}
		if style == "" {
			tui.PrintBanner(out, termenv.ColorProfile())
		}
		fmt.Fprint(out, text)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)
	describeCmd.Flags().Bool("plain", false, "Render without colours")
	describeCmd.Flags().Bool("markdown", false, "Print the raw markdown")
}
