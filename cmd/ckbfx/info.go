package main

import (
	"github.com/aretw0/ckbfx/pkg/effect"
	"github.com/aretw0/ckbfx/pkg/manifest"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info [manifest]",
	Short: "Print the info block the daemon would receive",
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
		return effect.WriteInfo(cmd.OutOrStdout(), def)
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
