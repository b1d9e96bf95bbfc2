package main

import (
	"github.com/aretw0/ckbfx"
	"github.com/aretw0/ckbfx/pkg/effect"
	"github.com/aretw0/ckbfx/pkg/protocol"
	"github.com/spf13/cobra"
)

// runCmd is what a ckb-next effect wrapper invokes:
//
//	exec ckbfx run /path/to/effect.yaml "$@"
var runCmd = &cobra.Command{
	Use:   "run <manifest> --ckb-info|--ckb-run [flags]",
	Short: "Serve the daemon for a manifest-described effect",
	Long: `Loads the manifest, binds it to its built-in implementation and hands the
remaining arguments to the effect entry point, exactly as if the effect were
its own executable.`,
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 || args[0] == "-h" || args[0] == "--help" {
			return cmd.Help()
		}
		def, err := ckbfx.Load(args[0])
		if err != nil {
			cmd.PrintErrln("Error:", err)
			return &exitError{code: protocol.SiteUsage.ExitCode()}
		}
		code := effect.Main(cmd.Context(), def, args[1:], cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		if code != 0 {
			return &exitError{code: code}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
