package main

import (
	"fmt"
	"runtime"

	"github.com/aretw0/ckbfx"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the ckbfx version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "ckbfx version %s\n", ckbfx.Version)
			if !verbose {
				return nil
			}
			fmt.Fprintf(out, "go: %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
			fmt.Fprintf(out, "builtin effects: %v\n", ckbfx.Builtins().Names())
			return nil
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Also print the Go runtime and builtin effects")
	return cmd
}

func init() {
	rootCmd.AddCommand(newVersionCmd())
}
