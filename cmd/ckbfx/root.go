package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/aretw0/ckbfx/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "ckbfx",
	Short:         "ckbfx runs lighting effects for ckb-next",
	Long:          `ckbfx launches manifest-described effects under the ckb-next daemon and provides tools to inspect, preview and simulate them.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// exitError carries a process status out of a command.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var exit *exitError
		if errors.As(err, &exit) {
			os.Exit(exit.code)
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("snapshot", "", "Snapshot store (memory, redis://..., file://<dir> or a directory)")
}

// manifestArg returns the manifest named on the command line, falling back
// to CKBFX_MANIFEST.
func manifestArg(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	cfg, err := config.Load()
	if err != nil {
		return "", err
	}
	if cfg.Manifest == "" {
		return "", fmt.Errorf("no manifest given and %s is not set", config.EnvManifest)
	}
	return cfg.Manifest, nil
}

// snapshotLocation resolves --snapshot, then CKBFX_SNAPSHOT, then the
// default session directory.
func snapshotLocation(cmd *cobra.Command) (string, error) {
	if loc, _ := cmd.Flags().GetString("snapshot"); loc != "" {
		return loc, nil
	}
	cfg, err := config.Load()
	if err != nil {
		return "", err
	}
	if cfg.Snapshot != "" {
		return cfg.Snapshot, nil
	}
	return "file://", nil
}
