package effect

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/ckbfx/internal/config"
	"github.com/aretw0/ckbfx/internal/logging"
	"github.com/aretw0/ckbfx/pkg/protocol"
	"github.com/spf13/cobra"
)

type flags struct {
	info bool
	run  bool
	help bool

	sessionID string
	overrides config.Config
}

// NewCommand builds the command the daemon invokes. It accepts exactly one
// of --ckb-info and --ckb-run; any other invocation, help flags included,
// returns ErrUsage.
func NewCommand(def *Definition) *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:           def.Name,
		Short:         def.Description,
		SilenceUsage:  true,
		SilenceErrors: true,
		// Flags are parsed in RunE so that cobra never answers --help itself.
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cmd.Flags().Parse(args); err != nil {
				return ErrUsage
			}
			if f.help || cmd.Flags().NArg() > 0 || f.info == f.run {
				return ErrUsage
			}
			if f.info {
				return WriteInfo(cmd.OutOrStdout(), def)
			}
			return runSession(cmd, def, f)
		},
	}

	fs := cmd.Flags()
	fs.BoolVar(&f.info, "ckb-info", false, "Print the effect's info block")
	fs.BoolVar(&f.run, "ckb-run", false, "Run a protocol session on stdin/stdout")
	fs.StringVar(&f.overrides.LogFile, "log-file", "", "Append logs to this file instead of stderr")
	fs.StringVar(&f.overrides.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&f.overrides.MetricsAddr, "metrics-addr", "", "Serve /metrics and /state on this address")
	fs.StringVar(&f.overrides.MetricsFile, "metrics-file", "", "Write a Prometheus textfile when the session ends")
	fs.StringVar(&f.overrides.Snapshot, "snapshot", "", "Snapshot store: memory, redis://..., file://<dir> or a directory")
	fs.StringVar(&f.sessionID, "session-id", "", "Session ID for snapshots (default: random UUID)")
	fs.BoolVarP(&f.help, "help", "h", false, "")
	_ = fs.MarkHidden("help")

	return cmd
}

func runSession(cmd *cobra.Command, def *Definition, f flags) error {
	env, err := config.Load()
	if err != nil {
		return configError(err)
	}
	cfg := env.Merge(f.overrides)

	logger, closeLog, err := openLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return configError(err)
	}
	defer closeLog()

	store, closeStore, err := OpenStore(cfg.Snapshot)
	if err != nil {
		logger.Warn("snapshots disabled", "location", cfg.Snapshot, "error", err)
	}
	defer func() {
		if err := closeStore(); err != nil {
			logger.Warn("failed to close snapshot store", "error", err)
		}
	}()

	return Run(cmd.Context(), def, RunOptions{
		In:          cmd.InOrStdin(),
		Out:         cmd.OutOrStdout(),
		Logger:      logger,
		SessionID:   f.sessionID,
		Store:       store,
		MetricsAddr: cfg.MetricsAddr,
		MetricsFile: cfg.MetricsFile,
	})
}

func configError(err error) error {
	return &protocol.ProtocolError{Site: protocol.SiteUsage, Msg: "invalid configuration", Err: err}
}

func openLogger(cfg config.Config, stderr io.Writer) (*slog.Logger, func(), error) {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	if cfg.LogFile == "" {
		return logging.NewWriter(stderr, level), func() {}, nil
	}
	logger, closer, err := logging.NewFile(cfg.LogFile, level)
	if err != nil {
		return nil, nil, err
	}
	return logger, func() { _ = closer.Close() }, nil
}

// Main runs the command with args and returns the process exit status.
// Diagnostics go to out, where the daemon collects them.
func Main(ctx context.Context, def *Definition, args []string, in io.Reader, out, errOut io.Writer) int {
	cmd := NewCommand(def)
	cmd.SetArgs(args)
	cmd.SetIn(in)
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	err := cmd.ExecuteContext(ctx)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrUsage):
		fmt.Fprintln(out, UsageMessage)
		return protocol.SiteUsage.ExitCode()
	default:
		fmt.Fprintf(out, "Error [ckbfx]: %v\n", err)
		return protocol.ExitCode(err)
	}
}

// Execute runs the effect as a process and exits.
func Execute(def *Definition) {
	os.Exit(Main(context.Background(), def, os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
