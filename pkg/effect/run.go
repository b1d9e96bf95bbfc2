package effect

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime/debug"

	"github.com/aretw0/ckbfx/internal/logging"
	"github.com/aretw0/ckbfx/internal/observability"
	"github.com/aretw0/ckbfx/pkg/ports"
	"github.com/aretw0/ckbfx/pkg/protocol"
	"github.com/aretw0/ckbfx/pkg/session"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// RunOptions configures a protocol session. Zero values are valid.
type RunOptions struct {
	In     io.Reader
	Out    io.Writer
	Logger *slog.Logger

	// SessionID names the session's snapshots. Generated when empty.
	SessionID string
	// Store persists snapshots after each params exchange and at end of run.
	Store ports.SnapshotStore
	// MetricsAddr starts the debug server (/metrics, /state) while the
	// session runs.
	MetricsAddr string
	// MetricsFile receives a Prometheus textfile dump when the session ends.
	MetricsFile string
	// Hooks are called in addition to the built-in observers.
	Hooks protocol.Hooks
}

// Run serves one protocol session for def. It returns nil after "end run"
// and a *protocol.ProtocolError for fatal failures, including hook panics.
func Run(ctx context.Context, def *Definition, opts RunOptions) error {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	if err := def.Validate(); err != nil {
		return &protocol.ProtocolError{Site: protocol.SiteUsage, Msg: "invalid effect definition", Err: err}
	}
	params, err := def.ParamSet()
	if err != nil {
		return &protocol.ProtocolError{Site: protocol.SiteUsage, Msg: "invalid effect definition", Err: err}
	}

	sessionID := opts.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	logger = logger.With("session", sessionID, "effect", def.Name)

	recorder := session.NewRecorder(sessionID, def.Name,
		session.WithStore(opts.Store),
		session.WithLogger(logger),
	)
	metrics := observability.NewMetrics()

	engine := protocol.NewEngine(def.Effect, params,
		protocol.WithIO(opts.In, opts.Out),
		protocol.WithLogger(logger),
		protocol.WithHooks(protocol.ChainHooks(metrics.Hooks(), recorder.Hooks(), opts.Hooks)),
	)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(runCtx)

	if opts.MetricsAddr != "" {
		handler := observability.NewHandler(metrics, func() (any, bool) {
			snap := recorder.Latest()
			return snap, snap != nil
		})
		g.Go(func() error {
			// The session must survive a debug server that fails to bind.
			if err := observability.Serve(gctx, opts.MetricsAddr, handler, logger); err != nil {
				logger.Error("debug server failed", "addr", opts.MetricsAddr, "error", err)
			}
			return nil
		})
	}

	g.Go(func() error {
		defer cancel()
		logger.Info("session started")
		err := runEngine(engine, logger)
		if err != nil {
			logger.Error("session failed", "state", engine.State(), "error", err)
		} else {
			logger.Info("session ended", "frames", recorder.Frames())
		}
		return err
	})

	err = g.Wait()

	if opts.MetricsFile != "" {
		if werr := metrics.WriteTextfile(opts.MetricsFile); werr != nil {
			logger.Warn("failed to write metrics file", "path", opts.MetricsFile, "error", werr)
		}
	}
	return err
}

func runEngine(engine *protocol.Engine, logger *slog.Logger) (err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("effect hook panicked", "panic", r, "stack", string(debug.Stack()))
			err = &protocol.ProtocolError{
				Site: protocol.SiteHook,
				Msg:  fmt.Sprintf("effect hook panicked in state %s", engine.State()),
				Err:  fmt.Errorf("%v", r),
			}
		}
	}()
	return engine.Run()
}
