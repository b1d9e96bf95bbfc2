package session

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/aretw0/ckbfx/internal/logging"
	"github.com/aretw0/ckbfx/pkg/domain"
	"github.com/aretw0/ckbfx/pkg/param"
	"github.com/aretw0/ckbfx/pkg/ports"
	"github.com/aretw0/ckbfx/pkg/protocol"
)

// DefaultSaveTimeout bounds a single store write.
const DefaultSaveTimeout = 2 * time.Second

// Recorder captures session snapshots. Hooks run on the engine goroutine;
// Latest may be called from any goroutine.
type Recorder struct {
	sessionID string
	effect    string

	store       ports.SnapshotStore
	logger      *slog.Logger
	saveTimeout time.Duration

	mu     sync.Mutex // guards keys and params
	keys   *protocol.Keymap
	params *param.Set

	frames atomic.Uint64
	latest atomic.Pointer[domain.Snapshot]
}

// Option configures the Recorder.
type Option func(*Recorder)

// WithStore enables persistence.
func WithStore(store ports.SnapshotStore) Option {
	return func(r *Recorder) {
		r.store = store
	}
}

// WithLogger configures a logger for the Recorder.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Recorder) {
		r.logger = logger
	}
}

// WithSaveTimeout overrides DefaultSaveTimeout.
func WithSaveTimeout(d time.Duration) Option {
	return func(r *Recorder) {
		r.saveTimeout = d
	}
}

// NewRecorder creates a recorder for one session of the effect identified by effect.
func NewRecorder(sessionID, effect string, opts ...Option) *Recorder {
	r := &Recorder{
		sessionID:   sessionID,
		effect:      effect,
		logger:      logging.NewNop(),
		saveTimeout: DefaultSaveTimeout,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// SessionID returns the ID snapshots are stored under.
func (r *Recorder) SessionID() string {
	return r.sessionID
}

// Frames returns the number of frames served so far.
func (r *Recorder) Frames() uint64 {
	return r.frames.Load()
}

// Latest returns a copy of the most recent snapshot, or nil before the keymap
// has been received.
func (r *Recorder) Latest() *domain.Snapshot {
	return r.latest.Load().Clone()
}

// Hooks returns the engine hooks that feed the recorder.
func (r *Recorder) Hooks() protocol.Hooks {
	return protocol.Hooks{
		OnKeymapLoaded: func(keys *protocol.Keymap) {
			r.mu.Lock()
			r.keys = keys
			r.mu.Unlock()
			r.publish(protocol.StateAwaitingParams)
		},
		OnParamsApplied: func(params *param.Set, _ []string) {
			r.mu.Lock()
			r.params = params
			r.mu.Unlock()
			r.persist(r.publish(protocol.StateRunning))
		},
		OnFrame: func(*protocol.Keymap, time.Duration) {
			r.frames.Add(1)
			r.publish(protocol.StateRunning)
		},
		OnRunEnded: func(_ *protocol.Keymap, params *param.Set) {
			r.mu.Lock()
			r.params = params
			r.mu.Unlock()
			r.persist(r.publish(protocol.StateEnded))
		},
	}
}

func (r *Recorder) publish(state protocol.State) *domain.Snapshot {
	r.mu.Lock()
	snap := domain.NewSnapshot(r.sessionID, r.effect, state, r.keys, r.params)
	r.mu.Unlock()
	snap.Frames = r.frames.Load()
	r.latest.Store(snap)
	return snap
}

func (r *Recorder) persist(snap *domain.Snapshot) {
	if r.store == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), r.saveTimeout)
	defer cancel()
	if err := r.store.Save(ctx, snap); err != nil {
		r.logger.Warn("failed to save snapshot", "session", r.sessionID, "error", err)
	}
}
