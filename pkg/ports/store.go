package ports

import (
	"context"

	"github.com/aretw0/ckbfx/pkg/domain"
)

// SnapshotStore persists session snapshots so that a session can be
// inspected after the daemon has stopped the effect.
type SnapshotStore interface {
	// Save persists the snapshot under its SessionID, replacing any previous one.
	Save(ctx context.Context, snapshot *domain.Snapshot) error

	// Load retrieves the snapshot for a given session ID.
	// Returns domain.ErrSnapshotNotFound if the session does not exist.
	Load(ctx context.Context, sessionID string) (*domain.Snapshot, error)

	// Delete removes the snapshot for a given session ID.
	Delete(ctx context.Context, sessionID string) error

	// List returns the IDs of all stored sessions.
	List(ctx context.Context) ([]string, error)
}
