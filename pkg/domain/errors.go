package domain

import "errors"

// ErrSnapshotNotFound is returned when a session ID cannot be found in the store.
var ErrSnapshotNotFound = errors.New("snapshot not found")

// ErrEmptySessionID is returned when a snapshot is saved without a session ID.
var ErrEmptySessionID = errors.New("session ID cannot be empty")
