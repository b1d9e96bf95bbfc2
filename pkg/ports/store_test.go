package ports_test

import (
	"context"
	"testing"

	"github.com/aretw0/ckbfx/pkg/domain"
	"github.com/aretw0/ckbfx/pkg/ports"
)

// MockStore is an in-memory implementation of SnapshotStore for testing purposes.
type MockStore struct {
	data map[string]*domain.Snapshot
}

func NewMockStore() *MockStore {
	return &MockStore{
		data: make(map[string]*domain.Snapshot),
	}
}

func (m *MockStore) Save(ctx context.Context, snapshot *domain.Snapshot) error {
	if snapshot.SessionID == "" {
		return domain.ErrEmptySessionID
	}
	m.data[snapshot.SessionID] = snapshot.Clone()
	return nil
}

func (m *MockStore) Load(ctx context.Context, sessionID string) (*domain.Snapshot, error) {
	snap, ok := m.data[sessionID]
	if !ok {
		return nil, domain.ErrSnapshotNotFound
	}
	return snap.Clone(), nil
}

func (m *MockStore) Delete(ctx context.Context, sessionID string) error {
	delete(m.data, sessionID)
	return nil
}

func (m *MockStore) List(ctx context.Context) ([]string, error) {
	ids := make([]string, 0, len(m.data))
	for id := range m.data {
		ids = append(ids, id)
	}
	return ids, nil
}

func TestSnapshotStoreContract(t *testing.T) {
	ports.RunSnapshotStoreContract(t, NewMockStore())
}
