package effect_test

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/ckbfx/pkg/adapters/file"
	"github.com/aretw0/ckbfx/pkg/adapters/memory"
	"github.com/aretw0/ckbfx/pkg/adapters/redis"
	"github.com/aretw0/ckbfx/pkg/effect"
	"github.com/aretw0/ckbfx/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenStore(t *testing.T) {
	mr := miniredis.RunT(t)

	tests := []struct {
		location string
		check    func(t *testing.T, store ports.SnapshotStore)
	}{
		{"", func(t *testing.T, store ports.SnapshotStore) {
			assert.Nil(t, store)
		}},
		{"memory", func(t *testing.T, store ports.SnapshotStore) {
			assert.IsType(t, &memory.Store{}, store)
		}},
		{"file:///var/lib/ckbfx", func(t *testing.T, store ports.SnapshotStore) {
			require.IsType(t, &file.Store{}, store)
			assert.Equal(t, "/var/lib/ckbfx", store.(*file.Store).BasePath)
		}},
		{"sessions", func(t *testing.T, store ports.SnapshotStore) {
			require.IsType(t, &file.Store{}, store)
			assert.Equal(t, "sessions", store.(*file.Store).BasePath)
		}},
		{"redis://" + mr.Addr() + "/0", func(t *testing.T, store ports.SnapshotStore) {
			assert.IsType(t, &redis.Store{}, store)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.location, func(t *testing.T) {
			store, closeStore, err := effect.OpenStore(tt.location)
			require.NoError(t, err)
			require.NotNil(t, closeStore)
			tt.check(t, store)
			assert.NoError(t, closeStore())
		})
	}
}

func TestOpenStore_InvalidRedisURL(t *testing.T) {
	_, closeStore, err := effect.OpenStore("redis://localhost:6379/notadb")
	assert.Error(t, err)
	assert.NotNil(t, closeStore)
}
