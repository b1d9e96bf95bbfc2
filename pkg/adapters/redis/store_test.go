package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/ckbfx/pkg/adapters/redis"
	"github.com/aretw0/ckbfx/pkg/domain"
	"github.com/aretw0/ckbfx/pkg/ports"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisStore_Contract(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}
	defer mr.Close()

	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})

	store := redis.NewFromClient(client)
	ports.RunSnapshotStoreContract(t, store)
}

func TestRedisStore_TTL_Expiration(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})

	store := redis.NewFromClient(client, redis.WithTTL(1*time.Second))
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &domain.Snapshot{SessionID: "session-ttl", Frames: 1}))

	_, err = store.Load(ctx, "session-ttl")
	require.NoError(t, err)

	mr.FastForward(2 * time.Second)

	_, err = store.Load(ctx, "session-ttl")
	assert.ErrorIs(t, err, domain.ErrSnapshotNotFound)
}

func TestRedisStore_Prefix(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	store, err := redis.New("redis://"+mr.Addr()+"/0", redis.WithPrefix("test:"))
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Save(context.Background(), &domain.Snapshot{SessionID: "abc"}))
	assert.True(t, mr.Exists("test:abc"))
}

func TestRedisStore_InvalidURL(t *testing.T) {
	_, err := redis.New("http://nope")
	assert.Error(t, err)
}
