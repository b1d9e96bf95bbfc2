package effect

import (
	"strings"

	"github.com/aretw0/ckbfx/pkg/adapters/file"
	"github.com/aretw0/ckbfx/pkg/adapters/memory"
	"github.com/aretw0/ckbfx/pkg/adapters/redis"
	"github.com/aretw0/ckbfx/pkg/ports"
)

// OpenStore selects a snapshot store from a location string:
//
//	""                  no persistence (nil store)
//	"memory"            in-process store
//	"redis://..."       redis, go-redis URL syntax
//	"file://<dir>"      JSON files in dir
//	"<dir>"             same as file://<dir>
//
// The returned close function is never nil.
func OpenStore(location string) (ports.SnapshotStore, func() error, error) {
	noop := func() error { return nil }

	switch {
	case location == "":
		return nil, noop, nil
	case location == "memory":
		return memory.NewStore(), noop, nil
	case strings.HasPrefix(location, "redis://"), strings.HasPrefix(location, "rediss://"):
		store, err := redis.New(location)
		if err != nil {
			return nil, noop, err
		}
		return store, store.Close, nil
	case strings.HasPrefix(location, "file://"):
		return file.New(strings.TrimPrefix(location, "file://")), noop, nil
	default:
		return file.New(location), noop, nil
	}
}
