package session_test

import (
	"context"
	"strings"
	"testing"

	"github.com/aretw0/ckbfx/pkg/adapters/memory"
	"github.com/aretw0/ckbfx/pkg/color"
	"github.com/aretw0/ckbfx/pkg/param"
	"github.com/aretw0/ckbfx/pkg/protocol"
	"github.com/aretw0/ckbfx/pkg/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type solid struct {
	protocol.Base
	tint *param.ARGB
}

func (s *solid) UpdateColors(keys *protocol.Keymap) {
	keys.Fill(s.tint.Value)
}

func TestRecorder_PersistsSnapshots(t *testing.T) {
	store := memory.NewStore()
	rec := session.NewRecorder("sess-1", "{guid}", session.WithStore(store))

	tint := &param.ARGB{Name: "tint", Default: color.ARGB{A: 255, R: 0, G: 0, B: 255}}
	input := strings.Join([]string{
		"begin keymap", "keycount 2", "key a 0,0", "key b 1,0", "end keymap",
		"begin params", "param tint ff00ff00", "end params",
		"begin run", "frame", "frame", "end run",
	}, "\n") + "\n"

	var out strings.Builder
	eng := protocol.NewEngine(&solid{tint: tint}, param.MustNewSet(tint),
		protocol.WithIO(strings.NewReader(input), &out),
		protocol.WithHooks(rec.Hooks()),
	)
	require.NoError(t, eng.Run())

	assert.Equal(t, uint64(2), rec.Frames())

	latest := rec.Latest()
	require.NotNil(t, latest)
	assert.Equal(t, "ended", latest.State)
	assert.Equal(t, uint64(2), latest.Frames)

	saved, err := store.Load(context.Background(), "sess-1")
	require.NoError(t, err)
	assert.Equal(t, "ended", saved.State)
	assert.Equal(t, "{guid}", saved.Effect)
	assert.Equal(t, map[string]string{"tint": "ff00ff00"}, saved.Params)
	require.Len(t, saved.Keys, 2)
	assert.Equal(t, "ff00ff00", saved.Keys[1].Color)
}

func TestRecorder_LatestBeforeSession(t *testing.T) {
	rec := session.NewRecorder("s", "e")
	assert.Nil(t, rec.Latest())
	assert.Equal(t, "s", rec.SessionID())
}

func TestRecorder_WithoutStore(t *testing.T) {
	rec := session.NewRecorder("s", "e")
	hooks := rec.Hooks()
	hooks.OnKeymapLoaded(protocol.NewKeymap(&protocol.Key{Name: "a"}))
	hooks.OnParamsApplied(nil, nil)

	latest := rec.Latest()
	require.NotNil(t, latest)
	assert.Equal(t, "running", latest.State)
	assert.Len(t, latest.Keys, 1)
}
