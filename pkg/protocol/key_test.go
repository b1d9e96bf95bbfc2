package protocol_test

import (
	"testing"

	"github.com/aretw0/ckbfx/pkg/color"
	"github.com/aretw0/ckbfx/pkg/protocol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeymap(t *testing.T) {
	esc := &protocol.Key{Name: "esc", X: 0, Y: 0}
	f1 := &protocol.Key{Name: "f1", X: 12, Y: 0}
	shadow := &protocol.Key{Name: "shadow", X: 12, Y: 0}
	dup := &protocol.Key{Name: "esc", X: 5, Y: 5}

	m := protocol.NewKeymap(esc, f1, shadow, dup)
	require.Equal(t, 3, m.Len())
	assert.Equal(t, []*protocol.Key{esc, f1, shadow}, m.Keys())

	k, ok := m.Get("f1")
	require.True(t, ok)
	assert.Same(t, f1, k)

	k, ok = m.At(12, 0)
	require.True(t, ok)
	assert.Same(t, f1, k, "first key declared at a position wins")

	_, ok = m.At(5, 5)
	assert.False(t, ok)

	m.Fill(color.ARGB{A: 1, R: 2, G: 3, B: 4})
	assert.Equal(t, map[string]string{"esc": "01020304", "f1": "01020304", "shadow": "01020304"}, m.Colors())
	assert.Equal(t, "f1@12,0", f1.String())
}

func TestKeymap_Nil(t *testing.T) {
	var m *protocol.Keymap
	assert.Equal(t, 0, m.Len())
	assert.Nil(t, m.Keys())
	_, ok := m.Get("a")
	assert.False(t, ok)
	_, ok = m.At(0, 0)
	assert.False(t, ok)
}
