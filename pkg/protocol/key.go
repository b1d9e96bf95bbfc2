package protocol

import (
	"fmt"

	"github.com/aretw0/ckbfx/pkg/color"
)

// Key is one lighting zone announced in the keymap.
type Key struct {
	Name  string
	X, Y  int
	Color color.ARGB
}

type position struct{ x, y int }

// Keymap holds the keys of a session in the order the daemon announced them.
// It never changes once the keymap exchange is over.
type Keymap struct {
	keys   []*Key
	byName map[string]*Key
	byPos  map[position]*Key
}

// NewKeymap builds a keymap from keys. Later duplicates of a name are ignored.
func NewKeymap(keys ...*Key) *Keymap {
	m := &Keymap{
		byName: make(map[string]*Key, len(keys)),
		byPos:  make(map[position]*Key, len(keys)),
	}
	for _, k := range keys {
		m.add(k)
	}
	return m
}

func (m *Keymap) add(k *Key) bool {
	if _, dup := m.byName[k.Name]; dup {
		return false
	}
	m.keys = append(m.keys, k)
	m.byName[k.Name] = k
	pos := position{k.X, k.Y}
	if _, taken := m.byPos[pos]; !taken {
		m.byPos[pos] = k
	}
	return true
}

// Keys returns the keys in declaration order. The pointers are live: effects
// set Color on them.
func (m *Keymap) Keys() []*Key {
	if m == nil {
		return nil
	}
	return m.keys
}

// Len returns the number of keys.
func (m *Keymap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Get finds a key by name.
func (m *Keymap) Get(name string) (*Key, bool) {
	if m == nil {
		return nil, false
	}
	k, ok := m.byName[name]
	return k, ok
}

// At finds the first key declared at the given grid position.
func (m *Keymap) At(x, y int) (*Key, bool) {
	if m == nil {
		return nil, false
	}
	k, ok := m.byPos[position{x, y}]
	return k, ok
}

// Fill sets every key to c.
func (m *Keymap) Fill(c color.ARGB) {
	for _, k := range m.Keys() {
		k.Color = c
	}
}

// Colors returns the current colour of every key by name.
func (m *Keymap) Colors() map[string]string {
	out := make(map[string]string, m.Len())
	for _, k := range m.Keys() {
		out[k.Name] = k.Color.String()
	}
	return out
}

func (k *Key) String() string {
	return fmt.Sprintf("%s@%d,%d", k.Name, k.X, k.Y)
}
