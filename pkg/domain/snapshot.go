package domain

import (
	"time"

	"github.com/aretw0/ckbfx/pkg/param"
	"github.com/aretw0/ckbfx/pkg/protocol"
)

// KeyColor is the recorded colour of one key.
type KeyColor struct {
	Name  string `json:"name"`
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Color string `json:"color"`
}

// Snapshot is a point-in-time copy of a session: the keymap with its
// colours and the wire value of every parameter.
type Snapshot struct {
	SessionID string            `json:"session_id"`
	Effect    string            `json:"effect"`
	State     string            `json:"state"`
	Keys      []KeyColor        `json:"keys"`
	Params    map[string]string `json:"params"`
	Frames    uint64            `json:"frames"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// NewSnapshot captures keys and params. Either may be nil.
func NewSnapshot(sessionID, effect string, state protocol.State, keys *protocol.Keymap, params *param.Set) *Snapshot {
	s := &Snapshot{
		SessionID: sessionID,
		Effect:    effect,
		State:     state.String(),
		Keys:      make([]KeyColor, 0, keys.Len()),
		Params:    params.Values(),
		UpdatedAt: time.Now().UTC(),
	}
	for _, k := range keys.Keys() {
		s.Keys = append(s.Keys, KeyColor{Name: k.Name, X: k.X, Y: k.Y, Color: k.Color.String()})
	}
	return s
}

// Clone returns a deep copy of s.
func (s *Snapshot) Clone() *Snapshot {
	if s == nil {
		return nil
	}
	c := *s
	c.Keys = append([]KeyColor(nil), s.Keys...)
	c.Params = make(map[string]string, len(s.Params))
	for k, v := range s.Params {
		c.Params[k] = v
	}
	return &c
}
