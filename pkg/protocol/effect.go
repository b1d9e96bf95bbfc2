package protocol

import "github.com/aretw0/ckbfx/pkg/param"

// Effect receives the daemon's commands. Every method runs synchronously on
// the engine's goroutine between two reads, so a hook that blocks stalls the
// whole session.
type Effect interface {
	// Start is called when the daemon starts the animation.
	Start()
	// Stop is called when the daemon stops the animation.
	Stop()
	// Keypress reports a key going down (pressed == true) or up.
	Keypress(key *Key, pressed bool)
	// AdvanceTime moves the animation forward by delta seconds.
	AdvanceTime(delta float64)
	// ParamChanged is called after p received a new value.
	ParamChanged(p param.Param)
	// UpdateColors must set Color on the keys before a frame is sent.
	UpdateColors(keys *Keymap)
}

// Base implements Effect with no-ops. Embed it to override only some hooks.
type Base struct{}

func (Base) Start()                   {}
func (Base) Stop()                    {}
func (Base) Keypress(*Key, bool)      {}
func (Base) AdvanceTime(float64)      {}
func (Base) ParamChanged(param.Param) {}
func (Base) UpdateColors(*Keymap)     {}
