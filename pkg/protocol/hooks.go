package protocol

import (
	"time"

	"github.com/aretw0/ckbfx/pkg/param"
)

// Hooks observe a session without taking part in it. All fields are optional.
type Hooks struct {
	OnKeymapLoaded  func(keys *Keymap)
	OnParamsApplied func(params *param.Set, changed []string)
	OnKeypress      func(key *Key, pressed bool)
	OnFrame         func(keys *Keymap, elapsed time.Duration)
	OnLineSkipped   func(state State, line string)
	OnRunEnded      func(keys *Keymap, params *param.Set)
}

// ChainHooks combines several Hooks; each callback runs in argument order.
func ChainHooks(all ...Hooks) Hooks {
	var h Hooks
	for _, next := range all {
		h.OnKeymapLoaded = chain1(h.OnKeymapLoaded, next.OnKeymapLoaded)
		h.OnParamsApplied = chain2(h.OnParamsApplied, next.OnParamsApplied)
		h.OnKeypress = chain2(h.OnKeypress, next.OnKeypress)
		h.OnFrame = chain2(h.OnFrame, next.OnFrame)
		h.OnLineSkipped = chain2(h.OnLineSkipped, next.OnLineSkipped)
		h.OnRunEnded = chain2(h.OnRunEnded, next.OnRunEnded)
	}
	return h
}

func chain1[A any](a, b func(A)) func(A) {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return func(x A) {
		a(x)
		b(x)
	}
}

func chain2[A, B any](a, b func(A, B)) func(A, B) {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return func(x A, y B) {
		a(x, y)
		b(x, y)
	}
}
