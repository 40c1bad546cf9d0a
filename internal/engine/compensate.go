package engine

import (
	"keyshift/internal/keys"
	"keyshift/internal/remap"
)

// KeyState reports live physical key state. Implementations query the OS
// on every call; nothing is cached.
type KeyState interface {
	IsHeld(code keys.Code) bool
}

// Compensate brackets a chord with a press+release pair for every
// recognized modifier the keyboard currently holds. Pairs are prepended in
// keys.Modifiers order, so the last held modifier ends up frontmost. The
// input slice is not modified.
//
// The pair fires before the chord; the modifier is not released for the
// chord's duration and restored afterward.
func Compensate(actions []remap.Action, state KeyState) []remap.Action {
	out := make([]remap.Action, 0, len(actions)+2*len(keys.Modifiers))
	out = append(out, actions...)
	for _, m := range keys.Modifiers {
		if state.IsHeld(m) {
			out = append([]remap.Action{remap.Press(m), remap.Release(m)}, out...)
		}
	}
	return out
}
