// Package remap holds the fixed remap table: which trigger keys are
// rewritten while the remap modifier is held, and into what.
package remap

import (
	"fmt"

	"keyshift/internal/keys"
)

// State is the press/release disposition of a synthetic action.
type State uint8

const (
	// Up always synthesizes a release.
	Up State = iota
	// Down always synthesizes a press.
	Down
	// FollowExisting mirrors the triggering event's press/release state.
	FollowExisting
)

func (s State) String() string {
	switch s {
	case Up:
		return "up"
	case Down:
		return "down"
	case FollowExisting:
		return "follow"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// Action is one synthetic key transition of a remap entry.
type Action struct {
	Code  keys.Code
	State State
}

// Press returns an action that always presses c.
func Press(c keys.Code) Action { return Action{Code: c, State: Down} }

// Release returns an action that always releases c.
func Release(c keys.Code) Action { return Action{Code: c, State: Up} }

// Follow returns an action that mirrors the trigger's edge onto c.
func Follow(c keys.Code) Action { return Action{Code: c, State: FollowExisting} }

// Resolve turns the action into a concrete stroke for a trigger whose
// edge was triggerRelease.
func (a Action) Resolve(triggerRelease bool) keys.Stroke {
	release := triggerRelease
	switch a.State {
	case Up:
		release = true
	case Down:
		release = false
	}
	return keys.Stroke{Code: a.Code, Release: release}
}

func (a Action) String() string {
	return fmt.Sprintf("%s:%s", a.Code, a.State)
}
