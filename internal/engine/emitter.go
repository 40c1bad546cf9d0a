package engine

import (
	"log/slog"

	"keyshift/internal/keys"
	"keyshift/internal/remap"
)

// Submitter injects strokes into the OS input stream as one batch and
// returns how many were accepted. Injected strokes re-enter the hook.
type Submitter interface {
	Submit(strokes []keys.Stroke) (int, error)
}

// Emitter resolves actions into strokes and submits them.
type Emitter struct {
	submitter Submitter
	logger    *slog.Logger
}

// NewEmitter returns an Emitter writing through s.
func NewEmitter(s Submitter, logger *slog.Logger) *Emitter {
	return &Emitter{submitter: s, logger: logger}
}

// Emit submits a single stroke.
func (e *Emitter) Emit(code keys.Code, release bool) int {
	return e.submit([]keys.Stroke{{Code: code, Release: release}})
}

// EmitActions submits actions in order as one batch. FollowExisting actions
// take their edge from triggerRelease.
func (e *Emitter) EmitActions(actions []remap.Action, triggerRelease bool) int {
	strokes := make([]keys.Stroke, len(actions))
	for i, a := range actions {
		strokes[i] = a.Resolve(triggerRelease)
	}
	return e.submit(strokes)
}

// EmitStrokes submits strokes in order as one batch.
func (e *Emitter) EmitStrokes(strokes []keys.Stroke) int {
	return e.submit(strokes)
}

func (e *Emitter) submit(strokes []keys.Stroke) int {
	if len(strokes) == 0 {
		return 0
	}
	for _, s := range strokes {
		// Fail before anything is injected.
		s.Code.VK()
	}
	n, err := e.submitter.Submit(strokes)
	if n < len(strokes) {
		e.logger.Warn("Partial input submission", "requested", len(strokes), "submitted", n, "error", err)
	}
	return n
}
