// Package input is the OS boundary of the remapper: the low-level keyboard
// hook, the asynchronous key-state query and synthetic input submission.
// Only Windows is supported; other platforms get stubs that report
// ErrUnsupported.
package input

import (
	"errors"

	"keyshift/internal/engine"
	"keyshift/internal/keys"
)

var (
	// ErrUnsupported is returned on platforms without a keyboard hook.
	ErrUnsupported = errors.New("keyboard hook not supported on this platform")
	// ErrHookActive is returned when a second hook is started in-process.
	ErrHookActive = errors.New("keyboard hook already running")
)

// Handler classifies hooked events.
type Handler interface {
	Handle(ev keys.Event) engine.Verdict
}

var (
	_ engine.KeyState  = AsyncKeyState{}
	_ engine.Submitter = (*Sender)(nil)
)
