//go:build !windows

package input

import (
	"context"
	"log/slog"

	"keyshift/internal/keys"
)

// Hook is a stub on this platform.
type Hook struct {
	logger *slog.Logger
}

// NewHook returns a stub hook.
func NewHook(_ Handler, logger *slog.Logger) *Hook {
	return &Hook{logger: logger}
}

// Run always fails with ErrUnsupported.
func (h *Hook) Run(_ context.Context) error {
	return ErrUnsupported
}

// AsyncKeyState reports every key as released.
type AsyncKeyState struct{}

func (AsyncKeyState) IsHeld(keys.Code) bool { return false }

// Sender is a stub on this platform.
type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

// Submit injects nothing.
func (s *Sender) Submit(strokes []keys.Stroke) (int, error) {
	if len(strokes) == 0 {
		return 0, nil
	}
	return 0, ErrUnsupported
}
