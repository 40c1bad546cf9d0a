package input

import "keyshift/internal/keys"

// SendInput structures. keyboardInput matches the C INPUT layout for
// keyboard events on both 386 and amd64: the trailing pad covers the
// larger MOUSEINPUT member of the union.

const (
	inputKeyboard = 1

	keyeventfExtendedKey = 0x0001
	keyeventfKeyUp       = 0x0002
)

type keybdInput struct {
	Vk        uint16
	Scan      uint16
	Flags     uint32
	Time      uint32
	ExtraInfo uintptr
}

type keyboardInput struct {
	Type uint32
	Ki   keybdInput
	_    [8]byte
}

// buildInputs converts strokes to SendInput records in order. scan maps a
// virtual key to its scan code.
func buildInputs(strokes []keys.Stroke, scan func(vk uint16) uint16) []keyboardInput {
	out := make([]keyboardInput, len(strokes))
	for i, s := range strokes {
		vk := s.Code.VK()
		flags := uint32(keyeventfExtendedKey)
		if s.Release {
			flags |= keyeventfKeyUp
		}
		out[i] = keyboardInput{
			Type: inputKeyboard,
			Ki: keybdInput{
				Vk:    vk,
				Scan:  scan(vk),
				Flags: flags,
			},
		}
	}
	return out
}
