//go:build windows

package input

import (
	"fmt"
	"unsafe"

	"keyshift/internal/keys"
)

var (
	procSendInput        = user32.NewProc("SendInput")
	procGetAsyncKeyState = user32.NewProc("GetAsyncKeyState")
	procMapVirtualKey    = user32.NewProc("MapVirtualKeyW")
)

const MAPVK_VK_TO_VSC = 0

// AsyncKeyState queries GetAsyncKeyState on every call.
type AsyncKeyState struct{}

// IsHeld reports whether the most significant bit of the key state is set.
func (AsyncKeyState) IsHeld(code keys.Code) bool {
	ret, _, _ := procGetAsyncKeyState.Call(uintptr(code))
	return uint16(ret)&0x8000 != 0
}

// Sender submits strokes with SendInput.
type Sender struct{}

// NewSender returns a Sender.
func NewSender() *Sender {
	return &Sender{}
}

// Submit injects strokes as one SendInput call and returns how many the OS
// accepted.
func (s *Sender) Submit(strokes []keys.Stroke) (int, error) {
	if len(strokes) == 0 {
		return 0, nil
	}
	inputs := buildInputs(strokes, scanCode)
	ret, _, err := procSendInput.Call(
		uintptr(len(inputs)),
		uintptr(unsafe.Pointer(&inputs[0])),
		unsafe.Sizeof(inputs[0]),
	)
	if n := int(uint32(ret)); n < len(inputs) {
		return n, fmt.Errorf("SendInput accepted %d of %d events: %w", n, len(inputs), err)
	}
	return len(inputs), nil
}

func scanCode(vk uint16) uint16 {
	ret, _, _ := procMapVirtualKey.Call(uintptr(vk), MAPVK_VK_TO_VSC)
	return uint16(ret)
}
