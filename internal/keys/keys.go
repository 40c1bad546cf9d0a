// Package keys defines virtual-key codes and the event types exchanged
// between the keyboard hook and the remap engine.
package keys

import (
	"errors"
	"fmt"
)

// ErrCodeRange is returned when a code cannot be represented as a 16-bit
// native virtual key.
var ErrCodeRange = errors.New("key code out of 16-bit range")

// Code is a native virtual-key code as delivered by the keyboard hook.
type Code uint32

// Virtual-key codes used by the built-in table.
const (
	Back    Code = 0x08
	Return  Code = 0x0D
	Capital Code = 0x14 // Caps Lock
	Escape  Code = 0x1B
	Space   Code = 0x20
	Prior   Code = 0x21 // Page Up
	Next    Code = 0x22 // Page Down
	End     Code = 0x23
	Home    Code = 0x24
	Left    Code = 0x25
	Up      Code = 0x26
	Right   Code = 0x27
	Down    Code = 0x28
	Insert  Code = 0x2D
	Delete  Code = 0x2E

	Key0 Code = 0x30
	Key1 Code = 0x31
	Key2 Code = 0x32
	Key3 Code = 0x33
	Key4 Code = 0x34
	Key5 Code = 0x35
	Key6 Code = 0x36
	Key7 Code = 0x37
	Key8 Code = 0x38
	Key9 Code = 0x39

	A Code = 0x41
	B Code = 0x42
	C Code = 0x43
	D Code = 0x44
	E Code = 0x45
	F Code = 0x46
	G Code = 0x47
	H Code = 0x48
	I Code = 0x49
	J Code = 0x4A
	K Code = 0x4B
	L Code = 0x4C
	M Code = 0x4D
	N Code = 0x4E
	O Code = 0x4F
	P Code = 0x50
	Q Code = 0x51
	R Code = 0x52
	S Code = 0x53
	T Code = 0x54
	U Code = 0x55
	V Code = 0x56
	W Code = 0x57
	X Code = 0x58
	Y Code = 0x59
	Z Code = 0x5A

	LWin Code = 0x5B

	F1  Code = 0x70
	F2  Code = 0x71
	F3  Code = 0x72
	F4  Code = 0x73
	F5  Code = 0x74
	F6  Code = 0x75
	F7  Code = 0x76
	F8  Code = 0x77
	F9  Code = 0x78
	F10 Code = 0x79
	F11 Code = 0x7A
	F12 Code = 0x7B
	F21 Code = 0x84
	F22 Code = 0x85

	LShift   Code = 0xA0
	RShift   Code = 0xA1
	LControl Code = 0xA2
	RControl Code = 0xA3
	LMenu    Code = 0xA4 // left Alt
	RMenu    Code = 0xA5 // right Alt

	BrowserBack    Code = 0xA6
	BrowserForward Code = 0xA7

	OEM1     Code = 0xBA
	OEMComma Code = 0xBC
	OEMMinus Code = 0xBD
	OEM2     Code = 0xBF
	OEM3     Code = 0xC0
	OEM4     Code = 0xDB
)

// Modifiers lists the six modifier keys the engine compensates for and
// force-releases, in the order they are examined.
var Modifiers = [...]Code{LShift, RShift, LControl, RControl, LMenu, RMenu}

var names = map[Code]string{
	Back:           "BACKSPACE",
	Return:         "ENTER",
	Capital:        "CAPSLOCK",
	Escape:         "ESC",
	Space:          "SPACE",
	Prior:          "PAGEUP",
	Next:           "PAGEDOWN",
	End:            "END",
	Home:           "HOME",
	Left:           "LEFT",
	Up:             "UP",
	Right:          "RIGHT",
	Down:           "DOWN",
	Insert:         "INSERT",
	Delete:         "DELETE",
	LWin:           "LWIN",
	F21:            "F21",
	F22:            "F22",
	LShift:         "LSHIFT",
	RShift:         "RSHIFT",
	LControl:       "LCTRL",
	RControl:       "RCTRL",
	LMenu:          "LALT",
	RMenu:          "RALT",
	BrowserBack:    "BROWSER_BACK",
	BrowserForward: "BROWSER_FORWARD",
	OEM1:           "OEM_1",
	OEMComma:       "COMMA",
	OEMMinus:       "MINUS",
	OEM2:           "OEM_2",
	OEM3:           "OEM_3",
	OEM4:           "OEM_4",
}

// String returns a readable name, or the hex code for unnamed keys.
func (c Code) String() string {
	if n, ok := names[c]; ok {
		return n
	}

	// Letters A-Z and digits 0-9
	if (c >= A && c <= Z) || (c >= Key0 && c <= Key9) {
		return string(rune(c))
	}

	// F1-F12
	if c >= F1 && c <= F12 {
		return fmt.Sprintf("F%d", c-F1+1)
	}

	return fmt.Sprintf("0x%02X", uint32(c))
}

// Check returns ErrCodeRange if c does not fit the native 16-bit field.
func (c Code) Check() error {
	if c > 0xFFFF {
		return fmt.Errorf("%w: 0x%X", ErrCodeRange, uint32(c))
	}
	return nil
}

// VK converts c to the 16-bit native representation. It panics when c is
// out of range: emitting part of a chord would leave modifiers stuck.
func (c Code) VK() uint16 {
	if err := c.Check(); err != nil {
		panic(err)
	}
	return uint16(c)
}

// Event is one keyboard transition observed by the hook.
type Event struct {
	Code     Code
	Release  bool
	Injected bool // synthesized by SendInput rather than a physical keyboard
}

func (e Event) String() string {
	edge := "down"
	if e.Release {
		edge = "up"
	}
	if e.Injected {
		return fmt.Sprintf("%s %s (injected)", e.Code, edge)
	}
	return fmt.Sprintf("%s %s", e.Code, edge)
}

// Stroke is one synthetic key transition to submit.
type Stroke struct {
	Code    Code
	Release bool
}
