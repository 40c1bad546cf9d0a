package remap

import "keyshift/internal/keys"

// chord presses mod, taps key and releases mod.
func chord(mod, key keys.Code) []Action {
	return []Action{Press(mod), Press(key), Release(key), Release(mod)}
}

func follow(c keys.Code) []Action {
	return []Action{Follow(c)}
}

var defaultTable = MustTable(map[keys.Code][]Action{
	// Number row: function keys.
	keys.Key1:     follow(keys.F1),
	keys.Key2:     follow(keys.F2),
	keys.Key3:     follow(keys.F3),
	keys.Key4:     follow(keys.F4),
	keys.Key5:     follow(keys.F5),
	keys.Key6:     follow(keys.F6),
	keys.Key7:     follow(keys.F7),
	keys.Key8:     follow(keys.F8),
	keys.Key9:     follow(keys.F9),
	keys.Key0:     follow(keys.F10),
	keys.OEM4:     follow(keys.F11),
	keys.OEMMinus: follow(keys.F12),

	// Top row.
	keys.A: follow(keys.Escape),
	keys.Z: follow(keys.BrowserBack),
	keys.E: chord(keys.LControl, keys.F), // find
	keys.R: follow(keys.BrowserForward),
	keys.T: follow(keys.Insert),
	keys.Y: follow(keys.Prior),
	keys.U: follow(keys.Home),
	keys.I: follow(keys.Up),
	keys.O: follow(keys.End),
	keys.P: chord(keys.LShift, keys.F10), // context menu

	// Home row: one-handed modifiers and navigation.
	keys.Q:    follow(keys.LMenu),
	keys.S:    follow(keys.LWin),
	keys.D:    follow(keys.LShift),
	keys.F:    follow(keys.LControl),
	keys.G:    follow(keys.RMenu),
	keys.H:    follow(keys.Next),
	keys.J:    follow(keys.Left),
	keys.K:    follow(keys.Down),
	keys.L:    follow(keys.Right),
	keys.M:    follow(keys.Delete),
	keys.OEM3: follow(keys.Capital),

	// Bottom row: editing chords.
	keys.W:        chord(keys.LControl, keys.Z),
	keys.X:        chord(keys.LControl, keys.X),
	keys.C:        chord(keys.LControl, keys.C),
	keys.V:        chord(keys.LControl, keys.V),
	keys.OEMComma: follow(keys.Back),
	keys.Space:    follow(keys.Return),
})

// Default returns the built-in table.
func Default() *Table {
	return defaultTable
}
