// Package tray provides the system tray icon using getlantern/systray.
package tray

import (
	"sync"

	"github.com/getlantern/systray"
)

// MenuItem represents a menu item
type MenuItem struct {
	ID        int
	Title     string
	Checkable bool
	Checked   bool
	Callback  func()
	OnToggle  func(checked bool)
	item      *systray.MenuItem
}

// Tray manages the system tray icon and menu
type Tray struct {
	tooltip string
	items   []*MenuItem
	quitCh  chan struct{}

	mu      sync.Mutex
	running bool
	stopped bool
}

// New creates a new system tray
func New(tooltip string) *Tray {
	return &Tray{
		tooltip: tooltip,
		items:   make([]*MenuItem, 0),
		quitCh:  make(chan struct{}),
	}
}

// AddMenuItem adds a menu item to the tray
func (t *Tray) AddMenuItem(title string, callback func()) int {
	return t.add(&MenuItem{Title: title, Callback: callback})
}

// AddCheckItem adds a check item; onToggle receives the new state.
func (t *Tray) AddCheckItem(title string, checked bool, onToggle func(checked bool)) int {
	return t.add(&MenuItem{Title: title, Checkable: true, Checked: checked, OnToggle: onToggle})
}

func (t *Tray) add(mi *MenuItem) int {
	mi.ID = len(t.items)
	t.items = append(t.items, mi)
	return mi.ID
}

// AddSeparator adds a separator to the menu
func (t *Tray) AddSeparator() {
	t.items = append(t.items, nil) // nil indicates separator
}

// Items returns the menu layout; nil entries are separators.
func (t *Tray) Items() []*MenuItem {
	return t.items
}

// Run starts the tray event loop and blocks until Stop. It returns at once
// if Stop was already called.
func (t *Tray) Run() {
	t.mu.Lock()
	if t.stopped {
		t.mu.Unlock()
		return
	}
	t.running = true
	t.mu.Unlock()

	systray.Run(t.setupMenu, func() { close(t.quitCh) })
}

// Stop stops the tray. It is safe to call more than once and before Run.
func (t *Tray) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped {
		return
	}
	t.stopped = true
	if t.running {
		systray.Quit()
	}
}

// setupMenu is called when systray is ready
func (t *Tray) setupMenu() {
	systray.SetTitle("keyshift")
	systray.SetTooltip(t.tooltip)
	systray.SetIcon(getIcon())

	for _, menuItem := range t.items {
		if menuItem == nil {
			systray.AddSeparator()
			continue
		}
		if menuItem.Checkable {
			menuItem.item = systray.AddMenuItemCheckbox(menuItem.Title, "", menuItem.Checked)
		} else {
			menuItem.item = systray.AddMenuItem(menuItem.Title, "")
		}

		// Handle clicks in goroutine
		go func(mi *MenuItem) {
			for {
				select {
				case <-mi.item.ClickedCh:
					mi.click()
				case <-t.quitCh:
					return
				}
			}
		}(menuItem)
	}
}

// click toggles a check item or runs the callback.
func (mi *MenuItem) click() {
	if mi.Checkable {
		mi.Checked = !mi.Checked
		if mi.item != nil {
			if mi.Checked {
				mi.item.Check()
			} else {
				mi.item.Uncheck()
			}
		}
		if mi.OnToggle != nil {
			mi.OnToggle(mi.Checked)
		}
		return
	}
	if mi.Callback != nil {
		mi.Callback()
	}
}

// getIcon returns a placeholder icon (valid 16x16 ICO)
func getIcon() []byte {
	icon := make([]byte, 1118)
	// ICO Header
	copy(icon[0:6], []byte{0x00, 0x00, 0x01, 0x00, 0x01, 0x00})
	// Icon Directory
	copy(icon[6:22], []byte{
		0x10, 0x10, 0x00, 0x00, 0x01, 0x00, 0x20, 0x00,
		0x48, 0x04, 0x00, 0x00, // 40 header + 1024 pixels + 32 mask
		0x16, 0x00, 0x00, 0x00, // Offset
	})
	// DIB Header
	copy(icon[22:62], []byte{
		0x28, 0x00, 0x00, 0x00, // Size
		0x10, 0x00, 0x00, 0x00, // Width
		0x20, 0x00, 0x00, 0x00, // Height (16 * 2 for icon)
		0x01, 0x00, // Planes
		0x20, 0x00, // BPP
		0x00, 0x00, 0x00, 0x00, // Compression
		0x00, 0x04, 0x00, 0x00, // Image Size
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
	})
	// Fill the pixels with opaque dark grey; the mask stays 0.
	for i := 62; i < 62+1024; i += 4 {
		copy(icon[i:i+4], []byte{0x40, 0x40, 0x40, 0xFF})
	}
	return icon
}
