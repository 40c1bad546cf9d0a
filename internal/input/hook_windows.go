//go:build windows

package input

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync/atomic"
	"unsafe"

	"golang.org/x/sys/windows"

	"keyshift/internal/engine"
	"keyshift/internal/keys"
)

var (
	user32                  = windows.NewLazySystemDLL("user32.dll")
	kernel32                = windows.NewLazySystemDLL("kernel32.dll")
	procSetWindowsHookEx    = user32.NewProc("SetWindowsHookExW")
	procCallNextHookEx      = user32.NewProc("CallNextHookEx")
	procUnhookWindowsHookEx = user32.NewProc("UnhookWindowsHookEx")
	procGetMessage          = user32.NewProc("GetMessageW")
	procPeekMessage         = user32.NewProc("PeekMessageW")
	procTranslateMessage    = user32.NewProc("TranslateMessage")
	procDispatchMessage     = user32.NewProc("DispatchMessageW")
	procPostThreadMessage   = user32.NewProc("PostThreadMessageW")
	procGetModuleHandle     = kernel32.NewProc("GetModuleHandleW")
)

const (
	WH_KEYBOARD_LL = 13
	HC_ACTION      = 0
	WM_QUIT        = 0x0012
	WM_KEYDOWN     = 0x0100
	WM_KEYUP       = 0x0101
	WM_SYSKEYDOWN  = 0x0104
	WM_SYSKEYUP    = 0x0105
	PM_NOREMOVE    = 0x0000
	LLKHF_INJECTED = 0x00000010
)

type KBDLLHOOKSTRUCT struct {
	VkCode      uint32
	ScanCode    uint32
	Flags       uint32
	Time        uint32
	DwExtraInfo uintptr
}

type MSG struct {
	Hwnd    windows.Handle
	Message uint32
	WParam  uintptr
	LParam  uintptr
	Time    uint32
	Pt      struct{ X, Y int32 }
}

var (
	activeHook       atomic.Pointer[Hook]
	keyboardCallback = windows.NewCallback(keyboardHookProc)
)

// Hook owns the low-level keyboard hook registration.
type Hook struct {
	handler Handler
	logger  *slog.Logger
}

// NewHook returns a hook that routes every keyboard event through handler.
func NewHook(handler Handler, logger *slog.Logger) *Hook {
	return &Hook{handler: handler, logger: logger}
}

// Run installs the hook and pumps messages on a locked OS thread until ctx
// is cancelled. The hook is removed exactly once on every return path.
// An installation failure is returned immediately.
func (h *Hook) Run(ctx context.Context) error {
	if !activeHook.CompareAndSwap(nil, h) {
		return ErrHookActive
	}
	defer activeHook.Store(nil)

	// Hooks are delivered to the thread that installed them, which must
	// keep pumping messages.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	hMod, _, _ := procGetModuleHandle.Call(0)
	handle, _, err := procSetWindowsHookEx.Call(WH_KEYBOARD_LL, keyboardCallback, hMod, 0)
	if handle == 0 {
		return fmt.Errorf("SetWindowsHookExW failed: %w", err)
	}
	defer func() {
		procUnhookWindowsHookEx.Call(handle)
		h.logger.Info("Keyboard hook removed")
	}()
	h.logger.Info("Keyboard hook installed")

	// Force creation of the thread message queue before anyone posts to it.
	var msg MSG
	procPeekMessage.Call(uintptr(unsafe.Pointer(&msg)), 0, 0, 0, PM_NOREMOVE)

	tid := windows.GetCurrentThreadId()
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			procPostThreadMessage.Call(uintptr(tid), WM_QUIT, 0, 0)
		case <-stop:
		}
	}()

	for {
		ret, _, err := procGetMessage.Call(uintptr(unsafe.Pointer(&msg)), 0, 0, 0)
		switch int32(ret) {
		case 0:
			return nil
		case -1:
			return fmt.Errorf("GetMessageW failed: %w", err)
		}
		procTranslateMessage.Call(uintptr(unsafe.Pointer(&msg)))
		procDispatchMessage.Call(uintptr(unsafe.Pointer(&msg)))
	}
}

func keyboardHookProc(nCode int, wParam uintptr, lParam uintptr) uintptr {
	if h := activeHook.Load(); nCode == HC_ACTION && h != nil {
		kbd := (*KBDLLHOOKSTRUCT)(unsafe.Pointer(lParam))
		ev := keys.Event{
			Code:     keys.Code(kbd.VkCode),
			Release:  wParam == WM_KEYUP || wParam == WM_SYSKEYUP,
			Injected: kbd.Flags&LLKHF_INJECTED != 0,
		}
		if h.handler.Handle(ev) == engine.Consume {
			return 1
		}
	}
	ret, _, _ := procCallNextHookEx.Call(0, uintptr(nCode), wParam, lParam)
	return ret
}
