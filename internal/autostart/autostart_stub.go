//go:build !windows

package autostart

import (
	"fmt"
	"runtime"
)

func enable(string) error {
	return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
}

func disable() error {
	return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
}

func isEnabled() bool {
	return false
}

func command() string {
	return ""
}
