// Package autostart registers keyshift to start at login.
package autostart

import (
	"fmt"
	"os"
	"strings"
)

// valueName is the Run-key value keyshift owns.
const valueName = "keyshift"

// Enable registers the current executable to start at login.
func Enable() error {
	execPath, err := os.Executable()
	if err != nil {
		return fmt.Errorf("failed to get executable path: %w", err)
	}
	return enable(commandLine(execPath))
}

// Disable removes the login registration. It is not an error if none
// exists.
func Disable() error {
	return disable()
}

// IsEnabled reports whether a login registration exists.
func IsEnabled() bool {
	return isEnabled()
}

// Command returns the registered command line, or "" when disabled.
func Command() string {
	return command()
}

// commandLine quotes execPath and starts the run command.
func commandLine(execPath string) string {
	return `"` + strings.ReplaceAll(execPath, `"`, ``) + `" run`
}
