//go:build windows

// Package osutils wraps small platform queries.
package osutils

import (
	"golang.org/x/sys/windows"
)

// IsElevated reports whether the process token is elevated. A non-elevated
// low-level hook does not see input aimed at elevated windows.
func IsElevated() bool {
	var token windows.Token
	err := windows.OpenProcessToken(windows.CurrentProcess(), windows.TOKEN_QUERY, &token)
	if err != nil {
		return false
	}
	defer token.Close()

	return token.IsElevated()
}
