//go:build !windows

// Package osutils wraps small platform queries.
package osutils

// IsElevated is always false off Windows.
func IsElevated() bool {
	return false
}
