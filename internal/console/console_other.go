//go:build !linux

// Package console provides process-level helpers for the host's error stream.
// On non-Linux platforms, this package provides stub implementations.
package console

import "os"

// IsTerminal returns false on non-Linux platforms.
func IsTerminal(f *os.File) bool {
	return false
}

// Abort exits with the status a SIGABRT would produce.
func Abort() {
	os.Exit(134)
}
