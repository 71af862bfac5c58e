//go:build linux

// Package console provides process-level helpers for the host's error stream.
// The shim runs inside someone else's process, so it never owns the terminal;
// it only asks whether stderr is one, and knows how to take the process down.
package console

import (
	"os"
	"runtime"

	"golang.org/x/sys/unix"
)

// IsTerminal reports whether f refers to a terminal.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	_, err := unix.IoctlGetTermios(int(f.Fd()), unix.TCGETS)
	return err == nil
}

// Abort terminates the process with SIGABRT, delivered to the calling thread
// so that the host sees the same crash a C abort() would produce. It does not
// return.
func Abort() {
	runtime.LockOSThread()
	_ = unix.Tgkill(unix.Getpid(), unix.Gettid(), unix.SIGABRT)
	// Only reached if SIGABRT is blocked or handled and returned.
	os.Exit(134)
}
