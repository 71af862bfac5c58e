// Package symbol locates the genuine implementation of a C symbol that the
// shim also exports under the same name.
package symbol

import "github.com/soar/scrollshim/internal/libinput"

// Source resolves a symbol name to an address. Every failure is reported as
// (0, false).
type Source interface {
	Resolve(name string) (uintptr, bool)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(name string) (uintptr, bool)

func (f SourceFunc) Resolve(name string) (uintptr, bool) {
	return f(name)
}

// Chain tries each source in order. The first hit wins.
type Chain []Source

func (c Chain) Resolve(name string) (uintptr, bool) {
	for _, s := range c {
		if addr, ok := s.Resolve(name); ok && addr != 0 {
			return addr, true
		}
	}
	return 0, false
}

// Next asks the dynamic loader for the next definition of a symbol after
// the object that contains this package, skipping the shim's own exports.
type Next struct{}

// Default is the production strategy: the next definition already mapped
// into the process, then an explicitly loaded libinput.
func Default() Source {
	return Chain{Next{}, NewLibrary(libinput.Sonames...)}
}
