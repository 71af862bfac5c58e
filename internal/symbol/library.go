package symbol

import (
	"sync"

	"github.com/ebitengine/purego"
)

// Library resolves symbols by loading a shared library explicitly. Names
// are tried in order until one loads and exports the symbol. Loaded handles
// stay open for the life of the process.
type Library struct {
	names  []string
	open   func(name string) (uintptr, error)
	lookup func(handle uintptr, name string) (uintptr, error)

	mu      sync.Mutex
	handles map[string]uintptr
}

// NewLibrary returns a Library over the given sonames, loaded with purego.
func NewLibrary(names ...string) *Library {
	return &Library{
		names: names,
		open: func(name string) (uintptr, error) {
			return purego.Dlopen(name, purego.RTLD_LAZY)
		},
		lookup:  purego.Dlsym,
		handles: make(map[string]uintptr),
	}
}

// Names returns the sonames l tries, in order.
func (l *Library) Names() []string {
	return append([]string(nil), l.names...)
}

func (l *Library) Resolve(name string) (uintptr, bool) {
	for _, soname := range l.names {
		h, ok := l.handle(soname)
		if !ok {
			continue
		}
		addr, err := l.lookup(h, name)
		if err == nil && addr != 0 {
			return addr, true
		}
	}
	return 0, false
}

func (l *Library) handle(soname string) (uintptr, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if h, ok := l.handles[soname]; ok {
		return h, true
	}
	h, err := l.open(soname)
	if err != nil || h == 0 {
		return 0, false
	}
	l.handles[soname] = h
	return h, true
}
