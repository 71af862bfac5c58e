// Package trampoline holds the write-once references to the genuine libinput
// functions that the shim calls through to.
package trampoline

import (
	"errors"
	"fmt"
	"sync"
	"unsafe"

	"github.com/soar/scrollshim/internal/libinput"
	"github.com/soar/scrollshim/internal/symbol"
)

// AxisValueFunc has the C signature
// double (*)(struct libinput_event_pointer *, enum libinput_pointer_axis).
type AxisValueFunc func(event unsafe.Pointer, axis int32) float64

// AxisSourceFunc has the C signature
// enum libinput_pointer_axis_source (*)(struct libinput_event_pointer *).
type AxisSourceFunc func(event unsafe.Pointer) int32

// Binder turns a resolved address into a callable Go function.
type Binder interface {
	BindAxisValue(addr uintptr) AxisValueFunc
	BindAxisSource(addr uintptr) AxisSourceFunc
}

// Kind names one of the value accessors.
type Kind int

const (
	AxisValue Kind = iota
	AxisValueV120
	ScrollValue
	ScrollValueV120
	numKinds
)

var kindSymbols = [numKinds]string{
	AxisValue:       libinput.SymbolAxisValue,
	AxisValueV120:   libinput.SymbolAxisValueV120,
	ScrollValue:     libinput.SymbolScrollValue,
	ScrollValueV120: libinput.SymbolScrollValueV120,
}

// Symbol returns the C symbol name for k.
func (k Kind) Symbol() string {
	if k < 0 || k >= numKinds {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindSymbols[k]
}

func (k Kind) String() string { return k.Symbol() }

// ErrMandatoryMissing is returned when the primary axis value accessor has no
// genuine implementation. There is no safe value to return in that case.
var ErrMandatoryMissing = errors.New("could not resolve original")

// Slot is a lazily resolved reference to one genuine function. Resolution
// runs at most once; the outcome, found or not, is permanent.
type Slot[F any] struct {
	name string
	get  func() (F, bool)
}

func newSlot[F any](name string, src symbol.Source, bind func(uintptr) F) *Slot[F] {
	return &Slot[F]{
		name: name,
		get: sync.OnceValues(func() (F, bool) {
			addr, ok := src.Resolve(name)
			if !ok || addr == 0 {
				var zero F
				return zero, false
			}
			return bind(addr), true
		}),
	}
}

// Name is the symbol the slot resolves.
func (s *Slot[F]) Name() string { return s.name }

// Get resolves the slot on first use and returns the cached result after.
func (s *Slot[F]) Get() (F, bool) { return s.get() }

// Set is the full collection of trampolines the shim uses.
type Set struct {
	values [numKinds]*Slot[AxisValueFunc]
	source *Slot[AxisSourceFunc]
}

// New creates a Set that resolves symbols through src and binds them with b.
// Nothing is resolved until first use.
func New(src symbol.Source, b Binder) *Set {
	s := &Set{
		source: newSlot(libinput.SymbolAxisSource, src, b.BindAxisSource),
	}
	for k := range s.values {
		s.values[k] = newSlot(Kind(k).Symbol(), src, b.BindAxisValue)
	}
	return s
}

// Value returns the genuine accessor for k if it exists.
func (s *Set) Value(k Kind) (AxisValueFunc, bool) {
	if k < 0 || k >= numKinds {
		return nil, false
	}
	return s.values[k].Get()
}

// RequireAxisValue returns the primary accessor, or ErrMandatoryMissing.
// This is the only place where absence of a genuine symbol is an error.
func (s *Set) RequireAxisValue() (AxisValueFunc, error) {
	slot := s.values[AxisValue]
	fn, ok := slot.Get()
	if !ok {
		return nil, fmt.Errorf("%w %s", ErrMandatoryMissing, slot.Name())
	}
	return fn, nil
}

// Original walks chain and returns the first accessor that exists. Absent
// optional accessors are skipped; the primary accessor always ends the walk.
func (s *Set) Original(chain []Kind) (AxisValueFunc, error) {
	for _, k := range chain {
		if k == AxisValue {
			break
		}
		if fn, ok := s.Value(k); ok {
			return fn, nil
		}
	}
	return s.RequireAxisValue()
}

// AxisSource returns the genuine axis source accessor if it exists.
func (s *Set) AxisSource() (AxisSourceFunc, bool) {
	return s.source.Get()
}
