package trampoline

import "github.com/ebitengine/purego"

// Native binds addresses as C functions through purego.
type Native struct{}

func (Native) BindAxisValue(addr uintptr) AxisValueFunc {
	var fn AxisValueFunc
	purego.RegisterFunc(&fn, addr)
	return fn
}

func (Native) BindAxisSource(addr uintptr) AxisSourceFunc {
	var fn AxisSourceFunc
	purego.RegisterFunc(&fn, addr)
	return fn
}
