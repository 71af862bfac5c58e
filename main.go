// Command scrollshim is built as a shared library and preloaded in front of
// libinput to rescale scroll axis values:
//
//	go build -buildmode=c-shared -o libinput_scroll_shim.so .
//	SCROLL_SCALE=2 LD_PRELOAD=$PWD/libinput_scroll_shim.so <compositor>
//
// See internal/config for the SCROLL_* variables.
package main

import "C"

import (
	"unsafe"

	"github.com/soar/scrollshim/internal/hook"
)

//export libinput_event_pointer_get_axis_value
func libinput_event_pointer_get_axis_value(event unsafe.Pointer, axis C.int) C.double {
	return C.double(hook.Default().Value(hook.AxisValue, event, int32(axis)))
}

//export libinput_event_pointer_get_axis_value_v120
func libinput_event_pointer_get_axis_value_v120(event unsafe.Pointer, axis C.int) C.double {
	return C.double(hook.Default().Value(hook.AxisValueV120, event, int32(axis)))
}

//export libinput_event_pointer_get_scroll_value
func libinput_event_pointer_get_scroll_value(event unsafe.Pointer, axis C.int) C.double {
	return C.double(hook.Default().Value(hook.ScrollValue, event, int32(axis)))
}

//export libinput_event_pointer_get_scroll_value_v120
func libinput_event_pointer_get_scroll_value_v120(event unsafe.Pointer, axis C.int) C.double {
	return C.double(hook.Default().Value(hook.ScrollValueV120, event, int32(axis)))
}

// main is required by -buildmode=c-shared and never runs inside the host.
func main() {}
