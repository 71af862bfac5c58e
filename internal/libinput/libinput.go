// Package libinput holds the subset of the libinput ABI that the shim
// interposes on: axis identifiers, axis sources and the symbol names.
package libinput

import (
	"fmt"
	"strconv"
	"strings"
)

// Axis mirrors enum libinput_pointer_axis.
type Axis int32

const (
	AxisScrollVertical   Axis = 0
	AxisScrollHorizontal Axis = 1
)

// IsScroll reports whether a is one of the two scroll axes.
func (a Axis) IsScroll() bool {
	return a == AxisScrollVertical || a == AxisScrollHorizontal
}

func (a Axis) String() string {
	switch a {
	case AxisScrollVertical:
		return "vertical"
	case AxisScrollHorizontal:
		return "horizontal"
	default:
		return "axis(" + strconv.Itoa(int(a)) + ")"
	}
}

// AxisSource mirrors enum libinput_pointer_axis_source.
type AxisSource int32

const (
	SourceWheel      AxisSource = 0
	SourceFinger     AxisSource = 1
	SourceContinuous AxisSource = 2
	SourceWheelTilt  AxisSource = 3
)

func (s AxisSource) String() string {
	switch s {
	case SourceWheel:
		return "wheel"
	case SourceFinger:
		return "finger"
	case SourceContinuous:
		return "continuous"
	case SourceWheelTilt:
		return "wheel-tilt"
	default:
		return "source(" + strconv.Itoa(int(s)) + ")"
	}
}

// ParseAxis accepts "vertical", "horizontal" (or "y"/"x") and raw integers.
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "vertical", "v", "y":
		return AxisScrollVertical, nil
	case "horizontal", "h", "x":
		return AxisScrollHorizontal, nil
	}
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("unknown axis %q", s)
	}
	return Axis(n), nil
}

// ParseAxisSource accepts source names and raw integers. The second return
// value is false for "none", meaning no source is known.
func ParseAxisSource(s string) (AxisSource, bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return 0, false, nil
	case "wheel":
		return SourceWheel, true, nil
	case "finger":
		return SourceFinger, true, nil
	case "continuous":
		return SourceContinuous, true, nil
	case "wheel-tilt", "tilt":
		return SourceWheelTilt, true, nil
	}
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, false, fmt.Errorf("unknown axis source %q", s)
	}
	return AxisSource(n), true, nil
}

// Symbols the shim exports and resolves from the genuine library.
const (
	SymbolAxisValue       = "libinput_event_pointer_get_axis_value"
	SymbolAxisValueV120   = "libinput_event_pointer_get_axis_value_v120"
	SymbolAxisSource      = "libinput_event_pointer_get_axis_source"
	SymbolScrollValue     = "libinput_event_pointer_get_scroll_value"
	SymbolScrollValueV120 = "libinput_event_pointer_get_scroll_value_v120"
)

// Sonames lists the library names tried by explicit loading, newest first.
var Sonames = []string{
	"libinput.so.10",
	"libinput.so.9",
	"libinput.so.8",
	"libinput.so",
}
