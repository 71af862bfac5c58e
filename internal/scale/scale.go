// Package scale computes the multiplicative factor applied to scroll values.
package scale

import (
	"math"

	"github.com/soar/scrollshim/internal/config"
	"github.com/soar/scrollshim/internal/libinput"
)

// Tolerance is how close to 1.0 a factor must be to count as no-op.
const Tolerance = 1e-9

// Factor returns the scale for axis. The source multiplier only applies when
// known is true.
func Factor(s config.Settings, axis libinput.Axis, source libinput.AxisSource, known bool) float64 {
	mul := 1.0
	if known {
		mul = s.SourceMultiplier(source)
	}
	return s.AxisBase(axis) * mul
}

// IsIdentity reports whether f is within Tolerance of 1.0.
func IsIdentity(f float64) bool {
	return math.Abs(f-1.0) < Tolerance
}

// Apply scales v by f. It returns v untouched and false when f is an
// identity factor.
func Apply(v, f float64) (float64, bool) {
	if IsIdentity(f) {
		return v, false
	}
	return v * f, true
}
