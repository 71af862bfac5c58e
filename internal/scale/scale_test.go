package scale

import (
	"math"
	"testing"

	"github.com/soar/scrollshim/internal/config"
	"github.com/soar/scrollshim/internal/libinput"
)

func ptr(f float64) *float64 { return &f }

func TestFactor(t *testing.T) {
	tests := []struct {
		name     string
		settings config.Settings
		axis     libinput.Axis
		source   libinput.AxisSource
		known    bool
		want     float64
	}{
		{
			name:     "base only",
			settings: config.Settings{Scale: 2},
			axis:     libinput.AxisScrollVertical,
			source:   libinput.SourceWheel,
			known:    true,
			want:     2,
		},
		{
			name:     "axis override times wheel",
			settings: config.Settings{Scale: 1, ScaleX: ptr(0.5), ScaleWheel: ptr(3)},
			axis:     libinput.AxisScrollHorizontal,
			source:   libinput.SourceWheel,
			known:    true,
			want:     1.5,
		},
		{
			name:     "unknown source ignores multipliers",
			settings: config.Settings{Scale: 2, ScaleWheel: ptr(3), ScaleFinger: ptr(4)},
			axis:     libinput.AxisScrollVertical,
			known:    false,
			want:     2,
		},
		{
			name:     "tilt uses continuous",
			settings: config.Settings{Scale: 1, ScaleContinuous: ptr(0.25)},
			axis:     libinput.AxisScrollVertical,
			source:   libinput.SourceWheelTilt,
			known:    true,
			want:     0.25,
		},
		{
			name:     "unrecognised source is neutral",
			settings: config.Settings{Scale: 1.5, ScaleWheel: ptr(3)},
			axis:     libinput.AxisScrollVertical,
			source:   libinput.AxisSource(99),
			known:    true,
			want:     1.5,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Factor(tt.settings, tt.axis, tt.source, tt.known); got != tt.want {
				t.Fatalf("Factor = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsIdentity(t *testing.T) {
	for _, f := range []float64{1, 1 + 1e-10, 1 - 5e-10} {
		if !IsIdentity(f) {
			t.Errorf("IsIdentity(%v) = false", f)
		}
	}
	for _, f := range []float64{1 + 1e-8, 0.999, 0, -1, math.NaN()} {
		if IsIdentity(f) {
			t.Errorf("IsIdentity(%v) = true", f)
		}
	}
}

func TestApplyLeavesIdentityUntouched(t *testing.T) {
	v := 0.1 + 0.2
	got, scaled := Apply(v, 1+1e-12)
	if scaled {
		t.Fatalf("expected no-op")
	}
	if math.Float64bits(got) != math.Float64bits(v) {
		t.Fatalf("value drifted: %v -> %v", v, got)
	}
}

func TestApplyRoundTrip(t *testing.T) {
	for _, f := range []float64{2, 0.3, 7.5, -1.25} {
		for _, v := range []float64{1, -3.5, 15.0, 0.0001} {
			up, _ := Apply(v, f)
			back, _ := Apply(up, 1/f)
			if math.Abs(back-v) > 1e-9*math.Max(1, math.Abs(v)) {
				t.Errorf("f=%v v=%v: round trip gave %v", f, v, back)
			}
		}
	}
}
