package diag

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/soar/scrollshim/internal/config"
	"github.com/soar/scrollshim/internal/libinput"
)

func TestScaledLineFormatting(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, true)

	l.Scaled("axis_value", libinput.AxisScrollVertical, libinput.SourceWheel, true, 1, 2, 2)

	out := buf.String()
	for _, want := range []string{
		"scaled",
		"component=" + Component,
		"hook=axis_value",
		"axis=vertical",
		"src=wheel",
		"val=1.000000",
		"scaled=2.000000",
		"scale=2.000",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in %q", want, out)
		}
	}
}

func TestScaledLineWithoutSource(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, true)

	l.Scaled("scroll_value", libinput.AxisScrollHorizontal, 0, false, 4, 6, 1.5)

	out := buf.String()
	if strings.Contains(out, "src=") {
		t.Errorf("unexpected source in %q", out)
	}
	if !strings.Contains(out, "scale=1.500") {
		t.Errorf("missing factor in %q", out)
	}
}

func TestQuietWithoutDebug(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, false)

	l.Startup(config.Config{Settings: config.Settings{Scale: 2}})
	l.Scaled("axis_value", libinput.AxisScrollVertical, libinput.SourceWheel, true, 1, 2, 2)
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}

	l.Fatal(errors.New("could not resolve original libinput_event_pointer_get_axis_value"))
	if !strings.Contains(buf.String(), "libinput_event_pointer_get_axis_value") {
		t.Fatalf("fatal line missing: %q", buf.String())
	}
}

func TestStartupLine(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, true)
	x := 0.5

	l.Startup(config.Config{
		Settings: config.Settings{Scale: 2, ScaleX: &x},
		Disable:  true,
		File:     "/etc/scroll.toml",
		FileErr:  errors.New("no such file"),
	})

	out := buf.String()
	for _, want := range []string{"loaded", "disable=true", "settings.scale=2", "settings.scale_x=0.5", "/etc/scroll.toml", "no such file"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in %q", want, out)
		}
	}
}
