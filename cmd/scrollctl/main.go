// Command scrollctl inspects the scroll shim's configuration without
// preloading it: it prints the resolved settings, evaluates the shim's
// algorithm for a given axis, source and value, and probes which libinput
// symbols the loader can find.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"unsafe"

	"github.com/spf13/pflag"

	"github.com/soar/scrollshim/internal/config"
	"github.com/soar/scrollshim/internal/diag"
	"github.com/soar/scrollshim/internal/hook"
	"github.com/soar/scrollshim/internal/libinput"
	"github.com/soar/scrollshim/internal/scale"
	"github.com/soar/scrollshim/internal/symbol"
	"github.com/soar/scrollshim/internal/trampoline"
)

const (
	exitOK      = 0
	exitMissing = 1
	exitUsage   = 2
)

// newSource is replaced in tests.
var newSource = symbol.Default

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := pflag.NewFlagSet("scrollctl", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	axisFlag := fs.String("axis", "vertical", "axis: vertical, horizontal or a raw number")
	sourceFlag := fs.String("source", "none", "axis source: wheel, finger, continuous, wheel-tilt, none or a raw number")
	value := fs.Float64("value", 0, "genuine value to run through the shim")
	probe := fs.Bool("probe", false, "resolve the libinput symbols and report which exist")

	v := config.New()
	config.BindFlags(v, fs)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	if *probe {
		return runProbe(stdout, newSource())
	}

	cfg := config.Load(v)
	log := diag.New(stderr, cfg.Debug)
	if cfg.FileErr != nil {
		log.Slog().Warn("config file ignored", "path", cfg.File, "err", cfg.FileErr)
	}
	printConfig(stdout, cfg)

	if !fs.Changed("value") {
		return exitOK
	}
	axis, err := libinput.ParseAxis(*axisFlag)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
	source, known, err := libinput.ParseAxisSource(*sourceFlag)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	lib := syntheticLib{value: *value, source: source, known: known}
	in := hook.New(hook.Options{
		Config:      func() config.Config { return cfg },
		Trampolines: trampoline.New(lib, lib),
		Output:      stderr,
	})
	result := in.Value(hook.AxisValue, nil, int32(axis))

	src := "none"
	if known {
		src = source.String()
	}
	fmt.Fprintf(stdout, "axis=%s source=%s value=%.6f factor=%.3f result=%.6f\n",
		axis, src, *value, effectiveFactor(in.Config(), axis, source, known), result)
	return exitOK
}

// effectiveFactor is the factor the shim applies, 1 when it passes through.
func effectiveFactor(cfg config.Config, axis libinput.Axis, source libinput.AxisSource, known bool) float64 {
	if cfg.Disable || !axis.IsScroll() {
		return 1
	}
	f := scale.Factor(cfg.Settings, axis, source, known)
	if scale.IsIdentity(f) {
		return 1
	}
	return f
}

func printConfig(w io.Writer, cfg config.Config) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	s := cfg.Settings
	fmt.Fprintf(tw, "%s\t%s\n", config.KeyScale, strconv.FormatFloat(s.Scale, 'g', -1, 64))
	for _, o := range []struct {
		key string
		v   *float64
	}{
		{config.KeyScaleX, s.ScaleX},
		{config.KeyScaleY, s.ScaleY},
		{config.KeyScaleWheel, s.ScaleWheel},
		{config.KeyScaleFinger, s.ScaleFinger},
		{config.KeyScaleContinuous, s.ScaleContinuous},
	} {
		val := "-"
		if o.v != nil {
			val = strconv.FormatFloat(*o.v, 'g', -1, 64)
		}
		fmt.Fprintf(tw, "%s\t%s\n", o.key, val)
	}
	fmt.Fprintf(tw, "%s\t%t\n", config.KeyDisable, cfg.Disable)
	fmt.Fprintf(tw, "%s\t%t\n", config.KeyDebug, cfg.Debug)
	if cfg.File != "" {
		fmt.Fprintf(tw, "%s\t%s\n", config.KeyConfig, cfg.File)
	}
	tw.Flush()
}

func runProbe(w io.Writer, src symbol.Source) int {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	code := exitOK
	for _, name := range []string{
		libinput.SymbolAxisValue,
		libinput.SymbolAxisValueV120,
		libinput.SymbolScrollValue,
		libinput.SymbolScrollValueV120,
		libinput.SymbolAxisSource,
	} {
		status := "missing"
		if addr, ok := src.Resolve(name); ok {
			status = fmt.Sprintf("found\t%#x", addr)
		} else if name == libinput.SymbolAxisValue {
			status = "missing\t(mandatory)"
			code = exitMissing
		}
		fmt.Fprintf(tw, "%s\t%s\n", name, status)
	}
	tw.Flush()
	if names := libraryNames(src); len(names) > 0 {
		fmt.Fprintf(w, "fallback libraries: %s\n", strings.Join(names, ", "))
	}
	return code
}

// libraryNames returns the sonames of the first explicit-load strategy in src.
func libraryNames(src symbol.Source) []string {
	switch s := src.(type) {
	case *symbol.Library:
		return s.Names()
	case symbol.Chain:
		for _, c := range s {
			if names := libraryNames(c); names != nil {
				return names
			}
		}
	}
	return nil
}

// syntheticLib plays the genuine library for a single fixed event.
type syntheticLib struct {
	value  float64
	source libinput.AxisSource
	known  bool
}

func (l syntheticLib) Resolve(name string) (uintptr, bool) {
	switch name {
	case libinput.SymbolAxisValue:
		return 1, true
	case libinput.SymbolAxisSource:
		return 2, l.known
	}
	return 0, false
}

func (l syntheticLib) BindAxisValue(uintptr) trampoline.AxisValueFunc {
	return func(unsafe.Pointer, int32) float64 { return l.value }
}

func (l syntheticLib) BindAxisSource(uintptr) trampoline.AxisSourceFunc {
	return func(unsafe.Pointer) int32 { return int32(l.source) }
}
