// Package hook implements the intercepted libinput entry points.
//
// All four exported functions share Interceptor.Value. They differ only in
// the Entry they pass, which names the log tag and the order in which the
// genuine accessors are preferred.
package hook

import (
	"io"
	"math"
	"os"
	"sync"
	"unsafe"

	"github.com/soar/scrollshim/internal/config"
	"github.com/soar/scrollshim/internal/console"
	"github.com/soar/scrollshim/internal/diag"
	"github.com/soar/scrollshim/internal/libinput"
	"github.com/soar/scrollshim/internal/scale"
	"github.com/soar/scrollshim/internal/symbol"
	"github.com/soar/scrollshim/internal/trampoline"
)

// Entry describes one intercepted function.
type Entry struct {
	Symbol string
	Tag    string
	Chain  []trampoline.Kind
}

var (
	AxisValue = Entry{
		Symbol: libinput.SymbolAxisValue,
		Tag:    "axis_value",
		Chain:  []trampoline.Kind{trampoline.AxisValue},
	}
	AxisValueV120 = Entry{
		Symbol: libinput.SymbolAxisValueV120,
		Tag:    "axis_value_v120",
		Chain:  []trampoline.Kind{trampoline.AxisValueV120, trampoline.AxisValue},
	}
	ScrollValue = Entry{
		Symbol: libinput.SymbolScrollValue,
		Tag:    "scroll_value",
		Chain:  []trampoline.Kind{trampoline.ScrollValue, trampoline.AxisValue},
	}
	ScrollValueV120 = Entry{
		Symbol: libinput.SymbolScrollValueV120,
		Tag:    "scroll_value_v120",
		Chain:  []trampoline.Kind{trampoline.ScrollValueV120, trampoline.ScrollValue, trampoline.AxisValue},
	}
)

// Entries lists every intercepted function.
var Entries = []Entry{AxisValue, AxisValueV120, ScrollValue, ScrollValueV120}

// Options wires an Interceptor. Zero fields get production defaults.
type Options struct {
	// Config loads the configuration. It is called at most once.
	Config func() config.Config
	// Trampolines resolves the genuine functions.
	Trampolines *trampoline.Set
	// Output receives diagnostics.
	Output io.Writer
	// Fatal handles a missing mandatory symbol. The default logs and aborts
	// the process; replacements that return make Value return NaN.
	Fatal func(log *diag.Logger, err error)
}

// Interceptor holds the process-wide state shared by every entry point.
type Interceptor struct {
	config  func() config.Config
	log     func() *diag.Logger
	tramps  *trampoline.Set
	fatal   func(*diag.Logger, error)
	startup sync.Once
}

// New builds an Interceptor. Nothing is resolved or read until first use.
func New(opts Options) *Interceptor {
	if opts.Config == nil {
		opts.Config = config.FromEnvironment
	}
	if opts.Trampolines == nil {
		opts.Trampolines = trampoline.New(symbol.Default(), trampoline.Native{})
	}
	if opts.Output == nil {
		opts.Output = os.Stderr
	}
	if opts.Fatal == nil {
		opts.Fatal = abort
	}

	i := &Interceptor{
		config: sync.OnceValue(opts.Config),
		tramps: opts.Trampolines,
		fatal:  opts.Fatal,
	}
	out := opts.Output
	i.log = sync.OnceValue(func() *diag.Logger {
		return diag.New(out, i.config().Debug)
	})
	return i
}

var defaultInterceptor = sync.OnceValue(func() *Interceptor {
	return New(Options{})
})

// Default returns the interceptor used by the exported C entry points.
func Default() *Interceptor {
	return defaultInterceptor()
}

// Config returns the configuration, loading it on first use.
func (i *Interceptor) Config() config.Config {
	return i.config()
}

func abort(log *diag.Logger, err error) {
	log.Fatal(err)
	console.Abort()
}

func (i *Interceptor) logStartup() {
	i.startup.Do(func() {
		if cfg := i.config(); cfg.Debug {
			i.log().Startup(cfg)
		}
	})
}

// Value runs the shared algorithm for entry e: call the genuine function,
// then rescale scroll axes by the configured factor.
func (i *Interceptor) Value(e Entry, event unsafe.Pointer, axis int32) float64 {
	i.logStartup()

	orig, err := i.tramps.Original(e.Chain)
	if err != nil {
		i.fatal(i.log(), err)
		return math.NaN()
	}
	v := orig(event, axis)

	cfg := i.config()
	if cfg.Disable {
		return v
	}
	a := libinput.Axis(axis)
	if !a.IsScroll() {
		return v
	}

	var (
		source libinput.AxisSource
		known  bool
	)
	if fn, ok := i.tramps.AxisSource(); ok {
		source, known = libinput.AxisSource(fn(event)), true
	}

	factor := scale.Factor(cfg.Settings, a, source, known)
	scaled, changed := scale.Apply(v, factor)
	if !changed {
		return v
	}
	if cfg.Debug {
		i.log().Scaled(e.Tag, a, source, known, v, scaled, factor)
	}
	return scaled
}
