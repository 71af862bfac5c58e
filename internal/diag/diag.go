// Package diag writes the shim's human-readable diagnostics to stderr.
package diag

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/lmittmann/tint"

	"github.com/soar/scrollshim/internal/config"
	"github.com/soar/scrollshim/internal/console"
	"github.com/soar/scrollshim/internal/libinput"
)

// Component tags every line so it can be told apart from host output.
const Component = "libinput_scroll_shim"

// Logger emits startup, per-call and fatal lines. Without debug only fatal
// lines are written.
type Logger struct {
	l *slog.Logger
}

// New returns a Logger writing to w. Colour is used only when w is a
// terminal.
func New(w io.Writer, debug bool) *Logger {
	level := slog.LevelError
	if debug {
		level = slog.LevelDebug
	}
	color := false
	if f, ok := w.(*os.File); ok {
		color = console.IsTerminal(f)
	}
	h := tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
		NoColor:    !color,
	})
	return &Logger{l: slog.New(h).With("component", Component)}
}

// Slog exposes the underlying structured logger.
func (l *Logger) Slog() *slog.Logger { return l.l }

// Startup reports the resolved configuration.
func (l *Logger) Startup(cfg config.Config) {
	attrs := []any{"disable", cfg.Disable, "settings", cfg.Settings}
	if cfg.File != "" {
		attrs = append(attrs, "config", cfg.File)
	}
	if cfg.FileErr != nil {
		attrs = append(attrs, tint.Err(cfg.FileErr))
	}
	l.l.Info("loaded", attrs...)
}

// Scaled reports one rescaled value. Values use six decimals and the factor
// three.
func (l *Logger) Scaled(hook string, axis libinput.Axis, source libinput.AxisSource, known bool, orig, scaled, factor float64) {
	ctx := context.Background()
	if !l.l.Enabled(ctx, slog.LevelInfo) {
		return
	}
	attrs := make([]slog.Attr, 0, 6)
	attrs = append(attrs, slog.String("hook", hook), slog.String("axis", axis.String()))
	if known {
		attrs = append(attrs, slog.String("src", source.String()))
	}
	attrs = append(attrs,
		slog.String("val", strconv.FormatFloat(orig, 'f', 6, 64)),
		slog.String("scaled", strconv.FormatFloat(scaled, 'f', 6, 64)),
		slog.String("scale", strconv.FormatFloat(factor, 'f', 3, 64)),
	)
	l.l.LogAttrs(ctx, slog.LevelInfo, "scaled", attrs...)
}

// Fatal reports an unrecoverable condition. It is written regardless of the
// debug setting.
func (l *Logger) Fatal(err error) {
	l.l.Error("FATAL", tint.Err(err))
}
