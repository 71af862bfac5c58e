// Package config resolves the shim's scaling configuration.
//
// Values come from SCROLL_* environment variables, optionally layered over a
// config file named by SCROLL_CONFIG and under command-line flags bound with
// BindFlags. Every value is optional. Malformed values are treated as unset.
package config

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/soar/scrollshim/internal/libinput"
)

// EnvPrefix is prepended to every key to form its environment variable.
const EnvPrefix = "SCROLL"

// Keys understood by Load.
const (
	KeyScale           = "scale"
	KeyScaleX          = "scale_x"
	KeyScaleY          = "scale_y"
	KeyScaleWheel      = "scale_wheel"
	KeyScaleFinger     = "scale_finger"
	KeyScaleContinuous = "scale_continuous"
	KeyDisable         = "disable"
	KeyDebug           = "debug"
	KeyConfig          = "config"
)

var keys = []string{
	KeyScale, KeyScaleX, KeyScaleY,
	KeyScaleWheel, KeyScaleFinger, KeyScaleContinuous,
	KeyDisable, KeyDebug, KeyConfig,
}

// DefaultScale is the base scale when SCROLL_SCALE is unset.
const DefaultScale = 1.0

// Settings is the immutable scaling record. Nil overrides are unset.
type Settings struct {
	Scale           float64
	ScaleX          *float64
	ScaleY          *float64
	ScaleWheel      *float64
	ScaleFinger     *float64
	ScaleContinuous *float64
}

// AxisBase returns the per-axis override for axis, or the base scale.
func (s Settings) AxisBase(axis libinput.Axis) float64 {
	switch axis {
	case libinput.AxisScrollHorizontal:
		return or(s.ScaleX, s.Scale)
	case libinput.AxisScrollVertical:
		return or(s.ScaleY, s.Scale)
	default:
		return s.Scale
	}
}

// SourceMultiplier returns the multiplier for source. Unset and unknown
// sources are neutral. The continuous multiplier also covers wheel tilt.
func (s Settings) SourceMultiplier(source libinput.AxisSource) float64 {
	switch source {
	case libinput.SourceWheel:
		return or(s.ScaleWheel, 1.0)
	case libinput.SourceFinger:
		return or(s.ScaleFinger, 1.0)
	case libinput.SourceContinuous, libinput.SourceWheelTilt:
		return or(s.ScaleContinuous, 1.0)
	default:
		return 1.0
	}
}

// LogValue implements slog.LogValuer.
func (s Settings) LogValue() slog.Value {
	attrs := []slog.Attr{slog.Float64(KeyScale, s.Scale)}
	for _, o := range []struct {
		key string
		v   *float64
	}{
		{KeyScaleX, s.ScaleX},
		{KeyScaleY, s.ScaleY},
		{KeyScaleWheel, s.ScaleWheel},
		{KeyScaleFinger, s.ScaleFinger},
		{KeyScaleContinuous, s.ScaleContinuous},
	} {
		if o.v != nil {
			attrs = append(attrs, slog.Float64(o.key, *o.v))
		}
	}
	return slog.GroupValue(attrs...)
}

func or(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}

// Config is everything the shim reads once per process.
type Config struct {
	Settings Settings
	Disable  bool
	Debug    bool

	// File is the config file that was requested, if any, and FileErr the
	// reason it could not be used. Neither affects the values above beyond
	// the file's contents being skipped.
	File    string
	FileErr error
}

// New returns a viper instance bound to the SCROLL_* environment.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	for _, k := range keys {
		_ = v.BindEnv(k)
	}
	return v
}

// BindFlags registers one flag per setting on fs and binds it to v.
// Flag names use dashes in place of underscores.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) {
	fs.Float64(flagName(KeyScale), DefaultScale, "base scroll scale")
	// Overrides have no meaningful default; only a changed flag counts.
	overrides := []struct{ key, usage string }{
		{KeyScaleX, "horizontal axis scale (unset: inherit --scale)"},
		{KeyScaleY, "vertical axis scale (unset: inherit --scale)"},
		{KeyScaleWheel, "wheel source multiplier (unset: 1)"},
		{KeyScaleFinger, "finger source multiplier (unset: 1)"},
		{KeyScaleContinuous, "continuous and wheel-tilt source multiplier (unset: 1)"},
	}
	for _, f := range overrides {
		fs.Float64(flagName(f.key), 0, f.usage)
	}
	fs.Bool(KeyDisable, false, "disable scaling")
	fs.Bool(KeyDebug, false, "enable diagnostics")
	fs.String(KeyConfig, "", "config file (toml, yaml or json)")

	for _, k := range keys {
		_ = v.BindPFlag(k, fs.Lookup(flagName(k)))
	}
}

func flagName(key string) string {
	return strings.ReplaceAll(key, "_", "-")
}

// FromEnvironment loads the configuration of the current process.
func FromEnvironment() Config {
	return Load(New())
}

// Load builds a Config from v, reading the config file it names first.
func Load(v *viper.Viper) Config {
	var cfg Config
	if file := v.GetString(KeyConfig); file != "" {
		cfg.File = file
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			cfg.FileErr = err
		}
	}

	cfg.Settings = Settings{
		Scale:           or(lookupFloat(v, KeyScale), DefaultScale),
		ScaleX:          lookupFloat(v, KeyScaleX),
		ScaleY:          lookupFloat(v, KeyScaleY),
		ScaleWheel:      lookupFloat(v, KeyScaleWheel),
		ScaleFinger:     lookupFloat(v, KeyScaleFinger),
		ScaleContinuous: lookupFloat(v, KeyScaleContinuous),
	}
	cfg.Disable = lookupBool(v, KeyDisable)
	cfg.Debug = lookupBool(v, KeyDebug)
	return cfg
}

func lookupFloat(v *viper.Viper, key string) *float64 {
	if !v.IsSet(key) {
		return nil
	}
	var (
		f   float64
		err error
	)
	switch raw := v.Get(key).(type) {
	case string:
		f, err = strconv.ParseFloat(raw, 64)
	default:
		f, err = cast.ToFloat64E(raw)
	}
	if err != nil {
		return nil
	}
	return &f
}

// ParseBool reports whether s is "1" or case-insensitively "true".
func ParseBool(s string) bool {
	return s == "1" || strings.EqualFold(s, "true")
}

func lookupBool(v *viper.Viper, key string) bool {
	if !v.IsSet(key) {
		return false
	}
	return ParseBool(cast.ToString(v.Get(key)))
}
