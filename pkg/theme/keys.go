package theme

import "github.com/go-drift/material/pkg/graphics"

// Key names a typed theme value. Looking up a key that was never set yields
// its Default.
type Key[T any] struct {
	Name    string
	Default T
}

// Get returns the value for k in e, or k.Default when unset. A nil env
// yields the default.
func (k Key[T]) Get(e *Env) T {
	if v, ok := k.Lookup(e); ok {
		return v
	}
	return k.Default
}

// Lookup returns the value for k in e and whether it was set.
func (k Key[T]) Lookup(e *Env) (T, bool) {
	var zero T
	if e == nil {
		return zero, false
	}
	raw, ok := e.values[k.Name]
	if !ok {
		return zero, false
	}
	v, ok := raw.(T)
	return v, ok
}

// Set stores v for k in e.
func (k Key[T]) Set(e *Env, v T) {
	e.set(k.Name, v)
}

var (
	colorKeys = map[string]Key[graphics.Color]{}
	sizeKeys  = map[string]Key[float64]{}
)

func colorKey(short string, def uint32) Key[graphics.Color] {
	k := Key[graphics.Color]{Name: "material.color." + short, Default: graphics.RGBA32(def)}
	colorKeys[short] = k
	return k
}

func sizeKey(short string, def float64) Key[float64] {
	k := Key[float64]{Name: "material.size." + short, Default: def}
	sizeKeys[short] = k
	return k
}

// Material palette. Defaults follow the Material baseline theme.
var (
	Primary          = colorKey("primary", 0x6200EEFF)
	PrimaryVariant   = colorKey("primary-variant", 0x3700B3FF)
	Secondary        = colorKey("secondary", 0x03DAC6FF)
	SecondaryVariant = colorKey("secondary-variant", 0x018786FF)
	Background       = colorKey("background", 0xFFFFFFFF)
	Surface          = colorKey("surface", 0xFFFFFFFF)
	Error            = colorKey("error", 0xB00020FF)
	OnPrimary        = colorKey("on-primary", 0xFFFFFFFF)
	OnSecondary      = colorKey("on-secondary", 0x000000FF)
	OnBackground     = colorKey("on-background", 0x000000FF)
	OnSurface        = colorKey("on-surface", 0x000000FF)
	OnError          = colorKey("on-error", 0xFFFFFFFF)
)

// Host toolkit colors the widgets also draw with.
var (
	BorderDark       = colorKey("border-dark", 0x222222FF)
	BorderLight      = colorKey("border-light", 0x444444FF)
	WindowBackground = colorKey("window-background", 0xFFFFFFFF)
	BackgroundLight  = colorKey("background-light", 0xF5F5F5FF)
	BackgroundDark   = colorKey("background-dark", 0xFFFFFFFF)
	PrimaryLight     = colorKey("primary-light", 0xBB86FCFF)
	PrimaryDark      = colorKey("primary-dark", 0x3700B3FF)
	ForegroundLight  = colorKey("foreground-light", 0xFFFFFFFF)
	ForegroundDark   = colorKey("foreground-dark", 0xE0E0E0FF)
	LabelColor       = colorKey("label-color", 0x000000FF)
)

// Sizes.
var (
	BasicWidgetHeight    = sizeKey("basic-widget-height", 18)
	BorderedWidgetHeight = sizeKey("bordered-widget-height", 24)
	TextSize             = sizeKey("text-size", 18)
)

// ColorKeys returns the short names of all color keys, for theme files.
func ColorKeys() map[string]Key[graphics.Color] {
	out := make(map[string]Key[graphics.Color], len(colorKeys))
	for name, k := range colorKeys {
		out[name] = k
	}
	return out
}

// SizeKeys returns the short names of all size keys, for theme files.
func SizeKeys() map[string]Key[float64] {
	out := make(map[string]Key[float64], len(sizeKeys))
	for name, k := range sizeKeys {
		out[name] = k
	}
	return out
}
