// Package theme holds the named color and size values widgets read while
// laying out and painting.
//
// An [Env] is an explicit value passed to every layout and paint call; there
// is no global theme. Hosts build one with [NewEnv], which runs the one-time
// default installation step [Configure], then optionally override values
// from a theme file:
//
//	env, err := theme.LoadEnv("theme.yaml")
//	...
//	primary := theme.Primary.Get(env)
package theme

import "maps"

// Env maps key names to theme values. The zero value is an empty,
// unconfigured env; reads fall back to each key's default.
type Env struct {
	values     map[string]any
	configured bool
}

// NewEnv returns an env with the default palette and sizes installed.
func NewEnv() *Env {
	e := &Env{}
	Configure(e)
	return e
}

// Configure installs the default value of every color and size key. It runs
// once per env; later calls are no-ops so they never clobber overrides.
func Configure(e *Env) {
	if e.configured {
		return
	}
	for _, k := range colorKeys {
		k.Set(e, k.Default)
	}
	for _, k := range sizeKeys {
		k.Set(e, k.Default)
	}
	e.configured = true
}

// Configured reports whether Configure has run on e.
func (e *Env) Configured() bool {
	return e.configured
}

// Len returns the number of values set.
func (e *Env) Len() int {
	return len(e.values)
}

// Clone returns an independent copy of e.
func (e *Env) Clone() *Env {
	return &Env{values: maps.Clone(e.values), configured: e.configured}
}

func (e *Env) set(name string, v any) {
	if e.values == nil {
		e.values = make(map[string]any)
	}
	e.values[name] = v
}
