// Package layout provides the box constraint model widgets are measured
// against and the size-with-baseline result they hand back to the host.
package layout

import (
	"log/slog"
	"math"

	"github.com/go-drift/material/pkg/graphics"
)

// Constraints bound the size a widget may choose.
type Constraints struct {
	MinWidth  float64
	MaxWidth  float64
	MinHeight float64
	MaxHeight float64
}

// Tight returns constraints that only allow size.
func Tight(size graphics.Size) Constraints {
	return Constraints{
		MinWidth:  size.Width,
		MaxWidth:  size.Width,
		MinHeight: size.Height,
		MaxHeight: size.Height,
	}
}

// Loose returns constraints from zero up to size.
func Loose(size graphics.Size) Constraints {
	return Constraints{MaxWidth: size.Width, MaxHeight: size.Height}
}

// Unbounded returns constraints with no maximum.
func Unbounded() Constraints {
	return Constraints{MaxWidth: math.Inf(1), MaxHeight: math.Inf(1)}
}

// Constrain clamps size into the constraints.
func (c Constraints) Constrain(size graphics.Size) graphics.Size {
	return graphics.Size{
		Width:  min(max(size.Width, c.MinWidth), c.MaxWidth),
		Height: min(max(size.Height, c.MinHeight), c.MaxHeight),
	}
}

// IsValid reports whether the constraints are non-negative, ordered and
// free of NaN.
func (c Constraints) IsValid() bool {
	for _, v := range []float64{c.MinWidth, c.MaxWidth, c.MinHeight, c.MaxHeight} {
		if math.IsNaN(v) || v < 0 {
			return false
		}
	}
	return c.MinWidth <= c.MaxWidth && c.MinHeight <= c.MaxHeight &&
		!math.IsInf(c.MinWidth, 1) && !math.IsInf(c.MinHeight, 1)
}

// DebugCheck logs a warning when a widget is laid out with invalid
// constraints. Layout still proceeds.
func (c Constraints) DebugCheck(widget string) {
	if c.IsValid() {
		return
	}
	slog.Warn("invalid layout constraints",
		"widget", widget,
		"min_width", c.MinWidth, "max_width", c.MaxWidth,
		"min_height", c.MinHeight, "max_height", c.MaxHeight)
}

// Result is a widget's chosen size and the distance from its bottom edge to
// the text baseline of its content.
type Result struct {
	Size     graphics.Size
	Baseline float64
}
