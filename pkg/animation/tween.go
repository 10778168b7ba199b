package animation

import (
	"math"

	"github.com/go-drift/material/pkg/graphics"
)

// Lerp linearly interpolates between two float64 values.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// LerpOffset linearly interpolates between two offsets.
func LerpOffset(a, b graphics.Offset, t float64) graphics.Offset {
	return graphics.Offset{X: Lerp(a.X, b.X, t), Y: Lerp(a.Y, b.Y, t)}
}

// LerpColor interpolates each ARGB channel independently.
func LerpColor(a, b graphics.Color, t float64) graphics.Color {
	ar, ag, ab, aa := a.Components()
	br, bg, bb, ba := b.Components()
	ch := func(x, y uint8) uint8 {
		return uint8(math.Round(Lerp(float64(x), float64(y), t)))
	}
	return graphics.RGBA8(ch(ar, br), ch(ag, bg), ch(ab, bb), ch(aa, ba))
}
