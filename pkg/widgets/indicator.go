package widgets

import (
	"time"

	"github.com/go-drift/material/pkg/animation"
	"github.com/go-drift/material/pkg/graphics"
)

// Indicator geometry and opacities shared by the checkbox, radio and
// button ripples.
const (
	indicatorPadding   = 25.0
	rippleStartRadius  = 10.0
	rippleDuration     = 200 * time.Millisecond
	rippleOpacity      = 0.3
	focusOpacity       = 0.12
	hoverOpacity       = 0.05
	indicatorLineWidth = 2.0
)

// rippleSpec grows a ripple from rippleStartRadius to radius and clears it
// when the timer fires.
func rippleSpec(radius float64) animation.Spec {
	return animation.Spec{
		Start:    rippleStartRadius,
		Target:   radius,
		Duration: rippleDuration,
		Expiry:   rippleDuration,
	}
}

// paintIndicator draws the overlay behind a control: the ripple while
// animating, else a focus halo, else a faint hover halo.
func paintIndicator(canvas graphics.Canvas, snap Snapshot, center graphics.Offset, radius float64, color graphics.Color) {
	switch {
	case snap.Animating:
		canvas.DrawCircle(center, snap.Animation.Progress, graphics.FillPaint(color.WithAlpha(rippleOpacity)))
	case snap.Interaction.Focused:
		canvas.DrawCircle(center, radius, graphics.FillPaint(color.WithAlpha(focusOpacity)))
	case snap.Interaction.Hot:
		canvas.DrawCircle(center, radius, graphics.FillPaint(color.WithAlpha(hoverOpacity)))
	}
}
