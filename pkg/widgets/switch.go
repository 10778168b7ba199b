package widgets

import (
	"math"
	"time"

	"github.com/go-drift/material/pkg/animation"
	"github.com/go-drift/material/pkg/graphics"
	"github.com/go-drift/material/pkg/layout"
	"github.com/go-drift/material/pkg/theme"
)

const (
	switchChangeTime  = 200 * time.Millisecond
	switchPadding     = 3.0
	switchWidthRatio  = 1.5
	switchStrokeWidth = 2.0
)

// Switch toggles a bool with a knob that slides along a track. The knob
// position is derived from the value, or from the running animation's
// progress, and never stored.
type Switch struct {
	Toggle
}

// NewSwitch returns a switch.
func NewSwitch() *Switch {
	return &Switch{}
}

func (s *Switch) Event(ctx *Ctx, ev Event, data *bool, env *theme.Env) {
	s.HandleEvent(ctx, ev, data, env, s)
}

func (s *Switch) Lifecycle(ctx *Ctx, ev LifecycleEvent, _ bool, _ *theme.Env) {
	s.HandleLifecycle(ctx, ev)
}

func (s *Switch) Update(ctx *Ctx, old, data bool, env *theme.Env) {
	s.HandleUpdate(ctx, old, data, env, s)
}

func (s *Switch) Layout(_ *Ctx, bc layout.Constraints, _ bool, env *theme.Env) layout.Result {
	bc.DebugCheck("Switch")
	h := theme.BorderedWidgetHeight.Get(env)
	return layout.Result{Size: bc.Constrain(graphics.Size{Width: h * switchWidthRatio, Height: h})}
}

func (s *Switch) Paint(ctx *Ctx, canvas graphics.Canvas, data bool, env *theme.Env) {
	PaintSwitch(canvas, s.Snapshot(ctx, data), theme.SwitchThemeOf(env))
}

// AnimationFor slides the knob toward data. A run that preempts another
// starts from the knob's current position and takes proportionally less
// time.
func (s *Switch) AnimationFor(data bool, _ *theme.Env, current animation.State, running bool) animation.Spec {
	target := 0.0
	if data {
		target = 1
	}
	start := 1 - target
	if running {
		start = current.Progress
	}
	return animation.Spec{
		Start:    start,
		Target:   target,
		Duration: time.Duration(math.Abs(target-start) * float64(switchChangeTime)),
	}
}

// KnobFraction returns the knob position from 0 (off) to 1 (on).
func KnobFraction(snap Snapshot) float64 {
	if snap.Animating {
		return snap.Animation.Progress
	}
	if snap.Value {
		return 1
	}
	return 0
}

// PaintSwitch draws the track, its on and off gradients and the knob.
func PaintSwitch(canvas graphics.Canvas, snap Snapshot, th theme.SwitchThemeData) {
	height := th.Height
	width := height * switchWidthRatio
	knob := height - 2*switchPadding
	offPos := knob/2 + switchPadding
	onPos := width - knob/2 - switchPadding
	fraction := KnobFraction(snap)

	track := graphics.RRectFromRectAndRadius(
		graphics.RectFromLTWH(0, 0, width, height).Inset(switchStrokeWidth/2),
		graphics.CircularRadius(height/2),
	)
	canvas.DrawRRect(track, graphics.StrokePaint(th.TrackBorder, switchStrokeWidth))
	canvas.DrawRRect(track, graphics.GradientPaint(graphics.VerticalGradient(
		th.OnTrackTop.WithAlpha(fraction), th.OnTrackBottom.WithAlpha(fraction))))
	canvas.DrawRRect(track, graphics.GradientPaint(graphics.VerticalGradient(
		th.OffTrackTop.WithAlpha(1-fraction), th.OffTrackBottom.WithAlpha(1-fraction))))

	center := graphics.Offset{X: animation.Lerp(offPos, onPos, fraction), Y: height / 2}
	if !snap.Animating {
		halo := th.OnTrackBottom
		if !snap.Value {
			halo = th.TrackBorder
		}
		paintIndicator(canvas, snap, center, knob/2+switchPadding*2, halo)
	}

	pressed := snap.Interaction.Active
	top, bottom, border := th.KnobLight, th.KnobDark, th.KnobDark
	if pressed {
		top, bottom, border = th.KnobDark, th.KnobLight, th.KnobLight
	}
	canvas.DrawCircle(center, knob/2, graphics.StrokePaint(border, switchStrokeWidth))
	canvas.DrawCircle(center, knob/2, graphics.GradientPaint(graphics.VerticalGradient(top, bottom)))
}
