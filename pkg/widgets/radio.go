package widgets

import (
	"github.com/go-drift/material/pkg/animation"
	"github.com/go-drift/material/pkg/graphics"
	"github.com/go-drift/material/pkg/interaction"
	"github.com/go-drift/material/pkg/layout"
	"github.com/go-drift/material/pkg/text"
	"github.com/go-drift/material/pkg/theme"
)

// Radio selects one variant of a bool. Two radios bound to the same value
// with variants true and false form a group; clicking a radio writes its
// variant and plays a ripple only if that changed the value.
//
//	yes := widgets.NewRadio("Yes", true)
//	no := widgets.NewRadio("No", false)
type Radio struct {
	Toggle
	variant bool
	label   *text.Label
}

// NewRadio returns a radio that selects variant.
func NewRadio(label string, variant bool) *Radio {
	r := &Radio{variant: variant, label: text.NewLabel(label).WithTextSize(18)}
	r.Controller.Commit = interaction.Select(variant)
	return r
}

// Variant returns the value this radio selects.
func (r *Radio) Variant() bool {
	return r.variant
}

// SetText replaces the label.
func (r *Radio) SetText(label string) {
	r.label.SetText(label)
}

func (r *Radio) Event(ctx *Ctx, ev Event, data *bool, env *theme.Env) {
	r.HandleEvent(ctx, ev, data, env, r)
}

func (r *Radio) Lifecycle(ctx *Ctx, ev LifecycleEvent, _ bool, _ *theme.Env) {
	r.HandleLifecycle(ctx, ev)
}

// Update animates only when the value moved onto this radio's variant; the
// radio being deselected by a sibling just repaints.
func (r *Radio) Update(ctx *Ctx, old, data bool, env *theme.Env) {
	if old != data && data != r.variant {
		r.echoSet = false
		ctx.RequestPaint()
		return
	}
	r.HandleUpdate(ctx, old, data, env, r)
}

func (r *Radio) Layout(_ *Ctx, bc layout.Constraints, _ bool, env *theme.Env) layout.Result {
	bc.DebugCheck("Radio")
	return labeledLayout(bc, theme.BasicWidgetHeight.Get(env)+indicatorPadding, r.label, env)
}

func (r *Radio) Paint(ctx *Ctx, canvas graphics.Canvas, data bool, env *theme.Env) {
	th := theme.CheckboxThemeOf(env)
	snap := r.Snapshot(ctx, data)
	snap.Value = data == r.variant
	PaintRadio(canvas, snap, th)
	r.label.DrawAt(canvas, labelOrigin(th.Size), env)
}

// AnimationFor plays the same ripple as a checkbox.
func (r *Radio) AnimationFor(_ bool, env *theme.Env, _ animation.State, _ bool) animation.Spec {
	return rippleSpec((theme.BasicWidgetHeight.Get(env) + indicatorPadding) / 2)
}

// PaintRadio draws the indicator, ring and dot. snap.Value is true when the
// radio is selected.
func PaintRadio(canvas graphics.Canvas, snap Snapshot, th theme.CheckboxThemeData) {
	radius := (th.Size + indicatorPadding) / 2
	center := graphics.Offset{X: radius, Y: radius}
	color := th.BorderColor
	if snap.Value {
		color = th.ActiveColor
	}
	paintIndicator(canvas, snap, center, radius, color)
	canvas.DrawCircle(center, th.Size/2, graphics.StrokePaint(color, indicatorLineWidth))
	if snap.Value {
		canvas.DrawCircle(center, th.Size/4, graphics.FillPaint(th.ActiveColor))
	}
}
