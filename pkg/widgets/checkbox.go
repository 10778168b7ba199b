package widgets

import (
	"github.com/go-drift/material/pkg/animation"
	"github.com/go-drift/material/pkg/graphics"
	"github.com/go-drift/material/pkg/layout"
	"github.com/go-drift/material/pkg/text"
	"github.com/go-drift/material/pkg/theme"
)

// Checkbox toggles a bool and shows a text label to its right. Clicking it
// flips the value and plays a ripple around the box.
//
//	cb := widgets.NewCheckbox("Remember me")
type Checkbox struct {
	Toggle
	label *text.Label
}

// NewCheckbox returns a checkbox with the given label.
func NewCheckbox(label string) *Checkbox {
	return &Checkbox{label: text.NewLabel(label).WithTextSize(18)}
}

// SetText replaces the label.
func (c *Checkbox) SetText(label string) {
	c.label.SetText(label)
}

// Label returns the label text.
func (c *Checkbox) Label() string {
	return c.label.Text()
}

func (c *Checkbox) Event(ctx *Ctx, ev Event, data *bool, env *theme.Env) {
	c.HandleEvent(ctx, ev, data, env, c)
}

func (c *Checkbox) Lifecycle(ctx *Ctx, ev LifecycleEvent, _ bool, _ *theme.Env) {
	c.HandleLifecycle(ctx, ev)
}

func (c *Checkbox) Update(ctx *Ctx, old, data bool, env *theme.Env) {
	c.HandleUpdate(ctx, old, data, env, c)
}

func (c *Checkbox) Layout(_ *Ctx, bc layout.Constraints, _ bool, env *theme.Env) layout.Result {
	bc.DebugCheck("Checkbox")
	return labeledLayout(bc, theme.BasicWidgetHeight.Get(env)+indicatorPadding, c.label, env)
}

func (c *Checkbox) Paint(ctx *Ctx, canvas graphics.Canvas, data bool, env *theme.Env) {
	th := theme.CheckboxThemeOf(env)
	PaintCheckbox(canvas, c.Snapshot(ctx, data), th)
	c.label.DrawAt(canvas, labelOrigin(th.Size), env)
}

// AnimationFor grows the ripple to the indicator radius.
func (c *Checkbox) AnimationFor(_ bool, env *theme.Env, _ animation.State, _ bool) animation.Spec {
	return rippleSpec((theme.BasicWidgetHeight.Get(env) + indicatorPadding) / 2)
}

// PaintCheckbox draws the indicator, box and check mark. The label is not
// included.
func PaintCheckbox(canvas graphics.Canvas, snap Snapshot, th theme.CheckboxThemeData) {
	size := th.Size
	radius := (size + indicatorPadding) / 2
	color := th.BorderColor
	if snap.Value {
		color = th.ActiveColor
	}

	paintIndicator(canvas, snap, graphics.Offset{X: radius, Y: radius}, radius, color)

	inset := indicatorPadding / 2
	box := graphics.RRectFromRectAndRadius(
		graphics.RectFromLTWH(inset, inset, size, size),
		graphics.CircularRadius(2),
	)
	if snap.Value {
		canvas.DrawRRect(box, graphics.FillPaint(th.ActiveColor))
	}
	canvas.DrawRRect(box, graphics.StrokePaint(color, indicatorLineWidth))

	if !snap.Value {
		return
	}
	// Check mark points on an 18px box.
	scale := size / 18
	check := graphics.NewPath()
	check.MoveTo(inset+4*scale, inset+9*scale)
	check.LineTo(inset+8*scale, inset+13*scale)
	check.LineTo(inset+14*scale, inset+5*scale)
	stroke := graphics.StrokePaint(th.CheckColor, indicatorLineWidth)
	stroke.StrokeCap = graphics.CapRound
	stroke.StrokeJoin = graphics.JoinRound
	canvas.DrawPath(check, stroke)
}

// labeledLayout places a square indicator of side extent to the left of
// label. The label is drawn at labelOrigin.
func labeledLayout(bc layout.Constraints, extent float64, label *text.Label, env *theme.Env) layout.Result {
	labelSize, baseline := label.Measure(env)
	size := bc.Constrain(graphics.Size{
		Width:  extent + labelSize.Width,
		Height: max(extent, labelSize.Height),
	})
	labelBottom := labelOrigin(extent-indicatorPadding).Y + labelSize.Height
	return layout.Result{Size: size, Baseline: max(0, size.Height-labelBottom+baseline)}
}

func labelOrigin(size float64) graphics.Offset {
	return graphics.Offset{X: size + indicatorPadding, Y: indicatorPadding/2 - 3}
}
