package widgets

import (
	"math"

	"github.com/go-drift/material/pkg/animation"
	"github.com/go-drift/material/pkg/graphics"
	"github.com/go-drift/material/pkg/interaction"
	"github.com/go-drift/material/pkg/layout"
	"github.com/go-drift/material/pkg/text"
	"github.com/go-drift/material/pkg/theme"
)

const (
	buttonPaddingX = 16.0
	buttonPaddingY = 8.0
)

// Button reports clicks through OnClick and plays a ripple from its center.
// A plain button leaves the bound value alone; a toggleable one flips it
// and fills with the selected color while the value is true.
//
//	btn := widgets.NewButton("Save")
//	btn.OnClick = save
type Button struct {
	Toggle
	// OnClick is called after every committed click.
	OnClick func()

	label *text.Label
	size  graphics.Size
}

// NewButton returns a button with the given label.
func NewButton(label string) *Button {
	b := &Button{label: text.NewLabel(label)}
	b.Controller.Commit = interaction.Hold
	b.AnimateUnchanged = true
	return b
}

// Toggleable makes the button flip the bound value on click and returns it.
func (b *Button) Toggleable() *Button {
	b.Controller.Commit = interaction.Toggle
	return b
}

// SetText replaces the label.
func (b *Button) SetText(label string) {
	b.label.SetText(label)
}

func (b *Button) Event(ctx *Ctx, ev Event, data *bool, env *theme.Env) {
	rel := b.HandleEvent(ctx, ev, data, env, b)
	if rel.Outcome == interaction.OutcomeCommitted && b.OnClick != nil {
		b.OnClick()
	}
}

func (b *Button) Lifecycle(ctx *Ctx, ev LifecycleEvent, _ bool, _ *theme.Env) {
	b.HandleLifecycle(ctx, ev)
}

func (b *Button) Update(ctx *Ctx, old, data bool, env *theme.Env) {
	b.HandleUpdate(ctx, old, data, env, b)
}

func (b *Button) Layout(_ *Ctx, bc layout.Constraints, _ bool, env *theme.Env) layout.Result {
	bc.DebugCheck("Button")
	th := theme.ButtonThemeOf(env)
	labelSize, baseline := b.label.Measure(env)
	size := bc.Constrain(graphics.Size{
		Width:  labelSize.Width + 2*buttonPaddingX,
		Height: max(labelSize.Height+2*buttonPaddingY, th.Height),
	})
	b.size = size
	labelBottom := (size.Height + labelSize.Height) / 2
	return layout.Result{Size: size, Baseline: max(0, size.Height-labelBottom+baseline)}
}

func (b *Button) Paint(ctx *Ctx, canvas graphics.Canvas, data bool, env *theme.Env) {
	th := theme.ButtonThemeOf(env)
	size := ctx.Size()
	PaintButton(canvas, b.Snapshot(ctx, data), th, size)
	if b.label.Text() == "" {
		return
	}
	labelSize, _ := b.label.Measure(env)
	canvas.DrawText(b.label.Text(), graphics.Offset{
		X: (size.Width - labelSize.Width) / 2,
		Y: (size.Height - labelSize.Height) / 2,
	}, graphics.TextStyle{Color: th.ForegroundColor, Size: b.label.TextSize(env)})
}

// AnimationFor grows a ripple from the center to the corners of the last
// laid out size. Before the first layout a square of the bordered widget
// height stands in.
func (b *Button) AnimationFor(_ bool, env *theme.Env, _ animation.State, _ bool) animation.Spec {
	size := b.size
	if size.Width <= 0 || size.Height <= 0 {
		h := theme.BorderedWidgetHeight.Get(env)
		size = graphics.Size{Width: h, Height: h}
	}
	return rippleSpec(max(rippleStartRadius, math.Hypot(size.Width, size.Height)/2))
}

// PaintButton draws the rounded background and, centered on it, the ripple
// or hover overlay. The label is not included.
func PaintButton(canvas graphics.Canvas, snap Snapshot, th theme.ButtonThemeData, size graphics.Size) {
	bg := th.BackgroundColor
	if snap.Value {
		bg = th.SelectedColor
	}
	rect := graphics.RectFromSize(size)
	canvas.DrawRRect(graphics.RRectFromRectAndRadius(rect, graphics.CircularRadius(th.BorderRadius)), graphics.FillPaint(bg))
	center := rect.Center()
	paintIndicator(canvas, snap, center, math.Hypot(size.Width, size.Height)/2, th.ForegroundColor)
}
