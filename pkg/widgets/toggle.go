package widgets

import (
	"log/slog"

	"github.com/go-drift/material/pkg/animation"
	"github.com/go-drift/material/pkg/interaction"
	"github.com/go-drift/material/pkg/theme"
)

// Snapshot is everything paint may read besides the theme.
type Snapshot struct {
	Value       bool
	Interaction interaction.State
	// Animation is valid only when Animating is true.
	Animation animation.State
	Animating bool
}

// Motion supplies the animation a widget runs when its value changes.
type Motion interface {
	// AnimationFor returns the run toward data. current is the driver's
	// state; running is false when it is idle.
	AnimationFor(data bool, env *theme.Env, current animation.State, running bool) animation.Spec
}

// Toggle is the state shared by every toggle-like widget: one interaction
// controller and one animation driver, plus the dispatch that connects
// them. Concrete widgets embed it and pass themselves as the Motion.
type Toggle struct {
	Controller interaction.Controller
	Driver     animation.Driver
	// AnimateUnchanged starts the animation on commits that leave the value
	// as it was, such as a button click.
	AnimateUnchanged bool

	// echo holds the value our own commit wrote, so the Update the host
	// sends for it is not mistaken for an external change.
	echo    bool
	echoSet bool
}

// HandleEvent runs the shared event dispatch and returns what a release
// did. Non-release events report interaction.OutcomeIgnored.
func (t *Toggle) HandleEvent(ctx *Ctx, ev Event, data *bool, env *theme.Env, m Motion) interaction.Release {
	switch ev := ev.(type) {
	case PointerDown:
		if t.Controller.Press() {
			ctx.RequestPaint()
		}
	case PointerUp:
		rel := t.Controller.Release(ctx.IsHot(), data)
		if rel.Outcome == interaction.OutcomeCommitted && (rel.Changed || t.AnimateUnchanged) {
			t.start(ctx, m, *data, env)
		}
		if rel.Changed {
			t.echo, t.echoSet = *data, true
		}
		if rel.Repaint {
			ctx.RequestPaint()
		}
		return rel
	case PointerCancel:
		if t.Controller.Cancel() {
			ctx.RequestPaint()
		}
	case AnimFrame:
		next, ok := t.Driver.Tick(ev.Token, ev.Elapsed)
		if !ok {
			slog.Debug("dropping stale animation frame", "token", ev.Token, "current", t.Driver.Token())
			return interaction.Release{}
		}
		ctx.RequestPaint()
		ctx.Schedule(next)
	case Timer:
		if !t.Driver.Expire(ev.Token) {
			slog.Debug("dropping stale animation timer", "token", ev.Token, "current", t.Driver.Token())
			return interaction.Release{}
		}
		ctx.RequestPaint()
	}
	return interaction.Release{}
}

// HandleLifecycle registers for focus once, tracks focus and repaints on
// hover changes.
func (t *Toggle) HandleLifecycle(ctx *Ctx, ev LifecycleEvent) {
	switch ev := ev.(type) {
	case WidgetAdded:
		if t.Controller.Register() {
			ctx.RegisterForFocus()
		}
	case HotChanged:
		ctx.RequestPaint()
	case FocusChanged:
		if t.Controller.SetFocused(ev.Focused) {
			ctx.RequestPaint()
		}
	}
}

// HandleUpdate animates toward data when the host changed the value from
// outside the widget.
func (t *Toggle) HandleUpdate(ctx *Ctx, old, data bool, env *theme.Env, m Motion) {
	if old == data {
		return
	}
	ctx.RequestPaint()
	if t.echoSet && t.echo == data {
		t.echoSet = false
		return
	}
	t.echoSet = false
	t.start(ctx, m, data, env)
}

// Snapshot captures the paint inputs.
func (t *Toggle) Snapshot(ctx *Ctx, data bool) Snapshot {
	st, running := t.Driver.State()
	return Snapshot{
		Value:       data,
		Interaction: t.Controller.State(ctx.IsHot()),
		Animation:   st,
		Animating:   running,
	}
}

func (t *Toggle) start(ctx *Ctx, m Motion, data bool, env *theme.Env) {
	current, running := t.Driver.State()
	ctx.Schedule(t.Driver.Start(m.AnimationFor(data, env, current, running)))
}
