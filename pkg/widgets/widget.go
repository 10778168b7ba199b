package widgets

import (
	"time"

	"github.com/go-drift/material/pkg/animation"
	"github.com/go-drift/material/pkg/graphics"
	"github.com/go-drift/material/pkg/layout"
	"github.com/go-drift/material/pkg/theme"
)

// Widget is the surface a host tree drives. Only Event may write to data.
type Widget interface {
	Event(ctx *Ctx, ev Event, data *bool, env *theme.Env)
	Lifecycle(ctx *Ctx, ev LifecycleEvent, data bool, env *theme.Env)
	Update(ctx *Ctx, old, data bool, env *theme.Env)
	Layout(ctx *Ctx, bc layout.Constraints, data bool, env *theme.Env) layout.Result
	Paint(ctx *Ctx, canvas graphics.Canvas, data bool, env *theme.Env)
}

// Event is an input or scheduled callback delivered to a widget.
type Event interface {
	isEvent()
}

// PointerDown is a press inside the widget.
type PointerDown struct {
	Position graphics.Offset
}

// PointerUp is a release. The host's hot flag decides whether it commits.
type PointerUp struct {
	Position graphics.Offset
}

// PointerCancel means the host lost the pointer mid-gesture.
type PointerCancel struct{}

// AnimFrame is an animation frame callback.
type AnimFrame struct {
	Token animation.Token
	// Elapsed is the time since the previous frame.
	Elapsed time.Duration
}

// Timer is a delayed callback.
type Timer struct {
	Token animation.Token
}

func (PointerDown) isEvent()   {}
func (PointerUp) isEvent()     {}
func (PointerCancel) isEvent() {}
func (AnimFrame) isEvent()     {}
func (Timer) isEvent()         {}

// LifecycleEvent is a tree notification.
type LifecycleEvent interface {
	isLifecycle()
}

// WidgetAdded is sent once, when the widget joins the tree.
type WidgetAdded struct{}

// HotChanged is sent when the pointer enters or leaves the widget.
type HotChanged struct {
	Hot bool
}

// FocusChanged is sent when keyboard focus moves to or from the widget.
type FocusChanged struct {
	Focused bool
}

func (WidgetAdded) isLifecycle()  {}
func (HotChanged) isLifecycle()   {}
func (FocusChanged) isLifecycle() {}
