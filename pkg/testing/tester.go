package testing

import (
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/go-drift/material/pkg/animation"
	"github.com/go-drift/material/pkg/errors"
	"github.com/go-drift/material/pkg/focus"
	"github.com/go-drift/material/pkg/graphics"
	"github.com/go-drift/material/pkg/layout"
	"github.com/go-drift/material/pkg/theme"
	"github.com/go-drift/material/pkg/widgets"
)

const (
	// DefaultTestWidth is the default maximum width offered to the widget.
	DefaultTestWidth = 800
	// DefaultTestHeight is the default maximum height offered to the widget.
	DefaultTestHeight = 600
	// FrameInterval is how far PumpAndSettle advances the clock per frame.
	FrameInterval = 16 * time.Millisecond
)

// ErrSettleTimeout is returned when PumpAndSettle exceeds its timeout.
var ErrSettleTimeout = errors.New("testing.PumpAndSettle", errors.KindUnknown, "",
	fmt.Errorf("widget did not settle: callbacks still pending"))

type pendingTimer struct {
	token animation.Token
	due   time.Time
}

// Tester hosts one widget bound to Value. It plays the role of the widget
// tree: it owns hover and focus, delivers scheduled callbacks, and calls
// Update whenever the bound value changes.
type Tester struct {
	// Value is the bound value. Change it through SetValue so the widget is
	// told.
	Value bool

	widget      widgets.Widget
	env         *theme.Env
	clock       *FakeClock
	ticker      *animation.Ticker
	constraints layout.Constraints
	size        graphics.Size
	hot         bool

	scope *focus.Scope
	node  *focus.Node

	frames []animation.Token
	timers []pendingTimer
	last   widgets.Requests
	paints int
}

// NewTester mounts w bound to value: it sends WidgetAdded and runs one
// layout.
func NewTester(w widgets.Widget, value bool) *Tester {
	clk := NewFakeClock()
	t := &Tester{
		Value:       value,
		widget:      w,
		env:         theme.NewEnv(),
		clock:       clk,
		ticker:      animation.NewTicker(clk),
		constraints: layout.Loose(graphics.Size{Width: DefaultTestWidth, Height: DefaultTestHeight}),
		scope:       &focus.Scope{},
	}
	t.node = &focus.Node{
		DebugLabel: fmt.Sprintf("%T", w),
		OnFocusChange: func(focused bool) {
			t.lifecycle(widgets.FocusChanged{Focused: focused})
		},
	}
	t.lifecycle(widgets.WidgetAdded{})
	t.Layout()
	return t
}

// NewTesterWithT is NewTester with panics during dispatch reported as test
// failures.
func NewTesterWithT(tb testing.TB, w widgets.Widget, value bool) *Tester {
	tb.Helper()
	prev := errors.SetHandler(&failHandler{tb: tb})
	tb.Cleanup(func() { errors.SetHandler(prev) })
	return NewTester(w, value)
}

// SetEnv replaces the theme and lays the widget out again.
func (t *Tester) SetEnv(env *theme.Env) {
	t.env = env
	t.Layout()
}

// Env returns the theme in use.
func (t *Tester) Env() *theme.Env {
	return t.env
}

// SetConstraints replaces the layout constraints and lays out again.
func (t *Tester) SetConstraints(bc layout.Constraints) {
	t.constraints = bc
	t.Layout()
}

// Clock returns the fake clock.
func (t *Tester) Clock() *FakeClock {
	return t.clock
}

// Focus returns the focus scope the widget registered with.
func (t *Tester) Focus() *focus.Scope {
	return t.scope
}

// FocusNode returns the widget's focus node.
func (t *Tester) FocusNode() *focus.Node {
	return t.node
}

// LastRequests returns what the widget asked for during the last call.
func (t *Tester) LastRequests() widgets.Requests {
	return t.last
}

// PaintRequests returns how many calls asked for a repaint.
func (t *Tester) PaintRequests() int {
	return t.paints
}

// PendingFrames returns the tokens of undelivered frame callbacks.
func (t *Tester) PendingFrames() []animation.Token {
	return append([]animation.Token(nil), t.frames...)
}

// PendingTimers returns the tokens of undelivered timer callbacks.
func (t *Tester) PendingTimers() []animation.Token {
	out := make([]animation.Token, len(t.timers))
	for i, tm := range t.timers {
		out[i] = tm.token
	}
	return out
}

// Settled reports whether no callbacks are pending.
func (t *Tester) Settled() bool {
	return len(t.frames) == 0 && len(t.timers) == 0
}

// SetFocused gives focus to the widget or takes it away through the focus
// scope.
func (t *Tester) SetFocused(focused bool) {
	if focused {
		t.scope.Focus(t.node)
	} else {
		t.scope.Unfocus()
	}
}

// SetHot moves the pointer onto or off the widget.
func (t *Tester) SetHot(hot bool) {
	if t.hot == hot {
		return
	}
	t.hot = hot
	t.lifecycle(widgets.HotChanged{Hot: hot})
}

// Press sends a pointer down.
func (t *Tester) Press() {
	t.Dispatch(widgets.PointerDown{})
}

// Release sends a pointer up.
func (t *Tester) Release() {
	t.Dispatch(widgets.PointerUp{})
}

// Cancel sends a pointer cancel.
func (t *Tester) Cancel() {
	t.Dispatch(widgets.PointerCancel{})
}

// Click moves the pointer onto the widget, then presses and releases.
func (t *Tester) Click() {
	t.SetHot(true)
	t.Press()
	t.Release()
}

// SetValue changes the bound value from outside the widget.
func (t *Tester) SetValue(v bool) {
	old := t.Value
	t.Value = v
	t.update(old)
}

// Dispatch delivers ev and then, if the widget changed the value, the
// matching Update, as a host tree would.
func (t *Tester) Dispatch(ev widgets.Event) {
	defer errors.Recover("testing.Dispatch")
	old := t.Value
	ctx := t.ctx()
	t.widget.Event(ctx, ev, &t.Value, t.env)
	t.collect(ctx)
	t.update(old)
}

// Pump delivers one frame: every due timer, then every pending frame
// callback with the time since the previous frame.
func (t *Tester) Pump() {
	now := t.clock.Now()
	var due []animation.Token
	kept := t.timers[:0]
	for _, tm := range t.timers {
		if !tm.due.After(now) {
			due = append(due, tm.token)
		} else {
			kept = append(kept, tm)
		}
	}
	t.timers = kept
	for _, token := range due {
		t.Dispatch(widgets.Timer{Token: token})
	}

	if len(t.frames) == 0 {
		t.ticker.Stop()
		return
	}
	elapsed := t.ticker.Tick()
	frames := t.frames
	t.frames = nil
	for _, token := range frames {
		t.Dispatch(widgets.AnimFrame{Token: token, Elapsed: elapsed})
	}
}

// PumpAndSettle pumps frames, advancing the clock by FrameInterval between
// them, until no callbacks are pending. It returns ErrSettleTimeout if that
// takes longer than timeout.
func (t *Tester) PumpAndSettle(timeout time.Duration) error {
	var elapsed time.Duration
	for elapsed <= timeout {
		t.Pump()
		if t.Settled() {
			t.ticker.Stop()
			return nil
		}
		t.clock.Advance(FrameInterval)
		elapsed += FrameInterval
	}
	return ErrSettleTimeout
}

// Layout lays the widget out with the current constraints and remembers
// the size for hit testing and paint.
func (t *Tester) Layout() layout.Result {
	res := t.widget.Layout(t.ctx(), t.constraints, t.Value, t.env)
	t.size = res.Size
	return res
}

// Size returns the last laid out size.
func (t *Tester) Size() graphics.Size {
	return t.size
}

// Paint records what the widget paints now.
func (t *Tester) Paint() *graphics.DisplayList {
	var rec graphics.PictureRecorder
	canvas := rec.BeginRecording(t.size)
	t.widget.Paint(t.ctx(), canvas, t.Value, t.env)
	return rec.EndRecording()
}

func (t *Tester) ctx() *widgets.Ctx {
	return widgets.NewCtx(t.hot, t.size)
}

func (t *Tester) lifecycle(ev widgets.LifecycleEvent) {
	defer errors.Recover("testing.Lifecycle")
	ctx := t.ctx()
	t.widget.Lifecycle(ctx, ev, t.Value, t.env)
	t.collect(ctx)
}

func (t *Tester) update(old bool) {
	if old == t.Value {
		return
	}
	ctx := t.ctx()
	t.widget.Update(ctx, old, t.Value, t.env)
	t.collect(ctx)
}

func (t *Tester) collect(ctx *widgets.Ctx) {
	req := ctx.Requests()
	t.last = req
	if req.Paint {
		t.paints++
	}
	if req.RegisterForFocus && !t.scope.Register(t.node) {
		slog.Warn("widget registered for focus twice", "widget", t.node.DebugLabel)
	}
	for _, r := range req.Schedule {
		if r.Frame {
			t.frames = append(t.frames, r.Token)
		}
		if r.Timer > 0 {
			t.timers = append(t.timers, pendingTimer{token: r.Token, due: t.clock.Now().Add(r.Timer)})
		}
	}
}

// failHandler turns reported panics and errors into test failures.
type failHandler struct {
	tb testing.TB
}

func (h *failHandler) HandleError(err *errors.MaterialError) {
	h.tb.Errorf("%v", err)
}

func (h *failHandler) HandlePanic(err *errors.PanicError) {
	h.tb.Errorf("%v\n%s", err, err.StackTrace)
}
