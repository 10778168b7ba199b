package widgets_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/material/pkg/animation"
	"github.com/go-drift/material/pkg/graphics"
	mtesting "github.com/go-drift/material/pkg/testing"
	"github.com/go-drift/material/pkg/theme"
	"github.com/go-drift/material/pkg/widgets"
)

func TestScenario_ClickCommitsAndAnimatesTowardTrue(t *testing.T) {
	sw := widgets.NewSwitch()
	tester := mtesting.NewTesterWithT(t, sw, false)

	tester.Click()

	assert.True(t, tester.Value)
	assert.False(t, sw.Controller.Active())
	st, ok := sw.Driver.State()
	require.True(t, ok)
	assert.Equal(t, 1.0, st.Target)
	assert.Equal(t, []animation.Token{st.Token}, tester.PendingFrames())
	assert.Equal(t, animation.Token(1), st.Token, "the host's echo must not restart the animation")

	require.NoError(t, tester.PumpAndSettle(time.Second))
	assert.False(t, sw.Driver.Running())
}

func TestScenario_ReleaseOffWidgetLeavesValue(t *testing.T) {
	sw := widgets.NewSwitch()
	tester := mtesting.NewTesterWithT(t, sw, false)

	tester.SetHot(true)
	tester.Press()
	assert.True(t, sw.Controller.Active())
	tester.SetHot(false)
	tester.Release()

	assert.False(t, tester.Value)
	assert.False(t, sw.Controller.Active())
	assert.False(t, sw.Driver.Running())
	assert.True(t, tester.Settled())
}

func TestScenario_TicksSummingToDurationFinishOnce(t *testing.T) {
	sw := widgets.NewSwitch()
	tester := mtesting.NewTesterWithT(t, sw, false)
	tester.Click()
	token := sw.Driver.Token()

	tester.Pump() // starts the frame clock; zero elapsed
	transitions := 0
	for i := 0; i < 4; i++ {
		was := sw.Driver.Running()
		tester.Clock().Advance(50 * time.Millisecond)
		tester.Pump()
		if was && !sw.Driver.Running() {
			transitions++
		}
		if i < 3 {
			assert.True(t, sw.Driver.Running(), "frame %d", i)
		}
	}
	assert.Equal(t, 1, transitions)
	assert.True(t, tester.Settled())

	tester.Dispatch(widgets.AnimFrame{Token: token, Elapsed: 50 * time.Millisecond})
	assert.False(t, sw.Driver.Running(), "a late frame never restarts a finished run")
}

func TestScenario_SecondTriggerWins(t *testing.T) {
	sw := widgets.NewSwitch()
	tester := mtesting.NewTesterWithT(t, sw, false)

	tester.Click()
	first := sw.Driver.Token()
	tester.Pump()
	tester.Clock().Advance(50 * time.Millisecond)
	tester.Pump()

	tester.Click()
	second := sw.Driver.Token()
	require.NotEqual(t, first, second)
	assert.False(t, tester.Value)
	assert.ElementsMatch(t, []animation.Token{first, second}, tester.PendingFrames())

	st, _ := sw.Driver.State()
	assert.Equal(t, 0.25, st.Start, "the knob reverses from where it was")
	assert.Equal(t, 0.0, st.Target)

	tester.Dispatch(widgets.AnimFrame{Token: first, Elapsed: 10 * time.Millisecond})
	after, _ := sw.Driver.State()
	assert.Equal(t, st, after)

	tester.Clock().Advance(16 * time.Millisecond)
	tester.Pump()
	assert.Equal(t, []animation.Token{second}, tester.PendingFrames())
	require.NoError(t, tester.PumpAndSettle(time.Second))
	assert.Equal(t, 0.0, widgets.KnobFraction(sw.Snapshot(widgets.NewCtx(false, graphics.Size{}), tester.Value)))
}

func TestScenario_ExternalChangeAnimatesLikeClick(t *testing.T) {
	clicked := widgets.NewSwitch()
	mtesting.NewTesterWithT(t, clicked, false).Click()
	byClick, _ := clicked.Driver.State()

	external := widgets.NewSwitch()
	tester := mtesting.NewTesterWithT(t, external, false)
	tester.SetValue(true)
	byHost, ok := external.Driver.State()
	require.True(t, ok)

	assert.Equal(t, byClick.Start, byHost.Start)
	assert.Equal(t, byClick.Target, byHost.Target)
	assert.Len(t, tester.PendingFrames(), 1)
	assert.True(t, tester.LastRequests().Paint)
}

func TestCheckbox_RippleLifecycle(t *testing.T) {
	cb := widgets.NewCheckbox("Accept")
	tester := mtesting.NewTesterWithT(t, cb, false)

	tester.Click()
	require.True(t, tester.Value)
	st, ok := cb.Driver.State()
	require.True(t, ok)
	assert.Equal(t, 10.0, st.Start)
	assert.Equal(t, 21.5, st.Target)
	assert.Len(t, tester.PendingTimers(), 1)

	// Halfway through, the ripple is the only indicator drawn.
	tester.Pump()
	tester.Clock().Advance(100 * time.Millisecond)
	tester.Pump()
	circles := graphics.OpsOf[graphics.CircleOp](tester.Paint())
	require.Len(t, circles, 1)
	assert.InDelta(t, 15.75, circles[0].Radius, 1e-9)
	assert.Equal(t, theme.Primary.Get(tester.Env()).WithAlpha(0.3), circles[0].Paint.Color)

	require.NoError(t, tester.PumpAndSettle(time.Second))
	assert.False(t, cb.Driver.Running())
	assert.Empty(t, tester.PendingTimers())
}

func TestCheckbox_RippleHoldsUntilTimer(t *testing.T) {
	cb := widgets.NewCheckbox("Accept")
	tester := mtesting.NewTesterWithT(t, cb, false)
	tester.Click()
	token := cb.Driver.Token()

	tester.Dispatch(widgets.AnimFrame{Token: token, Elapsed: time.Second})
	st, ok := cb.Driver.State()
	require.True(t, ok, "a fixed-length ripple waits for its timer")
	assert.Equal(t, 21.5, st.Progress)

	tester.Dispatch(widgets.Timer{Token: token})
	assert.False(t, cb.Driver.Running())
}

func TestCheckbox_Paint(t *testing.T) {
	cb := widgets.NewCheckbox("Accept")
	tester := mtesting.NewTesterWithT(t, cb, true)
	env := tester.Env()

	dl := tester.Paint()
	assert.Empty(t, graphics.OpsOf[graphics.CircleOp](dl), "idle, cold and unfocused draws no indicator")

	boxes := graphics.OpsOf[graphics.RRectOp](dl)
	require.Len(t, boxes, 2)
	assert.Equal(t, graphics.RectFromLTWH(12.5, 12.5, 18, 18), boxes[0].RRect.Rect)
	assert.Equal(t, graphics.PaintStyleFill, boxes[0].Paint.Style)
	assert.Equal(t, theme.Primary.Get(env), boxes[0].Paint.Color)
	assert.Equal(t, graphics.PaintStyleStroke, boxes[1].Paint.Style)

	checks := graphics.OpsOf[graphics.PathOpRecord](dl)
	require.Len(t, checks, 1)
	assert.Equal(t, theme.OnPrimary.Get(env), checks[0].Paint.Color)
	assert.Equal(t, graphics.CapRound, checks[0].Paint.StrokeCap)
	assert.Len(t, checks[0].Path.Commands, 3)

	texts := graphics.OpsOf[graphics.TextOp](dl)
	require.Len(t, texts, 1)
	assert.Equal(t, "Accept", texts[0].Text)
	assert.Equal(t, graphics.Offset{X: 43, Y: 9.5}, texts[0].Origin)

	tester.SetValue(false)
	require.NoError(t, tester.PumpAndSettle(time.Second))
	dl = tester.Paint()
	assert.Len(t, graphics.OpsOf[graphics.RRectOp](dl), 1, "unchecked draws only the outline")
	assert.Empty(t, graphics.OpsOf[graphics.PathOpRecord](dl))
	assert.Equal(t, theme.BorderLight.Get(env), graphics.OpsOf[graphics.RRectOp](dl)[0].Paint.Color)
}

func TestCheckbox_FocusAndHoverIndicators(t *testing.T) {
	cb := widgets.NewCheckbox("Accept")
	tester := mtesting.NewTesterWithT(t, cb, false)
	require.Equal(t, 1, tester.Focus().Len())
	border := theme.BorderLight.Get(tester.Env())

	tester.SetHot(true)
	circles := graphics.OpsOf[graphics.CircleOp](tester.Paint())
	require.Len(t, circles, 1)
	assert.Equal(t, border.WithAlpha(0.05), circles[0].Paint.Color)
	assert.Equal(t, 21.5, circles[0].Radius)

	tester.SetFocused(true)
	assert.True(t, cb.Controller.Focused())
	circles = graphics.OpsOf[graphics.CircleOp](tester.Paint())
	require.Len(t, circles, 1)
	assert.Equal(t, border.WithAlpha(0.12), circles[0].Paint.Color)

	tester.SetFocused(false)
	tester.SetHot(false)
	assert.Empty(t, graphics.OpsOf[graphics.CircleOp](tester.Paint()))
}

func TestCheckbox_Layout(t *testing.T) {
	cb := widgets.NewCheckbox("Accept")
	tester := mtesting.NewTesterWithT(t, cb, false)

	res := tester.Layout()
	labelWidth := 6 * 7 * 18.0 / 13
	assert.InDelta(t, 43+labelWidth, res.Size.Width, 1e-9)
	assert.Equal(t, 43.0, res.Size.Height)
	assert.InDelta(t, 43-27.5+2*18.0/13, res.Baseline, 1e-9)

	cb.SetText("")
	assert.Equal(t, graphics.Size{Width: 43, Height: 43}, tester.Layout().Size)
	assert.Equal(t, "", cb.Label())
}

func TestCheckbox_WidgetAddedRegistersOnce(t *testing.T) {
	cb := widgets.NewCheckbox("x")
	tester := mtesting.NewTesterWithT(t, cb, false)
	assert.False(t, tester.FocusNode().HasFocus())

	ctx := widgets.NewCtx(false, tester.Size())
	cb.Lifecycle(ctx, widgets.WidgetAdded{}, false, tester.Env())
	assert.False(t, ctx.Requests().RegisterForFocus)
	assert.Equal(t, 1, tester.Focus().Len())
}

func TestSwitch_PaintFollowsKnob(t *testing.T) {
	sw := widgets.NewSwitch()
	tester := mtesting.NewTesterWithT(t, sw, false)
	env := tester.Env()

	assert.Equal(t, graphics.Size{Width: 36, Height: 24}, tester.Layout().Size)

	knob := func() graphics.CircleOp {
		circles := graphics.OpsOf[graphics.CircleOp](tester.Paint())
		require.NotEmpty(t, circles)
		return circles[len(circles)-1]
	}
	assert.Equal(t, graphics.Offset{X: 12, Y: 12}, knob().Center)
	assert.Equal(t, 9.0, knob().Radius)

	tester.Click()
	tester.Pump()
	tester.Clock().Advance(100 * time.Millisecond)
	tester.Pump()
	assert.InDelta(t, 18, knob().Center.X, 1e-9)

	require.NoError(t, tester.PumpAndSettle(time.Second))
	assert.Equal(t, graphics.Offset{X: 24, Y: 12}, knob().Center)

	tracks := graphics.OpsOf[graphics.RRectOp](tester.Paint())
	require.Len(t, tracks, 3)
	assert.Equal(t, theme.BorderDark.Get(env), tracks[0].Paint.Color)
	require.NotNil(t, tracks[1].Paint.Gradient)
	assert.Equal(t, 1.0, tracks[1].Paint.Gradient.From.Alpha())
	assert.Equal(t, 0.0, tracks[2].Paint.Gradient.From.Alpha())
}

func TestSwitch_PressedFlipsKnobGradient(t *testing.T) {
	sw := widgets.NewSwitch()
	tester := mtesting.NewTesterWithT(t, sw, false)
	env := tester.Env()

	fill := func() *graphics.LinearGradient {
		circles := graphics.OpsOf[graphics.CircleOp](tester.Paint())
		return circles[len(circles)-1].Paint.Gradient
	}
	assert.Equal(t, theme.ForegroundLight.Get(env), fill().From)

	tester.SetHot(true)
	tester.Press()
	assert.Equal(t, theme.ForegroundDark.Get(env), fill().From)
	tester.Cancel()
	assert.Equal(t, theme.ForegroundLight.Get(env), fill().From)
	assert.False(t, tester.Value)
}

func TestRadio_SelectsVariant(t *testing.T) {
	yes := widgets.NewRadio("Yes", true)
	tester := mtesting.NewTesterWithT(t, yes, false)

	tester.Click()
	assert.True(t, tester.Value)
	token := yes.Driver.Token()
	require.NotZero(t, token)

	// Clicking the selected radio changes nothing and plays no new ripple.
	tester.Click()
	assert.True(t, tester.Value)
	assert.Equal(t, token, yes.Driver.Token())

	no := widgets.NewRadio("No", false)
	other := mtesting.NewTesterWithT(t, no, true)
	other.Click()
	assert.False(t, other.Value)
	assert.False(t, no.Variant())
}

func TestRadio_DeselectedBySiblingOnlyRepaints(t *testing.T) {
	yes := widgets.NewRadio("Yes", true)
	tester := mtesting.NewTesterWithT(t, yes, true)

	tester.SetValue(false)
	assert.True(t, tester.LastRequests().Paint)
	assert.False(t, yes.Driver.Running())

	tester.SetValue(true)
	assert.True(t, yes.Driver.Running(), "being selected from outside ripples")
}

func TestRadio_Paint(t *testing.T) {
	yes := widgets.NewRadio("Yes", true)
	tester := mtesting.NewTesterWithT(t, yes, true)
	env := tester.Env()

	circles := graphics.OpsOf[graphics.CircleOp](tester.Paint())
	require.Len(t, circles, 2)
	assert.Equal(t, 9.0, circles[0].Radius)
	assert.Equal(t, graphics.PaintStyleStroke, circles[0].Paint.Style)
	assert.Equal(t, 4.5, circles[1].Radius)
	assert.Equal(t, theme.Primary.Get(env), circles[1].Paint.Color)

	tester.SetValue(false)
	circles = graphics.OpsOf[graphics.CircleOp](tester.Paint())
	require.Len(t, circles, 1)
	assert.Equal(t, theme.BorderLight.Get(env), circles[0].Paint.Color)
}

func TestButton_ClickReportsAndRipples(t *testing.T) {
	btn := widgets.NewButton("Btn")
	clicks := 0
	btn.OnClick = func() { clicks++ }
	tester := mtesting.NewTesterWithT(t, btn, false)

	tester.Click()
	assert.Equal(t, 1, clicks)
	assert.False(t, tester.Value, "a plain button holds its value")
	st, ok := btn.Driver.State()
	require.True(t, ok)

	size := tester.Size()
	assert.InDelta(t, math.Hypot(size.Width, size.Height)/2, st.Target, 1e-9)

	tester.Press()
	tester.SetHot(false)
	tester.Release()
	assert.Equal(t, 1, clicks, "releasing off the button is not a click")
}

func TestButton_Toggleable(t *testing.T) {
	btn := widgets.NewButton("Bold").Toggleable()
	tester := mtesting.NewTesterWithT(t, btn, false)
	env := tester.Env()

	tester.Click()
	assert.True(t, tester.Value)
	require.NoError(t, tester.PumpAndSettle(time.Second))

	bg := graphics.OpsOf[graphics.RRectOp](tester.Paint())
	require.Len(t, bg, 1)
	assert.Equal(t, theme.PrimaryVariant.Get(env), bg[0].Paint.Color)
}

func TestButton_Layout(t *testing.T) {
	btn := widgets.NewButton("Btn")
	tester := mtesting.NewTesterWithT(t, btn, false)

	res := tester.Layout()
	assert.InDelta(t, 3*7*18.0/13+32, res.Size.Width, 1e-9)
	assert.Equal(t, 34.0, res.Size.Height)

	texts := graphics.OpsOf[graphics.TextOp](tester.Paint())
	require.Len(t, texts, 1)
	assert.Equal(t, theme.OnPrimary.Get(tester.Env()), texts[0].Style.Color)
	assert.InDelta(t, 16, texts[0].Origin.X, 1e-9)
	assert.InDelta(t, 8, texts[0].Origin.Y, 1e-9)
}

func TestWidgets_StayInactiveAfterAnyRelease(t *testing.T) {
	for name, w := range map[string]interface {
		widgets.Widget
		Snapshot(*widgets.Ctx, bool) widgets.Snapshot
	}{
		"checkbox": widgets.NewCheckbox("c"),
		"switch":   widgets.NewSwitch(),
		"radio":    widgets.NewRadio("r", true),
		"button":   widgets.NewButton("b"),
	} {
		t.Run(name, func(t *testing.T) {
			tester := mtesting.NewTesterWithT(t, w, false)
			for i := 0; i < 20; i++ {
				tester.SetHot(i%3 != 0)
				if i%2 == 0 {
					tester.Press()
				}
				tester.Release()
				snap := w.Snapshot(widgets.NewCtx(false, graphics.Size{}), tester.Value)
				require.False(t, snap.Interaction.Active)
			}
			require.NoError(t, tester.PumpAndSettle(time.Second))
		})
	}
}
