// Package interaction tracks the transient pointer and focus state of a
// toggle-like widget and decides when its bound value changes.
//
// A gesture is committed when the pointer is released while still over the
// widget (hot). Releasing elsewhere cancels it. The bound value is only ever
// written inside a committed release.
package interaction

import "fmt"

// State is the interaction snapshot paint reads.
type State struct {
	// Active is true between a press and its release or cancel.
	Active bool
	// Hot is true while the pointer is over the widget. It is tracked by the
	// host and copied in when the snapshot is taken.
	Hot bool
	// Focused is true while keyboard focus rests on the widget.
	Focused bool
}

// Outcome classifies a release.
type Outcome int

const (
	// OutcomeIgnored means there was no press to release.
	OutcomeIgnored Outcome = iota
	// OutcomeCanceled means the pointer left the widget before release.
	OutcomeCanceled
	// OutcomeCommitted means the gesture completed over the widget.
	OutcomeCommitted
)

// String returns a human-readable representation of the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeIgnored:
		return "ignored"
	case OutcomeCanceled:
		return "canceled"
	case OutcomeCommitted:
		return "committed"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Commit computes the bound value after a committed gesture.
type Commit func(current bool) bool

// Toggle flips the value. It is the default commit policy.
func Toggle(current bool) bool { return !current }

// Hold leaves the value alone, for widgets that only report clicks.
func Hold(current bool) bool { return current }

// Select always sets the value to v, as a radio button does.
func Select(v bool) Commit {
	return func(bool) bool { return v }
}

// Release describes what a release did.
type Release struct {
	Outcome Outcome
	// Changed is true when the commit wrote a different value.
	Changed bool
	// Repaint is true when the widget's visual output is stale.
	Repaint bool
}

// Controller owns a widget's active and focused flags. The zero value uses
// the Toggle commit policy.
type Controller struct {
	// Commit decides the new value on a committed release. Nil means Toggle.
	Commit Commit

	active     bool
	focused    bool
	registered bool
}

// Press starts a gesture. Pressing while already active is harmless. It
// always asks for a repaint.
func (c *Controller) Press() (repaint bool) {
	c.active = true
	return true
}

// Release ends a gesture. When hot is true the commit policy is applied to
// *data; otherwise the gesture is canceled. A release with no matching press
// changes nothing.
func (c *Controller) Release(hot bool, data *bool) Release {
	if !c.active {
		return Release{Outcome: OutcomeIgnored}
	}
	c.active = false
	if !hot {
		return Release{Outcome: OutcomeCanceled, Repaint: true}
	}

	commit := c.Commit
	if commit == nil {
		commit = Toggle
	}
	next := commit(*data)
	changed := next != *data
	*data = next
	return Release{Outcome: OutcomeCommitted, Changed: changed, Repaint: true}
}

// Cancel aborts a gesture without committing, for example when the host
// loses pointer capture. It reports whether a gesture was in progress.
func (c *Controller) Cancel() bool {
	was := c.active
	c.active = false
	return was
}

// Register returns true the first time it is called and false afterwards,
// so a widget registers for focus exactly once.
func (c *Controller) Register() bool {
	if c.registered {
		return false
	}
	c.registered = true
	return true
}

// SetFocused records a focus change and reports whether it differs from
// the previous value.
func (c *Controller) SetFocused(focused bool) bool {
	if c.focused == focused {
		return false
	}
	c.focused = focused
	return true
}

// Active reports whether a gesture is in progress.
func (c *Controller) Active() bool { return c.active }

// Focused reports whether the widget holds focus.
func (c *Controller) Focused() bool { return c.focused }

// State returns a snapshot with the host's hot flag folded in.
func (c *Controller) State(hot bool) State {
	return State{Active: c.active, Hot: hot, Focused: c.focused}
}
