// Package animation drives per-widget animations from host-delivered ticks.
//
// # Core Components
//
//   - [Driver]: owns at most one running animation. Starting an animation
//     returns a [Request] describing the frame and timer callbacks the host
//     must deliver; every callback carries the [Token] it was issued for.
//
//   - [Ticker]: host-side helper that measures elapsed time between frames
//     using a [Clock].
//
//   - Curves and lerp helpers: map driver progress to eased visual values.
//
// # Token Correlation
//
// Each Start mints a fresh Token and implicitly invalidates the previous one.
// Tick and Expire compare tokens by equality, so a late callback for a
// superseded animation is a no-op even though another animation is running:
//
//	req := d.Start(animation.Spec{Start: 0, Target: 1, Duration: 200 * time.Millisecond})
//	host.Schedule(req)
//	// ... later, for each frame the host delivers:
//	next, ok := d.Tick(frame.Token, frame.Elapsed)
//
// A host that never delivers ticks leaves the driver running indefinitely.
// That is accepted: the widget keeps painting its last animated state.
package animation

import (
	"fmt"
	"time"
)

// Token correlates a scheduled frame or timer callback with the animation
// that requested it. The zero Token never identifies a running animation.
type Token uint64

// String returns a human-readable representation of the token.
func (t Token) String() string {
	return fmt.Sprintf("anim#%d", uint64(t))
}

// Status is the driver's state.
//
//	        Start()                 target reached / Expire(token)
//	Idle ──────────────► Running ─────────────────────────────────► Idle
//	                      │  ▲
//	                      └──┘ Tick(token) or Start() (preempt)
type Status int

const (
	// StatusIdle means no animation is in flight.
	StatusIdle Status = iota
	// StatusRunning means an animation is in flight.
	StatusRunning
)

// String returns a human-readable representation of the status.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusRunning:
		return "running"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Spec describes one animation run.
type Spec struct {
	// Start is the initial progress value.
	Start float64
	// Target is the value progress moves toward and never passes.
	Target float64
	// Duration is the time needed to travel from Start to Target.
	// Zero or negative jumps to Target on the first tick.
	Duration time.Duration
	// Expiry, when positive, makes the animation fixed-length: progress
	// holds at Target once reached and the run ends only when the
	// correlated timer fires.
	Expiry time.Duration
}

// Request is what a driver asks of the host's scheduler. The zero Request
// asks for nothing.
type Request struct {
	Token Token
	// Frame asks for one animation-frame callback.
	Frame bool
	// Timer, when positive, asks for one timer callback after the duration.
	Timer time.Duration
}

// IsZero reports whether the request asks for nothing.
func (r Request) IsZero() bool {
	return !r.Frame && r.Timer <= 0
}

// State is a read-only view of a running animation.
type State struct {
	Token    Token
	Start    float64
	Target   float64
	Progress float64
}

// Fraction returns progress normalized to [0, 1] between Start and Target.
func (s State) Fraction() float64 {
	if s.Target == s.Start {
		return 1
	}
	return (s.Progress - s.Start) / (s.Target - s.Start)
}

// Driver runs at most one animation at a time. The zero value is an idle
// driver ready to use. Driver is not safe for concurrent use; hosts deliver
// events to a widget one at a time.
type Driver struct {
	generation Token
	token      Token
	status     Status
	spec       Spec
	elapsed    time.Duration
	progress   float64
}

// Start begins a new animation, preempting any running one, and returns the
// callbacks the host must schedule.
func (d *Driver) Start(spec Spec) Request {
	d.generation++
	d.token = d.generation
	d.status = StatusRunning
	d.spec = spec
	d.elapsed = 0
	d.progress = spec.Start

	req := Request{Token: d.token, Frame: true}
	if spec.Expiry > 0 {
		req.Timer = spec.Expiry
	}
	return req
}

// Tick advances the animation by elapsed. It reports false and changes
// nothing when token does not belong to the running animation. The returned
// request is non-zero while more frames are needed.
func (d *Driver) Tick(token Token, elapsed time.Duration) (Request, bool) {
	if d.status != StatusRunning || token != d.token {
		return Request{}, false
	}
	if elapsed > 0 {
		d.elapsed += elapsed
	}
	d.progress = d.valueAt(d.elapsed)

	if d.progress != d.spec.Target {
		return Request{Token: d.token, Frame: true}, true
	}
	if d.spec.Expiry <= 0 {
		d.finish()
	}
	return Request{}, true
}

// Expire ends the running animation when token matches it. Stale tokens are
// ignored and reported as false.
func (d *Driver) Expire(token Token) bool {
	if d.status != StatusRunning || token != d.token {
		return false
	}
	d.finish()
	return true
}

// Cancel stops any running animation. Its token becomes stale.
func (d *Driver) Cancel() {
	d.finish()
}

// Status returns the current status.
func (d *Driver) Status() Status {
	return d.status
}

// Running reports whether an animation is in flight.
func (d *Driver) Running() bool {
	return d.status == StatusRunning
}

// Token returns the running animation's token, or zero when idle.
func (d *Driver) Token() Token {
	if d.status != StatusRunning {
		return 0
	}
	return d.token
}

// State returns the running animation's state. The second result is false
// when idle.
func (d *Driver) State() (State, bool) {
	if d.status != StatusRunning {
		return State{}, false
	}
	return State{
		Token:    d.token,
		Start:    d.spec.Start,
		Target:   d.spec.Target,
		Progress: d.progress,
	}, true
}

func (d *Driver) finish() {
	d.status = StatusIdle
	d.token = 0
	d.elapsed = 0
}

// valueAt interpolates by elapsed time and clamps toward the target so the
// result never passes it. Elapsed time is accumulated as an integer duration
// so ticks summing to Duration land exactly on Target.
func (d *Driver) valueAt(elapsed time.Duration) float64 {
	s := d.spec
	if s.Duration <= 0 || elapsed >= s.Duration {
		return s.Target
	}
	v := s.Start + (s.Target-s.Start)*(float64(elapsed)/float64(s.Duration))
	if s.Target >= s.Start {
		return min(v, s.Target)
	}
	return max(v, s.Target)
}
