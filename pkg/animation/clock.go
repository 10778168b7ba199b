package animation

import "time"

// Clock provides time to hosts that turn frames into elapsed durations.
// Tests inject a fake clock to control timing deterministically.
type Clock interface {
	Now() time.Time
}

// SystemClock uses wall-clock time.
type SystemClock struct{}

// Now returns the current system time.
func (SystemClock) Now() time.Time { return time.Now() }

// Ticker measures the time between successive host frames so every
// animation-frame event can carry the elapsed time since the previous one.
type Ticker struct {
	clock  Clock
	last   time.Time
	active bool
}

// NewTicker creates a ticker reading from clock. A nil clock uses
// SystemClock.
func NewTicker(clock Clock) *Ticker {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Ticker{clock: clock}
}

// Start marks the current time as the previous frame. It is a no-op while
// active.
func (t *Ticker) Start() {
	if t.active {
		return
	}
	t.active = true
	t.last = t.clock.Now()
}

// Stop deactivates the ticker. The next Tick restarts it.
func (t *Ticker) Stop() {
	t.active = false
}

// IsActive returns whether the ticker is running.
func (t *Ticker) IsActive() bool {
	return t.active
}

// Tick returns the time since the previous Tick (or Start) and records now
// as the new reference. An inactive ticker starts and returns zero. A clock
// that moves backwards yields zero rather than a negative duration.
func (t *Ticker) Tick() time.Duration {
	if !t.active {
		t.Start()
		return 0
	}
	now := t.clock.Now()
	elapsed := now.Sub(t.last)
	t.last = now
	if elapsed < 0 {
		return 0
	}
	return elapsed
}
