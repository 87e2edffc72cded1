// Package timer holds the focus-session countdown state machine. It is
// deliberately free of any scheduling: the caller owns the one-second
// tick and feeds it in via Tick, so the machine stays synchronous and
// directly testable.
package timer

import "fmt"

// State enumerates the countdown phases.
type State int

const (
	Idle State = iota
	Running
	Paused
	Finished
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Finished:
		return "finished"
	}
	return "unknown"
}

// DefaultSessionSeconds is one pomodoro: 25 minutes.
const DefaultSessionSeconds = 25 * 60

// Countdown is a single focus session. The zero value is unusable; use New.
type Countdown struct {
	remaining int
	full      int
	state     State
}

// New returns an idle countdown with the given session length. A
// non-positive length falls back to the default session.
func New(seconds int) Countdown {
	if seconds <= 0 {
		seconds = DefaultSessionSeconds
	}
	return Countdown{remaining: seconds, full: seconds, state: Idle}
}

func (c *Countdown) State() State   { return c.state }
func (c *Countdown) Remaining() int { return c.remaining }

// Start moves to Running from Idle or Paused. It reports whether a tick
// schedule should be acquired: false when already Running, when Finished,
// or when nothing remains to count down.
func (c *Countdown) Start() bool {
	if c.state == Running || c.state == Finished || c.remaining <= 0 {
		return false
	}
	c.state = Running
	return true
}

// Pause freezes a running countdown, retaining the remaining seconds.
// It reports whether the tick schedule should be released; no-op unless
// currently Running.
func (c *Countdown) Pause() bool {
	if c.state != Running {
		return false
	}
	c.state = Paused
	return true
}

// Reset is valid from every state: back to Idle with a full session.
// Any active tick schedule must be released by the caller.
func (c *Countdown) Reset() {
	c.remaining = c.full
	c.state = Idle
}

// Tick consumes one second. Only meaningful while Running; reaching zero
// moves to Finished, at which point the caller must release the schedule.
func (c *Countdown) Tick() {
	if c.state != Running {
		return
	}
	c.remaining--
	if c.remaining <= 0 {
		c.remaining = 0
		c.state = Finished
	}
}

// CanStart reports whether the start control is live in the current state.
func (c *Countdown) CanStart() bool {
	return (c.state == Idle || c.state == Paused) && c.remaining > 0
}

// CanPause reports whether the pause control is live.
func (c *Countdown) CanPause() bool { return c.state == Running }

// Format renders the remaining time as zero-padded MM:SS.
func (c *Countdown) Format() string {
	return fmt.Sprintf("%02d:%02d", c.remaining/60, c.remaining%60)
}
