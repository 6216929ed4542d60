// Package timer bounds writing sessions with a one-shot countdown.
package timer

import "sync"

// State is where a Countdown is in its lifecycle.
type State int

const (
	Idle State = iota
	Running
	Done
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Done:
		return "done"
	default:
		return "idle"
	}
}

// Snapshot is a consistent view of a Countdown.
type Snapshot struct {
	State     State
	Remaining int
}

// Countdown is a seconds countdown advanced by explicit ticks. It is safe
// for concurrent use.
type Countdown struct {
	mu        sync.Mutex
	state     State
	remaining int
	// generation changes on every Start and Cancel so stale tick sources
	// can tell they were superseded.
	generation int
}

// Start replaces any countdown in progress with one of the given minutes.
func (c *Countdown) Start(minutes int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generation++
	if minutes <= 0 {
		c.state = Done
		c.remaining = 0
		return
	}
	c.state = Running
	c.remaining = minutes * 60
}

// Tick advances a running countdown by one second.
func (c *Countdown) Tick() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == Running {
		c.remaining--
		if c.remaining <= 0 {
			c.remaining = 0
			c.state = Done
		}
	}
	return c.snapshot()
}

// Cancel returns the countdown to Idle.
func (c *Countdown) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generation++
	c.state = Idle
	c.remaining = 0
}

// Remaining reports the seconds left; ok is false while idle.
func (c *Countdown) Remaining() (seconds int, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == Idle {
		return 0, false
	}
	return c.remaining, true
}

func (c *Countdown) IsDone() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state == Done
}

func (c *Countdown) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot()
}

// Generation identifies the current Start; it changes on Start and Cancel.
func (c *Countdown) Generation() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generation
}

func (c *Countdown) snapshot() Snapshot {
	return Snapshot{State: c.state, Remaining: c.remaining}
}
