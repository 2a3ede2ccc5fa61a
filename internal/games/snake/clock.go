package snake

import "time"

// Clock gates simulation steps by elapsed time.
// The platform polls Due every frame; drift between frames is tolerated.
type Clock struct {
	interval time.Duration
	last     time.Time
	armed    bool // false until the first step of a window has fired
	running  bool
}

// Start runs the clock with a fresh window: the next Due is immediate.
func (c *Clock) Start() {
	c.running = true
	c.armed = false
}

// StartAt runs the clock with a window opened at now: the next Due is one
// full interval later.
func (c *Clock) StartAt(now time.Time) {
	c.running = true
	c.Fire(now)
}

// Stop halts the clock; Due reports false until Start.
func (c *Clock) Stop() {
	c.running = false
	c.armed = false
}

// Reset discards the current window so the next Due is immediate.
func (c *Clock) Reset() {
	c.armed = false
}

// SetInterval changes the step interval.
func (c *Clock) SetInterval(d time.Duration) {
	c.interval = d
}

// Interval returns the step interval.
func (c *Clock) Interval() time.Duration {
	return c.interval
}

// Running reports whether the clock is started.
func (c *Clock) Running() bool {
	return c.running
}

// Due reports whether a step should run at now.
func (c *Clock) Due(now time.Time) bool {
	if !c.running {
		return false
	}
	return !c.armed || now.Sub(c.last) >= c.interval
}

// Fire records that a step ran at now.
func (c *Clock) Fire(now time.Time) {
	c.last = now
	c.armed = true
}
