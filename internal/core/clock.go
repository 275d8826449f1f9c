package core

import "time"

// MaxStep is the default upper bound for one simulation step, in seconds.
// Anything longer (a stalled tab, a suspended terminal) is treated as a
// single ordinary frame instead of a jump.
const MaxStep = 0.033

// ClampDelta converts an elapsed duration into a step length in seconds,
// limited to [0, max].
func ClampDelta(elapsed time.Duration, max float64) float64 {
	if elapsed <= 0 {
		return 0
	}
	dt := elapsed.Seconds()
	if dt > max {
		return max
	}
	return dt
}

// Clock turns frame timestamps into clamped step lengths.
// The zero value is usable and clamps at MaxStep.
type Clock struct {
	MaxStep float64

	last    time.Time
	started bool
}

// NewClock returns a clock clamping at maxStep seconds (MaxStep if <= 0).
func NewClock(maxStep float64) *Clock {
	return &Clock{MaxStep: maxStep}
}

// Start records the reference timestamp.
func (c *Clock) Start(now time.Time) {
	c.last = now
	c.started = true
}

// Stop forgets the reference timestamp; the next Step returns 0.
func (c *Clock) Stop() {
	c.started = false
}

// Running reports whether the clock has a reference timestamp.
func (c *Clock) Running() bool {
	return c.started
}

// Step returns the clamped time since the previous call and advances the
// reference to now. An unstarted clock starts itself and returns 0.
func (c *Clock) Step(now time.Time) float64 {
	if !c.started {
		c.Start(now)
		return 0
	}
	max := c.MaxStep
	if max <= 0 {
		max = MaxStep
	}
	dt := ClampDelta(now.Sub(c.last), max)
	if now.After(c.last) {
		c.last = now
	}
	return dt
}
