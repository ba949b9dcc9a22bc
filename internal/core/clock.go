package core

import "time"

// maxFrameTime caps how much elapsed time a single frame may feed the clock,
// so a stalled host does not replay seconds of simulation at once.
const maxFrameTime = 250 * time.Millisecond

// FixedStep converts variable frame times into a whole number of fixed-size
// simulation ticks.
type FixedStep struct {
	interval    time.Duration
	accumulator time.Duration
	ticks       uint64
}

// NewFixedStep creates a clock that yields one tick per interval.
// A non-positive interval falls back to DefaultTickInterval.
func NewFixedStep(interval time.Duration) *FixedStep {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	return &FixedStep{interval: interval}
}

// Advance feeds elapsed frame time into the clock and returns how many ticks
// should run now. The remainder carries over to the next call.
func (c *FixedStep) Advance(elapsed time.Duration) int {
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed > maxFrameTime {
		elapsed = maxFrameTime
	}
	c.accumulator += elapsed

	n := 0
	for c.accumulator >= c.interval {
		c.accumulator -= c.interval
		n++
	}
	c.ticks += uint64(n)
	return n
}

// Interval returns the fixed tick duration.
func (c *FixedStep) Interval() time.Duration {
	return c.interval
}

// Ticks returns the total number of ticks yielded so far.
func (c *FixedStep) Ticks() uint64 {
	return c.ticks
}
