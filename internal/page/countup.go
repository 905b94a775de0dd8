package page

import (
	"math"
	"time"
)

// DefaultCountDuration is how long a counter takes to reach its target.
const DefaultCountDuration = 2 * time.Second

// Counter animates a number from zero to its target with an
// exponential ease-out. It stays at zero until started.
type Counter struct {
	target   int
	duration time.Duration
	start    time.Duration
	started  bool
	value    int
}

// NewCounter creates a counter for target. A non-positive duration uses
// DefaultCountDuration.
func NewCounter(target int, duration time.Duration) *Counter {
	if duration <= 0 {
		duration = DefaultCountDuration
	}
	return &Counter{target: target, duration: duration}
}

// Start begins counting at now. Later calls are ignored.
func (c *Counter) Start(now time.Duration) {
	if c.started {
		return
	}
	c.started = true
	c.start = now
}

// Started reports whether Start was called.
func (c *Counter) Started() bool {
	return c.started
}

// Value returns the number currently shown.
func (c *Counter) Value() int {
	return c.value
}

// Target returns the final number.
func (c *Counter) Target() int {
	return c.target
}

// Advance moves the counter to now and reports whether the shown number
// changed.
func (c *Counter) Advance(now time.Duration) bool {
	if !c.started {
		return false
	}
	next := c.at(now - c.start)
	if next == c.value {
		return false
	}
	c.value = next
	return true
}

// Done reports whether the target has been reached.
func (c *Counter) Done() bool {
	return c.started && c.value == c.target
}

func (c *Counter) at(elapsed time.Duration) int {
	if elapsed >= c.duration {
		return c.target
	}
	if elapsed <= 0 {
		return 0
	}
	t := float64(elapsed) / float64(c.duration)
	eased := (1 - math.Pow(2, -10*t)) * 1024 / 1023
	v := int(math.Round(float64(c.target) * eased))
	if (c.target >= 0 && v > c.target) || (c.target < 0 && v < c.target) {
		v = c.target
	}
	return v
}
