package frame

import "time"

// Manual is a Scheduler and Clock whose time only moves when told to.
// It steps frames deterministically, which makes it the scheduler of
// choice for tests and headless runs.
type Manual struct {
	*Loop
	now time.Duration
}

// NewManual returns a manual scheduler with its clock at zero.
func NewManual() *Manual {
	return &Manual{Loop: NewLoop()}
}

// Now implements Clock.
func (m *Manual) Now() time.Duration {
	return m.now
}

// Advance moves the clock forward without producing a frame.
func (m *Manual) Advance(dt time.Duration) {
	if dt > 0 {
		m.now += dt
	}
}

// Step advances the clock by dt and produces one frame.
// It returns the number of callbacks that ran.
func (m *Manual) Step(dt time.Duration) int {
	m.Advance(dt)
	return m.Tick(m.now)
}

// Run steps frames of length dt until no callback is pending or max frames
// have been produced. It returns the number of frames stepped.
func (m *Manual) Run(dt time.Duration, max int) int {
	frames := 0
	for frames < max && m.Pending() > 0 {
		m.Step(dt)
		frames++
	}
	return frames
}
