package carousel

import (
	"math"
	"time"

	"github.com/rimiko/showcase/internal/carousel/frame"
)

// momentum coasts the strip after a release. Each frame moves the position
// by velocity*dt and decays the velocity by friction^(dt/reference), so the
// decay rate does not depend on the frame rate.
type momentum struct {
	sched frame.Scheduler

	velocity float64
	position float64
	prev     time.Duration
	handle   frame.Handle

	friction     float64
	stopVelocity float64
	reference    time.Duration
	minFrame     time.Duration

	bounds func() float64
	write  func(pos float64)
	done   func()
}

// start begins coasting from position with velocity v0 (px/ms).
func (m *momentum) start(position, v0 float64, now time.Duration) {
	m.stop()
	m.position = position
	m.velocity = v0
	m.prev = now
	m.handle = m.sched.Request(m.step)
}

// stop cancels the in-flight loop, if any.
func (m *momentum) stop() {
	if m.handle != 0 {
		m.sched.Cancel(m.handle)
		m.handle = 0
	}
	m.velocity = 0
}

// running reports whether a frame is scheduled.
func (m *momentum) running() bool {
	return m.handle != 0
}

func (m *momentum) step(now time.Duration) {
	m.handle = 0

	dt := millis(max(now-m.prev, m.minFrame))
	m.prev = now

	maxScroll := m.bounds()
	next := m.position - m.velocity*dt
	m.position = clamp(next, 0, maxScroll)
	m.write(m.position)

	// Stop dead at either edge instead of bouncing.
	if next <= 0 || next >= maxScroll {
		m.velocity = 0
	}

	m.velocity *= math.Pow(m.friction, dt/millis(m.reference))

	if math.Abs(m.velocity) < m.stopVelocity {
		m.velocity = 0
		m.done()
		return
	}
	m.handle = m.sched.Request(m.step)
}
