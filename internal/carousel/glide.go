package carousel

import (
	"math"
	"time"

	"github.com/rimiko/showcase/internal/carousel/frame"
)

// glide animates a page scroll toward a target by covering a fixed share
// of the remaining distance every frame.
type glide struct {
	sched frame.Scheduler

	position float64
	target   float64
	prev     time.Duration
	handle   frame.Handle

	rate float64

	write func(pos float64)
	done  func()
}

// start animates from position to target. Calling start while a glide is
// running retargets it.
func (g *glide) start(position, target float64, now time.Duration) {
	if g.handle == 0 {
		g.prev = now
	}
	g.stop()
	g.position = position
	g.target = target
	g.handle = g.sched.Request(g.step)
}

func (g *glide) stop() {
	if g.handle != 0 {
		g.sched.Cancel(g.handle)
		g.handle = 0
	}
}

func (g *glide) running() bool {
	return g.handle != 0
}

func (g *glide) step(now time.Duration) {
	g.handle = 0
	dt := (now - g.prev).Seconds()
	g.prev = now

	diff := g.target - g.position
	if math.Abs(diff) < 0.5 {
		g.position = g.target
		g.write(g.position)
		g.done()
		return
	}

	factor := 1 - math.Pow(0.1, dt*g.rate)
	move := diff * factor
	// Always make progress so the glide cannot stall on tiny frames.
	if math.Abs(move) < 0.5 {
		move = math.Copysign(0.5, diff)
	}
	if math.Abs(move) >= math.Abs(diff) {
		g.position = g.target
	} else {
		g.position += move
	}
	g.write(g.position)

	if g.position == g.target {
		g.done()
		return
	}
	g.handle = g.sched.Request(g.step)
}
