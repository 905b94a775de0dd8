package carousel

import (
	"time"

	"github.com/rimiko/showcase/internal/carousel/frame"
)

// scrollDriver applies drag targets once per frame. Repeated requests
// within a frame replace each other; only the last target is written.
type scrollDriver struct {
	sched   frame.Scheduler
	pending frame.Handle
	target  float64
	write   func(pos float64)
}

// scheduleScrollTo replaces any pending write with one for target.
func (d *scrollDriver) scheduleScrollTo(target float64) {
	d.cancel()
	d.target = target
	d.pending = d.sched.Request(func(time.Duration) {
		d.pending = 0
		d.write(d.target)
	})
}

// takePending cancels the pending write and returns its target.
func (d *scrollDriver) takePending() (target float64, ok bool) {
	if d.pending == 0 {
		return 0, false
	}
	d.cancel()
	return d.target, true
}

func (d *scrollDriver) cancel() {
	if d.pending != 0 {
		d.sched.Cancel(d.pending)
		d.pending = 0
	}
}
