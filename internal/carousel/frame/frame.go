// Package frame provides the animation-frame scheduling used by the carousel.
//
// A Scheduler hands out a Handle for every requested callback. Callbacks
// requested while frame N is being produced run when frame N+1 ticks, so a
// callback that requests another frame never runs twice in one tick. A
// Handle doubles as a cancellation token: once cancelled (or once run) it
// is spent and cancelling it again is a no-op.
//
// Nothing in this package is safe for concurrent use. All calls are made
// from the UI goroutine that also delivers input events.
package frame

import "time"

// Handle identifies a requested frame callback. The zero Handle is never
// issued and can be used to mean "nothing pending".
type Handle uint64

// Callback runs once on the frame it was scheduled for. now is the
// monotonic frame timestamp.
type Callback func(now time.Duration)

// Scheduler requests and cancels frame callbacks.
type Scheduler interface {
	// Request schedules cb for the next frame.
	Request(cb Callback) Handle

	// Cancel invalidates h. Unknown or spent handles are ignored.
	Cancel(h Handle)
}

// Clock is a monotonic time source.
type Clock interface {
	// Now returns the elapsed time since an arbitrary fixed origin.
	Now() time.Duration
}

// SystemClock is a Clock backed by the runtime monotonic clock.
type SystemClock struct {
	origin time.Time
}

// NewSystemClock returns a clock whose origin is the moment of the call.
func NewSystemClock() *SystemClock {
	return &SystemClock{origin: time.Now()}
}

// Now implements Clock.
func (c *SystemClock) Now() time.Duration {
	return time.Since(c.origin)
}

type entry struct {
	handle Handle
	cb     Callback
}

// Loop is a Scheduler whose frames are produced by calling Tick.
type Loop struct {
	last    Handle
	queue   []*entry
	pending map[Handle]*entry
}

// NewLoop creates an empty frame loop.
func NewLoop() *Loop {
	return &Loop{pending: make(map[Handle]*entry)}
}

// Request implements Scheduler.
func (l *Loop) Request(cb Callback) Handle {
	if cb == nil {
		return 0
	}
	l.last++
	e := &entry{handle: l.last, cb: cb}
	l.queue = append(l.queue, e)
	l.pending[e.handle] = e
	return e.handle
}

// Cancel implements Scheduler.
func (l *Loop) Cancel(h Handle) {
	e, ok := l.pending[h]
	if !ok {
		return
	}
	e.cb = nil
	delete(l.pending, h)
}

// Pending returns the number of callbacks waiting for the next frame.
func (l *Loop) Pending() int {
	return len(l.pending)
}

// Tick produces one frame: every callback requested before the call runs
// in request order. It returns the number of callbacks that ran.
func (l *Loop) Tick(now time.Duration) int {
	batch := l.queue
	l.queue = nil

	ran := 0
	for _, e := range batch {
		// A callback earlier in the batch may have cancelled this one.
		if e.cb == nil {
			continue
		}
		cb := e.cb
		e.cb = nil
		delete(l.pending, e.handle)
		cb(now)
		ran++
	}
	return ran
}
