package carousel

import "time"

// Device is the kind of pointer that produced an event.
type Device uint8

const (
	// DeviceMouse is a mouse or trackpad.
	DeviceMouse Device = iota
	// DeviceTouch is a finger on a touch surface.
	DeviceTouch
	// DevicePen is a stylus.
	DevicePen
)

// String returns a string representation of the device.
func (d Device) String() string {
	switch d {
	case DeviceMouse:
		return "mouse"
	case DeviceTouch:
		return "touch"
	case DevicePen:
		return "pen"
	default:
		return "unknown"
	}
}

// tracksManually reports whether drags from d are scrolled and coasted by
// the controller. Touch is left to native scrolling.
func (d Device) tracksManually() bool {
	return d != DeviceTouch
}

// dragSession is the state of one pointer-down..pointer-up interaction.
type dragSession struct {
	active      bool
	device      Device
	startX      float64
	startScroll float64
	lastX       float64
	lastTime    time.Duration
}

// pointerTracker turns pointer samples into drag targets and a smoothed
// velocity estimate in px/ms.
type pointerTracker struct {
	session  dragSession
	velocity float64

	smoothing   float64
	minInterval time.Duration
}

// begin starts a new session and resets the velocity estimate.
func (t *pointerTracker) begin(x, scroll float64, device Device, now time.Duration) {
	t.session = dragSession{
		active:      true,
		device:      device,
		startX:      x,
		startScroll: scroll,
		lastX:       x,
		lastTime:    now,
	}
	t.velocity = 0
}

// sample records a move to x at now and returns the scroll target the drag
// asks for. ok is false when the session is inactive or the device scrolls
// natively.
func (t *pointerTracker) sample(x float64, now time.Duration) (target float64, ok bool) {
	if !t.session.active || !t.session.device.tracksManually() {
		return 0, false
	}

	dt := max(now-t.session.lastTime, t.minInterval)
	instant := (x - t.session.lastX) / millis(dt)
	t.velocity = t.smoothing*t.velocity + (1-t.smoothing)*instant
	t.session.lastX = x
	t.session.lastTime = now

	// Content follows the pointer, so the offset moves the other way.
	return t.session.startScroll - (x - t.session.startX), true
}

// end closes the session and returns the final velocity and device.
// wasActive is false when there was no session to end.
func (t *pointerTracker) end() (velocity float64, device Device, wasActive bool) {
	if !t.session.active {
		return 0, DeviceMouse, false
	}
	velocity, device = t.velocity, t.session.device
	t.session = dragSession{}
	t.velocity = 0
	return velocity, device, true
}

// active reports whether a session is in progress.
func (t *pointerTracker) active() bool {
	return t.session.active
}
