package mouse

// clickTracker decides whether a release completes a click. Travel is
// measured as the farthest point reached from the press, so a drag that
// returns to its start is still a drag.
type clickTracker struct {
	maxDistance int

	pressed  bool
	pressPos Position
	farthest int
}

// newClickTracker creates a new click tracker.
func newClickTracker(maxDistance int) *clickTracker {
	return &clickTracker{maxDistance: maxDistance}
}

func (t *clickTracker) press(pos Position) {
	t.pressed = true
	t.pressPos = pos
	t.farthest = 0
}

// moved records an intermediate position.
func (t *clickTracker) moved(pos Position) {
	if t.pressed {
		t.farthest = max(t.farthest, pos.Distance(t.pressPos))
	}
}

// release reports whether the gesture was a click.
func (t *clickTracker) release(pos Position) bool {
	if !t.pressed {
		return false
	}
	t.moved(pos)
	t.pressed = false
	return t.farthest <= t.maxDistance
}

// reset clears the click tracking state.
func (t *clickTracker) reset() {
	t.pressed = false
	t.farthest = 0
}
