package mouse

// ScrollDirection represents the direction of a wheel tick.
type ScrollDirection uint8

const (
	// ScrollNone indicates no scroll.
	ScrollNone ScrollDirection = iota
	// ScrollUp indicates scrolling up (content moves down).
	ScrollUp
	// ScrollDown indicates scrolling down (content moves up).
	ScrollDown
	// ScrollLeft indicates scrolling left.
	ScrollLeft
	// ScrollRight indicates scrolling right.
	ScrollRight
)

// String returns a string representation of the scroll direction.
func (d ScrollDirection) String() string {
	switch d {
	case ScrollUp:
		return "up"
	case ScrollDown:
		return "down"
	case ScrollLeft:
		return "left"
	case ScrollRight:
		return "right"
	default:
		return "none"
	}
}

// IsHorizontal returns true if the scroll is horizontal.
func (d ScrollDirection) IsHorizontal() bool {
	return d == ScrollLeft || d == ScrollRight
}

// Sign returns -1 for up/left, +1 for down/right and 0 otherwise.
func (d ScrollDirection) Sign() int {
	switch d {
	case ScrollUp, ScrollLeft:
		return -1
	case ScrollDown, ScrollRight:
		return 1
	default:
		return 0
	}
}

// wheelDirection extracts the wheel direction from a report.
func wheelDirection(b Buttons) ScrollDirection {
	switch {
	case b.Has(ButtonWheelUp):
		return ScrollUp
	case b.Has(ButtonWheelDown):
		return ScrollDown
	case b.Has(ButtonWheelLeft):
		return ScrollLeft
	case b.Has(ButtonWheelRight):
		return ScrollRight
	default:
		return ScrollNone
	}
}
