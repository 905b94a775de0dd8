package carousel

// Surface is the scrollable element the controller drives.
type Surface interface {
	// ScrollPosition returns the current horizontal offset.
	ScrollPosition() float64

	// SetScrollPosition writes the horizontal offset. The controller only
	// writes values inside [0, MaxScroll].
	SetScrollPosition(pos float64)

	// ContentWidth returns the total width of the strip content.
	ContentWidth() float64

	// ViewportWidth returns the visible width of the strip.
	ViewportWidth() float64
}

// Stepper is implemented by surfaces that know the distance between the
// starts of two adjacent items.
type Stepper interface {
	ItemStep() float64
}

// MaxScroll returns the largest valid scroll offset of s.
func MaxScroll(s Surface) float64 {
	if s == nil {
		return 0
	}
	return max(0, s.ContentWidth()-s.ViewportWidth())
}

func clamp(v, lo, hi float64) float64 {
	return max(lo, min(hi, v))
}
