package carousel

// Affordance is the visibility of the previous/next controls.
type Affordance struct {
	ShowPrevious bool
	ShowNext     bool
}

// ComputeAffordance derives the control visibility from the scroll
// position and the strip geometry. It is a pure function; tolerance
// absorbs fractional rounding at both ends.
func ComputeAffordance(pos, contentWidth, viewportWidth, tolerance float64) Affordance {
	scrollable := contentWidth > viewportWidth+tolerance
	maxScroll := max(0, contentWidth-viewportWidth)
	atStart := pos <= tolerance
	atEnd := pos >= maxScroll-tolerance
	return Affordance{
		ShowPrevious: scrollable && !atStart,
		ShowNext:     scrollable && !atEnd,
	}
}
