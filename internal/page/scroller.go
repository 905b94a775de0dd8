package page

import (
	"math"
	"time"
)

// Scroller tracks the vertical page position with optional smooth
// scrolling toward a target.
type Scroller struct {
	y, target      float64
	pageHeight     int
	viewportHeight int
	smooth         bool
	animating      bool
}

// NewScroller creates a scroller for a page of pageHeight rows shown in a
// viewport of viewportHeight rows.
func NewScroller(pageHeight, viewportHeight int) *Scroller {
	return &Scroller{
		pageHeight:     max(0, pageHeight),
		viewportHeight: max(0, viewportHeight),
		smooth:         true,
	}
}

// SetSmoothScroll enables or disables smooth scrolling.
func (s *Scroller) SetSmoothScroll(enabled bool) {
	s.smooth = enabled
}

// Y returns the current position.
func (s *Scroller) Y() float64 {
	return s.y
}

// Row returns the current position rounded to a row.
func (s *Scroller) Row() int {
	return int(math.Round(s.y))
}

// Target returns where the scroller is heading.
func (s *Scroller) Target() float64 {
	return s.target
}

// ViewportHeight returns the viewport height in rows.
func (s *Scroller) ViewportHeight() int {
	return s.viewportHeight
}

// PageHeight returns the page height in rows.
func (s *Scroller) PageHeight() int {
	return s.pageHeight
}

// MaxY returns the largest reachable position.
func (s *Scroller) MaxY() float64 {
	return float64(max(0, s.pageHeight-s.viewportHeight))
}

// Animating reports whether a smooth scroll is in progress.
func (s *Scroller) Animating() bool {
	return s.animating
}

// ScrollTo moves to y, animating when smooth is requested and enabled.
func (s *Scroller) ScrollTo(y float64, smooth bool) {
	y = clamp(y, 0, s.MaxY())
	s.target = y
	if smooth && s.smooth {
		s.animating = s.y != y
		return
	}
	s.y = y
	s.animating = false
}

// ScrollBy moves by delta rows relative to the current target, so repeated
// calls during an animation accumulate.
func (s *Scroller) ScrollBy(delta float64, smooth bool) {
	base := s.y
	if s.animating {
		base = s.target
	}
	s.ScrollTo(base+delta, smooth)
}

// Resize updates the viewport height and re-clamps the position.
func (s *Scroller) Resize(viewportHeight int) {
	s.viewportHeight = max(0, viewportHeight)
	s.reclamp()
}

// SetPageHeight updates the page height and re-clamps the position.
func (s *Scroller) SetPageHeight(h int) {
	s.pageHeight = max(0, h)
	s.reclamp()
}

func (s *Scroller) reclamp() {
	maxY := s.MaxY()
	s.y = clamp(s.y, 0, maxY)
	s.target = clamp(s.target, 0, maxY)
	if s.y == s.target {
		s.animating = false
	}
}

// Update advances the smooth scroll animation by dt.
// Returns true if the position changed.
func (s *Scroller) Update(dt time.Duration) bool {
	if !s.animating {
		return false
	}

	diff := s.target - s.y
	if math.Abs(diff) < 0.5 {
		s.y = s.target
		s.animating = false
		return diff != 0
	}

	// Exponential approach, about 20% of the remaining distance per 16ms.
	factor := 1.0 - math.Pow(0.1, dt.Seconds()*10)
	move := diff * factor

	// Move at least one row to prevent stalling.
	if math.Abs(move) < 1.0 {
		move = math.Copysign(1.0, diff)
	}

	if math.Abs(move) >= math.Abs(diff) {
		s.y = s.target
		s.animating = false
	} else {
		s.y += move
	}
	return true
}

// Progress returns how far down the page the viewport is, in [0, 1].
func (s *Scroller) Progress() float64 {
	denom := math.Max(1, float64(s.pageHeight-s.viewportHeight))
	return clamp(s.y/denom, 0, 1)
}

// HeaderShadow reports whether the header should draw its shadow.
func (s *Scroller) HeaderShadow(threshold float64) bool {
	return s.y > threshold
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
