package page

import (
	"math"
	"testing"
	"time"
)

const frame = 16 * time.Millisecond

func TestScrollerProgress(t *testing.T) {
	tests := []struct {
		name     string
		page, vh int
		y        float64
		expected float64
	}{
		{"top", 100, 20, 0, 0},
		{"middle", 100, 20, 40, 0.5},
		{"bottom", 100, 20, 80, 1},
		{"page shorter than viewport", 10, 20, 0, 0},
		{"page equals viewport", 20, 20, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScroller(tt.page, tt.vh)
			s.ScrollTo(tt.y, false)
			if got := s.Progress(); math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestScrollerClamps(t *testing.T) {
	s := NewScroller(100, 20)

	s.ScrollTo(500, false)
	if s.Y() != 80 {
		t.Errorf("expected 80, got %v", s.Y())
	}
	s.ScrollBy(-200, false)
	if s.Y() != 0 {
		t.Errorf("expected 0, got %v", s.Y())
	}
}

func TestScrollerSmoothConverges(t *testing.T) {
	s := NewScroller(200, 20)
	s.ScrollTo(100, true)

	if !s.Animating() || s.Y() != 0 {
		t.Fatalf("expected animation from 0, got y=%v animating=%v", s.Y(), s.Animating())
	}

	prev := s.Y()
	for i := 0; i < 200 && s.Animating(); i++ {
		s.Update(frame)
		if s.Y() < prev {
			t.Fatalf("frame %d moved backward: %v -> %v", i, prev, s.Y())
		}
		prev = s.Y()
	}
	if s.Animating() || s.Y() != 100 {
		t.Errorf("expected to settle at 100, got %v (animating=%v)", s.Y(), s.Animating())
	}
}

func TestScrollerScrollByAccumulatesDuringAnimation(t *testing.T) {
	s := NewScroller(200, 20)
	s.ScrollBy(10, true)
	s.ScrollBy(10, true)

	if s.Target() != 20 {
		t.Errorf("expected target 20, got %v", s.Target())
	}
}

func TestScrollerSmoothDisabled(t *testing.T) {
	s := NewScroller(200, 20)
	s.SetSmoothScroll(false)
	s.ScrollTo(50, true)

	if s.Animating() || s.Y() != 50 {
		t.Errorf("expected jump to 50, got %v", s.Y())
	}
	if s.Update(frame) {
		t.Error("update without animation should report no change")
	}
}

func TestScrollerResizeReclamps(t *testing.T) {
	s := NewScroller(100, 20)
	s.ScrollTo(80, false)
	s.Resize(50)

	if s.Y() != 50 {
		t.Errorf("expected 50, got %v", s.Y())
	}
	s.SetPageHeight(30)
	if s.Y() != 0 {
		t.Errorf("expected 0, got %v", s.Y())
	}
}

func TestHeaderShadow(t *testing.T) {
	s := NewScroller(100, 20)
	if s.HeaderShadow(1) {
		t.Error("no shadow at the top")
	}
	s.ScrollTo(1, false)
	if s.HeaderShadow(1) {
		t.Error("threshold is exclusive")
	}
	s.ScrollTo(2, false)
	if !s.HeaderShadow(1) {
		t.Error("expected shadow past the threshold")
	}
}
