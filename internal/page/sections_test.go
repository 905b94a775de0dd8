package page

import (
	"slices"
	"testing"
)

func testLayout() Layout {
	return NewLayout(
		Section{ID: "home", Height: 20},
		Section{ID: "products", Height: 30},
		Section{ID: "resources", Height: 40},
	)
}

func TestNewLayoutStacks(t *testing.T) {
	l := testLayout()
	s, ok := l.Find("resources")
	if !ok || s.Top != 50 || s.Bottom() != 90 {
		t.Errorf("unexpected resources section %+v", s)
	}
	if l.Height() != 90 {
		t.Errorf("expected height 90, got %d", l.Height())
	}
	if NewLayout().Height() != 0 {
		t.Error("empty layout should have zero height")
	}
}

func TestAnchorTarget(t *testing.T) {
	l := testLayout()
	tests := []struct {
		anchor   string
		expected float64
		ok       bool
	}{
		{AnchorHome, 0, true},
		{AnchorProducts, 25, true}, // 20 + 15 - 10
		{"#resources", 50, true},
		{"#missing", 0, false},
		{"products", 0, false},
		{"#", 0, false},
	}
	for _, tt := range tests {
		got, ok := l.AnchorTarget(tt.anchor, 20)
		if ok != tt.ok || got != tt.expected {
			t.Errorf("%q: expected (%v, %v), got (%v, %v)", tt.anchor, tt.expected, tt.ok, got, ok)
		}
	}
}

func TestActiveTracker(t *testing.T) {
	l := testLayout()
	var a ActiveTracker

	// Band is rows [y+8, y+9) for a 20 row viewport.
	if !a.Update(l, 0, 20) || a.Active() != "home" {
		t.Errorf("expected home, got %q", a.Active())
	}
	if a.Update(l, 5, 20) {
		t.Error("highlight should not change inside the same section")
	}
	if !a.Update(l, 15, 20) || a.Active() != "products" {
		t.Errorf("expected products, got %q", a.Active())
	}
	if !a.Update(l, 45, 20) || a.Active() != "resources" {
		t.Errorf("expected resources, got %q", a.Active())
	}
	// Past the page the last highlight sticks.
	if a.Update(l, 200, 20) || a.Active() != "resources" {
		t.Errorf("expected resources to stick, got %q", a.Active())
	}
}

func TestActiveTrackerTopOfPage(t *testing.T) {
	l := NewLayout(
		Section{ID: "home", Height: 9},
		Section{ID: "products", Height: 15},
		Section{ID: "resources", Height: 14},
	)
	var a ActiveTracker

	// The band starts below home in a 36 row viewport.
	a.Update(l, 0, 36)
	if a.Active() != "home" {
		t.Errorf("expected home at the top of the page, got %q", a.Active())
	}
	a.Update(l, 2, 36)
	if a.Active() != "products" {
		t.Errorf("expected products once scrolled, got %q", a.Active())
	}
	if !a.Update(l, 0, 36) || a.Active() != "home" {
		t.Errorf("expected home after returning to the top, got %q", a.Active())
	}
}

func TestRevealer(t *testing.T) {
	l := testLayout()
	r := NewRevealer(4)

	got := r.Update(l, 0, 20)
	if !slices.Equal(got, []string{"home", "products"}) {
		t.Errorf("expected home and products, got %v", got)
	}
	if r.Shown("resources") {
		t.Error("resources should not be shown yet")
	}

	got = r.Update(l, 40, 20)
	if !slices.Equal(got, []string{"resources"}) {
		t.Errorf("expected resources, got %v", got)
	}
	if !r.Shown("home") {
		t.Error("revealed sections stay shown")
	}
	if got := r.Update(l, 0, 20); len(got) != 0 {
		t.Errorf("expected nothing new, got %v", got)
	}
}
