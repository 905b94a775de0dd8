package strip

import "testing"

func cards(n int) []Card {
	return make([]Card, n)
}

func TestContentWidth(t *testing.T) {
	tests := []struct {
		n, width, gap int
		want          float64
	}{
		{0, 20, 2, 0},
		{1, 20, 2, 20},
		{4, 20, 2, 86},
	}
	for _, tt := range tests {
		s := New(cards(tt.n), tt.width, tt.gap, 40)
		if got := s.ContentWidth(); got != tt.want {
			t.Errorf("n=%d: expected %v, got %v", tt.n, tt.want, got)
		}
	}
}

func TestVisible(t *testing.T) {
	s := New(cards(5), 10, 2, 25)

	got := s.Visible()
	if len(got) != 3 || got[0].X != 0 || got[1].X != 12 || got[2].X != 24 {
		t.Errorf("unexpected placements at 0: %+v", got)
	}

	s.SetScrollPosition(15.4)
	got = s.Visible()
	if len(got) != 3 || got[0].Index != 1 || got[0].X != -3 {
		t.Errorf("unexpected placements at 15: %+v", got)
	}
}

func TestCardAt(t *testing.T) {
	s := New(cards(3), 10, 2, 30)
	s.SetScrollPosition(6)

	tests := []struct {
		col   int
		index int
		ok    bool
	}{
		{0, 0, true},
		{4, 1, false}, // gap
		{6, 1, true},
		{25, 2, true},
		{29, 0, false}, // past the last card
		{30, 0, false},
		{-1, 0, false},
	}
	for _, tt := range tests {
		i, ok := s.CardAt(tt.col)
		if ok != tt.ok || (ok && i != tt.index) {
			t.Errorf("col %d: expected (%d,%v), got (%d,%v)", tt.col, tt.index, tt.ok, i, ok)
		}
	}
}

func TestItemStep(t *testing.T) {
	s := New(cards(3), 24, 3, 40)
	if s.ItemStep() != 27 {
		t.Errorf("expected 27, got %v", s.ItemStep())
	}
}
