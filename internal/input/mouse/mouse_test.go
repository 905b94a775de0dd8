package mouse

import (
	"testing"
	"time"
)

func actions(evs []Event) []Action {
	out := make([]Action, len(evs))
	for i, e := range evs {
		out[i] = e.Action
	}
	return out
}

func equalActions(a, b []Action) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestPressDragRelease(t *testing.T) {
	h := NewHandler(DefaultConfig())
	now := time.Unix(0, 0)

	steps := []struct {
		x       int
		buttons Buttons
		want    []Action
	}{
		{10, ButtonPrimary, []Action{ActionPress}},
		{10, ButtonPrimary, nil}, // no movement
		{7, ButtonPrimary, []Action{ActionDrag}},
		{4, ButtonPrimary, []Action{ActionDrag}},
		{4, ButtonNone, []Action{ActionRelease}},
	}
	for i, s := range steps {
		got := actions(h.Feed(s.x, 5, s.buttons, now))
		if !equalActions(got, s.want) {
			t.Errorf("step %d: expected %v, got %v", i, s.want, got)
		}
	}
	if h.IsDragging() {
		t.Error("expected drag to be over")
	}
}

func TestDragCarriesStart(t *testing.T) {
	h := NewHandler(DefaultConfig())
	h.Feed(10, 2, ButtonPrimary, time.Time{})
	evs := h.Feed(15, 2, ButtonPrimary, time.Time{})

	if len(evs) != 1 || evs[0].Start != (Position{X: 10, Y: 2}) {
		t.Errorf("expected drag starting at (10,2), got %+v", evs)
	}
	if start, ok := h.DragStart(); !ok || start.X != 10 {
		t.Errorf("expected drag start 10, got %v %v", start, ok)
	}
}

func TestDragDelta(t *testing.T) {
	h := NewHandler(DefaultConfig())
	h.Feed(10, 2, ButtonPrimary, time.Time{})

	tests := []struct {
		x, y  int
		delta int
	}{
		{7, 2, -3},
		{7, 4, 0}, // vertical only
		{12, 4, 5},
	}
	for _, tt := range tests {
		evs := h.Feed(tt.x, tt.y, ButtonPrimary, time.Time{})
		if len(evs) != 1 || evs[0].Delta != tt.delta {
			t.Errorf("(%d,%d): expected delta %d, got %+v", tt.x, tt.y, tt.delta, evs)
		}
	}
	if start, ok := h.DragStart(); !ok || start != (Position{X: 10, Y: 2}) {
		t.Errorf("expected start to stay at (10,2), got %v", start)
	}
}

func TestClickVersusDrag(t *testing.T) {
	tests := []struct {
		name  string
		path  []int
		click bool
	}{
		{"still", []int{10, 10}, true},
		{"jitter", []int{10, 11, 10}, true},
		{"dragged", []int{10, 20}, false},
		{"dragged and returned", []int{10, 30, 10}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(DefaultConfig())
			for _, x := range tt.path {
				h.Feed(x, 0, ButtonPrimary, time.Time{})
			}
			last := tt.path[len(tt.path)-1]
			got := actions(h.Feed(last, 0, ButtonNone, time.Time{}))
			want := []Action{ActionRelease}
			if tt.click {
				want = append(want, ActionClick)
			}
			if !equalActions(got, want) {
				t.Errorf("expected %v, got %v", want, got)
			}
		})
	}
}

func TestWheel(t *testing.T) {
	h := NewHandler(DefaultConfig())
	evs := h.Feed(3, 3, ButtonWheelDown, time.Time{})

	if len(evs) != 1 || evs[0].Action != ActionWheel || evs[0].Direction != ScrollDown {
		t.Fatalf("expected wheel down, got %+v", evs)
	}
	if evs[0].Direction.Sign() != 1 || evs[0].Direction.IsHorizontal() {
		t.Error("unexpected direction properties")
	}
}

func TestReset(t *testing.T) {
	h := NewHandler(DefaultConfig())
	h.Feed(1, 1, ButtonPrimary, time.Time{})
	h.Reset()

	if h.IsDragging() {
		t.Error("expected no drag after reset")
	}
	got := actions(h.Feed(1, 1, ButtonPrimary, time.Time{}))
	if !equalActions(got, []Action{ActionPress}) {
		t.Errorf("expected fresh press, got %v", got)
	}
}
