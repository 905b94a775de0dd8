package page

import (
	"errors"
	"testing"

	"github.com/rimiko/showcase/internal/renderer/core"
)

func TestGradientEndpoints(t *testing.T) {
	g, err := NewGradient("#ff0000", "#0000ff")
	if err != nil {
		t.Fatalf("gradient: %v", err)
	}
	if got := g.At(0); got != core.ColorFromRGB(255, 0, 0) {
		t.Errorf("expected red, got %+v", got)
	}
	if got := g.At(1); got != core.ColorFromRGB(0, 0, 255) {
		t.Errorf("expected blue, got %+v", got)
	}
	if got := g.At(2); got != core.ColorFromRGB(0, 0, 255) {
		t.Errorf("expected clamp to blue, got %+v", got)
	}
}

func TestGradientErrors(t *testing.T) {
	if _, err := NewGradient(); !errors.Is(err, ErrNoStops) {
		t.Errorf("expected ErrNoStops, got %v", err)
	}
	if _, err := NewGradient("#zzz"); err == nil {
		t.Error("expected parse error")
	}
}

func TestProgressBar(t *testing.T) {
	g, _ := NewGradient("#22c55e")
	cells := ProgressBar(10, 0.5, g, core.DefaultStyle())

	if len(cells) != 10 {
		t.Fatalf("expected 10 cells, got %d", len(cells))
	}
	filled := 0
	for _, c := range cells {
		if c.Rune == BarFilled {
			filled++
		}
	}
	if filled != 5 {
		t.Errorf("expected 5 filled cells, got %d", filled)
	}
	if cells[0].Style.Foreground != core.MustHex("#22c55e") {
		t.Errorf("unexpected colour %+v", cells[0].Style.Foreground)
	}
	if ProgressBar(0, 1, g, core.DefaultStyle()) != nil {
		t.Error("zero width should produce no cells")
	}
}
