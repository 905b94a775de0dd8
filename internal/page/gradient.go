package page

import (
	"errors"
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/rimiko/showcase/internal/renderer/core"
)

// ErrNoStops is returned when a gradient is built without colours.
var ErrNoStops = errors.New("gradient needs at least one colour")

// Gradient interpolates evenly spaced colour stops in Lab space.
type Gradient struct {
	stops []colorful.Color
}

// NewGradient parses hex colour stops.
func NewGradient(hexes ...string) (Gradient, error) {
	if len(hexes) == 0 {
		return Gradient{}, ErrNoStops
	}
	stops := make([]colorful.Color, len(hexes))
	for i, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			return Gradient{}, fmt.Errorf("stop %d: %w", i, err)
		}
		stops[i] = c
	}
	return Gradient{stops: stops}, nil
}

// At returns the colour at t in [0, 1].
func (g Gradient) At(t float64) core.Color {
	if len(g.stops) == 0 {
		return core.ColorDefault
	}
	if len(g.stops) == 1 {
		return core.FromColorful(g.stops[0])
	}
	t = clamp(t, 0, 1)
	seg := t * float64(len(g.stops)-1)
	i := int(math.Floor(seg))
	if i >= len(g.stops)-1 {
		return core.FromColorful(g.stops[len(g.stops)-1])
	}
	return core.FromColorful(g.stops[i].BlendLab(g.stops[i+1], seg-float64(i)))
}

// Runes used by the progress bar.
const (
	BarFilled = '━'
	BarEmpty  = ' '
)

// ProgressBar renders a bar of width cells filled to pct. Filled cells take
// their colour from the gradient position across the full width.
func ProgressBar(width int, pct float64, g Gradient, base core.Style) []core.Cell {
	if width <= 0 {
		return nil
	}
	filled := int(math.Round(clamp(pct, 0, 1) * float64(width)))
	cells := make([]core.Cell, width)
	for x := range cells {
		if x < filled {
			t := 0.0
			if width > 1 {
				t = float64(x) / float64(width-1)
			}
			cells[x] = core.Cell{Rune: BarFilled, Style: base.WithForeground(g.At(t))}
			continue
		}
		cells[x] = core.Cell{Rune: BarEmpty, Style: base}
	}
	return cells
}
