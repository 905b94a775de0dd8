package renderer

import (
	"github.com/rivo/uniseg"
	"golang.org/x/text/unicode/norm"

	"github.com/rimiko/showcase/internal/renderer/backend"
	"github.com/rimiko/showcase/internal/renderer/core"
)

// Canvas draws onto a backend, clipped to a rectangle. Coordinates passed
// to drawing methods are relative to the rectangle's top-left corner.
type Canvas struct {
	b      backend.Backend
	bounds core.Rect
}

// NewCanvas creates a canvas covering the whole backend.
func NewCanvas(b backend.Backend) *Canvas {
	w, h := b.Size()
	return &Canvas{b: b, bounds: core.RectFromSize(0, 0, h, w)}
}

// Bounds returns the canvas rectangle in local coordinates.
func (c *Canvas) Bounds() core.Rect {
	return core.RectFromSize(0, 0, c.bounds.Height(), c.bounds.Width())
}

// Width returns the canvas width.
func (c *Canvas) Width() int {
	return c.bounds.Width()
}

// Height returns the canvas height.
func (c *Canvas) Height() int {
	return c.bounds.Height()
}

// Sub returns a canvas for r, given in local coordinates and clipped to
// this canvas.
func (c *Canvas) Sub(r core.Rect) *Canvas {
	abs := core.Rect{
		Top:    c.bounds.Top + r.Top,
		Left:   c.bounds.Left + r.Left,
		Bottom: c.bounds.Top + r.Bottom,
		Right:  c.bounds.Left + r.Right,
	}
	abs.Top = max(abs.Top, c.bounds.Top)
	abs.Left = max(abs.Left, c.bounds.Left)
	abs.Bottom = max(abs.Top, min(abs.Bottom, c.bounds.Bottom))
	abs.Right = max(abs.Left, min(abs.Right, c.bounds.Right))
	return &Canvas{b: c.b, bounds: abs}
}

// Set draws one cell.
func (c *Canvas) Set(x, y int, cell core.Cell) {
	if x < 0 || y < 0 || x >= c.bounds.Width() || y >= c.bounds.Height() {
		return
	}
	c.b.SetCell(c.bounds.Left+x, c.bounds.Top+y, cell)
}

// Fill fills r, given in local coordinates.
func (c *Canvas) Fill(r core.Rect, cell core.Cell) {
	for y := max(0, r.Top); y < r.Bottom && y < c.bounds.Height(); y++ {
		for x := max(0, r.Left); x < r.Right && x < c.bounds.Width(); x++ {
			c.Set(x, y, cell)
		}
	}
}

// Clear fills the canvas with blank cells of style.
func (c *Canvas) Clear(style core.Style) {
	c.Fill(c.Bounds(), core.Cell{Rune: ' ', Style: style})
}

// Text draws s starting at column x and returns the column after the last
// cell written. Clusters that would straddle the right edge are dropped.
// Text is NFC-normalized first so that accented letters become a single
// rune; any combining marks left over are not drawn.
func (c *Canvas) Text(x, y int, s string, style core.Style) int {
	g := uniseg.NewGraphemes(norm.NFC.String(s))
	for g.Next() {
		w := g.Width()
		if w == 0 {
			continue
		}
		if x+w > c.bounds.Width() {
			break
		}
		c.Set(x, y, core.Cell{Rune: g.Runes()[0], Style: style})
		x += w
	}
	return x
}

// Centered draws s centred on row y.
func (c *Canvas) Centered(y int, s string, style core.Style) {
	x := (c.bounds.Width() - StringWidth(s)) / 2
	c.Text(max(0, x), y, s, style)
}

// Box draws a rounded border around r.
func (c *Canvas) Box(r core.Rect, style core.Style) {
	if r.Width() < 2 || r.Height() < 2 {
		return
	}
	right, bottom := r.Right-1, r.Bottom-1
	for x := r.Left + 1; x < right; x++ {
		c.Set(x, r.Top, core.Cell{Rune: '─', Style: style})
		c.Set(x, bottom, core.Cell{Rune: '─', Style: style})
	}
	for y := r.Top + 1; y < bottom; y++ {
		c.Set(r.Left, y, core.Cell{Rune: '│', Style: style})
		c.Set(right, y, core.Cell{Rune: '│', Style: style})
	}
	c.Set(r.Left, r.Top, core.Cell{Rune: '╭', Style: style})
	c.Set(right, r.Top, core.Cell{Rune: '╮', Style: style})
	c.Set(r.Left, bottom, core.Cell{Rune: '╰', Style: style})
	c.Set(right, bottom, core.Cell{Rune: '╯', Style: style})
}

// Cells copies a row of prepared cells starting at column x.
func (c *Canvas) Cells(x, y int, cells []core.Cell) {
	for i, cell := range cells {
		c.Set(x+i, y, cell)
	}
}
