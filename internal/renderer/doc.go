// Package renderer draws text and boxes onto a terminal backend.
//
// A Canvas clips every draw call to its bounds and measures text in
// terminal cells with grapheme-cluster awareness, so wide and combining
// characters occupy the columns the terminal will give them.
//
// Usage:
//
//	c := renderer.NewCanvas(b)
//	c.Text(2, 1, "Products", core.DefaultStyle().Bold())
//	area := c.Sub(core.RectFromSize(3, 2, 8, 30))
//	area.Box(area.Bounds(), style)
//	b.Show()
package renderer
