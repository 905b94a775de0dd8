// Package core provides shared types for the renderer subsystem.
// This package breaks import cycles between renderer and backend.
package core

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Attribute represents text attributes (bold, italic, etc.).
type Attribute uint16

// Text attribute flags.
const (
	AttrNone      Attribute = 0
	AttrBold      Attribute = 1 << iota
	AttrDim                 // Faint/dim text
	AttrItalic              // Italic text
	AttrUnderline           // Underlined text
	AttrReverse             // Reverse video (swap fg/bg)
)

// Has returns true if the attribute set contains the given attribute.
func (a Attribute) Has(attr Attribute) bool {
	return a&attr != 0
}

// Color is a true color or the terminal default.
type Color struct {
	R, G, B uint8
	// Default indicates this is the terminal's default color.
	Default bool
}

// ColorDefault represents the terminal's default color.
var ColorDefault = Color{Default: true}

// ColorFromRGB creates a true color from RGB components.
func ColorFromRGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// ColorFromHex parses "#rrggbb".
func ColorFromHex(hex string) (Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return ColorDefault, fmt.Errorf("invalid color %q: %w", hex, err)
	}
	return FromColorful(c), nil
}

// MustHex is ColorFromHex for compile-time constants; it panics on error.
func MustHex(hex string) Color {
	c, err := ColorFromHex(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// FromColorful converts a colorful.Color, clamping out-of-gamut values.
func FromColorful(c colorful.Color) Color {
	r, g, b := c.Clamped().RGB255()
	return Color{R: r, G: g, B: b}
}

// Colorful converts to a colorful.Color. The default color maps to black.
func (c Color) Colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// IsDefault returns true if this is the terminal default color.
func (c Color) IsDefault() bool {
	return c.Default
}

// Blend mixes c toward other by t in [0,1] in CIE L*a*b* space.
func (c Color) Blend(other Color, t float64) Color {
	if c.Default || other.Default {
		return other
	}
	return FromColorful(c.Colorful().BlendLab(other.Colorful(), t))
}

// Style is the visual style of a cell.
type Style struct {
	Foreground Color
	Background Color
	Attributes Attribute
}

// DefaultStyle returns the terminal's default style.
func DefaultStyle() Style {
	return Style{Foreground: ColorDefault, Background: ColorDefault}
}

// WithForeground returns a copy with the foreground set.
func (s Style) WithForeground(fg Color) Style {
	s.Foreground = fg
	return s
}

// WithBackground returns a copy with the background set.
func (s Style) WithBackground(bg Color) Style {
	s.Background = bg
	return s
}

// Bold returns a copy with the bold attribute.
func (s Style) Bold() Style {
	s.Attributes |= AttrBold
	return s
}

// Dim returns a copy with the dim attribute.
func (s Style) Dim() Style {
	s.Attributes |= AttrDim
	return s
}

// Reverse returns a copy with the reverse attribute.
func (s Style) Reverse() Style {
	s.Attributes |= AttrReverse
	return s
}

// Cell is a single terminal cell.
type Cell struct {
	Rune  rune
	Style Style
}

// EmptyCell returns a blank cell with the default style.
func EmptyCell() Cell {
	return Cell{Rune: ' ', Style: DefaultStyle()}
}

// Rect is a rectangular screen region. Bottom and Right are exclusive.
type Rect struct {
	Top, Left, Bottom, Right int
}

// RectFromSize creates a rectangle from position and size.
func RectFromSize(top, left, height, width int) Rect {
	return Rect{Top: top, Left: left, Bottom: top + height, Right: left + width}
}

// Width returns the width of the rectangle.
func (r Rect) Width() int {
	return max(0, r.Right-r.Left)
}

// Height returns the height of the rectangle.
func (r Rect) Height() int {
	return max(0, r.Bottom-r.Top)
}

// Contains reports whether (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.Left && x < r.Right && y >= r.Top && y < r.Bottom
}
