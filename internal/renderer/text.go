package renderer

import (
	"strings"

	"github.com/rivo/uniseg"
)

// StringWidth returns the number of cells s occupies.
func StringWidth(s string) int {
	return uniseg.StringWidth(s)
}

// Truncate shortens s to at most width cells, ending with an ellipsis
// when anything was cut.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if uniseg.StringWidth(s) <= width {
		return s
	}
	var b strings.Builder
	used := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		if used+g.Width() > width-1 {
			break
		}
		b.WriteString(g.Str())
		used += g.Width()
	}
	b.WriteString("…")
	return b.String()
}

// Wrap breaks s into lines of at most width cells at word boundaries.
// Words longer than a line are split between clusters.
func Wrap(s string, width int) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	var line strings.Builder
	lineWidth := 0

	flush := func() {
		lines = append(lines, strings.TrimRight(line.String(), " "))
		line.Reset()
		lineWidth = 0
	}

	for _, word := range strings.Fields(s) {
		w := uniseg.StringWidth(word)
		if lineWidth > 0 && lineWidth+1+w > width {
			flush()
		}
		if w > width {
			g := uniseg.NewGraphemes(word)
			for g.Next() {
				if lineWidth+g.Width() > width {
					flush()
				}
				line.WriteString(g.Str())
				lineWidth += g.Width()
			}
			continue
		}
		if lineWidth > 0 {
			line.WriteByte(' ')
			lineWidth++
		}
		line.WriteString(word)
		lineWidth += w
	}
	if lineWidth > 0 {
		flush()
	}
	return lines
}
