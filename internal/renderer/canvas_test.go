package renderer

import (
	"slices"
	"testing"

	"github.com/rimiko/showcase/internal/renderer/backend"
	"github.com/rimiko/showcase/internal/renderer/core"
)

func newCanvas(t *testing.T, w, h int) (*Canvas, *backend.NullBackend) {
	t.Helper()
	b := backend.NewNullBackend(w, h)
	if err := b.Init(); err != nil {
		t.Fatal(err)
	}
	return NewCanvas(b), b
}

func TestTextClipsAtEdge(t *testing.T) {
	c, b := newCanvas(t, 6, 1)
	end := c.Text(2, 0, "hello", core.DefaultStyle())

	if end != 6 {
		t.Errorf("expected end column 6, got %d", end)
	}
	if got := b.Row(0); got != "  hell" {
		t.Errorf("expected %q, got %q", "  hell", got)
	}
}

func TestSubCanvasOffsetsAndClips(t *testing.T) {
	c, b := newCanvas(t, 10, 3)
	sub := c.Sub(core.RectFromSize(1, 3, 1, 4))

	sub.Text(0, 0, "abcdef", core.DefaultStyle())
	sub.Text(0, 1, "zz", core.DefaultStyle())

	if got := b.Row(1); got != "   abcd   " {
		t.Errorf("expected clipped text, got %q", got)
	}
	if got := b.Row(2); got != "          " {
		t.Errorf("rows below the sub canvas must stay blank, got %q", got)
	}
	if sub.Width() != 4 || sub.Height() != 1 {
		t.Errorf("unexpected sub size %dx%d", sub.Width(), sub.Height())
	}
}

func TestBox(t *testing.T) {
	c, b := newCanvas(t, 4, 3)
	c.Box(c.Bounds(), core.DefaultStyle())

	want := []string{"╭──╮", "│  │", "╰──╯"}
	for y, row := range want {
		if got := b.Row(y); got != row {
			t.Errorf("row %d: expected %q, got %q", y, row, got)
		}
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  []string
	}{
		{"the quick brown fox", 9, []string{"the quick", "brown fox"}},
		{"abcdefghij", 4, []string{"abcd", "efgh", "ij"}},
		{"sản phẩm mới", 8, []string{"sản phẩm", "mới"}},
		{"", 5, nil},
		{"x", 0, nil},
	}
	for _, tt := range tests {
		if got := Wrap(tt.in, tt.width); !slices.Equal(got, tt.want) {
			t.Errorf("Wrap(%q, %d): expected %q, got %q", tt.in, tt.width, tt.want, got)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("Documentation", 6); got != "Docum…" {
		t.Errorf("expected Docum…, got %q", got)
	}
	if got := Truncate("short", 10); got != "short" {
		t.Errorf("expected short, got %q", got)
	}
	if Truncate("x", 0) != "" {
		t.Error("zero width should produce nothing")
	}
}

func TestTextComposesDiacritics(t *testing.T) {
	c, b := newCanvas(t, 4, 1)
	// "ế" as e + combining circumflex + combining acute.
	end := c.Text(0, 0, "e\u0302\u0301!", core.DefaultStyle())

	if end != 2 {
		t.Errorf("expected two cells, got %d", end)
	}
	if got := b.GetCell(0, 0).Rune; got != '\u1ebf' {
		t.Errorf("expected precomposed rune, got %q", got)
	}
}
