// Package strip models a horizontal row of equally sized cards and
// implements the scroll surface the carousel controller drives.
package strip

// Card is one item of the strip.
type Card struct {
	// TitleKey and DescKey are translation keys.
	TitleKey string
	DescKey  string
}

// Strip is a row of cards of fixed width separated by a gap, seen through
// a viewport of a given width. Positions are in terminal cells.
type Strip struct {
	cards     []Card
	cardWidth int
	gap       int
	viewport  int
	offset    float64
}

// New creates a strip. Non-positive card widths are raised to 1 and
// negative gaps to 0.
func New(cards []Card, cardWidth, gap, viewport int) *Strip {
	if cardWidth < 1 {
		cardWidth = 1
	}
	if gap < 0 {
		gap = 0
	}
	if viewport < 0 {
		viewport = 0
	}
	return &Strip{
		cards:     cards,
		cardWidth: cardWidth,
		gap:       gap,
		viewport:  viewport,
	}
}

// Cards returns the cards of the strip.
func (s *Strip) Cards() []Card {
	return s.cards
}

// Len returns the number of cards.
func (s *Strip) Len() int {
	return len(s.cards)
}

// CardWidth returns the width of one card.
func (s *Strip) CardWidth() int {
	return s.cardWidth
}

// ScrollPosition returns the current offset.
func (s *Strip) ScrollPosition() float64 {
	return s.offset
}

// SetScrollPosition sets the offset.
func (s *Strip) SetScrollPosition(pos float64) {
	s.offset = pos
}

// ContentWidth returns the width of all cards and the gaps between them.
func (s *Strip) ContentWidth() float64 {
	n := len(s.cards)
	if n == 0 {
		return 0
	}
	return float64(n*s.cardWidth + (n-1)*s.gap)
}

// ViewportWidth returns the visible width.
func (s *Strip) ViewportWidth() float64 {
	return float64(s.viewport)
}

// SetViewport changes the visible width.
func (s *Strip) SetViewport(width int) {
	s.viewport = max(0, width)
}

// ItemStep returns the distance between the starts of adjacent cards.
func (s *Strip) ItemStep() float64 {
	return float64(s.cardWidth + s.gap)
}

// Offset returns the scroll offset rounded to whole cells.
func (s *Strip) Offset() int {
	return int(s.offset + 0.5)
}

// Placement is where a card lands in the viewport. X may be negative or
// past the viewport for partially visible cards.
type Placement struct {
	Index int
	X     int
}

// Visible returns the cards that intersect the viewport in order.
func (s *Strip) Visible() []Placement {
	var out []Placement
	off := s.Offset()
	step := s.cardWidth + s.gap
	for i := range s.cards {
		x := i*step - off
		if x+s.cardWidth <= 0 {
			continue
		}
		if x >= s.viewport {
			break
		}
		out = append(out, Placement{Index: i, X: x})
	}
	return out
}

// CardAt returns the index of the card under viewport column col.
func (s *Strip) CardAt(col int) (int, bool) {
	if col < 0 || col >= s.viewport {
		return 0, false
	}
	content := col + s.Offset()
	step := s.cardWidth + s.gap
	i := content / step
	if i >= len(s.cards) || content-i*step >= s.cardWidth {
		return 0, false
	}
	return i, true
}
