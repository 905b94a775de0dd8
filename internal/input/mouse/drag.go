package mouse

// gesture is the press currently held with the primary button.
type gesture struct {
	held  bool
	start Position
	prev  Position
}

func (g *gesture) begin(pos Position) {
	*g = gesture{held: true, start: pos, prev: pos}
}

// move records pos and returns the horizontal travel since the previous
// report. ok is false when nothing is held or the pointer did not move.
func (g *gesture) move(pos Position) (dx int, ok bool) {
	if !g.held || pos == g.prev {
		return 0, false
	}
	dx = pos.X - g.prev.X
	g.prev = pos
	return dx, true
}

// finish releases the press and returns where it began.
func (g *gesture) finish() Position {
	start := g.start
	*g = gesture{}
	return start
}
