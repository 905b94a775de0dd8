package page

import "math"

// Anchors understood by Layout.AnchorTarget.
const (
	AnchorHome     = "#home"
	AnchorProducts = "#products"
)

// Section is a vertical span of the page.
type Section struct {
	ID     string
	Top    int
	Height int
}

// Bottom returns the first row below the section.
func (s Section) Bottom() int {
	return s.Top + s.Height
}

// Layout is the ordered list of page sections.
type Layout struct {
	sections []Section
}

// NewLayout stacks sections of the given heights from row zero, in order.
func NewLayout(sections ...Section) Layout {
	out := make([]Section, len(sections))
	top := 0
	for i, s := range sections {
		s.Top = top
		s.Height = max(0, s.Height)
		out[i] = s
		top += s.Height
	}
	return Layout{sections: out}
}

// Sections returns the sections in page order.
func (l Layout) Sections() []Section {
	return l.sections
}

// Height returns the total page height.
func (l Layout) Height() int {
	if len(l.sections) == 0 {
		return 0
	}
	return l.sections[len(l.sections)-1].Bottom()
}

// Find returns the section with the given id.
func (l Layout) Find(id string) (Section, bool) {
	for _, s := range l.sections {
		if s.ID == id {
			return s, true
		}
	}
	return Section{}, false
}

// AnchorTarget returns the scroll position that navigates to anchor.
// "#home" goes to the top, "#products" centres the products section and any
// other "#id" aligns the section with the top of the viewport.
func (l Layout) AnchorTarget(anchor string, viewportHeight int) (float64, bool) {
	if anchor == AnchorHome {
		return 0, true
	}
	if len(anchor) < 2 || anchor[0] != '#' {
		return 0, false
	}
	s, ok := l.Find(anchor[1:])
	if !ok {
		return 0, false
	}
	if anchor == AnchorProducts {
		centre := float64(s.Top) + float64(s.Height)/2 - float64(viewportHeight)/2
		return math.Max(0, math.Round(centre)), true
	}
	return float64(s.Top), true
}

// Band fractions of the viewport that select the active section: the band
// starts 40% below the top and ends 55% above the bottom.
const (
	activeBandTop    = 0.40
	activeBandBottom = 0.55
)

// ActiveTracker remembers which navigation section is highlighted. The
// highlight only moves when another section enters the band.
type ActiveTracker struct {
	active string
}

// Active returns the highlighted section id, or "" before any match.
func (a *ActiveTracker) Active() string {
	return a.active
}

// Update recomputes the highlight for position y. Returns true when it
// changed.
func (a *ActiveTracker) Update(l Layout, y float64, viewportHeight int) bool {
	vh := float64(viewportHeight)
	bandTop := y + vh*activeBandTop
	bandBottom := y + vh - vh*activeBandBottom
	if bandBottom <= bandTop {
		bandBottom = bandTop + 1
	}

	next := a.active
	for _, s := range l.sections {
		if float64(s.Top) < bandBottom && float64(s.Bottom()) > bandTop {
			next = s.ID
		}
	}
	// At the top of the page the first section wins even when it is too
	// short to reach the band.
	if y <= 0 && len(l.sections) > 0 {
		next = l.sections[0].ID
	}
	if next == a.active {
		return false
	}
	a.active = next
	return true
}

// Revealer marks sections as shown once they come near the viewport.
// Shown sections stay shown.
type Revealer struct {
	allowance float64
	shown     map[string]bool
}

// NewRevealer creates a revealer. allowance is how many rows a section
// must overlap past the viewport edge before it counts as visible.
func NewRevealer(allowance float64) *Revealer {
	return &Revealer{allowance: allowance, shown: make(map[string]bool)}
}

// Shown reports whether the section has been revealed.
func (r *Revealer) Shown(id string) bool {
	return r.shown[id]
}

// Update reveals every section in view at position y and returns the ids
// revealed by this call.
func (r *Revealer) Update(l Layout, y float64, viewportHeight int) []string {
	var revealed []string
	bottom := y + float64(viewportHeight)
	for _, s := range l.sections {
		if r.shown[s.ID] {
			continue
		}
		if float64(s.Bottom()) > y+r.allowance && float64(s.Top) < bottom+r.allowance {
			r.shown[s.ID] = true
			revealed = append(revealed, s.ID)
		}
	}
	return revealed
}
