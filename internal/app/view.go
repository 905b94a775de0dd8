package app

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rimiko/showcase/internal/chat"
	"github.com/rimiko/showcase/internal/page"
	"github.com/rimiko/showcase/internal/renderer"
	"github.com/rimiko/showcase/internal/renderer/core"
)

// Screen layout.
const (
	headerRows  = 3
	footerRows  = 1
	stripMargin = 2

	chatPanelWidth  = 44
	chatPanelHeight = 14
)

var (
	colorAccent = core.MustHex("#22c55e")
	colorMuted  = core.MustHex("#94a3b8")
	colorShadow = core.MustHex("#334155")

	styleText   = core.DefaultStyle()
	styleAccent = core.DefaultStyle().WithForeground(colorAccent)
	styleMuted  = core.DefaultStyle().WithForeground(colorMuted)
	styleTitle  = core.DefaultStyle().Bold()
)

// viewportHeight is the number of page rows visible between the header
// and the help line.
func (app *Application) viewportHeight() int {
	return max(0, app.height-headerRows-footerRows)
}

// contentRect is the screen area the page scrolls in.
func (app *Application) contentRect() core.Rect {
	return core.Rect{Top: headerRows, Left: 0, Bottom: headerRows + app.viewportHeight(), Right: app.width}
}

// sectionScreenTop returns the screen row of a section's first row.
func (app *Application) sectionScreenTop(id string) int {
	s, _ := app.layout.Find(id)
	return headerRows + s.Top - app.scroller.Row()
}

// stripRect is the screen area of the card row, clipped to the content
// area.
func (app *Application) stripRect() core.Rect {
	top := app.sectionScreenTop(sectionProducts) + cardsOffset
	r := core.Rect{Top: top, Left: stripMargin, Bottom: top + cardHeight, Right: app.width - stripMargin}
	return clip(r, app.contentRect())
}

func (app *Application) inChatPanel(x, y int) bool {
	return app.chat.open && app.chatRect.Contains(x, y)
}

func clip(r, to core.Rect) core.Rect {
	r.Top = max(r.Top, to.Top)
	r.Left = max(r.Left, to.Left)
	r.Bottom = max(r.Top, min(r.Bottom, to.Bottom))
	r.Right = max(r.Left, min(r.Right, to.Right))
	return r
}

// Render draws the whole screen and flushes it.
func (app *Application) Render() {
	if app.backend == nil || app.width <= 0 || app.height <= 0 {
		return
	}
	app.zones = app.zones[:0]
	screen := renderer.NewCanvas(app.backend)
	screen.Clear(styleText)

	app.drawHeader(screen)
	content := screen.Sub(app.contentRect())
	for _, s := range app.layout.Sections() {
		if !app.reveal.Shown(s.ID) {
			continue
		}
		top := s.Top - app.scroller.Row()
		if top >= content.Height() || top+s.Height <= 0 {
			continue
		}
		switch s.ID {
		case sectionHome:
			app.drawHome(content, top)
		case sectionProducts:
			app.drawProducts(content, top)
		case sectionResources:
			app.drawResources(content, top)
		case sectionFooter:
			content.Centered(top+1, app.tr.Tf("footer.copyright", time.Now().Year()), styleMuted)
		}
	}
	app.drawHelp(screen)
	if app.chat.open {
		app.drawChat(screen)
	}

	app.backend.Show()
	app.dirty = false
}

func (app *Application) drawHeader(c *renderer.Canvas) {
	x := c.Text(1, 0, "◆ Rimiko", styleAccent.Bold()) + 3
	active := app.active.Active()
	for _, item := range navItems {
		label := app.tr.T(item.Key)
		style := styleText
		if "#"+active == item.Anchor {
			style = styleAccent.Bold().Reverse()
		}
		start := x
		x = c.Text(x, 0, " "+label+" ", style)
		app.addZone(core.Rect{Top: 0, Left: start, Bottom: 1, Right: x}, zoneNavPre+item.Anchor)
		x += 1
	}

	code := "[" + app.tr.Language().Code() + "]"
	lx := app.width - renderer.StringWidth(code) - 1
	c.Text(lx, 0, code, styleAccent.Bold())
	app.addZone(core.Rect{Top: 0, Left: lx, Bottom: 1, Right: lx + renderer.StringWidth(code)}, zoneLang)

	c.Cells(0, 1, page.ProgressBar(app.width, app.scroller.Progress(), app.gradient, styleText))

	if app.scroller.HeaderShadow(app.cfg.Page.ShadowThreshold) {
		c.Fill(core.Rect{Top: 2, Bottom: 3, Right: app.width},
			core.Cell{Rune: '▀', Style: styleText.WithForeground(colorShadow)})
	}
}

func (app *Application) drawHelp(c *renderer.Canvas) {
	y := app.height - 1
	if app.status != "" {
		c.Text(1, y, app.status, styleAccent)
	} else {
		c.Text(1, y, app.tr.T("help.keys"), styleMuted)
	}

	label := "[ " + app.tr.T("chat.title") + " ]"
	x := app.width - renderer.StringWidth(label) - 1
	c.Text(x, y, label, styleAccent.Reverse())
	app.addZone(core.Rect{Top: y, Left: x, Bottom: y + 1, Right: x + renderer.StringWidth(label)}, zoneChat)
}

// zoneIn records a zone given in content coordinates, clipped to the
// visible content.
func (app *Application) zoneIn(r core.Rect, id string) {
	r.Top += headerRows
	r.Bottom += headerRows
	r = clip(r, app.contentRect())
	if r.Width() > 0 && r.Height() > 0 {
		app.addZone(r, id)
	}
}

func (app *Application) drawHome(c *renderer.Canvas, top int) {
	c.Centered(top+1, app.tr.T("hero.title"), styleTitle)

	typed := app.typer.Text() + "▌"
	x := max(0, (c.Width()-renderer.StringWidth(typed))/2)
	c.Text(x, top+3, typed, styleAccent)

	for i, line := range renderer.Wrap(app.tr.T("hero.lead"), min(c.Width()-4, 72)) {
		if i == 2 {
			break
		}
		c.Centered(top+5+i, line, styleMuted)
	}

	explore := "[ " + app.tr.T("hero.exploreNow") + " ]"
	docs := "[ " + app.tr.T("hero.documentation") + " ]"
	ew, dw := renderer.StringWidth(explore), renderer.StringWidth(docs)
	bx := max(0, (c.Width()-ew-3-dw)/2)
	y := top + 8
	c.Text(bx, y, explore, styleAccent.Reverse())
	app.zoneIn(core.Rect{Top: y, Left: bx, Bottom: y + 1, Right: bx + ew}, zoneExplore)
	dx := bx + ew + 3
	c.Text(dx, y, docs, styleAccent)
	app.zoneIn(core.Rect{Top: y, Left: dx, Bottom: y + 1, Right: dx + dw}, zoneDocs)
}

func (app *Application) drawProducts(c *renderer.Canvas, top int) {
	c.Centered(top, app.tr.T("products.heading"), styleTitle)
	for i, line := range renderer.Wrap(app.tr.T("products.description"), min(c.Width()-4, 72)) {
		if i == 2 {
			break
		}
		c.Centered(top+1+i, line, styleMuted)
	}

	cardTop := top + cardsOffset
	row := c.Sub(core.Rect{Top: cardTop, Left: stripMargin, Bottom: cardTop + cardHeight, Right: c.Width() - stripMargin})
	border := styleAccent
	if app.carousel.Dragging() {
		border = styleMuted
	}
	w := app.strip.CardWidth()
	inner := max(1, w-4)
	for _, p := range app.strip.Visible() {
		card := app.strip.Cards()[p.Index]
		row.Box(core.RectFromSize(0, p.X, cardHeight, w), border)
		row.Text(p.X+2, 1, renderer.Truncate(app.tr.T(card.TitleKey), inner), styleTitle)
		for i, line := range renderer.Wrap(app.tr.T(card.DescKey), inner) {
			if i == 3 {
				break
			}
			row.Text(p.X+2, 3+i, line, styleMuted)
		}
		row.Text(p.X+2, cardHeight-2, "[ "+app.tr.T("common.download")+" ]", styleAccent)
	}

	mid := cardTop + cardHeight/2
	aff := app.carousel.Affordance()
	if aff.ShowPrevious {
		c.Text(0, mid, "‹", styleAccent.Bold())
		app.zoneIn(core.Rect{Top: cardTop, Left: 0, Bottom: cardTop + cardHeight, Right: 1}, zonePrev)
	}
	if aff.ShowNext {
		c.Text(c.Width()-1, mid, "›", styleAccent.Bold())
		app.zoneIn(core.Rect{Top: cardTop, Left: c.Width() - 1, Bottom: cardTop + cardHeight, Right: c.Width()}, zoneNext)
	}

	c.Centered(cardTop+cardHeight+1, app.pageDots(), styleMuted)
}

// pageDots marks the first visible card.
func (app *Application) pageDots() string {
	n := app.strip.Len()
	if n == 0 {
		return ""
	}
	current := 0
	if step := app.strip.ItemStep(); step > 0 {
		current = min(n-1, int(app.strip.ScrollPosition()/step+0.5))
	}
	dots := make([]string, n)
	for i := range dots {
		dots[i] = "○"
		if i == current {
			dots[i] = "●"
		}
	}
	return strings.Join(dots, " ")
}

func (app *Application) drawResources(c *renderer.Canvas, top int) {
	c.Centered(top, app.tr.T("resources.heading"), styleTitle)
	c.Centered(top+1, renderer.Truncate(app.tr.T("resources.description"), c.Width()-4), styleMuted)

	colWidth := max(1, (c.Width()-6)/2)
	for i := range resourceCount {
		x := 2 + (i%2)*(colWidth+2)
		y := top + 3 + (i/2)*3
		title := app.tr.T(fmt.Sprintf("resources.cards.%d.title", i))
		desc := app.tr.T(fmt.Sprintf("resources.cards.%d.desc", i))
		label := renderer.Truncate("▸ "+title, colWidth)
		c.Text(x, y, label, styleTitle)
		c.Text(x+2, y+1, renderer.Truncate(desc, colWidth-2), styleMuted)
		app.zoneIn(core.Rect{Top: y, Left: x, Bottom: y + 2, Right: x + colWidth}, zoneLinkPre+resourceLinks[i])
	}

	values := make([]any, len(app.stats))
	for i, s := range app.stats {
		values[i] = s.Value()
	}
	c.Centered(top+resourcesHeight-2, app.tr.Tf("resources.stats", values...), styleAccent)
}

func (app *Application) drawChat(c *renderer.Canvas) {
	area := app.contentRect()
	pw := min(chatPanelWidth, app.width-2)
	ph := min(chatPanelHeight, area.Height())
	if pw < 8 || ph < 5 {
		return
	}
	r := core.Rect{Top: area.Bottom - ph, Left: app.width - pw - 1, Bottom: area.Bottom, Right: app.width - 1}
	app.chatRect = r

	c.Fill(r, core.Cell{Rune: ' ', Style: styleText})
	c.Box(r, styleAccent)
	c.Text(r.Left+2, r.Top, " "+app.tr.T("chat.title")+" ", styleAccent.Bold())

	inner := r.Width() - 4
	var lines []chatLine
	for _, l := range app.chat.lines {
		prefix := ""
		if l.role == chat.RoleUser {
			prefix = "› "
		}
		for _, w := range renderer.Wrap(prefix+l.text, inner) {
			lines = append(lines, chatLine{role: l.role, text: w})
		}
	}
	if app.chat.busy {
		lines = append(lines, chatLine{role: chat.RoleBot, text: "…"})
	}
	rows := r.Height() - 4
	if len(lines) > rows {
		lines = lines[len(lines)-rows:]
	}
	for i, l := range lines {
		style := styleText
		if l.role == chat.RoleUser {
			style = styleAccent
		}
		c.Text(r.Left+2, r.Top+1+i, l.text, style)
	}

	inputY := r.Bottom - 2
	if len(app.chat.input) == 0 {
		c.Text(r.Left+2, inputY, renderer.Truncate(app.tr.T("chat.placeholder"), inner), styleMuted)
		return
	}
	text := string(app.chat.input) + "▌"
	// Keep the end of a long input visible.
	for renderer.StringWidth(text) > inner {
		_, size := utf8.DecodeRuneInString(text)
		text = text[size:]
	}
	c.Text(r.Left+2, inputY, text, styleText)
}
