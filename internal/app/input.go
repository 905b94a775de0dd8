package app

import (
	"strings"

	"go.uber.org/zap"

	"github.com/rimiko/showcase/internal/carousel"
	"github.com/rimiko/showcase/internal/input/mouse"
	"github.com/rimiko/showcase/internal/page"
	"github.com/rimiko/showcase/internal/renderer/backend"
	"github.com/rimiko/showcase/internal/renderer/core"
)

// zone is a clickable screen region recorded while rendering.
type zone struct {
	rect core.Rect
	id   string
}

// Zone ids.
const (
	zoneLang    = "lang"
	zonePrev    = "prev"
	zoneNext    = "next"
	zoneChat    = "chat"
	zoneExplore = "explore"
	zoneDocs    = "docs"
	zoneNavPre  = "nav:"
	zoneLinkPre = "link:"
)

// HandleEvent applies one terminal event. It returns ErrQuit when the
// user asked to leave.
func (app *Application) HandleEvent(ev backend.Event) error {
	switch ev.Type {
	case backend.EventKey:
		return app.handleKey(ev)
	case backend.EventMouse:
		app.handleMouse(ev)
	case backend.EventResize:
		app.Resize(ev.Width, ev.Height)
	case backend.EventFocus:
		if !ev.Focused {
			app.pointerLost()
		}
	}
	return nil
}

// pointerLost ends a captured drag when the terminal loses the pointer.
func (app *Application) pointerLost() {
	app.mouse.Reset()
	if app.pointerDown {
		app.pointerDown = false
		app.carousel.OnPointerLeave()
	}
}

func (app *Application) handleKey(ev backend.Event) error {
	if ev.Key == backend.KeyCtrlC {
		return ErrQuit
	}
	if app.chat.open {
		app.chatKey(ev)
		return nil
	}

	smooth := app.cfg.Page.SmoothScroll
	switch ev.Key {
	case backend.KeyEscape:
		return ErrQuit
	case backend.KeyLeft:
		app.carousel.ScrollByCard(-1)
	case backend.KeyRight:
		app.carousel.ScrollByCard(1)
	case backend.KeyUp:
		app.scroller.ScrollBy(-1, smooth)
	case backend.KeyDown:
		app.scroller.ScrollBy(1, smooth)
	case backend.KeyPageUp:
		app.scroller.ScrollBy(-float64(max(1, app.viewportHeight()-1)), smooth)
	case backend.KeyPageDown:
		app.scroller.ScrollBy(float64(max(1, app.viewportHeight()-1)), smooth)
	case backend.KeyHome:
		app.scroller.ScrollTo(0, smooth)
	case backend.KeyEnd:
		app.scroller.ScrollTo(app.scroller.MaxY(), smooth)
	case backend.KeyRune:
		switch ev.Rune {
		case 'q', 'Q':
			return ErrQuit
		case 'h':
			app.Navigate(page.AnchorHome)
		case 'p':
			app.Navigate(page.AnchorProducts)
		case 'r':
			app.Navigate("#" + sectionResources)
		case 'l':
			app.ToggleLanguage()
		case 'c':
			app.OpenChat()
		}
	}
	app.refreshPage()
	app.dirty = true
	return nil
}

// Navigate scrolls to a section anchor such as "#products".
func (app *Application) Navigate(anchor string) bool {
	target, ok := app.layout.AnchorTarget(anchor, app.viewportHeight())
	if !ok {
		app.logger.Debug("unknown anchor", zap.String("anchor", anchor))
		return false
	}
	app.scroller.ScrollTo(target, app.cfg.Page.SmoothScroll)
	app.refreshPage()
	app.dirty = true
	return true
}

// ToggleLanguage flips between English and Vietnamese. The switch takes
// effect even when the preference cannot be saved.
func (app *Application) ToggleLanguage() {
	lang, err := app.tr.Toggle()
	if err != nil {
		app.logger.Warn("language preference not saved", zap.Error(NewOperationError("save", string(lang), err)))
	}
	app.dirty = true
}

func (app *Application) handleMouse(ev backend.Event) {
	for _, me := range app.mouse.Feed(ev.MouseX, ev.MouseY, toMouseButtons(ev.Buttons), ev.When) {
		switch me.Action {
		case mouse.ActionPress:
			app.pointerPress(me.Position)
		case mouse.ActionDrag:
			app.pointerDrag(me.Position)
		case mouse.ActionRelease:
			if app.pointerDown {
				app.pointerDown = false
				app.carousel.OnPointerUp()
			}
		case mouse.ActionClick:
			app.click(me.Position)
		case mouse.ActionWheel:
			app.wheel(me.Position, me.Direction)
		}
	}
	app.refreshPage()
	app.dirty = true
}

func (app *Application) pointerPress(p mouse.Position) {
	if app.inChatPanel(p.X, p.Y) {
		return
	}
	r := app.stripRect()
	if !r.Contains(p.X, p.Y) {
		return
	}
	app.pointerDown = true
	app.carousel.OnPointerDown(float64(p.X-r.Left), carousel.DeviceMouse)
}

func (app *Application) pointerDrag(p mouse.Position) {
	if !app.pointerDown {
		return
	}
	// A captured drag follows the pointer anywhere on screen until release.
	app.carousel.OnPointerMove(float64(p.X - app.stripRect().Left))
}

func (app *Application) click(p mouse.Position) {
	if app.inChatPanel(p.X, p.Y) {
		return
	}
	id, ok := app.zoneAt(p.X, p.Y)
	if !ok {
		return
	}
	switch id {
	case zoneLang:
		app.ToggleLanguage()
	case zonePrev:
		app.carousel.ScrollByCard(-1)
	case zoneNext:
		app.carousel.ScrollByCard(1)
	case zoneChat:
		if app.chat.open {
			app.CloseChat()
		} else {
			app.OpenChat()
		}
	case zoneExplore:
		app.Navigate(page.AnchorProducts)
	case zoneDocs:
		app.Navigate("#" + sectionResources)
	default:
		if target, ok := strings.CutPrefix(id, zoneNavPre); ok {
			app.Navigate(target)
		} else if target, ok := strings.CutPrefix(id, zoneLinkPre); ok {
			app.FollowLink(target)
		}
	}
}

// FollowLink opens a resource link. Page anchors scroll the page; other
// targets go to Options.OpenLink and are announced on the help line.
func (app *Application) FollowLink(target string) {
	if strings.HasPrefix(target, "#") {
		app.Navigate(target)
		return
	}
	app.logger.Info("link selected", zap.String("target", target))
	if app.opts.OpenLink != nil {
		if err := app.opts.OpenLink(target); err != nil {
			app.logger.Warn("link not opened", zap.Error(NewOperationError("open", target, err)))
		}
	}
	app.status = "→ " + target
	app.statusUntil = app.clock.Now() + statusDuration
	app.dirty = true
}

func (app *Application) wheel(p mouse.Position, dir mouse.ScrollDirection) {
	if dir.IsHorizontal() {
		if app.stripRect().Contains(p.X, p.Y) {
			app.carousel.ScrollBy(float64(dir.Sign() * app.cfg.Page.WheelStep * 2))
		}
		return
	}
	app.scroller.ScrollBy(float64(dir.Sign()*app.cfg.Page.WheelStep), app.cfg.Page.SmoothScroll)
}

func (app *Application) zoneAt(x, y int) (string, bool) {
	// Later zones are drawn on top.
	for i := len(app.zones) - 1; i >= 0; i-- {
		if app.zones[i].rect.Contains(x, y) {
			return app.zones[i].id, true
		}
	}
	return "", false
}

func (app *Application) addZone(r core.Rect, id string) {
	app.zones = append(app.zones, zone{rect: r, id: id})
}

// Resize adapts every component to a new terminal size.
func (app *Application) Resize(width, height int) {
	app.width, app.height = width, height
	app.scroller.Resize(app.viewportHeight())
	app.strip.SetViewport(max(0, width-2*stripMargin))
	app.carousel.Resize()
	app.refreshPage()
	app.dirty = true
}

func toMouseButtons(b backend.ButtonMask) mouse.Buttons {
	var out mouse.Buttons
	if b.Has(backend.ButtonPrimary) {
		out |= mouse.ButtonPrimary
	}
	if b.Has(backend.WheelUp) {
		out |= mouse.ButtonWheelUp
	}
	if b.Has(backend.WheelDown) {
		out |= mouse.ButtonWheelDown
	}
	if b.Has(backend.WheelLeft) {
		out |= mouse.ButtonWheelLeft
	}
	if b.Has(backend.WheelRight) {
		out |= mouse.ButtonWheelRight
	}
	return out
}
