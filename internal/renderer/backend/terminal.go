package backend

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/rimiko/showcase/internal/renderer/core"
)

// Terminal implements Backend using tcell for terminal output.
type Terminal struct {
	screen tcell.Screen
	mu     sync.Mutex
}

// NewTerminal creates a new terminal backend.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen}, nil
}

func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.screen.Init(); err != nil {
		return err
	}

	// Button events plus drag motion; plain motion is not needed.
	t.screen.EnableMouse(tcell.MouseButtonEvents | tcell.MouseDragEvents)
	t.screen.EnableFocus()
	t.screen.HideCursor()

	return nil
}

func (t *Terminal) Shutdown() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Fini()
}

func (t *Terminal) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.screen.Size()
}

func (t *Terminal) SetCell(x, y int, cell core.Cell) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.SetContent(x, y, cell.Rune, nil, convertStyle(cell.Style))
}

func (t *Terminal) Fill(rect core.Rect, cell core.Cell) {
	t.mu.Lock()
	defer t.mu.Unlock()

	style := convertStyle(cell.Style)
	width, height := t.screen.Size()

	for y := max(0, rect.Top); y < rect.Bottom && y < height; y++ {
		for x := max(0, rect.Left); x < rect.Right && x < width; x++ {
			t.screen.SetContent(x, y, cell.Rune, nil, style)
		}
	}
}

func (t *Terminal) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Clear()
}

func (t *Terminal) Show() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Show()
}

func (t *Terminal) PollEvent() Event {
	ev := t.screen.PollEvent()
	if ev == nil {
		// Screen finalized.
		return Event{Type: EventNone}
	}
	return convertEvent(ev)
}

func (t *Terminal) Interrupt() {
	_ = t.screen.PostEvent(tcell.NewEventInterrupt(nil)) // best-effort; queue may be full
}

// convertStyle converts our Style to tcell.Style.
func convertStyle(s core.Style) tcell.Style {
	style := tcell.StyleDefault

	if !s.Foreground.IsDefault() {
		style = style.Foreground(tcell.NewRGBColor(int32(s.Foreground.R), int32(s.Foreground.G), int32(s.Foreground.B)))
	}
	if !s.Background.IsDefault() {
		style = style.Background(tcell.NewRGBColor(int32(s.Background.R), int32(s.Background.G), int32(s.Background.B)))
	}

	if s.Attributes.Has(core.AttrBold) {
		style = style.Bold(true)
	}
	if s.Attributes.Has(core.AttrDim) {
		style = style.Dim(true)
	}
	if s.Attributes.Has(core.AttrItalic) {
		style = style.Italic(true)
	}
	if s.Attributes.Has(core.AttrUnderline) {
		style = style.Underline(true)
	}
	if s.Attributes.Has(core.AttrReverse) {
		style = style.Reverse(true)
	}

	return style
}

// convertEvent converts tcell events to our Event type.
func convertEvent(ev tcell.Event) Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return Event{
			Type: EventKey,
			When: e.When(),
			Key:  convertKey(e.Key()),
			Rune: e.Rune(),
		}

	case *tcell.EventMouse:
		x, y := e.Position()
		return Event{
			Type:    EventMouse,
			When:    e.When(),
			MouseX:  x,
			MouseY:  y,
			Buttons: convertButtons(e.Buttons()),
		}

	case *tcell.EventResize:
		w, h := e.Size()
		return Event{
			Type:   EventResize,
			When:   e.When(),
			Width:  w,
			Height: h,
		}

	case *tcell.EventInterrupt:
		return Event{Type: EventInterrupt, When: e.When()}

	case *tcell.EventFocus:
		return Event{Type: EventFocus, When: e.When(), Focused: e.Focused}

	default:
		return Event{Type: EventNone, When: time.Now()}
	}
}

// convertKey converts tcell key to our Key type.
func convertKey(k tcell.Key) Key {
	switch k {
	case tcell.KeyRune:
		return KeyRune
	case tcell.KeyEscape:
		return KeyEscape
	case tcell.KeyEnter:
		return KeyEnter
	case tcell.KeyTab:
		return KeyTab
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return KeyBackspace
	case tcell.KeyUp:
		return KeyUp
	case tcell.KeyDown:
		return KeyDown
	case tcell.KeyLeft:
		return KeyLeft
	case tcell.KeyRight:
		return KeyRight
	case tcell.KeyPgUp:
		return KeyPageUp
	case tcell.KeyPgDn:
		return KeyPageDown
	case tcell.KeyHome:
		return KeyHome
	case tcell.KeyEnd:
		return KeyEnd
	case tcell.KeyCtrlC:
		return KeyCtrlC
	default:
		return KeyNone
	}
}

// convertButtons converts a tcell button mask to ours.
func convertButtons(b tcell.ButtonMask) ButtonMask {
	var m ButtonMask
	pairs := []struct {
		from tcell.ButtonMask
		to   ButtonMask
	}{
		{tcell.Button1, ButtonPrimary},
		{tcell.Button2, ButtonSecondary},
		{tcell.Button3, ButtonMiddle},
		{tcell.WheelUp, WheelUp},
		{tcell.WheelDown, WheelDown},
		{tcell.WheelLeft, WheelLeft},
		{tcell.WheelRight, WheelRight},
	}
	for _, p := range pairs {
		if b&p.from != 0 {
			m |= p.to
		}
	}
	return m
}
