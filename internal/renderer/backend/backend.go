// Package backend provides terminal backend abstraction for the renderer.
package backend

import (
	"time"

	"github.com/rimiko/showcase/internal/renderer/core"
)

// EventType identifies the type of terminal event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventMouse
	EventResize
	EventInterrupt
	EventFocus
)

// Event represents a terminal event.
type Event struct {
	Type EventType
	When time.Time

	// Key event fields
	Key  Key
	Rune rune

	// Mouse event fields
	MouseX, MouseY int
	Buttons        ButtonMask

	// Resize event fields
	Width, Height int

	// Focus event field
	Focused bool
}

// Key represents a keyboard key.
type Key int

// Key constants for the keys the page reacts to.
const (
	KeyNone Key = iota
	KeyRune
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyCtrlC
)

// ButtonMask is the set of mouse buttons held in a mouse event.
type ButtonMask uint16

const (
	ButtonPrimary ButtonMask = 1 << iota
	ButtonSecondary
	ButtonMiddle
	WheelUp
	WheelDown
	WheelLeft
	WheelRight

	ButtonNone ButtonMask = 0
)

// Has returns true if the mask contains b.
func (m ButtonMask) Has(b ButtonMask) bool {
	return m&b != 0
}

// Backend defines the interface for terminal/display backends.
type Backend interface {
	// Init initializes the backend for use.
	// Must be called before any other methods.
	Init() error

	// Shutdown releases backend resources and restores terminal state.
	Shutdown()

	// Size returns the current terminal dimensions.
	Size() (width, height int)

	// SetCell sets a single cell at the given position.
	// Positions outside the terminal are silently ignored.
	SetCell(x, y int, cell core.Cell)

	// Fill fills a rectangular region with the given cell.
	Fill(rect core.Rect, cell core.Cell)

	// Clear clears the entire screen with the default style.
	Clear()

	// Show flushes pending changes to the display.
	Show()

	// PollEvent waits for and returns the next terminal event.
	// It returns an event of type EventNone once the backend is shut down.
	PollEvent() Event

	// Interrupt wakes PollEvent with an EventInterrupt.
	Interrupt()
}

// NullBackend is an in-memory backend for tests.
type NullBackend struct {
	width, height int
	cells         [][]core.Cell
	shown         int
	events        chan Event
}

// NewNullBackend creates a null backend with the given dimensions.
func NewNullBackend(width, height int) *NullBackend {
	return &NullBackend{
		width:  width,
		height: height,
		events: make(chan Event, 100),
	}
}

func (b *NullBackend) Init() error {
	b.allocate()
	return nil
}

func (b *NullBackend) allocate() {
	b.cells = make([][]core.Cell, b.height)
	for i := range b.cells {
		b.cells[i] = make([]core.Cell, b.width)
		for j := range b.cells[i] {
			b.cells[i][j] = core.EmptyCell()
		}
	}
}

func (b *NullBackend) Shutdown() {}

func (b *NullBackend) Size() (int, int) {
	return b.width, b.height
}

func (b *NullBackend) SetCell(x, y int, cell core.Cell) {
	if x >= 0 && x < b.width && y >= 0 && y < b.height {
		b.cells[y][x] = cell
	}
}

// GetCell returns the cell at the given position.
func (b *NullBackend) GetCell(x, y int) core.Cell {
	if x >= 0 && x < b.width && y >= 0 && y < b.height {
		return b.cells[y][x]
	}
	return core.EmptyCell()
}

func (b *NullBackend) Fill(rect core.Rect, cell core.Cell) {
	for y := max(0, rect.Top); y < rect.Bottom && y < b.height; y++ {
		for x := max(0, rect.Left); x < rect.Right && x < b.width; x++ {
			b.cells[y][x] = cell
		}
	}
}

func (b *NullBackend) Clear() {
	b.Fill(core.Rect{Bottom: b.height, Right: b.width}, core.EmptyCell())
}

func (b *NullBackend) Show() {
	b.shown++
}

func (b *NullBackend) PollEvent() Event {
	return <-b.events
}

func (b *NullBackend) Interrupt() {
	b.Post(Event{Type: EventInterrupt, When: time.Now()})
}

// Post queues a synthetic event. Events are dropped when the queue is full.
func (b *NullBackend) Post(ev Event) {
	select {
	case b.events <- ev:
	default:
	}
}

// Row returns the runes of row y as a string, for assertions.
func (b *NullBackend) Row(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	runes := make([]rune, b.width)
	for x, c := range b.cells[y] {
		runes[x] = c.Rune
	}
	return string(runes)
}

// ShowCount returns how many times Show was called.
func (b *NullBackend) ShowCount() int {
	return b.shown
}

// Resize simulates a terminal resize and queues the resize event.
func (b *NullBackend) Resize(width, height int) {
	b.width = width
	b.height = height
	b.allocate()
	b.Post(Event{Type: EventResize, Width: width, Height: height, When: time.Now()})
}
