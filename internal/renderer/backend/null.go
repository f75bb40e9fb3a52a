package backend

import (
	"errors"
	"strings"
	"sync"

	"github.com/dshills/kite/internal/renderer/core"
)

// ErrEventQueueFull is returned by NullBackend.PostEvent when the queue
// already holds eventQueueSize events.
var ErrEventQueueFull = errors.New("event queue full")

const eventQueueSize = 100

// NullBackend keeps the screen in memory. Tests drive it by posting
// events and inspect what was drawn with Row, GetCell and
// CursorPosition.
type NullBackend struct {
	mu     sync.Mutex
	w, h   int
	grid   []core.Cell // row-major, w*h cells
	cx, cy int
	cursor bool
	shows  int
	events chan Event
}

// NewNullBackend creates a blank w by h screen.
func NewNullBackend(w, h int) *NullBackend {
	b := &NullBackend{events: make(chan Event, eventQueueSize)}
	b.reset(w, h)
	return b
}

// reset resizes and blanks the grid. b.mu must be held or b unshared.
func (b *NullBackend) reset(w, h int) {
	b.w, b.h = w, h
	b.grid = make([]core.Cell, w*h)
	b.fill()
}

func (b *NullBackend) fill() {
	blank := core.EmptyCell()
	for i := range b.grid {
		b.grid[i] = blank
	}
}

// index returns the grid offset of (x, y), or -1 when off screen.
func (b *NullBackend) index(x, y int) int {
	if x < 0 || y < 0 || x >= b.w || y >= b.h {
		return -1
	}
	return y*b.w + x
}

func (b *NullBackend) Init() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.fill()
	return nil
}

func (b *NullBackend) Shutdown() {}

func (b *NullBackend) Size() (int, int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.w, b.h
}

func (b *NullBackend) SetCell(x, y int, cell core.Cell) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if i := b.index(x, y); i >= 0 {
		b.grid[i] = cell
	}
}

// GetCell returns the cell at (x, y), or an empty cell off screen.
func (b *NullBackend) GetCell(x, y int) core.Cell {
	b.mu.Lock()
	defer b.mu.Unlock()
	if i := b.index(x, y); i >= 0 {
		return b.grid[i]
	}
	return core.EmptyCell()
}

func (b *NullBackend) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.fill()
}

func (b *NullBackend) Show() {
	b.mu.Lock()
	b.shows++
	b.mu.Unlock()
}

func (b *NullBackend) ShowCursor(x, y int) {
	b.mu.Lock()
	b.cx, b.cy, b.cursor = x, y, true
	b.mu.Unlock()
}

func (b *NullBackend) HideCursor() {
	b.mu.Lock()
	b.cursor = false
	b.mu.Unlock()
}

// PollEvent blocks until an event is posted.
func (b *NullBackend) PollEvent() Event {
	return <-b.events
}

func (b *NullBackend) PostEvent(ev Event) error {
	select {
	case b.events <- ev:
		return nil
	default:
		return ErrEventQueueFull
	}
}

// CursorPosition reports the last ShowCursor position and whether the
// cursor is visible.
func (b *NullBackend) CursorPosition() (x, y int, visible bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.cx, b.cy, b.cursor
}

// ShowCount is the number of frames presented.
func (b *NullBackend) ShowCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.shows
}

// Row returns screen row y as text, or "" when y is off screen.
func (b *NullBackend) Row(y int) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.index(0, y) < 0 {
		return ""
	}
	var sb strings.Builder
	for _, c := range b.grid[y*b.w : (y+1)*b.w] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

// Resize changes the screen size, blanks it and queues a resize event.
func (b *NullBackend) Resize(w, h int) {
	b.mu.Lock()
	b.reset(w, h)
	b.mu.Unlock()
	_ = b.PostEvent(Event{Type: EventResize, Width: w, Height: h})
}
