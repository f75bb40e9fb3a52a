// Package backend abstracts the terminal the renderer draws on. Terminal
// drives a real tty through tcell; NullBackend keeps the screen in memory.
package backend

import "github.com/dshills/kite/internal/renderer/core"

// EventType says which Event fields are meaningful.
type EventType int

const (
	EventNone      EventType = iota
	EventKey                 // Key, Rune, Mod
	EventResize              // Width, Height
	EventInterrupt           // Data, posted from another goroutine
)

// Event is one input from the terminal or from PostEvent.
type Event struct {
	Type EventType

	Key  Key
	Rune rune
	Mod  ModMask

	Width, Height int

	Data any
}

// Key is a terminal-independent key code. Printable input arrives as
// KeyRune with the character in Event.Rune.
type Key int

const (
	KeyNone Key = iota
	KeyRune
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyCtrlC
	KeyCtrlF
	KeyCtrlL
	KeyCtrlQ
	KeyCtrlS
)

// ModMask is the set of modifiers held during a key event.
type ModMask int

const (
	ModNone  ModMask = 0
	ModShift ModMask = 1 << (iota - 1)
	ModCtrl
	ModAlt
)

// Has reports whether mod is held.
func (m ModMask) Has(mod ModMask) bool {
	return m&mod == mod && mod != 0
}

// Backend is a cell grid plus an event queue. Init must succeed before
// any other call, and drawing only becomes visible on Show.
type Backend interface {
	Init() error
	// Shutdown restores the terminal.
	Shutdown()

	Size() (width, height int)
	// SetCell ignores positions off screen.
	SetCell(x, y int, cell core.Cell)
	Clear()
	Show()
	ShowCursor(x, y int)
	HideCursor()

	// PollEvent blocks until the next event.
	PollEvent() Event
	// PostEvent queues ev for PollEvent from any goroutine.
	PostEvent(ev Event) error
}
