package backend

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/kite/internal/renderer/core"
)

// Terminal implements Backend on a tcell screen. Drawing calls are
// serialized; PollEvent blocks without holding the lock so that
// PostEvent and Shutdown may be called from other goroutines.
type Terminal struct {
	mu     sync.Mutex
	screen tcell.Screen
}

// NewTerminal creates a terminal backend for the controlling tty.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen}, nil
}

func (t *Terminal) with(fn func(s tcell.Screen)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fn(t.screen)
}

func (t *Terminal) Init() error {
	var err error
	t.with(func(s tcell.Screen) {
		if err = s.Init(); err == nil {
			s.SetStyle(tcell.StyleDefault)
		}
	})
	return err
}

func (t *Terminal) Shutdown() {
	t.with(func(s tcell.Screen) { s.Fini() })
}

func (t *Terminal) Size() (w, h int) {
	t.with(func(s tcell.Screen) { w, h = s.Size() })
	return w, h
}

func (t *Terminal) SetCell(x, y int, cell core.Cell) {
	st := tcellStyle(cell.Style)
	t.with(func(s tcell.Screen) { s.SetContent(x, y, cell.Rune, nil, st) })
}

func (t *Terminal) Clear() {
	t.with(func(s tcell.Screen) { s.Clear() })
}

func (t *Terminal) Show() {
	t.with(func(s tcell.Screen) { s.Show() })
}

func (t *Terminal) ShowCursor(x, y int) {
	t.with(func(s tcell.Screen) { s.ShowCursor(x, y) })
}

func (t *Terminal) HideCursor() {
	t.with(func(s tcell.Screen) { s.HideCursor() })
}

// PollEvent returns EventNone once the screen has been finalized.
func (t *Terminal) PollEvent() Event {
	ev := t.screen.PollEvent()
	if ev == nil {
		return Event{Type: EventNone}
	}
	if _, resized := ev.(*tcell.EventResize); resized {
		t.with(func(s tcell.Screen) { s.Sync() })
	}
	return fromTcell(ev)
}

// PostEvent queues an interrupt or key event for PollEvent. Other event
// types are ignored.
func (t *Terminal) PostEvent(ev Event) error {
	switch ev.Type {
	case EventInterrupt:
		return t.screen.PostEvent(tcell.NewEventInterrupt(ev.Data))
	case EventKey:
		tk, ok := toTcellKey[ev.Key]
		if !ok {
			tk = tcell.KeyRune
		}
		return t.screen.PostEvent(tcell.NewEventKey(tk, ev.Rune, toTcellMod(ev.Mod)))
	}
	return nil
}

func tcellStyle(st core.Style) tcell.Style {
	out := tcell.StyleDefault.
		Foreground(tcellColor(st.Foreground)).
		Background(tcellColor(st.Background)).
		Bold(st.Attributes.Has(core.AttrBold)).
		Dim(st.Attributes.Has(core.AttrDim)).
		Reverse(st.Attributes.Has(core.AttrReverse))
	return out
}

func tcellColor(c core.Color) tcell.Color {
	if c.IsDefault() {
		return tcell.ColorDefault
	}
	if c.Indexed {
		return tcell.PaletteColor(int(c.R))
	}
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func fromTcell(ev tcell.Event) Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return Event{Type: EventKey, Key: fromTcellKey(e.Key()), Rune: e.Rune(), Mod: fromTcellMod(e.Modifiers())}
	case *tcell.EventResize:
		w, h := e.Size()
		return Event{Type: EventResize, Width: w, Height: h}
	case *tcell.EventInterrupt:
		return Event{Type: EventInterrupt, Data: e.Data()}
	}
	return Event{Type: EventNone}
}

// keyPairs lists the keys the editor understands. tcell reports
// Backspace, Tab, Enter and Escape with the same codes as Ctrl-H,
// Ctrl-I, Ctrl-M and Ctrl-[.
var keyPairs = []struct {
	key Key
	tk  tcell.Key
}{
	{KeyRune, tcell.KeyRune},
	{KeyEscape, tcell.KeyEscape},
	{KeyEnter, tcell.KeyEnter},
	{KeyTab, tcell.KeyTab},
	{KeyBackspace, tcell.KeyBackspace2},
	{KeyDelete, tcell.KeyDelete},
	{KeyHome, tcell.KeyHome},
	{KeyEnd, tcell.KeyEnd},
	{KeyPageUp, tcell.KeyPgUp},
	{KeyPageDown, tcell.KeyPgDn},
	{KeyUp, tcell.KeyUp},
	{KeyDown, tcell.KeyDown},
	{KeyLeft, tcell.KeyLeft},
	{KeyRight, tcell.KeyRight},
	{KeyCtrlC, tcell.KeyCtrlC},
	{KeyCtrlF, tcell.KeyCtrlF},
	{KeyCtrlL, tcell.KeyCtrlL},
	{KeyCtrlQ, tcell.KeyCtrlQ},
	{KeyCtrlS, tcell.KeyCtrlS},
}

var (
	toTcellKey   = make(map[Key]tcell.Key, len(keyPairs))
	fromTcellMap = make(map[tcell.Key]Key, len(keyPairs)+1)
)

func init() {
	for _, p := range keyPairs {
		toTcellKey[p.key] = p.tk
		fromTcellMap[p.tk] = p.key
	}
	// Some terminals send DEL (Backspace2), others BS.
	fromTcellMap[tcell.KeyBackspace] = KeyBackspace
}

func fromTcellKey(k tcell.Key) Key {
	if key, ok := fromTcellMap[k]; ok {
		return key
	}
	return KeyNone
}

var modPairs = []struct {
	mod ModMask
	tm  tcell.ModMask
}{
	{ModShift, tcell.ModShift},
	{ModCtrl, tcell.ModCtrl},
	{ModAlt, tcell.ModAlt},
}

func fromTcellMod(m tcell.ModMask) ModMask {
	var out ModMask
	for _, p := range modPairs {
		if m&p.tm != 0 {
			out |= p.mod
		}
	}
	return out
}

func toTcellMod(m ModMask) tcell.ModMask {
	var out tcell.ModMask
	for _, p := range modPairs {
		if m.Has(p.mod) {
			out |= p.tm
		}
	}
	return out
}
