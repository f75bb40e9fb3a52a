package editor

// Key is a logical keystroke delivered by the terminal input layer.
type Key uint8

// Keys understood by the session.
const (
	KeyNone Key = iota
	KeyRune
	KeyEnter
	KeyBackspace
	KeyDelete
	KeyTab
	KeyEscape
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyFind
	KeySave
	KeyQuit
)

var keyNames = map[Key]string{
	KeyNone:      "none",
	KeyRune:      "rune",
	KeyEnter:     "enter",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",
	KeyTab:       "tab",
	KeyEscape:    "escape",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyPageUp:    "pageup",
	KeyPageDown:  "pagedown",
	KeyFind:      "find",
	KeySave:      "save",
	KeyQuit:      "quit",
}

// String returns the key name.
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "unknown"
}

// Event is one keystroke. Rune is set only for KeyRune.
type Event struct {
	Key  Key
	Rune rune
}

// Press returns an event for a non-character key.
func Press(k Key) Event {
	return Event{Key: k}
}

// Char returns an event inserting r.
func Char(r rune) Event {
	return Event{Key: KeyRune, Rune: r}
}
