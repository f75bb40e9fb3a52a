package app

import (
	"github.com/dshills/kite/internal/editor"
	"github.com/dshills/kite/internal/renderer/backend"
	"github.com/dshills/kite/internal/watcher"
)

// eventLoop draws a frame, waits for one event and applies it, until the
// session asks to quit.
func (app *Application) eventLoop() error {
	for {
		app.renderer.Render(app.session.Frame())

		ev := app.backend.PollEvent()
		if app.stopping.Load() {
			return nil
		}

		if err := app.handleEvent(ev); err != nil {
			if isQuit(err) {
				app.logger.Info("quit")
				return nil
			}
			return err
		}
	}
}

// handleEvent routes one backend event to the session.
func (app *Application) handleEvent(ev backend.Event) error {
	switch ev.Type {
	case backend.EventKey:
		key, ok := convertKey(ev)
		if !ok {
			return nil
		}
		return app.session.Process(key)

	case backend.EventResize:
		app.logger.Debug("resize %dx%d", ev.Width, ev.Height)
		app.session.Resize(ev.Width, ev.Height)

	case backend.EventInterrupt:
		if fev, ok := ev.Data.(watcher.Event); ok {
			app.logger.Debug("file event %s %s", fev.Op, fev.Path)
			app.session.ExternalChange()
		}
	}
	return nil
}

// convertKey maps a backend key event to a session keystroke. Keys the
// editor does not bind report false.
func convertKey(ev backend.Event) (editor.Event, bool) {
	switch ev.Key {
	case backend.KeyRune:
		if ev.Mod.Has(backend.ModCtrl) || ev.Mod.Has(backend.ModAlt) {
			return editor.Event{}, false
		}
		return editor.Char(ev.Rune), true
	case backend.KeyTab:
		return editor.Press(editor.KeyTab), true
	case backend.KeyEnter:
		return editor.Press(editor.KeyEnter), true
	case backend.KeyEscape:
		return editor.Press(editor.KeyEscape), true
	case backend.KeyBackspace:
		return editor.Press(editor.KeyBackspace), true
	case backend.KeyDelete:
		return editor.Press(editor.KeyDelete), true
	case backend.KeyUp:
		return editor.Press(editor.KeyUp), true
	case backend.KeyDown:
		return editor.Press(editor.KeyDown), true
	case backend.KeyLeft:
		return editor.Press(editor.KeyLeft), true
	case backend.KeyRight:
		return editor.Press(editor.KeyRight), true
	case backend.KeyHome:
		return editor.Press(editor.KeyHome), true
	case backend.KeyEnd:
		return editor.Press(editor.KeyEnd), true
	case backend.KeyPageUp:
		return editor.Press(editor.KeyPageUp), true
	case backend.KeyPageDown:
		return editor.Press(editor.KeyPageDown), true
	case backend.KeyCtrlF:
		return editor.Press(editor.KeyFind), true
	case backend.KeyCtrlS:
		return editor.Press(editor.KeySave), true
	case backend.KeyCtrlQ, backend.KeyCtrlC:
		return editor.Press(editor.KeyQuit), true
	default:
		// Ctrl-L and unbound keys only trigger a redraw.
		return editor.Event{}, false
	}
}
