package editor

import (
	"unicode"
)

const (
	quitWarning  = "WARNING!!! File has unsaved changes. Press Ctrl-Q %d more times to quit."
	searchPrompt = "Search: %s (Use ESC/Arrows/Enter)"
)

// Process applies one keystroke. It returns ErrQuit when the session
// should end; every other outcome is reported through the status
// message.
func (s *Session) Process(ev Event) error {
	var err error
	if s.search.Active() {
		s.processPrompt(ev)
	} else {
		err = s.processKey(ev)
	}
	s.refresh()
	return err
}

func (s *Session) processKey(ev Event) error {
	if ev.Key == KeyQuit {
		if s.buf.Dirty() && s.quitLeft > 0 {
			s.SetStatus(quitWarning, s.quitLeft)
			s.quitLeft--
			return nil
		}
		return ErrQuit
	}
	s.quitLeft = s.cfg.QuitTimes

	switch ev.Key {
	case KeyRune:
		if ev.Rune == '\t' || unicode.IsPrint(ev.Rune) {
			s.insertChar(ev.Rune)
		}
	case KeyTab:
		s.insertChar('\t')
	case KeyEnter:
		s.insertNewline()
	case KeyBackspace:
		s.deleteChar()
	case KeyDelete:
		next := s.cur.Right(s.buf)
		if !next.Equals(s.cur) {
			s.cur = next
			s.deleteChar()
		}
	case KeySave:
		s.save()
	case KeyFind:
		s.search.Start(s.cur, s.view.GetScrollState())
		s.SetStatus(searchPrompt, "")
	default:
		s.move(ev.Key)
	}
	return nil
}

func (s *Session) move(k Key) {
	switch k {
	case KeyLeft:
		s.cur = s.cur.Left(s.buf)
	case KeyRight:
		s.cur = s.cur.Right(s.buf)
	case KeyUp:
		s.cur = s.cur.Up(s.buf)
	case KeyDown:
		s.cur = s.cur.Down(s.buf)
	case KeyHome:
		s.cur = s.cur.Home()
	case KeyEnd:
		s.cur = s.cur.End(s.buf)
	case KeyPageUp:
		s.cur = s.cur.PageUp(s.buf, s.view.Height())
	case KeyPageDown:
		s.cur = s.cur.PageDown(s.buf, s.view.Height())
	}
}

func (s *Session) insertChar(r rune) {
	s.buf.InsertChar(s.cur.Row, s.cur.Col, r)
	s.cur.Col++
}

func (s *Session) insertNewline() {
	s.buf.SplitRow(s.cur.Row, s.cur.Col)
	s.cur.Row++
	s.cur.Col = 0
}

func (s *Session) deleteChar() {
	s.cur.Row, s.cur.Col = s.buf.DeleteCharBefore(s.cur.Row, s.cur.Col)
}

func (s *Session) save() {
	if s.filename == "" {
		s.SetStatus("No filename")
		return
	}
	n, err := s.buf.Save(s.filename)
	if err != nil {
		s.log.Error("save %s: %v", s.filename, err)
		s.SetStatus("Can't save! I/O error: %v", err)
		return
	}
	s.modTime = s.statModTime()
	s.log.Info("saved %s (%d bytes)", s.filename, n)
	s.SetStatus("%d bytes written to disk", n)
}

func (s *Session) processPrompt(ev Event) {
	switch ev.Key {
	case KeyEscape:
		c, scroll := s.search.Cancel()
		s.cur = c
		s.view.SetScrollState(scroll)
		s.SetStatus("")
		return
	case KeyEnter:
		c, scroll, restore := s.search.Accept()
		if restore {
			s.cur = c
			s.view.SetScrollState(scroll)
		}
		s.SetStatus("")
		return
	case KeyBackspace, KeyDelete:
		s.cur = s.search.Backspace(s.buf, s.cur)
	case KeyRight, KeyDown:
		s.cur = s.search.Next(s.buf, s.cur)
	case KeyLeft, KeyUp:
		s.cur = s.search.Prev(s.buf, s.cur)
	case KeyRune:
		if unicode.IsPrint(ev.Rune) {
			s.cur = s.search.Type(s.buf, s.cur, ev.Rune)
		}
	}
	s.SetStatus(searchPrompt, s.search.Query())
}
