package editor

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/dshills/kite/internal/renderer/highlight"
)

// Line is one screen row of the text area.
type Line struct {
	// Text is the visible slice of the row's rendered text.
	Text []rune
	// Highlight classifies each rune of Text.
	Highlight []highlight.Class
	// Filler marks rows past the end of the buffer.
	Filler bool
}

// Frame is everything the drawer needs to paint one screen.
type Frame struct {
	Width  int
	Height int

	// Lines has exactly Height entries.
	Lines []Line

	// CursorX and CursorY are relative to the top-left of the text area.
	CursorX int
	CursorY int

	// Status is the status bar text, exactly Width cells wide.
	Status string
	// Message is the message bar text, at most Width cells wide.
	Message string
}

// Frame returns the current screen contents.
func (s *Session) Frame() Frame {
	w, h := s.view.Width(), s.view.Height()
	f := Frame{
		Width:  w,
		Height: h,
		Lines:  make([]Line, h),
	}

	top, left := s.view.TopRow(), s.view.LeftColumn()
	_, last := s.view.VisibleRowRange(s.buf.Len())
	for y := range h {
		row := top + y
		if row >= last {
			f.Lines[y] = s.fillerLine(y, h, w)
			continue
		}
		r := s.buf.Row(row)
		render, hl := r.Render(), r.Highlight()
		start := min(left, len(render))
		end := min(left+w, len(render))
		f.Lines[y] = Line{
			Text:      render[start:end],
			Highlight: hl[start:end],
		}
	}

	f.CursorX, f.CursorY = s.view.ScreenPosition(s.cur.Row, s.cur.RenderCol)
	f.Status = s.statusBar(w)
	if msg, ok := s.StatusMessage(); ok {
		f.Message = runewidth.Truncate(msg, w, "")
	}
	return f
}

func (s *Session) fillerLine(y, h, w int) Line {
	if s.showWelcome() && y == h/3 {
		msg := runewidth.Truncate(fmt.Sprintf("Kite editor -- version %s", s.cfg.Version), w, "")
		pad := (w - runewidth.StringWidth(msg)) / 2
		text := msg
		if pad > 0 {
			text = "~" + strings.Repeat(" ", pad-1) + msg
		}
		return Line{Text: []rune(text), Highlight: make([]highlight.Class, len([]rune(text))), Filler: true}
	}
	return Line{Text: []rune{'~'}, Highlight: []highlight.Class{highlight.Normal}, Filler: true}
}

// showWelcome reports whether the buffer is an untouched unnamed file.
func (s *Session) showWelcome() bool {
	return s.cfg.ShowWelcome && s.filename == "" && !s.buf.Dirty() &&
		s.buf.Len() == 1 && s.buf.Row(0).Len() == 0
}

func (s *Session) statusBar(w int) string {
	name := s.filename
	if name == "" {
		name = "[No Name]"
	}
	left := fmt.Sprintf("%.20s - %d lines", name, s.buf.Len())
	if s.buf.Dirty() {
		left += " (modified)"
	}

	ft := "no ft"
	if g := s.hl.Grammar(); g != nil {
		ft = g.FileType
	}
	right := fmt.Sprintf("%s | %d/%d", ft, s.cur.Row+1, s.buf.Len())

	left = runewidth.Truncate(left, w, "")
	lw, rw := runewidth.StringWidth(left), runewidth.StringWidth(right)
	if lw+rw <= w {
		return left + strings.Repeat(" ", w-lw-rw) + right
	}
	return runewidth.FillRight(left, w)
}
