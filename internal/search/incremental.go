package search

import (
	"github.com/dshills/kite/internal/engine/buffer"
	"github.com/dshills/kite/internal/engine/cursor"
	"github.com/dshills/kite/internal/renderer/highlight"
	"github.com/dshills/kite/internal/renderer/viewport"
)

// Incremental drives a search prompt. The query is re-scanned after every
// keystroke and the cursor follows the current match.
//
// The zero value is inactive; call Start to open a prompt.
type Incremental struct {
	active bool
	query  []rune
	state  State

	match    Match
	hasMatch bool

	savedCursor cursor.Cursor
	savedScroll viewport.ScrollState
}

// Start opens a prompt, remembering c and scroll so Cancel can restore
// them.
func (s *Incremental) Start(c cursor.Cursor, scroll viewport.ScrollState) {
	*s = Incremental{
		active:      true,
		state:       NewState(),
		savedCursor: c,
		savedScroll: scroll,
	}
}

// Active reports whether a prompt is open.
func (s *Incremental) Active() bool {
	return s.active
}

// Query returns the text typed so far.
func (s *Incremental) Query() string {
	return string(s.query)
}

// State returns the scan state.
func (s *Incremental) State() State {
	return s.state
}

// Type appends r to the query and starts a fresh forward scan.
func (s *Incremental) Type(buf *buffer.Buffer, c cursor.Cursor, r rune) cursor.Cursor {
	s.query = append(s.query, r)
	s.state.Reset()
	return s.scan(buf, c)
}

// Backspace removes the last query rune and starts a fresh forward scan.
// An emptied query clears the match and leaves the cursor in place.
func (s *Incremental) Backspace(buf *buffer.Buffer, c cursor.Cursor) cursor.Cursor {
	if len(s.query) > 0 {
		s.query = s.query[:len(s.query)-1]
	}
	s.state.Reset()
	return s.scan(buf, c)
}

// Next moves to the following match, wrapping past the last row.
func (s *Incremental) Next(buf *buffer.Buffer, c cursor.Cursor) cursor.Cursor {
	return s.navigate(buf, c, Forward)
}

// Prev moves to the preceding match, wrapping past the first row.
func (s *Incremental) Prev(buf *buffer.Buffer, c cursor.Cursor) cursor.Cursor {
	return s.navigate(buf, c, Backward)
}

func (s *Incremental) navigate(buf *buffer.Buffer, c cursor.Cursor, dir Direction) cursor.Cursor {
	if len(s.query) == 0 {
		return c
	}
	s.state.Direction = dir
	return s.scan(buf, c)
}

func (s *Incremental) scan(buf *buffer.Buffer, c cursor.Cursor) cursor.Cursor {
	m, ok := Scan(buf, string(s.query), s.state)
	s.match, s.hasMatch = m, ok
	if !ok {
		return c
	}
	s.state.LastMatch = m.Row
	row := buf.Row(m.Row)
	return cursor.New(m.Row, row.RxToCx(m.RenderCol, buf.TabStop())).WithRenderCol(buf)
}

// Cancel closes the prompt and returns the position saved by Start.
func (s *Incremental) Cancel() (cursor.Cursor, viewport.ScrollState) {
	s.active = false
	s.hasMatch = false
	return s.savedCursor, s.savedScroll
}

// Accept closes the prompt. restore is true when the query is empty, in
// which case the caller should return to the saved position.
func (s *Incremental) Accept() (c cursor.Cursor, scroll viewport.ScrollState, restore bool) {
	s.active = false
	s.hasMatch = false
	return s.savedCursor, s.savedScroll, len(s.query) == 0
}

// Overlay marks the current match as highlight.Match. It must run after
// every highlighter pass, which resets the row's classes.
func (s *Incremental) Overlay(buf *buffer.Buffer) {
	if !s.active || !s.hasMatch || s.match.Row >= buf.Len() {
		return
	}
	buf.Row(s.match.Row).MarkHighlight(s.match.RenderCol, s.match.Len, highlight.Match)
}
