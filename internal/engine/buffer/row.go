package buffer

import (
	"github.com/dshills/kite/internal/renderer/highlight"
)

// Row is one line of the buffer.
type Row struct {
	chars  []rune
	render []rune
	hl     []highlight.Class
	stale  bool
}

// NewRow creates a row holding a copy of chars. The row is stale until
// Update is called.
func NewRow(chars []rune) *Row {
	r := &Row{}
	r.SetChars(chars)
	return r
}

// SetChars replaces the row's characters. render and highlight are left
// untouched until the next Update.
func (r *Row) SetChars(chars []rune) {
	r.chars = append(make([]rune, 0, len(chars)), chars...)
	r.stale = true
}

// Chars returns the row's characters. The slice must not be modified.
func (r *Row) Chars() []rune {
	return r.chars
}

// Len returns the number of characters in the row.
func (r *Row) Len() int {
	return len(r.chars)
}

// String returns the row's characters as a string.
func (r *Row) String() string {
	return string(r.chars)
}

// Render returns the tab-expanded form computed by the last Update.
func (r *Row) Render() []rune {
	return r.render
}

// Highlight returns the classes for each rendered character.
func (r *Row) Highlight() []highlight.Class {
	return r.hl
}

// Stale reports whether chars changed since the last Update.
func (r *Row) Stale() bool {
	return r.stale
}

// RenderTabs expands each tab in chars to spaces up to the next multiple
// of tabStop. It does not modify the row.
func (r *Row) RenderTabs(tabStop int) []rune {
	tabStop = max(tabStop, 1)
	out := make([]rune, 0, len(r.chars))
	for _, ch := range r.chars {
		if ch != '\t' {
			out = append(out, ch)
			continue
		}
		n := tabStop - len(out)%tabStop
		for range n {
			out = append(out, ' ')
		}
	}
	return out
}

// Update recomputes render and resets highlight to Normal with the same
// length.
func (r *Row) Update(tabStop int) {
	r.render = r.RenderTabs(tabStop)
	r.hl = make([]highlight.Class, len(r.render))
	r.stale = false
}

// SetHighlight stores hl, truncated or padded with Normal to match the
// rendered length.
func (r *Row) SetHighlight(hl []highlight.Class) {
	out := make([]highlight.Class, len(r.render))
	copy(out, hl)
	r.hl = out
}

// MarkHighlight sets n classes starting at render column start, clamped
// to the row.
func (r *Row) MarkHighlight(start, n int, class highlight.Class) {
	start = max(start, 0)
	end := min(start+n, len(r.hl))
	for i := start; i < end; i++ {
		r.hl[i] = class
	}
}

// CxToRx converts a buffer column to a render column. Columns past the
// end of the row saturate at the row length.
func (r *Row) CxToRx(cx, tabStop int) int {
	tabStop = max(tabStop, 1)
	cx = min(max(cx, 0), len(r.chars))
	rx := 0
	for _, ch := range r.chars[:cx] {
		if ch == '\t' {
			rx += tabStop - rx%tabStop
		} else {
			rx++
		}
	}
	return rx
}

// RxToCx converts a render column to the first buffer column whose
// expansion covers it. Render columns past the end return Len.
func (r *Row) RxToCx(rx, tabStop int) int {
	tabStop = max(tabStop, 1)
	cur := 0
	for cx, ch := range r.chars {
		if ch == '\t' {
			cur += tabStop - cur%tabStop
		} else {
			cur++
		}
		if cur > rx {
			return cx
		}
	}
	return len(r.chars)
}
