package buffer

import (
	"slices"
	"strings"

	"github.com/dshills/kite/internal/renderer/highlight"
)

// Buffer is the ordered list of rows of the open file.
type Buffer struct {
	rows    []*Row
	tabStop int
	dirty   bool
}

// New creates a buffer containing a single empty row.
func New(opts ...Option) *Buffer {
	return NewFromLines(nil, opts...)
}

// NewFromLines creates a buffer with one row per line. An empty slice
// yields one empty row. The buffer starts clean.
func NewFromLines(lines []string, opts ...Option) *Buffer {
	b := &Buffer{tabStop: DefaultTabStop}
	for _, opt := range opts {
		opt(b)
	}
	for _, l := range lines {
		b.rows = append(b.rows, NewRow([]rune(l)))
	}
	b.ensureRow()
	b.UpdateRender()
	return b
}

func (b *Buffer) ensureRow() {
	if len(b.rows) == 0 {
		b.rows = append(b.rows, NewRow(nil))
	}
}

// TabStop returns the tab stop used to render rows.
func (b *Buffer) TabStop() int {
	return b.tabStop
}

// Len returns the number of rows. It is always at least one.
func (b *Buffer) Len() int {
	return len(b.rows)
}

// Row returns row i.
func (b *Buffer) Row(i int) *Row {
	return b.rows[i]
}

// Dirty reports whether the buffer changed since it was loaded or saved.
func (b *Buffer) Dirty() bool {
	return b.dirty
}

// RenderAt returns the rendered text of row i.
func (b *Buffer) RenderAt(i int) []rune {
	return b.rows[i].render
}

// SetHighlight stores the highlight classes of row i.
func (b *Buffer) SetHighlight(i int, hl []highlight.Class) {
	b.rows[i].SetHighlight(hl)
}

// UpdateRender re-renders every stale row and returns how many were
// updated.
func (b *Buffer) UpdateRender() int {
	n := 0
	for _, r := range b.rows {
		if r.Stale() {
			r.Update(b.tabStop)
			n++
		}
	}
	return n
}

// InsertRow inserts a new row holding chars before index at. at may equal
// Len to append.
func (b *Buffer) InsertRow(at int, chars []rune) {
	at = min(max(at, 0), len(b.rows))
	b.rows = slices.Insert(b.rows, at, NewRow(chars))
	b.dirty = true
}

// DeleteRow removes row at. Removing the only row leaves one empty row.
func (b *Buffer) DeleteRow(at int) {
	if at < 0 || at >= len(b.rows) {
		return
	}
	b.rows = slices.Delete(b.rows, at, at+1)
	b.ensureRow()
	b.dirty = true
}

// InsertChar inserts ch into row at column col. A column at or past the
// end of the row appends.
func (b *Buffer) InsertChar(row, col int, ch rune) {
	r := b.rows[row]
	col = min(max(col, 0), len(r.chars))
	r.SetChars(slices.Insert(slices.Clone(r.chars), col, ch))
	b.dirty = true
}

// AppendToRow appends chars to the end of row.
func (b *Buffer) AppendToRow(row int, chars []rune) {
	r := b.rows[row]
	r.SetChars(append(slices.Clone(r.chars), chars...))
	b.dirty = true
}

// DeleteCharBefore removes the character before (row, col) and returns
// the resulting cursor position. At column 0 the row is joined onto the
// end of the previous one. At (0, 0) nothing changes.
func (b *Buffer) DeleteCharBefore(row, col int) (int, int) {
	if row == 0 && col == 0 {
		return 0, 0
	}
	r := b.rows[row]
	col = min(col, len(r.chars))
	if col > 0 {
		r.SetChars(slices.Delete(slices.Clone(r.chars), col-1, col))
		b.dirty = true
		return row, col - 1
	}
	prev := b.rows[row-1]
	joinAt := len(prev.chars)
	b.AppendToRow(row-1, r.chars)
	b.DeleteRow(row)
	return row - 1, joinAt
}

// SplitRow breaks row at col: the row keeps chars [0, col) and a new row
// with chars [col, len) is inserted after it.
func (b *Buffer) SplitRow(row, col int) {
	r := b.rows[row]
	col = min(max(col, 0), len(r.chars))
	right := slices.Clone(r.chars[col:])
	r.SetChars(r.chars[:col])
	b.InsertRow(row+1, right)
}

// Lines returns the characters of every row.
func (b *Buffer) Lines() []string {
	out := make([]string, len(b.rows))
	for i, r := range b.rows {
		out[i] = string(r.chars)
	}
	return out
}

// Text returns the rows joined with "\n".
func (b *Buffer) Text() string {
	return strings.Join(b.Lines(), "\n")
}
