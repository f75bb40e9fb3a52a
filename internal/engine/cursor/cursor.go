package cursor

import (
	"fmt"

	"github.com/dshills/kite/internal/engine/buffer"
)

// Cursor represents the insertion point in a buffer.
// Cursor is an immutable value type.
type Cursor struct {
	Row int
	Col int

	// RenderCol is Col converted to render coordinates.
	RenderCol int
}

// New creates a cursor at (row, col). Negative values are clamped to 0.
func New(row, col int) Cursor {
	return Cursor{Row: max(row, 0), Col: max(col, 0)}
}

// String returns a string representation of the cursor.
func (c Cursor) String() string {
	return fmt.Sprintf("Cursor(%d:%d rx=%d)", c.Row, c.Col, c.RenderCol)
}

// Equals returns true if both cursors are at the same buffer position.
func (c Cursor) Equals(other Cursor) bool {
	return c.Row == other.Row && c.Col == other.Col
}

// Clamp returns a cursor whose row exists in buf and whose column is at
// most the row length.
func (c Cursor) Clamp(buf *buffer.Buffer) Cursor {
	c.Row = min(max(c.Row, 0), buf.Len()-1)
	c.Col = min(max(c.Col, 0), buf.Row(c.Row).Len())
	return c
}

// WithRenderCol returns the cursor with RenderCol recomputed from Col.
func (c Cursor) WithRenderCol(buf *buffer.Buffer) Cursor {
	c = c.Clamp(buf)
	c.RenderCol = buf.Row(c.Row).CxToRx(c.Col, buf.TabStop())
	return c
}

// Left moves one column left, wrapping to the end of the previous row.
func (c Cursor) Left(buf *buffer.Buffer) Cursor {
	c = c.Clamp(buf)
	switch {
	case c.Col > 0:
		c.Col--
	case c.Row > 0:
		c.Row--
		c.Col = buf.Row(c.Row).Len()
	}
	return c
}

// Right moves one column right, wrapping to the start of the next row.
func (c Cursor) Right(buf *buffer.Buffer) Cursor {
	c = c.Clamp(buf)
	switch {
	case c.Col < buf.Row(c.Row).Len():
		c.Col++
	case c.Row < buf.Len()-1:
		c.Row++
		c.Col = 0
	}
	return c
}

// Up moves one row up, snapping the column to the new row length.
func (c Cursor) Up(buf *buffer.Buffer) Cursor {
	c.Row--
	return c.Clamp(buf)
}

// Down moves one row down, snapping the column to the new row length.
func (c Cursor) Down(buf *buffer.Buffer) Cursor {
	c.Row++
	return c.Clamp(buf)
}

// Home moves to the start of the row.
func (c Cursor) Home() Cursor {
	c.Col = 0
	return c
}

// End moves past the last character of the row.
func (c Cursor) End(buf *buffer.Buffer) Cursor {
	c = c.Clamp(buf)
	c.Col = buf.Row(c.Row).Len()
	return c
}

// PageUp moves up by n rows.
func (c Cursor) PageUp(buf *buffer.Buffer, n int) Cursor {
	c.Row -= max(n, 1)
	return c.Clamp(buf)
}

// PageDown moves down by n rows.
func (c Cursor) PageDown(buf *buffer.Buffer, n int) Cursor {
	c.Row += max(n, 1)
	return c.Clamp(buf)
}
