// Package viewport provides viewport management for the renderer.
//
// A Viewport is the window of rows and render columns currently on
// screen. Offsets are measured in rows and render columns; the cursor's
// render column must be current before calling Scroll.
package viewport

// Viewport represents the visible portion of the buffer.
type Viewport struct {
	// Position in buffer (first visible row and render column)
	topRow     int
	leftColumn int

	// Size in screen cells
	width  int
	height int
}

// NewViewport creates a viewport with the given size.
// Width and height are clamped to a minimum of 1.
func NewViewport(width, height int) *Viewport {
	return &Viewport{
		width:  max(width, 1),
		height: max(height, 1),
	}
}

// Width returns the viewport width.
func (v *Viewport) Width() int {
	return v.width
}

// Height returns the viewport height.
func (v *Viewport) Height() int {
	return v.height
}

// TopRow returns the first visible row.
func (v *Viewport) TopRow() int {
	return v.topRow
}

// LeftColumn returns the first visible render column.
func (v *Viewport) LeftColumn() int {
	return v.leftColumn
}

// Resize changes the viewport dimensions. Offsets are kept; the next
// Scroll brings the cursor back into view.
func (v *Viewport) Resize(width, height int) {
	v.width = max(width, 1)
	v.height = max(height, 1)
}

// VisibleRowRange returns the half-open range [start, end) of rows on
// screen for a document of total rows.
func (v *Viewport) VisibleRowRange(total int) (start, end int) {
	start = min(v.topRow, total)
	end = min(v.topRow+v.height, total)
	return start, end
}

// ScreenPosition converts a buffer row and render column to screen
// coordinates relative to the viewport origin.
func (v *Viewport) ScreenPosition(row, renderCol int) (x, y int) {
	return renderCol - v.leftColumn, row - v.topRow
}
