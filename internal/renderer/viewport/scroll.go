package viewport

// ScrollState is a copy of the viewport offsets.
type ScrollState struct {
	TopRow     int
	LeftColumn int
}

// GetScrollState returns the current scroll state.
func (v *Viewport) GetScrollState() ScrollState {
	return ScrollState{
		TopRow:     v.topRow,
		LeftColumn: v.leftColumn,
	}
}

// SetScrollState sets the scroll state directly.
func (v *Viewport) SetScrollState(state ScrollState) {
	v.topRow = max(state.TopRow, 0)
	v.leftColumn = max(state.LeftColumn, 0)
}

// Scroll adjusts the offsets so that (row, renderCol) lies inside the
// viewport. An offset only moves when the position is outside the
// window, and then by the minimum needed. Returns true if an offset
// changed.
func (v *Viewport) Scroll(row, renderCol int) bool {
	before := v.GetScrollState()

	if row < v.topRow {
		v.topRow = row
	}
	if row >= v.topRow+v.height {
		v.topRow = row - v.height + 1
	}
	if renderCol < v.leftColumn {
		v.leftColumn = renderCol
	}
	if renderCol >= v.leftColumn+v.width {
		v.leftColumn = renderCol - v.width + 1
	}

	v.topRow = max(v.topRow, 0)
	v.leftColumn = max(v.leftColumn, 0)
	return v.GetScrollState() != before
}
