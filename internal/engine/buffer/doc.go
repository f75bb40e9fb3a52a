// Package buffer holds the text of the open file as an ordered list of
// rows and implements the editing primitives the session applies to it.
//
// Each Row keeps three parallel representations:
//
//   - chars: the characters as typed, with no trailing line terminator
//   - render: chars with every tab expanded to the next tab stop
//   - highlight: one highlight.Class per rendered character
//
// render and highlight are derived. Mutations mark a row stale; callers
// run Buffer.UpdateRender and then a highlighter pass before reading
// them, so the drawer never observes a stale row.
//
// Basic usage:
//
//	buf := buffer.NewFromLines([]string{"int x = 1;"})
//	buf.InsertChar(0, 3, 'y')
//	buf.UpdateRender()
//	highlight.New(highlight.C).Apply(buf)
//
// Coordinates:
//
// Positions are (row, column) pairs. A buffer column counts characters in
// chars; a render column counts cells in render. Row.CxToRx and Row.RxToCx
// convert between the two.
//
// A Buffer always contains at least one row and is not safe for
// concurrent use: the session that owns it is its only reader and writer.
package buffer
