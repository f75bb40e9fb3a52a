// Package cursor provides the editing position within a buffer.
//
// A Cursor is an immutable value: every motion returns a new Cursor.
// Row and Col are authoritative and measured in buffer coordinates.
// RenderCol is derived from them and is refreshed by WithRenderCol after
// every motion or edit that changes Row or Col.
//
// Motions saturate at buffer bounds instead of failing. Left at the start
// of a row moves to the end of the previous row, and Right at the end of
// a row moves to the start of the next one.
package cursor
