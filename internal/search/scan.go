// Package search implements incremental, row-wise literal search over the
// rendered text of a buffer.
package search

import (
	"strings"
	"unicode/utf8"
)

// Direction is the order in which rows are visited.
type Direction uint8

const (
	Forward Direction = iota
	Backward
)

// String returns the direction name.
func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// State is the position of an incremental search between keystrokes.
type State struct {
	// LastMatch is the row of the previous match, or -1 for none.
	LastMatch int
	Direction Direction
}

// NewState returns a state with no previous match, searching forward.
func NewState() State {
	return State{LastMatch: -1, Direction: Forward}
}

// Reset clears the previous match and restores the forward direction.
func (s *State) Reset() {
	*s = NewState()
}

// Match is a query occurrence in render coordinates.
type Match struct {
	Row       int
	RenderCol int
	Len       int
}

// Document is the row text searched by Scan.
type Document interface {
	Len() int
	RenderAt(i int) []rune
}

// Scan steps from state.LastMatch one row at a time in state.Direction,
// wrapping at either end, and returns the first row whose rendered text
// contains query. Every row is visited at most once. With no previous
// match a forward scan starts at row 0 and a backward scan at the last row.
func Scan(doc Document, query string, state State) (Match, bool) {
	n := doc.Len()
	if query == "" || n == 0 {
		return Match{}, false
	}

	step := 1
	cur := state.LastMatch
	if state.Direction == Backward {
		step = -1
	}
	if cur < 0 || cur >= n {
		if step > 0 {
			cur = -1
		} else {
			cur = n
		}
	}

	qlen := utf8.RuneCountInString(query)
	for range n {
		cur += step
		switch {
		case cur < 0:
			cur = n - 1
		case cur >= n:
			cur = 0
		}
		if col := runeIndex(string(doc.RenderAt(cur)), query); col >= 0 {
			return Match{Row: cur, RenderCol: col, Len: qlen}, true
		}
	}
	return Match{}, false
}

// runeIndex returns the rune offset of the first occurrence of sub in s,
// or -1.
func runeIndex(s, sub string) int {
	i := strings.Index(s, sub)
	if i < 0 {
		return -1
	}
	return utf8.RuneCountInString(s[:i])
}
