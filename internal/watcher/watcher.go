// Package watcher detects changes made to the open file by other programs.
//
// An fsnotify watcher observes the file's directory, since editors and
// tools commonly replace files by renaming over them. Events for other
// names in the directory are filtered out, rapid bursts are debounced
// into one event, and the result is handed to a callback that runs on
// the watcher goroutine.
package watcher

import (
	"errors"
	"strings"
	"time"
)

// DefaultDebounce is used when a non-positive debounce delay is given.
const DefaultDebounce = 100 * time.Millisecond

// ErrNoDirectory is returned when the watched file's directory is missing.
var ErrNoDirectory = errors.New("directory does not exist")

// Op is a set of file system operations.
type Op uint8

const (
	OpCreate Op = 1 << iota
	OpWrite
	OpRemove
	OpRename
	OpChmod
)

var opNames = []struct {
	op   Op
	name string
}{
	{OpCreate, "CREATE"},
	{OpWrite, "WRITE"},
	{OpRemove, "REMOVE"},
	{OpRename, "RENAME"},
	{OpChmod, "CHMOD"},
}

// String joins the names of the operations in op, e.g. "WRITE|CHMOD".
func (op Op) String() string {
	var parts []string
	for _, n := range opNames {
		if op.Has(n.op) {
			parts = append(parts, n.name)
		}
	}
	if len(parts) == 0 {
		return "NONE"
	}
	return strings.Join(parts, "|")
}

// Has reports whether op includes all of o.
func (op Op) Has(o Op) bool {
	return op&o == o
}

// Event is a change to the watched file.
type Event struct {
	// Path is the absolute path of the file.
	Path string
	// Op holds every operation seen since the last delivered event.
	Op Op
	// Time is when the most recent operation was observed.
	Time time.Time
}

// Source produces file events. Both channels are closed after Close.
type Source interface {
	Events() <-chan Event
	Errors() <-chan error
	Close() error
}
