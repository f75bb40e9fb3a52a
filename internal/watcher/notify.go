package watcher

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// dirSource reports fsnotify events for one file by watching its
// directory.
type dirSource struct {
	fsw    *fsnotify.Watcher
	target string

	events chan Event
	errors chan error

	done chan struct{}
	once sync.Once
}

func newDirSource(target string) (*dirSource, error) {
	dir := filepath.Dir(target)
	if fi, err := os.Stat(dir); err != nil || !fi.IsDir() {
		return nil, ErrNoDirectory
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, err
	}

	s := &dirSource{
		fsw:    fsw,
		target: target,
		events: make(chan Event),
		errors: make(chan error),
		done:   make(chan struct{}),
	}
	go s.run()
	return s, nil
}

func (s *dirSource) Events() <-chan Event { return s.events }
func (s *dirSource) Errors() <-chan error { return s.errors }

func (s *dirSource) run() {
	defer close(s.errors)
	defer close(s.events)

	for {
		select {
		case <-s.done:
			return

		case fe, ok := <-s.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(fe.Name) != s.target {
				continue
			}
			op := convertOp(fe.Op)
			if op == 0 {
				continue
			}
			select {
			case s.events <- Event{Path: s.target, Op: op, Time: time.Now()}:
			case <-s.done:
				return
			}

		case err, ok := <-s.fsw.Errors:
			if !ok {
				return
			}
			select {
			case s.errors <- err:
			case <-s.done:
				return
			}
		}
	}
}

// Close stops the fsnotify watcher. It is safe to call more than once.
func (s *dirSource) Close() error {
	var err error
	s.once.Do(func() {
		close(s.done)
		err = s.fsw.Close()
	})
	return err
}

func convertOp(fop fsnotify.Op) Op {
	var op Op
	if fop.Has(fsnotify.Create) {
		op |= OpCreate
	}
	if fop.Has(fsnotify.Write) {
		op |= OpWrite
	}
	if fop.Has(fsnotify.Remove) {
		op |= OpRemove
	}
	if fop.Has(fsnotify.Rename) {
		op |= OpRename
	}
	if fop.Has(fsnotify.Chmod) {
		op |= OpChmod
	}
	return op
}

var _ Source = (*dirSource)(nil)
