package watcher

import (
	"path/filepath"
	"sync"
	"time"
)

// Handler receives a debounced change to the watched file.
type Handler func(event Event)

// ErrorHandler receives errors reported by the underlying watcher.
type ErrorHandler func(err error)

// FileWatcher reports changes to a single file. Handlers run on the
// watcher's goroutine and must not touch editor state directly.
type FileWatcher struct {
	path string
	src  Source

	onEvent Handler
	onError ErrorHandler

	closeOnce sync.Once
	done      chan struct{}
}

// FileOption configures a FileWatcher.
type FileOption func(*FileWatcher)

// OnError sets the handler for watcher errors.
func OnError(h ErrorHandler) FileOption {
	return func(fw *FileWatcher) {
		fw.onError = h
	}
}

// WatchFile starts watching path and calls onEvent for each debounced
// change. The file itself need not exist yet, but its directory must.
func WatchFile(path string, debounce time.Duration, onEvent Handler, opts ...FileOption) (*FileWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	src, err := newDirSource(abs)
	if err != nil {
		return nil, err
	}

	return newFileWatcher(abs, newDebouncer(src, debounce), onEvent, opts...), nil
}

func newFileWatcher(path string, src Source, onEvent Handler, opts ...FileOption) *FileWatcher {
	fw := &FileWatcher{
		path:    path,
		src:     src,
		onEvent: onEvent,
		done:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(fw)
	}

	go fw.run()
	return fw
}

// Path returns the absolute path being watched.
func (fw *FileWatcher) Path() string {
	return fw.path
}

func (fw *FileWatcher) run() {
	defer close(fw.done)

	events, errs := fw.src.Events(), fw.src.Errors()
	for events != nil || errs != nil {
		select {
		case ev, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			if fw.onEvent != nil {
				fw.onEvent(ev)
			}
		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			if fw.onError != nil {
				fw.onError(err)
			}
		}
	}
}

// Close stops watching and waits for the handler goroutine to exit.
func (fw *FileWatcher) Close() error {
	var err error
	fw.closeOnce.Do(func() {
		err = fw.src.Close()
		<-fw.done
	})
	return err
}
