package app

import (
	"errors"
	"fmt"
)

var (
	ErrAlreadyRunning = errors.New("application already running")
	ErrNoBackend      = errors.New("no backend set")

	// ErrInitialization is matched by every error New and Run return
	// while bringing a component up.
	ErrInitialization = errors.New("initialization failed")
)

// OperationError is a failed step on a file, such as opening the log or
// watching the edited file.
type OperationError struct {
	Op   string
	Path string
	Err  error
}

func NewOperationError(op, path string, err error) *OperationError {
	return &OperationError{Op: op, Path: path, Err: err}
}

func (e *OperationError) Error() string {
	if e == nil {
		return ""
	}
	msg := e.Op
	if e.Path != "" {
		msg += " " + e.Path
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *OperationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// InitError names the component that failed to start.
type InitError struct {
	Component string
	Err       error
}

func (e *InitError) Error() string { return "init " + e.Component + ": " + e.Err.Error() }

func (e *InitError) Unwrap() error { return e.Err }

func (e *InitError) Is(target error) bool { return target == ErrInitialization }

// ErrorList gathers the failures of a teardown so that one failing step
// does not skip the rest. It is not safe for concurrent use.
type ErrorList struct {
	errs []error
}

func NewErrorList() *ErrorList { return &ErrorList{} }

// Add records err unless it is nil.
func (l *ErrorList) Add(err error) {
	if err != nil {
		l.errs = append(l.errs, err)
	}
}

func (l *ErrorList) Len() int { return len(l.errs) }

func (l *ErrorList) HasErrors() bool { return l.Len() > 0 }

// Error reports a single error as itself and several as a count plus the
// first.
func (l *ErrorList) Error() string {
	switch {
	case l == nil || len(l.errs) == 0:
		return ""
	case len(l.errs) == 1:
		return l.errs[0].Error()
	}
	return fmt.Sprintf("%d errors, first: %v", len(l.errs), l.errs[0])
}

func (l *ErrorList) Unwrap() []error { return l.errs }

// AsError returns l, or nil when nothing was added.
func (l *ErrorList) AsError() error {
	if l.HasErrors() {
		return l
	}
	return nil
}
