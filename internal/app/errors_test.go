package app

import (
	"errors"
	"io/fs"
	"testing"
)

func TestOperationErrorFormat(t *testing.T) {
	denied := errors.New("permission denied")
	cases := map[string]struct {
		err  *OperationError
		want string
	}{
		"nil":     {nil, ""},
		"bare":    {&OperationError{Op: "watch"}, "watch"},
		"path":    {NewOperationError("watch", "main.c", nil), "watch main.c"},
		"wrapped": {NewOperationError("open log", "/var/log/kite.log", denied), "open log /var/log/kite.log: permission denied"},
	}
	for name, tc := range cases {
		if got := tc.err.Error(); got != tc.want {
			t.Errorf("%s: Error() = %q, want %q", name, got, tc.want)
		}
	}
}

func TestOperationErrorMatching(t *testing.T) {
	err := NewOperationError("watch", "main.c", fs.ErrNotExist)

	if !errors.Is(err, fs.ErrNotExist) {
		t.Error("should match the wrapped error")
	}
	if errors.Is(err, fs.ErrPermission) {
		t.Error("should not match an unrelated error")
	}
	var nilErr *OperationError
	if nilErr.Unwrap() != nil {
		t.Error("Unwrap on nil should be nil")
	}

	var target *OperationError
	if !errors.As(&InitError{Component: "watch", Err: err}, &target) || target.Path != "main.c" {
		t.Error("errors.As should reach through InitError")
	}
}

func TestInitError(t *testing.T) {
	inner := errors.New("no tty")
	err := &InitError{Component: "backend", Err: inner}

	if got := err.Error(); got != "init backend: no tty" {
		t.Errorf("Error() = %q", got)
	}
	if !errors.Is(err, ErrInitialization) {
		t.Error("should match ErrInitialization")
	}
	if !errors.Is(err, inner) {
		t.Error("should match the wrapped error")
	}
	if errors.Is(err, ErrNoBackend) {
		t.Error("should not match other sentinels")
	}
}

func TestErrorList(t *testing.T) {
	el := NewErrorList()
	if el.HasErrors() || el.AsError() != nil || el.Error() != "" {
		t.Fatal("new list should be empty")
	}

	closeErr := errors.New("close watcher")
	el.Add(nil)
	el.Add(closeErr)
	if el.Len() != 1 || el.Error() != "close watcher" {
		t.Fatalf("after one Add: len=%d msg=%q", el.Len(), el.Error())
	}

	el.Add(ErrNoBackend)
	if got := el.Error(); got != "2 errors, first: close watcher" {
		t.Errorf("Error() = %q", got)
	}
	err := el.AsError()
	if err == nil {
		t.Fatal("AsError should be non-nil")
	}
	if !errors.Is(err, closeErr) || !errors.Is(err, ErrNoBackend) {
		t.Error("errors.Is should see every collected error")
	}

	var nilList *ErrorList
	if nilList.Error() != "" {
		t.Error("nil list should format as empty")
	}
}

func TestSentinelsDistinct(t *testing.T) {
	sentinels := []error{ErrAlreadyRunning, ErrNoBackend, ErrInitialization}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Errorf("%v matches %v", a, b)
			}
		}
	}
}
