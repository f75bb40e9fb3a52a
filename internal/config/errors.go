package config

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrSettingNotFound  = errors.New("setting not found")
	ErrTypeMismatch     = errors.New("type mismatch")
	ErrValidationFailed = errors.New("validation failed")
	ErrInvalidPath      = errors.New("invalid setting path")

	// ErrFileNotFound is returned when the file given to WithConfigFile is
	// missing. A missing user config file is not an error.
	ErrFileNotFound = errors.New("config file not found")
)

// Reason classifies a ValidationError.
type Reason uint8

const (
	BadType Reason = iota
	OutOfRange
	NotAllowed
)

var reasonNames = [...]string{"bad_type", "out_of_range", "not_allowed"}

func (r Reason) String() string {
	if int(r) < len(reasonNames) {
		return reasonNames[r]
	}
	return fmt.Sprintf("reason(%d)", uint8(r))
}

// ValidationError is one setting that Validate rejected. It matches
// ErrValidationFailed.
type ValidationError struct {
	Path    string
	Message string
	Value   any
	Reason  Reason
}

func (e *ValidationError) Error() string {
	if e.Value == nil {
		return e.Path + ": " + e.Message
	}
	return fmt.Sprintf("%s: %s (got %v)", e.Path, e.Message, e.Value)
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidationFailed }

// ValidationErrors is every problem found in one Validate pass, in
// setting order.
type ValidationErrors []*ValidationError

func (errs ValidationErrors) Error() string {
	var b strings.Builder
	b.WriteString("invalid configuration: ")
	for i, e := range errs {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(e.Error())
	}
	return b.String()
}

func (errs ValidationErrors) Is(target error) bool { return target == ErrValidationFailed }

// TypeError is returned by the typed getters when a setting holds a value
// of the wrong kind. It matches ErrTypeMismatch.
type TypeError struct {
	Path     string
	Expected string
	Actual   string
}

func (e *TypeError) Error() string {
	return e.Path + ": want " + e.Expected + ", have " + e.Actual
}

func (e *TypeError) Is(target error) bool { return target == ErrTypeMismatch }
