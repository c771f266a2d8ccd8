// Package apperr defines the error type shared by pokerpal packages
package apperr

import (
	"errors"
	"fmt"
)

// Error is an application error with a user-facing message. Message may
// contain fmt verbs which are filled in by Fmt.
type Error struct {
	Cause     error
	base      *Error
	Message   string
	Retryable bool
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return e.Message
	}

	return e.Message + ": " + e.Cause.Error()
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is the sentinel this error was derived from.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return e.root() == t.root()
}

func (e *Error) root() *Error {
	if e.base != nil {
		return e.base
	}

	return e
}

// Fmt returns a copy of the error with its message formatted using args.
func (e *Error) Fmt(args ...any) *Error {
	return &Error{
		Message:   fmt.Sprintf(e.Message, args...),
		Cause:     e.Cause,
		Retryable: e.Retryable,
		base:      e.root(),
	}
}

// Wrap returns a copy of the error with err attached as its cause.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		Message:   e.Message,
		Cause:     err,
		Retryable: e.Retryable,
		base:      e.root(),
	}
}

// IsRetryable reports whether any application error in the chain of err is
// marked as retryable.
func IsRetryable(err error) bool {
	var ae *Error

	for err != nil {
		if !errors.As(err, &ae) {
			return false
		}

		if ae.Retryable {
			return true
		}

		err = ae.Cause
	}

	return false
}
