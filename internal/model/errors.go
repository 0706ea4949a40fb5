package model

import (
	"errors"
	"fmt"
)

var (
	ErrValidation       = errors.New("validation failed")
	ErrInvalidUsername  = fmt.Errorf("invalid username: %w", ErrValidation)
	ErrInvalidPassword  = fmt.Errorf("invalid password: %w", ErrValidation)
	ErrDuplicate        = errors.New("already registered")
	ErrNotFound         = errors.New("not found")
	ErrOutOfRange       = errors.New("out of range")
	ErrAlreadyCompleted = errors.New("already completed")
	ErrCapacityExceeded = errors.New("capacity exceeded")
	ErrNotAuthenticated = errors.New("not logged in")
)

// Error attaches detail to one of the sentinel kinds above.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Msg == "" {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%s: %s", e.Kind.Error(), e.Msg)
}

func (e *Error) Unwrap() error { return e.Kind }

// Errorf returns an *Error of the given kind.
func Errorf(kind error, format string, args ...any) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}
