// Package common defines shared constants and error kinds used across
// gophaccount layers. Callers should use errors.Is against the sentinel
// values or KindOf to branch on the kind of a failure.
package common

import (
	"errors"
	"fmt"
)

// Kind classifies a failure so callers can branch without parsing messages.
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindUnauthenticated
	KindConflict
	KindInvalidArgument
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "NOT_FOUND"
	case KindUnauthenticated:
		return "UNAUTHENTICATED"
	case KindConflict:
		return "CONFLICT"
	case KindInvalidArgument:
		return "INVALID_ARGUMENT"
	default:
		return "INTERNAL"
	}
}

// Error is a human-readable failure tagged with a Kind.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

// NewError returns an Error of the given kind.
func NewError(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// WrapError returns an Error of the given kind that keeps err as its cause.
func WrapError(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error of the same kind, so
// errors.Is(err, ErrorNotFound) holds for every not-found failure.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

var (
	// Repository-level errors.
	ErrorNotFound = NewError(KindNotFound, "not found")
	ErrorConflict = NewError(KindConflict, "already exists")

	// Service-level errors.
	ErrorInternal        = NewError(KindInternal, "internal error")
	ErrorUnauthorized    = NewError(KindUnauthenticated, "unauthorized")
	ErrorInvalidArgument = NewError(KindInvalidArgument, "invalid argument")
)

// KindOf returns the kind of the first *Error in err's chain, or
// KindInternal when there is none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// MessageOf returns the message of the first *Error in err's chain without
// the messages of its causes.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Msg
	}
	return err.Error()
}
