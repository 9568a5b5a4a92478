package errs

import (
	"errors"
	"fmt"
)

// Kind classifies an error for the transport boundary.
type Kind uint8

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindSignature
	KindUnauthorized
)

// Error is a classified error. Services return these; the HTTP layer maps
// the kind to a status code.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}

	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Validation reports a missing or malformed required field.
func Validation(format string, args ...any) error {
	return &Error{Kind: KindValidation, Msg: fmt.Sprintf(format, args...)}
}

// NotFound reports a missing entity.
func NotFound(format string, args ...any) error {
	return &Error{Kind: KindNotFound, Msg: fmt.Sprintf(format, args...)}
}

// Signature reports a failed webhook signature verification.
func Signature(err error) error {
	return &Error{Kind: KindSignature, Msg: "webhook signature verification failed", Err: err}
}

// Unauthorized reports a missing or non-admin identity.
func Unauthorized(msg string) error {
	return &Error{Kind: KindUnauthorized, Msg: msg}
}

// Internal wraps a database or provider failure.
func Internal(msg string, err error) error {
	return &Error{Kind: KindInternal, Msg: msg, Err: err}
}

// KindOf returns the kind of err, defaulting to KindInternal for
// unclassified errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}

	return KindInternal
}
