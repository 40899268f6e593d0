// Package errs defines the failure kinds raised by the domain core.
package errs

import (
	"errors"
	"fmt"
)

// Kind classifies a domain failure.
type Kind string

const (
	KindUnknown         Kind = "UNKNOWN"
	KindInvalidArgument Kind = "INVALID_ARGUMENT"
	KindInvalidState    Kind = "INVALID_STATE"
	KindUnauthorized    Kind = "UNAUTHORIZED"
	KindNotFound        Kind = "NOT_FOUND"
)

// Codes refine a kind for callers that need to tell failures apart.
const (
	CodeAlreadyUsedEmail = "ALREADY_USED_EMAIL"
)

// Error is the domain error type.
type Error struct {
	Kind    Kind
	Code    string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Cause }

// Is matches on Kind, and on Code when the target carries one.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	return t.Code == "" || t.Code == e.Code
}

// Sentinels for errors.Is.
var (
	ErrInvalidArgument  = &Error{Kind: KindInvalidArgument, Message: "invalid argument"}
	ErrInvalidState     = &Error{Kind: KindInvalidState, Message: "invalid state"}
	ErrUnauthorized     = &Error{Kind: KindUnauthorized, Message: "unauthorized"}
	ErrNotFound         = &Error{Kind: KindNotFound, Message: "not found"}
	ErrAlreadyUsedEmail = &Error{Kind: KindInvalidArgument, Code: CodeAlreadyUsedEmail, Message: "email already used"}
)

func InvalidArgument(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidArgument, Message: fmt.Sprintf(format, args...)}
}

func InvalidState(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidState, Message: fmt.Sprintf(format, args...)}
}

func Unauthorized(format string, args ...any) *Error {
	return &Error{Kind: KindUnauthorized, Message: fmt.Sprintf(format, args...)}
}

// NotFound reports a missing entity as "<entity> with id <id> not found".
func NotFound(entity, id string) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf("%s with id %s not found", entity, id)}
}

// WithCode builds an error carrying a machine-readable code.
func WithCode(kind Kind, code, message string) *Error {
	return &Error{Kind: kind, Code: code, Message: message}
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
