package apperror

import (
	"errors"
	"fmt"
)

// Kind classifies an error for the transport layer.
type Kind string

const (
	KindValidation          Kind = "VALIDATION_ERROR"
	KindStateConflict       Kind = "STATE_CONFLICT"
	KindPolicyViolation     Kind = "POLICY_VIOLATION"
	KindNotFound            Kind = "NOT_FOUND"
	KindAuthorization       Kind = "FORBIDDEN"
	KindPersistenceConflict Kind = "PERSISTENCE_CONFLICT"
	KindInternal            Kind = "INTERNAL_ERROR"
)

// Error is a classified domain error. Domain packages declare sentinels with
// New and attach numeric context with Wrapf; errors.Is keeps matching the sentinel.
type Error struct {
	Kind    Kind
	Code    string
	Message string
	Err     error
}

func New(kind Kind, code, message string) *Error {
	return &Error{Kind: kind, Code: code, Message: message}
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Wrapf returns a copy of sentinel carrying a formatted message.
func Wrapf(sentinel *Error, format string, args ...any) *Error {
	return &Error{
		Kind:    sentinel.Kind,
		Code:    sentinel.Code,
		Message: fmt.Sprintf(format, args...),
		Err:     sentinel,
	}
}

// KindOf returns the kind of the first *Error in err's chain, KindInternal otherwise.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// As extracts the first *Error in err's chain.
func As(err error) (*Error, bool) {
	var appErr *Error
	ok := errors.As(err, &appErr)
	return appErr, ok
}
