package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a business error so handlers can map it to an HTTP status
// without knowing which service produced it.
type Kind int

const (
	KindUnknown Kind = iota
	// KindNotFound entity absent.
	KindNotFound
	// KindConflict duplicate or already-exists.
	KindConflict
	// KindInvalidState operation not permitted from the current status.
	KindInvalidState
	// KindValidation input constraint violated.
	KindValidation
	// KindPrecondition missing dependency, e.g. no bank account on file.
	KindPrecondition
)

type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	return e.Msg
}

func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// KindOf extracts the kind from an error chain; KindUnknown for plain errors.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnknown
}

// HTTPStatus maps an error chain to the response status handlers should use.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict, KindInvalidState:
		return http.StatusConflict
	case KindValidation:
		return http.StatusBadRequest
	case KindPrecondition:
		return http.StatusPreconditionFailed
	default:
		return http.StatusInternalServerError
	}
}

func NotFound(msg string) *Error     { return New(KindNotFound, msg) }
func Conflict(msg string) *Error     { return New(KindConflict, msg) }
func InvalidState(msg string) *Error { return New(KindInvalidState, msg) }
func Validation(msg string) *Error   { return New(KindValidation, msg) }
func Precondition(msg string) *Error { return New(KindPrecondition, msg) }
