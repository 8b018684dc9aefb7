// Package apperr defines the error taxonomy shared by the service
// layer and the HTTP handlers. Handlers map kinds to status codes
// instead of inspecting error strings.
package apperr

import "errors"

// Kind classifies a service-layer failure.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindConflict
	KindNotFound
	KindUnauthorized
)

// Error carries a kind alongside a caller-facing message.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Validation reports a missing or out-of-range field.
func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

// Conflict reports a uniqueness violation.
func Conflict(msg string) *Error {
	return &Error{Kind: KindConflict, Message: msg}
}

// NotFound reports a missing entity or missing related entity.
func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

// Unauthorized reports a rejected credential.
func Unauthorized(msg string) *Error {
	return &Error{Kind: KindUnauthorized, Message: msg}
}

// KindOf extracts the kind from err, defaulting to KindInternal for
// errors that did not originate in the service layer.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}
