package shortener

import "errors"

// Kind is a stable machine-readable error category. Every client-facing
// failure in this package carries one; the HTTP layer maps kinds to
// status codes without parsing messages.
type Kind string

const (
	KindInvalidRequest      Kind = "invalid_request"
	KindConflict            Kind = "conflict"
	KindNotFound            Kind = "not_found"
	KindExpired             Kind = "expired"
	KindLimitExceeded       Kind = "limit_exceeded"
	KindGenerationExhausted Kind = "code_generation_exhausted"
	KindInvalidCodeFormat   Kind = "invalid_code_format"
	KindConfiguration       Kind = "configuration_error"
)

// Error is a business-rule failure with a category and a human message.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// NewError builds an *Error with the given kind and message.
func NewError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// KindOf extracts the Kind from err, reporting false for errors that did
// not originate from this package (storage failures and the like).
func KindOf(err error) (Kind, bool) {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind, true
	}
	return "", false
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}
