package common

import "errors"

// ErrStorageUnavailable marks failures of the durable account store: a
// missing or corrupt medium on load, or an I/O error on save. Callers test
// for it with errors.Is.
var ErrStorageUnavailable = errors.New("account storage unavailable")

// ValidationError is a hard input failure: mismatched confirmation fields,
// a negative initial deposit, or malformed numeric input. It must interrupt
// the calling operation rather than be rendered as a business outcome.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}
