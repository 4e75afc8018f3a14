package errs

import "net/http"

// Category messages are fixed per kind; clients can rely on them.
const (
	validationMessage = "Validation error"
	businessMessage   = "Business rule violated"
	notFoundMessage   = "Resource not found"
	internalMessage   = "Internal error"

	// internalCause is the only cause string an internal error exposes to
	// clients. The real cause stays server-side.
	internalCause = "An unexpected error occurred"
)

// NewValidationError creates a 400 error carrying one message per violated
// rule, in the order the rules were evaluated.
func NewValidationError(causes ...string) *Error {
	return &Error{
		Kind:    KindValidation,
		Status:  http.StatusBadRequest,
		Message: validationMessage,
		Cause:   causes,
	}
}

// NewBusinessError creates a 409 error for valid input rejected by a domain
// rule (e.g. duplicate email).
func NewBusinessError(cause string) *Error {
	return &Error{
		Kind:    KindBusiness,
		Status:  http.StatusConflict,
		Message: businessMessage,
		Cause:   []string{cause},
	}
}

// NewNotFoundError creates a 404 error for a referenced resource that does
// not exist.
func NewNotFoundError(cause string) *Error {
	return &Error{
		Kind:    KindNotFound,
		Status:  http.StatusNotFound,
		Message: notFoundMessage,
		Cause:   []string{cause},
	}
}

// NewInternalError creates a 500 error wrapping a technical failure.
//
// The wrapped error is reachable through Unwrap for logging and
// classification, but the client body only ever carries a generic cause.
func NewInternalError(err error) *Error {
	return &Error{
		Kind:    KindInternal,
		Status:  http.StatusInternalServerError,
		Message: internalMessage,
		Cause:   []string{internalCause},
		err:     err,
	}
}
