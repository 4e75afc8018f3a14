package errs

import "strings"

// Kind identifies the error category. The set is closed: every error the
// service produces carries exactly one of these, and each kind has exactly
// one transport mapping.
type Kind string

const (
	KindValidation Kind = "validation"
	KindBusiness   Kind = "business"
	KindNotFound   Kind = "not_found"
	KindInternal   Kind = "internal"
)

// Error is the application error envelope.
//
// It implements the `error` interface via Error() and is designed to be
// serialized directly to JSON as the error response body:
//
//	{ "status": 400, "message": "Validation error", "cause": ["name must not be empty"] }
//
// Fields:
//   - Status: HTTP status code the error maps to.
//   - Message: short category message (fixed per kind).
//   - Cause: ordered list of human-readable cause strings.
//
// The underlying technical error, if any, is kept unexported so it is
// available to logs via Unwrap but never leaks into the response body.
type Error struct {
	Kind    Kind     `json:"-"`
	Status  int      `json:"status"`
	Message string   `json:"message"`
	Cause   []string `json:"cause"`

	// err is the wrapped technical cause (storage driver failure, I/O error).
	// Server-side diagnostics only.
	err error
}

// Error makes *Error satisfy the built-in `error` interface.
// It joins the category message with its causes so logs stay readable.
func (e *Error) Error() string {
	if len(e.Cause) == 0 {
		return e.Message
	}
	return e.Message + ": " + strings.Join(e.Cause, "; ")
}

// Unwrap exposes the underlying technical error to errors.Is/errors.As.
// It is nil for domain errors (validation, business, not found).
func (e *Error) Unwrap() error {
	return e.err
}

// Is reports whether target is also a *errs.Error.
//
// It matches on type only when target has no Kind, and on Kind otherwise,
// so both `errors.Is(err, &errs.Error{})` and kind-specific sentinels work.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == "" || t.Kind == e.Kind
}
