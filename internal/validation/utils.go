package validation

import (
	"errors"

	"github.com/deppfellow/user-api/internal/errs"
	"github.com/labstack/echo/v4"
)

// Validatable is implemented by request payload types that know how to
// validate their own shape.
//
// Shape validation covers what binding alone cannot express (e.g. a
// required date field); domain rules live in the service layer, where
// violations are collected rather than short-circuited.
type Validatable interface {
	Validate() error
}

// CustomValidationError represents a single shape issue for a specific
// field.
type CustomValidationError struct {
	Field   string
	Message string
}

// CustomValidationErrors is a slice of shape errors that satisfies error.
type CustomValidationErrors []CustomValidationError

func (c CustomValidationErrors) Error() string {
	return "validation failed"
}

// BindAndValidate binds request data into payload and validates it.
//
// Flow:
//  1. c.Bind(payload) populates the struct from body and path params.
//  2. payload.Validate() applies shape rules.
//  3. Failures become a 400 ValidationError with one cause per issue.
//
// payload must be a pointer to a struct so Bind can mutate it.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := c.Bind(payload); err != nil {
		return errs.NewValidationError(bindFailureCause(err))
	}

	if err := payload.Validate(); err != nil {
		var custom CustomValidationErrors
		if errors.As(err, &custom) {
			causes := make([]string, 0, len(custom))
			for _, ce := range custom {
				causes = append(causes, ce.Field+" "+ce.Message)
			}
			return errs.NewValidationError(causes...)
		}
		return errs.NewValidationError(err.Error())
	}

	return nil
}

// bindFailureCause extracts a client-safe cause string from Echo's bind
// error. Echo wraps the underlying unmarshal/conversion error in an
// *echo.HTTPError; its Internal field carries the specific reason
// (e.g. a malformed date string).
func bindFailureCause(err error) string {
	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) && echoErr.Internal != nil {
		return "invalid request payload: " + echoErr.Internal.Error()
	}
	return "invalid request payload"
}
