package errs

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaxonomyMapping(t *testing.T) {
	// The mapping is total and fixed: every kind has exactly one status
	// and category message.
	cases := []struct {
		name    string
		err     *Error
		kind    Kind
		status  int
		message string
	}{
		{"validation", NewValidationError("name must not be empty"), KindValidation, http.StatusBadRequest, "Validation error"},
		{"business", NewBusinessError("email is already in use"), KindBusiness, http.StatusConflict, "Business rule violated"},
		{"not found", NewNotFoundError("user not found"), KindNotFound, http.StatusNotFound, "Resource not found"},
		{"internal", NewInternalError(errors.New("boom")), KindInternal, http.StatusInternalServerError, "Internal error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.kind, tc.err.Kind)
			assert.Equal(t, tc.status, tc.err.Status)
			assert.Equal(t, tc.message, tc.err.Message)
		})
	}
}

func TestValidationErrorKeepsCauseOrder(t *testing.T) {
	err := NewValidationError("first", "second", "third")

	assert.Equal(t, []string{"first", "second", "third"}, err.Cause)
}

func TestInternalErrorHidesDetail(t *testing.T) {
	cause := errors.New("pq: connection reset by peer")
	err := NewInternalError(cause)

	// The driver detail is reachable for logs...
	assert.ErrorIs(t, err, cause)

	// ...but never serialized to the client.
	body, marshalErr := json.Marshal(err)
	require.NoError(t, marshalErr)
	assert.NotContains(t, string(body), "connection reset")
	assert.JSONEq(t,
		`{"status":500,"message":"Internal error","cause":["An unexpected error occurred"]}`,
		string(body))
}

func TestErrorString(t *testing.T) {
	err := NewValidationError("name must not be empty", "email is invalid: must contain '@'")

	assert.Equal(t,
		"Validation error: name must not be empty; email is invalid: must contain '@'",
		err.Error())
}

func TestIsMatchesByKind(t *testing.T) {
	err := NewNotFoundError("user not found")

	assert.ErrorIs(t, err, &Error{})
	assert.ErrorIs(t, err, &Error{Kind: KindNotFound})
	assert.NotErrorIs(t, err, &Error{Kind: KindBusiness})
}
