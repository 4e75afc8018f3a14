package validation

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/user-api/internal/errs"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testPayload struct {
	Name string `json:"name"`

	validateErr error
}

func (p *testPayload) Validate() error {
	return p.validateErr
}

func newJSONContext(t *testing.T, body string) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestBindAndValidate(t *testing.T) {
	t.Run("binds and passes a valid payload", func(t *testing.T) {
		c := newJSONContext(t, `{"name":"Ana"}`)
		payload := &testPayload{}

		require.NoError(t, BindAndValidate(c, payload))
		assert.Equal(t, "Ana", payload.Name)
	})

	t.Run("malformed JSON becomes a validation error", func(t *testing.T) {
		c := newJSONContext(t, `{"name":`)

		err := BindAndValidate(c, &testPayload{})

		var appErr *errs.Error
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, errs.KindValidation, appErr.Kind)
		assert.Equal(t, http.StatusBadRequest, appErr.Status)
	})

	t.Run("custom shape errors become ordered causes", func(t *testing.T) {
		c := newJSONContext(t, `{"name":"Ana"}`)
		payload := &testPayload{validateErr: CustomValidationErrors{
			{Field: "birthDate", Message: "is required"},
		}}

		err := BindAndValidate(c, payload)

		var appErr *errs.Error
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, errs.KindValidation, appErr.Kind)
		assert.Equal(t, []string{"birthDate is required"}, appErr.Cause)
	})
}
