package handler_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/user-api/internal/config"
	"github.com/deppfellow/user-api/internal/handler"
	"github.com/deppfellow/user-api/internal/middleware"
	"github.com/deppfellow/user-api/internal/repository"
	"github.com/deppfellow/user-api/internal/router"
	"github.com/deppfellow/user-api/internal/server"
	"github.com/deppfellow/user-api/internal/service"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryStore is an in-memory service.UserStore backing the full HTTP
// pipeline in these tests.
type memoryStore struct {
	nextID int32
	users  map[int32]repository.User
}

func newMemoryStore() *memoryStore {
	return &memoryStore{nextID: 1, users: make(map[int32]repository.User)}
}

func (m *memoryStore) Insert(_ context.Context, user repository.NewUser) (*repository.User, error) {
	created := repository.User{
		ID:        m.nextID,
		Name:      user.Name,
		Email:     user.Email,
		BirthDate: user.BirthDate,
	}
	m.users[created.ID] = created
	m.nextID++
	return &created, nil
}

func (m *memoryStore) FindByID(_ context.Context, id int32) (*repository.User, error) {
	if user, ok := m.users[id]; ok {
		return &user, nil
	}
	return nil, nil
}

func (m *memoryStore) FindByEmail(_ context.Context, email string) (*repository.User, error) {
	for _, user := range m.users {
		if user.Email == email {
			return &user, nil
		}
	}
	return nil, nil
}

// errorBody mirrors the error envelope written by the global error
// handler.
type errorBody struct {
	Status  int      `json:"status"`
	Message string   `json:"message"`
	Cause   []string `json:"cause"`
}

// newTestAPI assembles the real router, middleware chain, and handler
// pipeline on top of an in-memory store.
func newTestAPI(t *testing.T) *httptest.Server {
	t.Helper()

	log := zerolog.Nop()
	cfg := &config.Config{
		Primary: config.Primary{Env: "test"},
		Server: config.ServerConfig{
			Port:               "0",
			CORSAllowedOrigins: []string{"*"},
		},
		Logging: config.LoggingConfig{Level: "error", Format: "json"},
	}
	srv := &server.Server{Config: cfg, Logger: &log}

	users := service.NewUserService(newMemoryStore(), &log)
	handlers := &handler.Handlers{
		Health: handler.NewHealthHandler(srv),
		Users:  handler.NewUserHandler(srv, users),
	}
	middlewares := middleware.NewMiddlewares(srv)

	ts := httptest.NewServer(router.New(middlewares, handlers))
	t.Cleanup(ts.Close)
	return ts
}

func postJSON(t *testing.T, ts *httptest.Server, path, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(ts.URL+path, echoMIMEJSON, strings.NewReader(body))
	require.NoError(t, err)
	return resp
}

const echoMIMEJSON = "application/json"

func decodeError(t *testing.T, resp *http.Response) errorBody {
	t.Helper()
	defer resp.Body.Close()
	var body errorBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestCreateUserEndpoint(t *testing.T) {
	t.Run("creates a user and echoes its fields", func(t *testing.T) {
		ts := newTestAPI(t)

		resp := postJSON(t, ts, "/users",
			`{"name":"Ana","email":"ana@x.com","birthDate":"1990-01-01"}`)
		defer resp.Body.Close()

		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var created repository.User
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
		assert.Positive(t, created.ID)
		assert.Equal(t, "Ana", created.Name)
		assert.Equal(t, "ana@x.com", created.Email)
		assert.Equal(t, "1990-01-01", created.BirthDate.String())
	})

	t.Run("multiple violations yield one cause per rule", func(t *testing.T) {
		ts := newTestAPI(t)

		resp := postJSON(t, ts, "/users",
			`{"name":"  ","email":"nope","birthDate":"2099-01-01"}`)

		body := decodeError(t, resp)
		assert.Equal(t, http.StatusBadRequest, body.Status)
		assert.Equal(t, "Validation error", body.Message)
		assert.Len(t, body.Cause, 3)
	})

	t.Run("malformed birthDate fails at binding", func(t *testing.T) {
		ts := newTestAPI(t)

		resp := postJSON(t, ts, "/users",
			`{"name":"Ana","email":"ana@x.com","birthDate":"01/01/1990"}`)

		body := decodeError(t, resp)
		assert.Equal(t, http.StatusBadRequest, body.Status)
		assert.Equal(t, "Validation error", body.Message)
	})

	t.Run("missing birthDate fails shape validation", func(t *testing.T) {
		ts := newTestAPI(t)

		resp := postJSON(t, ts, "/users", `{"name":"Ana","email":"ana@x.com"}`)

		body := decodeError(t, resp)
		assert.Equal(t, http.StatusBadRequest, body.Status)
		assert.Equal(t, []string{"birthDate is required"}, body.Cause)
	})
}

func TestGetUserEndpoint(t *testing.T) {
	t.Run("non-numeric id is invalid input", func(t *testing.T) {
		ts := newTestAPI(t)

		resp, err := http.Get(ts.URL + "/users/abc")
		require.NoError(t, err)

		body := decodeError(t, resp)
		assert.Equal(t, http.StatusBadRequest, body.Status)
		assert.Equal(t, "Validation error", body.Message)
	})

	t.Run("zero and negative ids are invalid, not absent", func(t *testing.T) {
		ts := newTestAPI(t)

		for _, id := range []string{"0", "-5"} {
			resp, err := http.Get(fmt.Sprintf("%s/users/%s", ts.URL, id))
			require.NoError(t, err)

			body := decodeError(t, resp)
			assert.Equal(t, http.StatusBadRequest, body.Status)
			assert.Equal(t, "Validation error", body.Message)
		}
	})

	t.Run("unknown route maps into the taxonomy", func(t *testing.T) {
		ts := newTestAPI(t)

		resp, err := http.Get(ts.URL + "/nope")
		require.NoError(t, err)

		body := decodeError(t, resp)
		assert.Equal(t, http.StatusNotFound, body.Status)
		assert.Equal(t, "Resource not found", body.Message)
		assert.Equal(t, []string{"route not found"}, body.Cause)
	})
}

// TestUserLifecycleScenario walks the canonical four-step flow:
// create -> duplicate create -> fetch -> fetch missing.
func TestUserLifecycleScenario(t *testing.T) {
	ts := newTestAPI(t)

	// 1. Create succeeds with a fresh id.
	resp := postJSON(t, ts, "/users",
		`{"name":"Ana","email":"ana@x.com","birthDate":"1990-01-01"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created repository.User
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	resp.Body.Close()
	require.Positive(t, created.ID)

	// 2. Same email again is a business rule violation.
	resp = postJSON(t, ts, "/users",
		`{"name":"Ana Clone","email":"ana@x.com","birthDate":"1991-02-02"}`)
	body := decodeError(t, resp)
	assert.Equal(t, http.StatusConflict, body.Status)
	assert.Equal(t, "Business rule violated", body.Message)
	assert.Equal(t, []string{"email is already in use"}, body.Cause)

	// 3. Fetching the first id round-trips every field.
	resp, err := http.Get(fmt.Sprintf("%s/users/%d", ts.URL, created.ID))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var fetched repository.User
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&fetched))
	resp.Body.Close()
	assert.Equal(t, created, fetched)

	// 4. A non-existent id is absent, not invalid.
	resp, err = http.Get(ts.URL + "/users/999999")
	require.NoError(t, err)
	body = decodeError(t, resp)
	assert.Equal(t, http.StatusNotFound, body.Status)
	assert.Equal(t, "Resource not found", body.Message)
	assert.Equal(t, []string{"user not found"}, body.Cause)
}

// TestPreflight verifies the CORS layer answers OPTIONS preflight
// requests without touching business logic.
func TestPreflight(t *testing.T) {
	ts := newTestAPI(t)

	req, err := http.NewRequest(http.MethodOptions, ts.URL+"/users", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("Access-Control-Allow-Origin"))
}
