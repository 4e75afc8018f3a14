package handler

import (
	"github.com/deppfellow/user-api/internal/repository"
	"github.com/deppfellow/user-api/internal/server"
	"github.com/deppfellow/user-api/internal/service"
	"github.com/deppfellow/user-api/internal/validation"
	"github.com/labstack/echo/v4"
)

// CreateUserRequest is the payload for POST /users.
type CreateUserRequest struct {
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	BirthDate repository.Date `json:"birthDate"`
}

// Validate checks request shape. A malformed birthDate already fails at
// binding; an absent one surfaces here. Domain rules (empty name, email
// format, future date) belong to the service, which collects all
// violations instead of stopping at the first.
func (r *CreateUserRequest) Validate() error {
	if r.BirthDate.IsZero() {
		return validation.CustomValidationErrors{
			{Field: "birthDate", Message: "is required"},
		}
	}
	return nil
}

// GetUserRequest is the payload for GET /users/:id. The id comes from
// the path; a non-numeric segment fails at binding.
type GetUserRequest struct {
	ID int32 `param:"id"`
}

func (r *GetUserRequest) Validate() error {
	return nil
}

// UserHandler serves the user resource endpoints.
type UserHandler struct {
	Handler
	users *service.UserService
}

// NewUserHandler constructs a UserHandler.
func NewUserHandler(s *server.Server, users *service.UserService) *UserHandler {
	return &UserHandler{
		Handler: NewHandler(s),
		users:   users,
	}
}

// Create handles POST /users: delegates to the service and returns the
// created record (201 is set by the route registration).
func (h *UserHandler) Create(c echo.Context, req *CreateUserRequest) (*repository.User, error) {
	return h.users.CreateUser(c.Request().Context(), repository.NewUser{
		Name:      req.Name,
		Email:     req.Email,
		BirthDate: req.BirthDate,
	})
}

// Get handles GET /users/:id.
func (h *UserHandler) Get(c echo.Context, req *GetUserRequest) (*repository.User, error) {
	return h.users.GetUser(c.Request().Context(), req.ID)
}
