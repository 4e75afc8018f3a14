package router

import (
	"net/http"

	"github.com/deppfellow/user-api/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerUserRoutes maps the user resource endpoints.
//
// Only create and fetch-by-id exist; there is no update, delete, or
// list.
func registerUserRoutes(e *echo.Echo, h *handler.Handlers) {
	g := e.Group("/users")

	g.POST("", handler.Handle(h.Users.Handler, h.Users.Create, http.StatusCreated,
		func() *handler.CreateUserRequest { return &handler.CreateUserRequest{} }))

	g.GET("/:id", handler.Handle(h.Users.Handler, h.Users.Get, http.StatusOK,
		func() *handler.GetUserRequest { return &handler.GetUserRequest{} }))
}
