// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups, mapping
// specific paths to their corresponding handlers.
package router

import (
	"github.com/deppfellow/user-api/internal/handler"
	"github.com/deppfellow/user-api/internal/middleware"
	"github.com/labstack/echo/v4"
)

// New assembles the Echo engine: global error handler, middleware chain,
// and all route groups.
//
// Middleware order matters: the request ID must exist before the context
// enhancer builds the request-scoped logger, and the logger must exist
// before the request logger emits its line.
func New(mw *middleware.Middlewares, h *handler.Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.HTTPErrorHandler = mw.Global.GlobalErrorHandler

	e.Use(
		middleware.RequestID(),
		mw.ContextEnhancer.EnhanceContext(),
		mw.Global.RequestLogger(),
		mw.Global.CORS(),
		mw.Global.Secure(),
		mw.Global.Recover(),
	)

	registerUserRoutes(e, h)
	registerSystemRoutes(e, h)

	return e
}
