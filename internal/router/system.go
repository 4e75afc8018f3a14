package router

import (
	"github.com/deppfellow/user-api/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers endpoints that are not part of business
// logic.
func registerSystemRoutes(e *echo.Echo, h *handler.Handlers) {
	// Health status endpoint (used by Kubernetes/monitors).
	e.GET("/status", h.Health.CheckHealth)
}
