package middleware

import (
	"net/http"

	"github.com/deppfellow/user-api/internal/errs"
	"github.com/deppfellow/user-api/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// GlobalMiddlewares groups the middleware applied to every route and the
// global error handler. The struct form gives each middleware access to
// shared app dependencies (config, logger) via *server.Server.
type GlobalMiddlewares struct {
	server *server.Server
}

// NewGlobalMiddlewares constructs the global middleware bundle.
func NewGlobalMiddlewares(s *server.Server) *GlobalMiddlewares {
	return &GlobalMiddlewares{
		server: s,
	}
}

// CORS returns Echo's CORS middleware configured from server config.
// It also answers browser preflight (OPTIONS) requests.
func (global *GlobalMiddlewares) CORS() echo.MiddlewareFunc {
	return middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: global.server.Config.Server.CORSAllowedOrigins,
	})
}

// RequestLogger returns Echo's request logger middleware with a custom
// LogValuesFunc producing one structured log line per request.
//
// When a handler returns an error, Echo has not written the final status
// yet (the global error handler does that later), so the status is
// derived from the error type to avoid logging 200 for failed requests.
// Reference: https://github.com/labstack/echo/issues/2310#issuecomment-1288196898
func (global *GlobalMiddlewares) RequestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:     true,
		LogStatus:  true,
		LogError:   true,
		LogLatency: true,
		LogHost:    true,
		LogMethod:  true,
		LogURIPath: true,

		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			statusCode := v.Status

			if v.Error != nil {
				var appErr *errs.Error
				var echoErr *echo.HTTPError

				if errors.As(v.Error, &appErr) {
					statusCode = appErr.Status
				} else if errors.As(v.Error, &echoErr) {
					statusCode = echoErr.Code
				}
			}

			logger := GetLogger(c)

			// Severity follows the status class: 5xx is our fault,
			// 4xx is the client's, everything else is routine.
			var e *zerolog.Event
			switch {
			case statusCode >= 500:
				e = logger.Error().Err(v.Error)
			case statusCode >= 400:
				e = logger.Warn()
			default:
				e = logger.Info()
			}

			if requestID := GetRequestID(c); requestID != "" {
				e = e.Str("request_id", requestID)
			}

			e.
				Dur("latency", v.Latency).
				Int("status", statusCode).
				Str("method", v.Method).
				Str("uri", v.URI).
				Str("host", v.Host).
				Str("ip", c.RealIP()).
				Str("user_agent", c.Request().UserAgent()).
				Msg("API")

			return nil
		},
	})
}

// Recover returns Echo's panic recovery middleware, so a panicking
// handler becomes a 500 response instead of a dead process.
func (global *GlobalMiddlewares) Recover() echo.MiddlewareFunc {
	return middleware.Recover()
}

// Secure returns Echo's secure headers middleware.
func (global *GlobalMiddlewares) Secure() echo.MiddlewareFunc {
	return middleware.Secure()
}

// GlobalErrorHandler is the final error funnel for the entire HTTP
// server. Every error ends up here and is translated into the
// application's error envelope.
//
// Mapping:
//   - *errs.Error passes through with its taxonomy-assigned status.
//   - Echo's route 404 becomes the taxonomy's NotFoundError.
//   - Other Echo errors keep their status with a generic message.
//   - Anything else is a 500 with no internal detail exposed.
func (global *GlobalMiddlewares) GlobalErrorHandler(err error, c echo.Context) {
	// Keep the original error for logging; the client may receive a
	// sanitized version.
	originalErr := err

	var appErr *errs.Error
	if !errors.As(err, &appErr) {
		var echoErr *echo.HTTPError
		if errors.As(err, &echoErr) && echoErr.Code == http.StatusNotFound {
			err = errs.NewNotFoundError("route not found")
		}
	}

	var echoErr *echo.HTTPError
	var response *errs.Error

	switch {
	case errors.As(err, &appErr):
		response = appErr

	case errors.As(err, &echoErr):
		cause := http.StatusText(echoErr.Code)
		if msg, ok := echoErr.Message.(string); ok {
			cause = msg
		}
		response = &errs.Error{
			Status:  echoErr.Code,
			Message: http.StatusText(echoErr.Code),
			Cause:   []string{cause},
		}

	default:
		// Absolute fallback: safe 500.
		response = errs.NewInternalError(err)
	}

	logger := GetLogger(c)

	var e *zerolog.Event
	if response.Status >= 500 {
		e = logger.Error().Stack().Err(originalErr)
	} else {
		e = logger.Warn()
	}
	e.
		Int("status", response.Status).
		Strs("cause", response.Cause).
		Msg(response.Message)

	// Only write if the handler has not already committed a response.
	if !c.Response().Committed {
		_ = c.JSON(response.Status, response)
	}
}
