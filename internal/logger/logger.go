// Package logger configures the application's structured logging.
//
// It uses zerolog everywhere: a console writer for local development,
// JSON for everything else, plus a specialized logger for pgx query
// tracing so SQL output is distinguishable from application logs.
package logger

import (
	"os"
	"strings"
	"time"

	"github.com/deppfellow/user-api/internal/config"
	"github.com/rs/zerolog"
)

// New builds the application's main logger from config.
//
// Format "console" produces human-friendly output on stderr; "json"
// produces one JSON object per line, which is what log pipelines expect.
// Unknown level strings degrade to info rather than failing startup.
func New(cfg *config.Config) *zerolog.Logger {
	level := ParseLevel(cfg.Logging.Level)

	var logger zerolog.Logger
	if cfg.Logging.Format == "console" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	} else {
		logger = zerolog.New(os.Stderr)
	}

	logger = logger.Level(level).With().
		Timestamp().
		Str("service", "user-api").
		Str("env", cfg.Primary.Env).
		Logger()

	return &logger
}

// ParseLevel maps a config level string onto a zerolog level.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// NewPgxLogger creates the logger handed to the pgx tracelog adapter.
//
// It writes console output tagged with a component field so query logs
// are easy to filter out. Only used in the local environment, where SQL
// logging is enabled.
func NewPgxLogger(level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(level).With().
		Timestamp().
		Str("component", "pgx").
		Logger()
}

// Levels used by pgx tracelog; mirrors tracelog.LogLevel* values without
// importing the pgx package here.
const (
	pgxTraceLogLevelError = 2
	pgxTraceLogLevelWarn  = 3
	pgxTraceLogLevelInfo  = 4
	pgxTraceLogLevelDebug = 5
)

// GetPgxTraceLogLevel converts the application log level into the pgx
// tracelog level so query logging follows the global verbosity.
func GetPgxTraceLogLevel(level zerolog.Level) int {
	switch level {
	case zerolog.DebugLevel, zerolog.TraceLevel:
		return pgxTraceLogLevelDebug
	case zerolog.InfoLevel:
		return pgxTraceLogLevelInfo
	case zerolog.WarnLevel:
		return pgxTraceLogLevelWarn
	default:
		return pgxTraceLogLevelError
	}
}
