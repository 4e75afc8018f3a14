// Package config manages environment variables.
//
// It reads variables from the process environment (optionally seeded
// from a `.env` file), loads them into structured Go types, applies
// local-development defaults, and validates the result so the
// application fails fast on bad config.
//
// Responsibilities:
//   - Load environment variables (optionally from a `.env` file).
//   - Map env vars into a structured Go config (structs).
//   - Provide sane local-development defaults for every value.
//   - Validate the assembled config before the app starts.
package config

import (
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: if a `.env` file exists it is loaded into the
	// process environment before any env var is read.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"
)

// envPrefix scopes which environment variables this service reads.
// USERAPI_SERVER_PORT -> server.port -> Config.Server.Port.
const envPrefix = "USERAPI_"

// Config is the root configuration object for the application.
//
// The `koanf:"..."` tags map env-derived keys onto fields; koanf keys are
// single words so the underscore-to-dot env mapping stays unambiguous.
// The `validate:"required"` tags enforce presence after defaults are
// applied, so a field can only be missing if someone overrides a default
// with an empty value.
type Config struct {
	Primary  Primary        `koanf:"primary" validate:"required"`
	Server   ServerConfig   `koanf:"server" validate:"required"`
	Database DatabaseConfig `koanf:"database" validate:"required"`
	Logging  LoggingConfig  `koanf:"logging" validate:"required"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are stored as whole seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"readtimeout" validate:"required"`
	WriteTimeout       int      `koanf:"writetimeout" validate:"required"`
	IdleTimeout        int      `koanf:"idletimeout" validate:"required"`
	CORSAllowedOrigins []string `koanf:"corsorigins" validate:"required"`
}

// DatabaseConfig contains PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string `koanf:"host" validate:"required"`
	Port     int    `koanf:"port" validate:"required"`
	User     string `koanf:"user" validate:"required"`
	Password string `koanf:"password" validate:"required"`
	Name     string `koanf:"name" validate:"required"`
	SSLMode  string `koanf:"sslmode" validate:"required"`
}

// LoggingConfig controls structured logger behavior.
type LoggingConfig struct {
	// Level is the verbosity threshold (debug/info/warn/error).
	Level string `koanf:"level" validate:"required,oneof=debug info warn error"`

	// Format selects the output format ("json" or "console").
	Format string `koanf:"format" validate:"required,oneof=json console"`
}

// defaultConfig returns the documented local-development configuration.
// Every value can be overridden through the environment.
func defaultConfig() *Config {
	return &Config{
		Primary: Primary{
			Env: "local",
		},
		Server: ServerConfig{
			Port:               "8080",
			ReadTimeout:        10,
			WriteTimeout:       10,
			IdleTimeout:        60,
			CORSAllowedOrigins: []string{"*"},
		},
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "postgres",
			Password: "postgres",
			Name:     "userapi",
			SSLMode:  "disable",
		},
		Logging: LoggingConfig{
			Level:  "debug",
			Format: "console",
		},
	}
}

// Load assembles the application configuration.
//
// Flow:
//   - Start from local-development defaults.
//   - Load USERAPI_-prefixed env vars, mapping FOO_BAR to foo.bar.
//   - Unmarshal env values over the defaults.
//   - Validate the result.
//
// Errors here are unrecoverable, so Load logs fatally and exits rather
// than returning half-built config.
func Load() *Config {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	k := koanf.New(".")

	// Env var names become koanf keys: trim prefix, lowercase, and map
	// underscores to the "." delimiter. USERAPI_DATABASE_SSLMODE ends up
	// as database.sslmode.
	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "_", ".")
	}), nil)
	if err != nil {
		logger.Fatal().Err(err).Msg("could not load env variables")
	}

	// Unmarshal over the prefilled defaults; keys absent from the
	// environment leave the default value in place.
	cfg := defaultConfig()
	if err := k.Unmarshal("", cfg); err != nil {
		logger.Fatal().Err(err).Msg("could not unmarshal config")
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		logger.Fatal().Err(err).Msg("config validation failed")
	}

	return cfg
}
