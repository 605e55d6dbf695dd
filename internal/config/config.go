// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// hair salon server. It is populated by merging defaults, environment
// variables (including the legacy variable names), command-line flags and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
//   - validate: go-playground/validator rules checked after merging.
type StructuredConfig struct {
	// App holds token and logging settings.
	App App `envPrefix:"APP_"`

	// Storage holds the document database connection settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the listening address and timeouts of the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// CORS holds cross-origin settings applied to every route.
	CORS CORS `envPrefix:"CORS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// TokenSignKey is the shared HMAC secret used to sign and verify access
	// tokens.
	// Env: APP_TOKEN_SIGN_KEY (legacy: ACCESS_TOKEN)
	TokenSignKey string `env:"TOKEN_SIGN_KEY" validate:"required"`

	// TokenDuration is the validity of issued tokens. Defaults to one hour.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION" validate:"gt=0"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Storage groups the configuration for the persistence backend.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds MongoDB connection settings.
type DB struct {
	// URI is the MongoDB connection string
	// (e.g. "mongodb+srv://cluster0.example.mongodb.net/?retryWrites=true&w=majority").
	// Env: STORAGE_DB_URI
	URI string `env:"URI" validate:"required"`

	// User and Password are injected into URI when it carries no credentials.
	// Env: STORAGE_DB_USER / STORAGE_DB_PASSWORD (legacy: DB_USER / DB_PASS)
	User     string `env:"USER"`
	Password string `env:"PASSWORD"`

	// Name is the database holding all salon collections.
	// Env: STORAGE_DB_NAME
	Name string `env:"NAME" validate:"required"`

	// ConnectTimeout bounds the initial connect and ping.
	// Env: STORAGE_DB_CONNECT_TIMEOUT
	ConnectTimeout time.Duration `env:"CONNECT_TIMEOUT"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address the HTTP server listens on
	// (e.g. ":5000", "127.0.0.1:8080").
	// Env: SERVER_ADDRESS (legacy: PORT)
	HTTPAddress string `env:"ADDRESS" validate:"required"`

	// RequestTimeout, when positive, cancels requests that run longer.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown of in-flight requests.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// CORS holds cross-origin request settings.
type CORS struct {
	// AllowedOrigins lists origins allowed to call the API. "*" allows all.
	// Env: CORS_ALLOWED_ORIGINS (comma separated)
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
}

// Defaults applied before any other source.
const (
	DefaultHTTPAddress     = ":5000"
	DefaultDBName          = "hairSalon"
	DefaultTokenDuration   = time.Hour
	DefaultConnectTimeout  = 10 * time.Second
	DefaultShutdownTimeout = 10 * time.Second
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenDuration: DefaultTokenDuration,
			LogLevel:      "debug",
		},
		Storage: Storage{
			DB: DB{
				Name:           DefaultDBName,
				ConnectTimeout: DefaultConnectTimeout,
			},
		},
		Server: Server{
			HTTPAddress:     DefaultHTTPAddress,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		CORS: CORS{
			AllowedOrigins: []string{"*"},
		},
	}
}

// ConnectionURI returns URI with User and Password injected as userinfo when
// both are set and URI carries no credentials of its own.
func (db DB) ConnectionURI() (string, error) {
	if db.User == "" {
		return db.URI, nil
	}

	u, err := url.Parse(db.URI)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidStorageConfigs, err)
	}
	if u.User != nil {
		return db.URI, nil
	}

	u.User = url.UserPassword(db.User, db.Password)
	return u.String(), nil
}

// GetStructuredConfig loads, merges and validates the server configuration
// from all sources in the following priority order (later non-zero fields
// win):
//  1. Built-in defaults
//  2. .env file in the working directory (only fills unset variables)
//  3. Legacy environment variables (PORT, DB_USER, DB_PASS, ACCESS_TOKEN)
//  4. Environment variables
//  5. Command-line flags
//  6. JSON file (path resolved from sources 4 and 5)
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withDotEnv(".env").
		withLegacyEnv().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
