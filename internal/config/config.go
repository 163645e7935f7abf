// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// exo-explorer client and the contract stub API. It aggregates all
// sub-configurations and is populated by merging defaults, a .env file,
// environment variables, command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds client UI settings: initial language and theme, log file
	// location and the not-found redirect countdown.
	App App `envPrefix:"APP_"`

	// Storage holds configuration of the client's local storage (the
	// persisted session, language and theme).
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the location of the exoplanet REST backend and the
	// outbound request timeout.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Server holds settings of the in-memory contract stub API.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds client UI settings.
type App struct {
	// Language is the UI language used until the user picks another one
	// ("en" or "fr").
	// Env: APP_LANGUAGE
	Language string `env:"LANGUAGE"`

	// Theme is the initial color scheme ("light" or "dark").
	// Env: APP_THEME
	Theme string `env:"THEME"`

	// LogFile is the path of the client log file. A terminal UI owns
	// stdout, so client logs always go to a file.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// NotFoundRedirect is the countdown shown on the not-found view before
	// it navigates home (e.g. "10s").
	// Env: APP_NOT_FOUND_REDIRECT
	NotFoundRedirect time.Duration `env:"NOT_FOUND_REDIRECT"`
}

// Storage groups the configuration for the client storage backend.
type Storage struct {
	// DB holds the local database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local key/value database.
type DB struct {
	// Driver is the database/sql driver name: "sqlite3" (default) or
	// "pgx" for a shared PostgreSQL profile store.
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is the SQLite file path or the PostgreSQL connection string.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Adapter holds the backend location used by the HTTP adapter.
type Adapter struct {
	// HTTPAddress is the base URL of the REST backend, including the API
	// prefix (e.g. "http://api.exoexplorer.local/api").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration of a single outbound request
	// (e.g. "15s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Server holds settings of the contract stub API.
type Server struct {
	// HTTPAddress is the TCP address on which the stub listens, in
	// "host:port" format (e.g. "localhost:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds the handling of a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// TokenSignKey is the HMAC key used to sign issued bearer tokens.
	// Env: SERVER_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of issued tokens.
	// Env: SERVER_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the lifetime of issued tokens (e.g. "24h").
	// Env: SERVER_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// AdminEmails lists accounts that receive the admin flag on signup.
	// Env: SERVER_ADMIN_EMAILS (comma separated)
	AdminEmails []string `env:"ADMIN_EMAILS" envSeparator:","`
}

// GetStructuredConfig loads and merges the configuration from all available
// sources in the following priority order (later sources override earlier
// non-zero fields):
//  1. Built-in defaults
//  2. .env file in the working directory, if present
//  3. Environment variables
//  4. Command-line flags
//  5. JSON file (path resolved from sources 3 and 4)
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withDotEnv().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
