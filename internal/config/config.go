// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It is populated
// by merging a JSON file, environment variables and command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: session tokens, the leave
	// allowance and validation switches.
	App App `envPrefix:"APP_"`

	// Storage holds the relational database and idempotency store settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds listen addresses and timeouts of the HTTP and gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the client's view of the server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds background worker settings of the client.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	JSONFilePath string `env:"CONFIG"`
}

// App contains application-level settings.
type App struct {
	// Version is reported by the version endpoint.
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name (debug, info, warn, error).
	LogLevel string `env:"LOG_LEVEL"`

	// TokenSignKey is the HMAC secret used to sign session tokens.
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of issued session tokens.
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is how long a session stays signed in.
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// SecretMessage is shown to signed-in users only.
	SecretMessage string `env:"SECRET_MESSAGE"`

	// AnnualLeaveDays is the yearly allowance the leave balance is computed from.
	AnnualLeaveDays int `env:"ANNUAL_LEAVE_DAYS"`

	// StrictDateRange rejects leave requests whose end date precedes the start date.
	StrictDateRange bool `env:"STRICT_DATE_RANGE"`
}

// Storage groups persistence backends.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`

	// IdempotencyPath is the bolt file used to replay repeated create
	// requests. Idempotent create is disabled when empty.
	IdempotencyPath string `env:"IDEMPOTENCY_PATH"`
}

// DB holds the relational database connection settings.
type DB struct {
	// DSN is either a postgres:// URL (pgx driver) or an SQLite file path.
	DSN string `env:"DATABASE_URI"`
}

// Server holds network settings of the transport servers.
type Server struct {
	// HTTPAddress is the host:port the HTTP server listens on.
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the host:port of the gRPC server; gRPC is off when empty.
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout bounds the handling time of one request.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the client's connection settings.
type Adapter struct {
	// HTTPAddress is the base URL of the leave server.
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the default timeout of outbound requests.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds client background worker settings.
type Workers struct {
	// RefreshInterval is how often the client refetches the leave list.
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// GetStructuredConfig builds and validates the server configuration from the
// process environment, command-line flags and the optional JSON file.
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := loadStructuredConfig()
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}

func loadStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv().
		withEnv().
		withFlags().
		withJSON().
		build()
}
