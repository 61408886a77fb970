// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// client and the server binaries. It is populated by merging values from
// environment variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token parameters and the shared API key.
	App App `envPrefix:"APP_"`

	// Storage holds the server database and the client local database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the listen address and timeouts of the snapshot server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the client's view of the remote snapshot server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds the sync job intervals.
	Workers Workers `envPrefix:"WORKERS_"`

	// Log holds log output settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level values that control token lifecycle and
// API access.
type App struct {
	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a JWT token remains valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// APIKey is the key every request to the snapshot server must carry in
	// the X-API-Key header.
	// Env: APP_API_KEY
	APIKey string `env:"API_KEY"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// DB holds the server PostgreSQL connection settings.
	DB DB `envPrefix:"DB_"`

	// Local holds the client SQLite settings.
	Local Local `envPrefix:"LOCAL_"`
}

// DB holds connection settings for the server database.
type DB struct {
	// DSN is the PostgreSQL connection string.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Local holds the client database file location.
type Local struct {
	// DSN is the SQLite file path.
	// Env: STORAGE_LOCAL_DSN
	DSN string `env:"DSN"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the remote snapshot server settings used by the client.
// An empty HTTPAddress or APIKey puts the sync engine in no-op mode.
type Adapter struct {
	// HTTPAddress is the base address of the snapshot server.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// APIKey is sent as X-API-Key on every request.
	// Env: ADAPTER_API_KEY
	APIKey string `env:"API_KEY"`

	// RequestTimeout bounds a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ProbeTimeout bounds a single connectivity probe.
	// Env: ADAPTER_PROBE_TIMEOUT
	ProbeTimeout time.Duration `env:"PROBE_TIMEOUT"`
}

// Workers holds the background sync job intervals.
type Workers struct {
	// SyncInterval is the period of the unconditional push.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`

	// ConnectivityPollInterval is the period of the connectivity poll.
	// Env: WORKERS_CONNECTIVITY_POLL_INTERVAL
	ConnectivityPollInterval time.Duration `env:"CONNECTIVITY_POLL_INTERVAL"`
}

// Log holds log output settings.
type Log struct {
	// File is the client log file. The server always logs to stdout.
	// Env: LOG_FILE
	File string `env:"FILE"`

	// MaxSizeMB is the size at which the client log file is rotated.
	// Env: LOG_MAX_SIZE_MB
	MaxSizeMB int `env:"MAX_SIZE_MB"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. .env file and environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return loadStructuredConfig(os.Args[1:])
}

func loadStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder(args).
		withDotEnv().
		withEnv().
		withFlags().
		withJSON().
		build()
}
