// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-draft-keeper application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: version, the draft being edited
	// and the client log file.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the client-side draft queue.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the reference
	// draft-save server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the address of the draft-save endpoint as seen by the
	// client and the outbound request timeout.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Autosave holds the debounce and backoff timings of the sync engine.
	Autosave Autosave `envPrefix:"AUTOSAVE_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration for the storage backends.
type Storage struct {
	// DB holds the local database connection settings.
	DB DB `envPrefix:"DB_"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// DraftID selects the draft opened by the client editor. A new id is
	// generated when empty.
	// Env: APP_DRAFT_ID
	DraftID string `env:"DRAFT_ID"`

	// LogFile is the client log file path. Defaults to logs/client.log next
	// to the executable.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the path of the SQLite file holding queued drafts
	// (e.g. "./drafts.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Adapter holds configuration of the outbound draft-save transport.
type Adapter struct {
	// HTTPAddress is the base address of the draft-save server
	// (e.g. "http://localhost:8080" or "localhost:8080").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single outbound request (e.g. "10s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Autosave holds the timing policy of the autosave engine.
type Autosave struct {
	// Debounce is the quiet period after the last edit before a save fires.
	// Env: AUTOSAVE_DEBOUNCE
	Debounce time.Duration `env:"DEBOUNCE"`

	// RetryBase is the delay of the first retry after a failed save.
	// Env: AUTOSAVE_RETRY_BASE
	RetryBase time.Duration `env:"RETRY_BASE"`

	// RetryMax caps the exponential retry delay.
	// Env: AUTOSAVE_RETRY_MAX
	RetryMax time.Duration `env:"RETRY_MAX"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// ProbeInterval is how often the connectivity prober checks the server.
	// Env: WORKERS_PROBE_INTERVAL
	ProbeInterval time.Duration `env:"PROBE_INTERVAL"`
}

// Default autosave and worker timings applied when no source sets them.
const (
	DefaultDebounce      = time.Second
	DefaultRetryBase     = time.Second
	DefaultRetryMax      = 30 * time.Second
	DefaultProbeInterval = 5 * time.Second
	DefaultTimeout       = 10 * time.Second
)

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Autosave.Debounce == 0 {
		cfg.Autosave.Debounce = DefaultDebounce
	}
	if cfg.Autosave.RetryBase == 0 {
		cfg.Autosave.RetryBase = DefaultRetryBase
	}
	if cfg.Autosave.RetryMax == 0 {
		cfg.Autosave.RetryMax = DefaultRetryMax
	}
	if cfg.Workers.ProbeInterval == 0 {
		cfg.Workers.ProbeInterval = DefaultProbeInterval
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultTimeout
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultTimeout
	}
}
