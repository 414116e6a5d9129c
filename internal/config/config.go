// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// campus login client. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON or TOML file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Portal holds the login endpoint and request settings.
	Portal Portal `envPrefix:"PORTAL_"`

	// Probe holds the gateway reachability settings.
	Probe Probe `envPrefix:"PROBE_"`

	// Storage holds the credentials file and the login history database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds configuration for the background re-login job.
	Workers Workers `envPrefix:"WORKERS_"`

	// AutoStart holds the logon trigger registration settings.
	AutoStart AutoStart `envPrefix:"AUTOSTART_"`

	// Log holds logger output settings.
	Log Log `envPrefix:"LOG_"`

	// Launch holds the launch-mode switches. They come from flags only.
	Launch LaunchFlags

	// JSONFilePath is the optional path to a JSON or TOML configuration file.
	// The format is chosen by file extension (".toml" selects TOML).
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Portal holds settings for the captive-portal login endpoint.
type Portal struct {
	// LoginURL is the absolute URL the login form is posted to.
	// Env: PORTAL_LOGIN_URL
	LoginURL string `env:"LOGIN_URL"`

	// RequestTimeout bounds the single login POST (e.g. "10s").
	// Env: PORTAL_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Probe holds settings for the gateway reachability wait.
type Probe struct {
	// Host is the address checked before logging in.
	// Env: PROBE_HOST
	Host string `env:"HOST"`

	// Timeout is the total time budget for waiting on the network.
	// Env: PROBE_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`

	// AttemptTimeout bounds a single reachability check.
	// Env: PROBE_ATTEMPT_TIMEOUT
	AttemptTimeout time.Duration `env:"ATTEMPT_TIMEOUT"`

	// RetryInterval is the pause between failed checks.
	// Env: PROBE_RETRY_INTERVAL
	RetryInterval time.Duration `env:"RETRY_INTERVAL"`
}

// Storage groups the local persistence settings.
type Storage struct {
	// CredentialsFile is the key=value file holding user= and pass=.
	// Env: STORAGE_CREDENTIALS_FILE
	CredentialsFile string `env:"CREDENTIALS_FILE"`

	// LegacyCredentialsFile is read when CredentialsFile does not exist yet.
	// It points at the file written by earlier releases.
	// Env: STORAGE_LEGACY_CREDENTIALS_FILE
	LegacyCredentialsFile string `env:"LEGACY_CREDENTIALS_FILE"`

	// DB holds the login history database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the login history database.
type DB struct {
	// DSN is the SQLite database file path.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// LoginInterval defines how often watch mode repeats the login.
	// Env: WORKERS_LOGIN_INTERVAL
	LoginInterval time.Duration `env:"LOGIN_INTERVAL"`
}

// AutoStart holds settings for the run-at-logon trigger.
type AutoStart struct {
	// TaskName is the scheduled task or user service name.
	// Env: AUTOSTART_TASK_NAME
	TaskName string `env:"TASK_NAME"`
}

// Log holds logger output settings.
type Log struct {
	// Dir is the directory the log file is written to. Empty means the
	// directory holding the credentials file.
	// Env: LOG_DIR
	Dir string `env:"DIR"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. Config file (path resolved from sources 1 and 2)
//
// Defaults are applied to every field still unset after merging.
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withFile().
		withDefaults().
		build()
}
