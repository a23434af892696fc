// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/spf13/pflag"
)

// StructuredConfig is the raw configuration as read from one source. Values
// from all sources are merged into one StructuredConfig before it is mapped
// onto [ClientConfig].
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds settings of the command itself.
	App App `envPrefix:"APP_"`

	// Adapter holds the tracker address and transport settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Auth holds the account used when a fresh login is needed.
	Auth Auth `envPrefix:"AUTH_"`

	// Storage selects where the session cookies are persisted.
	Storage Storage `envPrefix:"STORAGE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App groups command-level settings.
type App struct {
	// UserAgent replaces the default browser user agent.
	UserAgent string `env:"USER_AGENT"`
	// LogDir is where the "logs" file is written. Empty means the directory
	// of the executable.
	LogDir string `env:"LOG_DIR"`
}

// Adapter groups tracker connection settings.
type Adapter struct {
	// Host is the tracker base URL. Required.
	Host string `env:"HOST"`
	// RequestTimeout bounds each HTTP request; zero keeps the transport
	// default.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Auth groups the login credentials.
type Auth struct {
	Username string `env:"USERNAME"`
	Password string `env:"PASSWORD"`
	TwoFA    string `env:"TWOFA"`
}

// Storage groups session store settings.
type Storage struct {
	// Driver is one of "file", "sqlite", "postgres" or "memory".
	Driver string `env:"DRIVER"`
	// Dir is the directory of the file store.
	Dir string `env:"DIR"`
	// DSN is the connection string of the sqlite and postgres stores.
	DSN string `env:"DB_DSN"`
	// Secret, when set, encrypts the persisted session with a key derived
	// from it.
	Secret string `env:"SECRET"`
}

// GetStructuredConfig merges flags from fs, the environment and the JSON
// file into one [StructuredConfig].
func GetStructuredConfig(fs *pflag.FlagSet) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(fs).
		withEnv().
		withJSON().
		build()
}
