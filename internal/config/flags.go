// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Flag names registered by [RegisterFlags].
const (
	FlagConfig    = "config"
	FlagHost      = "host"
	FlagTimeout   = "timeout"
	FlagUserAgent = "user-agent"
	FlagLogDir    = "log-dir"
	FlagUsername  = "username"
	FlagPassword  = "password"
	FlagTwoFA     = "twofa"
	FlagStore     = "store"
	FlagStoreDir  = "store-dir"
	FlagDSN       = "dsn"
	FlagSecret    = "secret"
)

// RegisterFlags adds every configuration flag to fs.
//
// Flags:
//
//	-c, --config      config file path (.json or .toml)
//	-H, --host        tracker base URL
//	    --timeout     request timeout (e.g. "30s", "1m")
//	    --user-agent  User-Agent header
//	    --log-dir     directory of the log file
//	-u, --username    account name
//	    --password    account password
//	    --twofa       second-factor code
//	    --store       session store: file, sqlite, postgres or memory
//	    --store-dir   file store directory
//	    --dsn         sqlite/postgres DSN
//	    --secret      encrypt the persisted session with this secret
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringP(FlagConfig, "c", "", "Config file path (.json or .toml)")
	fs.StringP(FlagHost, "H", "", "Tracker base URL, e.g. https://tracker.example")
	fs.Duration(FlagTimeout, 0, "Request timeout (e.g., 30s, 1m)")
	fs.String(FlagUserAgent, "", "User-Agent header sent to the tracker")
	fs.String(FlagLogDir, "", "Directory of the log file")
	fs.StringP(FlagUsername, "u", "", "Account name")
	fs.String(FlagPassword, "", "Account password")
	fs.String(FlagTwoFA, "", "Second-factor code")
	fs.String(FlagStore, "", "Session store: file, sqlite, postgres or memory")
	fs.String(FlagStoreDir, "", "Directory of the file session store")
	fs.String(FlagDSN, "", "Database DSN of the sqlite/postgres session store")
	fs.String(FlagSecret, "", "Encrypt the persisted session with this secret")
}

// parseFlags reads the flags registered by [RegisterFlags] from fs. Flags
// that were never registered are left empty.
func parseFlags(fs *pflag.FlagSet) (*StructuredConfig, error) {
	var firstErr error
	str := func(name string) string {
		if fs.Lookup(name) == nil {
			return ""
		}
		v, err := fs.GetString(name)
		if err != nil && firstErr == nil {
			firstErr = err
		}
		return v
	}

	cfg := &StructuredConfig{
		App: App{
			UserAgent: str(FlagUserAgent),
			LogDir:    str(FlagLogDir),
		},
		Adapter: Adapter{
			Host: str(FlagHost),
		},
		Auth: Auth{
			Username: str(FlagUsername),
			Password: str(FlagPassword),
			TwoFA:    str(FlagTwoFA),
		},
		Storage: Storage{
			Driver: str(FlagStore),
			Dir:    str(FlagStoreDir),
			DSN:    str(FlagDSN),
			Secret: str(FlagSecret),
		},
		JSONFilePath: str(FlagConfig),
	}

	if fs.Lookup(FlagTimeout) != nil {
		timeout, err := fs.GetDuration(FlagTimeout)
		if err != nil && firstErr == nil {
			firstErr = err
		}
		cfg.Adapter.RequestTimeout = timeout
	}

	if firstErr != nil {
		return nil, fmt.Errorf("error reading flags: %w", firstErr)
	}
	return cfg, nil
}
