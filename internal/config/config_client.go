// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-gazelle/models"
	"github.com/spf13/pflag"
)

// Session store drivers.
const (
	StorageFile     = "file"
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// ClientApp holds settings of the command itself.
type ClientApp struct {
	UserAgent string
	LogDir    string
}

// ClientAdapter holds tracker connection settings.
type ClientAdapter struct {
	Host           string
	RequestTimeout time.Duration
}

// ClientStorage holds session store settings.
type ClientStorage struct {
	Driver string
	Dir    string
	DSN    string
	Secret string
}

// ClientConfig is the validated configuration of the gazelle command.
type ClientConfig struct {
	App         ClientApp
	Adapter     ClientAdapter
	Credentials models.Credentials
	Storage     ClientStorage
}

// GetClientConfig builds and validates a [ClientConfig] from the flags in fs,
// the environment and the optional JSON file. The storage driver defaults to
// [StorageFile].
func GetClientConfig(fs *pflag.FlagSet) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(fs)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	if err = clientCfg.validate(); err != nil {
		return nil, err
	}
	return clientCfg, nil
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	clientCfg := &ClientConfig{
		App: ClientApp{
			UserAgent: cfg.App.UserAgent,
			LogDir:    cfg.App.LogDir,
		},
		Adapter: ClientAdapter{
			Host:           cfg.Adapter.Host,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Credentials: models.Credentials{
			Username: cfg.Auth.Username,
			Password: cfg.Auth.Password,
			TwoFA:    cfg.Auth.TwoFA,
		},
		Storage: ClientStorage{
			Driver: cfg.Storage.Driver,
			Dir:    cfg.Storage.Dir,
			DSN:    cfg.Storage.DSN,
			Secret: cfg.Storage.Secret,
		},
	}

	if clientCfg.Storage.Driver == "" {
		clientCfg.Storage.Driver = StorageFile
	}

	return clientCfg
}
