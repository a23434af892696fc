// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

func (cfg *ClientConfig) validate() error {
	if strings.TrimSpace(cfg.Adapter.Host) == "" {
		return fmt.Errorf("%w: host is required", ErrInvalidAdapterConfigs)
	}
	if cfg.Adapter.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidAdapterConfigs)
	}

	switch cfg.Storage.Driver {
	case StorageFile, StorageMemory:
	case StorageSQLite, StoragePostgres:
		if cfg.Storage.DSN == "" {
			return fmt.Errorf("%w: %s store needs a DSN", ErrInvalidStorageConfigs, cfg.Storage.Driver)
		}
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.Driver)
	}

	return nil
}
