// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-gazelle/gazelle"
	"github.com/MKhiriev/go-gazelle/internal/config"
	"github.com/MKhiriev/go-gazelle/internal/logger"
)

// openStore builds the session store selected by cfg. The returned close
// function is never nil.
func openStore(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (gazelle.SessionStore, func(), error) {
	var (
		s         gazelle.SessionStore
		closeFunc = func() {}
		err       error
	)

	switch cfg.Driver {
	case config.StorageFile:
		s, err = gazelle.FileStore(cfg.Dir)
	case config.StorageMemory:
		s = gazelle.MemoryStore()
	case config.StorageSQLite, config.StoragePostgres:
		driver := gazelle.DriverSQLite
		if cfg.Driver == config.StoragePostgres {
			driver = gazelle.DriverPostgres
		}
		sqlStore, openErr := gazelle.OpenSQLStore(ctx, driver, cfg.DSN, log)
		if openErr != nil {
			return nil, nil, openErr
		}
		s = sqlStore
		closeFunc = func() {
			if err := sqlStore.Close(); err != nil {
				log.Err(err).Str("func", "openStore").Msg("error closing session database")
			}
		}
	default:
		err = fmt.Errorf("%w: unknown driver %q", config.ErrInvalidStorageConfigs, cfg.Driver)
	}
	if err != nil {
		return nil, nil, err
	}

	if cfg.Secret == "" {
		return s, closeFunc, nil
	}

	sealed, err := gazelle.SealedStore(s, cfg.Secret)
	if err != nil {
		closeFunc()
		return nil, nil, err
	}
	return sealed, closeFunc, nil
}
