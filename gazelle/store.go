// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package gazelle

import (
	"context"

	"github.com/MKhiriev/go-gazelle/internal/logger"
	"github.com/MKhiriev/go-gazelle/internal/store"
)

// SessionStore persists the encoded session cookies between runs. Load must
// return an error matching [ErrBlobNotFound] when nothing is stored.
type SessionStore interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
}

// Storage drivers accepted by [OpenSQLStore].
const (
	DriverSQLite   = store.DriverSQLite
	DriverPostgres = store.DriverPostgres
)

// FileStore keeps the session in dir, or in <user config dir>/gazelle_api_py
// when dir is empty. The directory is created if needed.
func FileStore(dir string) (SessionStore, error) {
	s, err := store.NewFileStore(dir)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// MemoryStore keeps the session for the lifetime of the process only.
func MemoryStore() SessionStore {
	return store.NewMemoryStore()
}

// SealedStore encrypts everything written to inner with a key derived from
// secret. A blob sealed under another secret reads as corrupt, which makes
// [New] log in again.
func SealedStore(inner SessionStore, secret string) (SessionStore, error) {
	s, err := store.NewSealedStore(inner, secret)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// OpenSQLStore keeps the session in a SQLite or PostgreSQL database and
// creates its table on first use.
func OpenSQLStore(ctx context.Context, driver, dsn string, log *logger.Logger) (*store.SQLStore, error) {
	return store.OpenSQLStore(ctx, driver, dsn, log)
}
