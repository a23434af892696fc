// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-gazelle/internal/logger"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestSQLStore(t *testing.T, driverName string) (*SQLStore, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})

	s := NewSQLStore(db, driverName, nil)
	s.now = func() time.Time { return fixedNow }
	return s, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestSQLStore_Queries(t *testing.T) {
	tests := []struct {
		driver      string
		placeholder string
	}{
		{DriverSQLite, "?"},
		{DriverPostgres, "$1"},
	}

	for _, tt := range tests {
		t.Run(tt.driver, func(t *testing.T) {
			s, _ := newTestSQLStore(t, tt.driver)

			query, args, err := s.buildLoadQuery("cookies")
			require.NoError(t, err)
			assert.Equal(t, "SELECT data FROM sessions WHERE key = "+tt.placeholder, query)
			assert.Equal(t, []any{"cookies"}, args)

			query, args, err = s.buildSaveQuery("cookies", []byte("x"))
			require.NoError(t, err)
			assert.Contains(t, query, "INSERT INTO sessions (key,data,updated_at) VALUES")
			assert.Contains(t, query, tt.placeholder)
			assert.Contains(t, query, "ON CONFLICT (key) DO UPDATE SET data = excluded.data")
			assert.Equal(t, []any{"cookies", []byte("x"), fixedNow}, args)

			query, _, err = s.buildDeleteQuery("cookies")
			require.NoError(t, err)
			assert.Equal(t, "DELETE FROM sessions WHERE key = "+tt.placeholder, query)
		})
	}
}

func TestSQLStore_Load(t *testing.T) {
	s, mock := newTestSQLStore(t, DriverSQLite)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT data FROM sessions WHERE key = ?")).
		WithArgs("cookies").
		WillReturnRows(sqlmock.NewRows([]string{"data"}).AddRow([]byte("blob")))

	got, err := s.Load(context.Background(), "cookies")
	require.NoError(t, err)
	assert.Equal(t, []byte("blob"), got)
}

func TestSQLStore_LoadNotFound(t *testing.T) {
	s, mock := newTestSQLStore(t, DriverSQLite)

	mock.ExpectQuery("SELECT data FROM sessions").
		WithArgs("cookies").
		WillReturnError(sql.ErrNoRows)

	_, err := s.Load(context.Background(), "cookies")
	assert.ErrorIs(t, err, ErrBlobNotFound)
}

func TestSQLStore_Save(t *testing.T) {
	s, mock := newTestSQLStore(t, DriverPostgres)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO sessions (key,data,updated_at) VALUES ($1,$2,$3) ON CONFLICT")).
		WithArgs("cookies", []byte("blob"), fixedNow).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.Save(context.Background(), "cookies", []byte("blob")))
}

func TestSQLStore_SaveEmptyKey(t *testing.T) {
	s, _ := newTestSQLStore(t, DriverSQLite)
	assert.ErrorIs(t, s.Save(context.Background(), "", nil), ErrInvalidKey)
}

func TestSQLStore_Delete(t *testing.T) {
	s, mock := newTestSQLStore(t, DriverSQLite)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM sessions WHERE key = ?")).
		WithArgs("cookies").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, s.Delete(context.Background(), "cookies"))
}

func TestSQLStore_ErrorMapping(t *testing.T) {
	tests := []struct {
		name        string
		driver      string
		err         error
		unavailable bool
	}{
		{"conn done", DriverSQLite, sql.ErrConnDone, true},
		{"pg connection failure", DriverPostgres, pgError(pgerrcode.ConnectionFailure), true},
		{"pg cannot connect now", DriverPostgres, pgError(pgerrcode.CannotConnectNow), true},
		{"pg undefined table", DriverPostgres, pgError(pgerrcode.UndefinedTable), false},
		{"pg code on sqlite", DriverSQLite, pgError(pgerrcode.ConnectionFailure), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, mock := newTestSQLStore(t, tt.driver)
			mock.ExpectExec("INSERT INTO sessions").WillReturnError(tt.err)

			err := s.Save(context.Background(), "cookies", []byte("x"))

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrExecutingStatement)
			assert.ErrorIs(t, err, tt.err)
			assert.Equal(t, tt.unavailable, errors.Is(err, ErrStoreUnavailable))
		})
	}
}

func TestSQLStore_LoadError(t *testing.T) {
	s, mock := newTestSQLStore(t, DriverPostgres)
	mock.ExpectQuery("SELECT data FROM sessions").WillReturnError(pgError(pgerrcode.AdminShutdown))

	_, err := s.Load(context.Background(), "cookies")

	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}

func TestOpenSQLStore_UnsupportedDriver(t *testing.T) {
	_, err := OpenSQLStore(context.Background(), "mysql", "dsn", nil)
	assert.ErrorIs(t, err, ErrUnsupportedDriver)
}

func TestSQLStore_LogsFailures(t *testing.T) {
	diskErr := errors.New("disk I/O error")

	t.Run("store logger", func(t *testing.T) {
		var buf bytes.Buffer
		s, mock := newTestSQLStore(t, DriverSQLite)
		s.logger = &logger.Logger{Logger: zerolog.New(&buf)}
		mock.ExpectQuery("SELECT data FROM sessions").WillReturnError(diskErr)

		_, err := s.Load(context.Background(), "cookies")

		require.ErrorIs(t, err, diskErr)
		assert.Contains(t, buf.String(), "error loading blob")
		assert.Contains(t, buf.String(), "disk I/O error")
	})

	t.Run("context logger wins", func(t *testing.T) {
		var storeBuf, ctxBuf bytes.Buffer
		s, mock := newTestSQLStore(t, DriverSQLite)
		s.logger = &logger.Logger{Logger: zerolog.New(&storeBuf)}
		mock.ExpectExec("INSERT INTO sessions").WillReturnError(diskErr)

		ctxLogger := &logger.Logger{Logger: zerolog.New(&ctxBuf)}
		err := s.Save(ctxLogger.WithContext(context.Background()), "cookies", []byte("x"))

		require.ErrorIs(t, err, diskErr)
		assert.Contains(t, ctxBuf.String(), "error saving blob")
		assert.Empty(t, storeBuf.String())
	})

	t.Run("delete", func(t *testing.T) {
		var buf bytes.Buffer
		s, mock := newTestSQLStore(t, DriverPostgres)
		s.logger = &logger.Logger{Logger: zerolog.New(&buf)}
		mock.ExpectExec("DELETE FROM sessions").WillReturnError(diskErr)

		require.Error(t, s.Delete(context.Background(), "cookies"))
		assert.Contains(t, buf.String(), "error deleting blob")
	})
}
