// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-gazelle/internal/logger"
	"github.com/MKhiriev/go-gazelle/migrations"
)

// Storage drivers accepted by [OpenSQLStore].
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

const sessionsTable = "sessions"

// SQLStore keeps blobs in the "sessions" table of a SQLite or PostgreSQL
// database, so several machines can share one tracker session.
type SQLStore struct {
	db                 *sql.DB
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
	now                func() time.Time
}

// OpenSQLStore connects to dsn with the given driver, pings the database and
// applies pending migrations.
func OpenSQLStore(ctx context.Context, driverName, dsn string, log *logger.Logger) (*SQLStore, error) {
	if log == nil {
		log = logger.Nop()
	}

	var sqlDriver, dialect string
	switch driverName {
	case DriverSQLite:
		sqlDriver, dialect = "sqlite3", migrations.DialectSQLite
	case DriverPostgres:
		sqlDriver, dialect = "pgx", migrations.DialectPostgres
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, driverName)
	}

	conn, err := sql.Open(sqlDriver, dsn)
	if err != nil {
		log.Err(err).Str("func", "OpenSQLStore").Msg("error opening database")
		return nil, fmt.Errorf("%w: open database: %w", ErrStoreUnavailable, err)
	}

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "OpenSQLStore").Msg("error connecting database (ping)")
		conn.Close()
		return nil, fmt.Errorf("%w: ping database: %w", ErrStoreUnavailable, err)
	}

	if err = migrations.Migrate(conn, dialect); err != nil {
		log.Err(err).Str("func", "OpenSQLStore").Msg("error migrating database")
		conn.Close()
		return nil, err
	}
	log.Debug().Str("func", "OpenSQLStore").Str("driver", driverName).Msg("connected to database successfully")

	return NewSQLStore(conn, driverName, log), nil
}

// NewSQLStore wraps an already migrated connection.
func NewSQLStore(db *sql.DB, driverName string, log *logger.Logger) *SQLStore {
	if log == nil {
		log = logger.Nop()
	}

	s := &SQLStore{
		db:      db,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Question),
		logger:  log,
		now:     time.Now,
	}
	if driverName == DriverPostgres {
		s.builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
		s.errorClassificator = NewPostgresErrorClassifier()
	}

	return s
}

// Close releases the database connection.
func (s *SQLStore) Close() error {
	return s.db.Close()
}

func (s *SQLStore) buildLoadQuery(key string) (string, []any, error) {
	return s.builder.
		Select("data").
		From(sessionsTable).
		Where(sq.Eq{"key": key}).
		ToSql()
}

// buildSaveQuery renders an upsert understood by both SQLite and PostgreSQL.
func (s *SQLStore) buildSaveQuery(key string, data []byte) (string, []any, error) {
	return s.builder.
		Insert(sessionsTable).
		Columns("key", "data", "updated_at").
		Values(key, data, s.now().UTC()).
		Suffix("ON CONFLICT (key) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at").
		ToSql()
}

func (s *SQLStore) buildDeleteQuery(key string) (string, []any, error) {
	return s.builder.
		Delete(sessionsTable).
		Where(sq.Eq{"key": key}).
		ToSql()
}

func (s *SQLStore) Load(ctx context.Context, key string) ([]byte, error) {
	log := logger.FromContextOr(ctx, s.logger)

	query, args, err := s.buildLoadQuery(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var data []byte
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBlobNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*SQLStore.Load").Msg("error loading blob")
		return nil, s.wrap(ErrExecutingQuery, err)
	}

	return data, nil
}

func (s *SQLStore) Save(ctx context.Context, key string, data []byte) error {
	log := logger.FromContextOr(ctx, s.logger)

	if key == "" {
		return ErrInvalidKey
	}

	query, args, err := s.buildSaveQuery(key, data)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*SQLStore.Save").Msg("error saving blob")
		return s.wrap(ErrExecutingStatement, err)
	}

	return nil
}

func (s *SQLStore) Delete(ctx context.Context, key string) error {
	log := logger.FromContextOr(ctx, s.logger)

	query, args, err := s.buildDeleteQuery(key)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*SQLStore.Delete").Msg("error deleting blob")
		return s.wrap(ErrExecutingStatement, err)
	}

	return nil
}

// wrap tags err with op and, for failures of the connection itself, with
// [ErrStoreUnavailable].
func (s *SQLStore) wrap(op, err error) error {
	if s.unavailable(err) {
		return fmt.Errorf("%w: %w: %w", ErrStoreUnavailable, op, err)
	}
	return fmt.Errorf("%w: %w", op, err)
}

func (s *SQLStore) unavailable(err error) bool {
	if errors.Is(err, sql.ErrConnDone) {
		return true
	}
	return s.errorClassificator != nil && s.errorClassificator.Classify(err) == Retryable
}
