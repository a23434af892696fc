// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by every [BlobStore] implementation. Callers
// should use [errors.Is] to match against these values.
var (
	// ErrBlobNotFound is returned by Load when nothing is stored under the key.
	ErrBlobNotFound = errors.New("blob not found")

	// ErrBlobCorrupt is returned by Load when a blob exists but cannot be
	// read back, e.g. a sealed blob opened with the wrong secret.
	ErrBlobCorrupt = errors.New("blob is corrupt")

	// ErrStoreUnavailable is returned when the backing medium cannot be
	// reached: an unwritable directory, a lost database connection.
	ErrStoreUnavailable = errors.New("session store unavailable")

	// ErrInvalidKey is returned for keys that are empty or would escape the
	// store's namespace.
	ErrInvalidKey = errors.New("invalid blob key")
)

// Low-level database operation errors of [SQLStore].
var (
	// ErrBuildingSQLQuery is returned when squirrel cannot render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT against the sessions
	// table fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT or DELETE fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrUnsupportedDriver is returned by [OpenSQLStore] for unknown drivers.
	ErrUnsupportedDriver = errors.New("unsupported sql driver")
)
