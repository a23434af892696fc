// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/blob_store_mock.go -package=mock

// BlobStore keeps opaque byte blobs under string keys. The session manager
// uses it to persist the encoded cookie jar between runs.
type BlobStore interface {
	// Load returns the blob stored under key, or [ErrBlobNotFound].
	Load(ctx context.Context, key string) ([]byte, error)
	// Save overwrites the blob stored under key.
	Save(ctx context.Context, key string, data []byte) error
	// Delete removes the blob stored under key. Deleting a missing key is
	// not an error.
	Delete(ctx context.Context, key string) error
}
