// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-gazelle/internal/crypto"
)

// SealedStore encrypts blobs before handing them to another [BlobStore].
// Each blob is bound to its key, so swapping two stored blobs is detected.
type SealedStore struct {
	inner  BlobStore
	sealer *crypto.Sealer
}

// NewSealedStore wraps inner with encryption under a key derived from secret.
func NewSealedStore(inner BlobStore, secret string) (*SealedStore, error) {
	sealer, err := crypto.NewSealer(secret)
	if err != nil {
		return nil, fmt.Errorf("sealed store: %w", err)
	}
	return &SealedStore{inner: inner, sealer: sealer}, nil
}

func (s *SealedStore) Load(ctx context.Context, key string) ([]byte, error) {
	blob, err := s.inner.Load(ctx, key)
	if err != nil {
		return nil, err
	}

	data, err := s.sealer.Open(blob, []byte(key))
	if errors.Is(err, crypto.ErrOpen) {
		return nil, fmt.Errorf("%w: %w", ErrBlobCorrupt, err)
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *SealedStore) Save(ctx context.Context, key string, data []byte) error {
	blob, err := s.sealer.Seal(data, []byte(key))
	if err != nil {
		return fmt.Errorf("seal %s: %w", key, err)
	}
	return s.inner.Save(ctx, key, blob)
}

func (s *SealedStore) Delete(ctx context.Context, key string) error {
	return s.inner.Delete(ctx, key)
}
