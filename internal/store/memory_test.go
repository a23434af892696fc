// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, err := s.Load(ctx, "cookies")
	assert.ErrorIs(t, err, ErrBlobNotFound)

	data := []byte("blob")
	require.NoError(t, s.Save(ctx, "cookies", data))
	data[0] = 'X'

	got, err := s.Load(ctx, "cookies")
	require.NoError(t, err)
	assert.Equal(t, []byte("blob"), got, "store must keep its own copy")

	got[0] = 'Y'
	again, err := s.Load(ctx, "cookies")
	require.NoError(t, err)
	assert.Equal(t, []byte("blob"), again, "callers must get a copy")

	require.NoError(t, s.Delete(ctx, "cookies"))
	require.NoError(t, s.Delete(ctx, "cookies"))
	_, err = s.Load(ctx, "cookies")
	assert.ErrorIs(t, err, ErrBlobNotFound)

	assert.ErrorIs(t, s.Save(ctx, "", nil), ErrInvalidKey)
}
