// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFileStore_CreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")

	s, err := NewFileStore(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, s.Dir())

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestNewFileStore_DefaultDir(t *testing.T) {
	base := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", base)
	t.Setenv("HOME", base)
	t.Setenv("AppData", base)

	s, err := NewFileStore("")
	require.NoError(t, err)

	want, err := DefaultDir()
	require.NoError(t, err)
	assert.Equal(t, want, s.Dir())
	assert.Equal(t, DirName, filepath.Base(s.Dir()))
}

func TestFileStore_SaveLoad(t *testing.T) {
	ctx := context.Background()
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	_, err = s.Load(ctx, "cookies")
	assert.ErrorIs(t, err, ErrBlobNotFound)

	require.NoError(t, s.Save(ctx, "cookies", []byte("first")))
	require.NoError(t, s.Save(ctx, "cookies", []byte("second")))

	got, err := s.Load(ctx, "cookies")
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), got)

	entries, err := os.ReadDir(s.Dir())
	require.NoError(t, err)
	require.Len(t, entries, 1, "temporary files must not be left behind")
	assert.Equal(t, "cookies", entries[0].Name())
}

func TestFileStore_OwnerOnlyPermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix permissions")
	}

	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, s.Save(context.Background(), "cookies", []byte("x")))

	path, err := s.Path("cookies")
	require.NoError(t, err)
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFileStore_Delete(t *testing.T) {
	ctx := context.Background()
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, "cookies"), "deleting a missing blob")

	require.NoError(t, s.Save(ctx, "cookies", []byte("x")))
	require.NoError(t, s.Delete(ctx, "cookies"))

	_, err = s.Load(ctx, "cookies")
	assert.ErrorIs(t, err, ErrBlobNotFound)
}

func TestFileStore_InvalidKeys(t *testing.T) {
	ctx := context.Background()
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	for _, key := range []string{"", ".", "..", "../escape", `a\b`, "a/b"} {
		t.Run(key, func(t *testing.T) {
			assert.ErrorIs(t, s.Save(ctx, key, []byte("x")), ErrInvalidKey)
			_, err := s.Load(ctx, key)
			assert.ErrorIs(t, err, ErrInvalidKey)
			assert.ErrorIs(t, s.Delete(ctx, key), ErrInvalidKey)
		})
	}
}

func TestFileStore_Unavailable(t *testing.T) {
	parent := t.TempDir()
	blocker := filepath.Join(parent, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	_, err := NewFileStore(filepath.Join(blocker, "sub"))
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}
