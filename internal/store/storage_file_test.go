// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-ed3/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFileStorage(t *testing.T) (FileStorage, string) {
	t.Helper()
	dir := t.TempDir()
	return NewFileStorage(dir, logger.Nop()), dir
}

// ── ReadFile ──────────────────────────────────────────────────────────────────

func TestFileStorage_ReadFile(t *testing.T) {
	s, dir := newTestFileStorage(t)
	ctx := context.Background()

	path := filepath.Join(dir, "song.mp3")
	require.NoError(t, os.WriteFile(path, []byte{0x49, 0x44, 0x33}, 0o600))

	t.Run("existing file", func(t *testing.T) {
		data, err := s.ReadFile(ctx, path)
		require.NoError(t, err)
		assert.Equal(t, []byte{0x49, 0x44, 0x33}, data)
	})

	t.Run("empty file", func(t *testing.T) {
		empty := filepath.Join(dir, "empty.mp3")
		require.NoError(t, os.WriteFile(empty, nil, 0o600))

		data, err := s.ReadFile(ctx, empty)
		require.NoError(t, err)
		assert.Empty(t, data)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := s.ReadFile(ctx, filepath.Join(dir, "nope.mp3"))
		assert.ErrorIs(t, err, ErrSourceNotFound)
	})

	t.Run("directory", func(t *testing.T) {
		_, err := s.ReadFile(ctx, dir)
		assert.ErrorIs(t, err, ErrSourceNotFound)
	})

	t.Run("cancelled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		_, err := s.ReadFile(cctx, path)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

// ── WriteFileAtomic ───────────────────────────────────────────────────────────

func TestFileStorage_WriteFileAtomic(t *testing.T) {
	s, dir := newTestFileStorage(t)
	ctx := context.Background()

	t.Run("creates new file", func(t *testing.T) {
		path := filepath.Join(dir, "new.ed3")

		require.NoError(t, s.WriteFileAtomic(ctx, path, []byte("hello")))

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "hello", string(got))
	})

	t.Run("replaces existing file", func(t *testing.T) {
		path := filepath.Join(dir, "existing.ed3")
		require.NoError(t, os.WriteFile(path, []byte("old content"), 0o600))

		require.NoError(t, s.WriteFileAtomic(ctx, path, []byte("new")))

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "new", string(got))
	})

	t.Run("missing directory leaves nothing behind", func(t *testing.T) {
		path := filepath.Join(dir, "missing", "out.ed3")

		err := s.WriteFileAtomic(ctx, path, []byte("x"))
		assert.ErrorIs(t, err, ErrWriteFailed)
		assert.NoFileExists(t, path)
	})

	t.Run("destination is a directory", func(t *testing.T) {
		target := filepath.Join(dir, "target-dir")
		require.NoError(t, os.Mkdir(target, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(target, "keep"), []byte("k"), 0o600))

		err := s.WriteFileAtomic(ctx, target, []byte("x"))
		assert.ErrorIs(t, err, ErrWriteFailed)
		assert.DirExists(t, target)
	})

	t.Run("no temp files left", func(t *testing.T) {
		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		for _, e := range entries {
			assert.False(t, strings.HasSuffix(e.Name(), ".tmp"), "leftover %s", e.Name())
		}
	})
}

// ── WriteTemp / CleanupTemp ──────────────────────────────────────────────────

func TestFileStorage_WriteTemp(t *testing.T) {
	s, dir := newTestFileStorage(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		ext     string
		wantExt string
	}{
		{name: "dotted extension", ext: ".mp3", wantExt: ".mp3"},
		{name: "bare extension", ext: "flac", wantExt: ".flac"},
		{name: "no extension", ext: "", wantExt: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, err := s.WriteTemp(ctx, tt.ext, []byte("payload"))
			require.NoError(t, err)

			assert.Equal(t, dir, filepath.Dir(path))
			assert.True(t, strings.HasPrefix(filepath.Base(path), TempPrefix))
			assert.Equal(t, tt.wantExt, filepath.Ext(strings.TrimPrefix(filepath.Base(path), TempPrefix)))

			got, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, "payload", string(got))
		})
	}
}

func TestFileStorage_WriteTemp_UniqueNames(t *testing.T) {
	s, _ := newTestFileStorage(t)
	ctx := context.Background()

	a, err := s.WriteTemp(ctx, ".mp3", []byte("a"))
	require.NoError(t, err)
	b, err := s.WriteTemp(ctx, ".mp3", []byte("b"))
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestFileStorage_CleanupTemp(t *testing.T) {
	s, dir := newTestFileStorage(t)
	ctx := context.Background()

	old := time.Now().Add(-2 * time.Hour)

	stale, err := s.WriteTemp(ctx, ".mp3", []byte("old"))
	require.NoError(t, err)
	require.NoError(t, os.Chtimes(stale, old, old))

	fresh, err := s.WriteTemp(ctx, ".mp3", []byte("new"))
	require.NoError(t, err)

	foreign := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(foreign, []byte("keep"), 0o600))
	require.NoError(t, os.Chtimes(foreign, old, old))

	removed, err := s.CleanupTemp(ctx, time.Hour)
	require.NoError(t, err)

	assert.Equal(t, 1, removed)
	assert.NoFileExists(t, stale)
	assert.FileExists(t, fresh)
	assert.FileExists(t, foreign)
}

func TestFileStorage_CleanupTemp_MissingDir(t *testing.T) {
	s := NewFileStorage(filepath.Join(t.TempDir(), "gone"), logger.Nop())

	removed, err := s.CleanupTemp(context.Background(), time.Hour)
	assert.Zero(t, removed)
	assert.ErrorIs(t, err, ErrReadFailed)
}
