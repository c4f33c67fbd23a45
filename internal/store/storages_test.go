// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-ed3/internal/config"
	"github.com/MKhiriev/go-ed3/internal/logger"
	"github.com/MKhiriev/go-ed3/models"
)

// ── NewStorages ───────────────────────────────────────────────────────────────

func TestNewStorages_SQLiteCatalog(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	storages, err := NewStorages(ctx, config.Storage{
		DB:    config.DB{DSN: filepath.Join(dir, "nested", "catalog.db")},
		Files: config.Files{TempDir: dir},
	}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, storages.Close()) })

	require.NoError(t, storages.CatalogErr())
	require.NotNil(t, storages.FileStorage)
	require.NotNil(t, storages.CatalogRepository)

	_, err = storages.CatalogRepository.Save(ctx, models.CatalogEntry{
		Path:   "/music/a.mp3.ed3",
		Action: models.ActionCreated,
	})
	require.NoError(t, err)

	entries, err := storages.CatalogRepository.ListRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "/music/a.mp3.ed3", entries[0].Path)
}

func TestNewStorages_UnusableCatalogKeepsFiles(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	// A regular file cannot be a parent directory of the catalog.
	blocker := filepath.Join(dir, "not-a-dir")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	storages, err := NewStorages(ctx, config.Storage{
		DB:    config.DB{DSN: filepath.Join(blocker, "catalog.db")},
		Files: config.Files{TempDir: dir},
	}, logger.Nop())

	require.NoError(t, err)
	assert.Nil(t, storages.CatalogRepository)
	assert.ErrorIs(t, storages.CatalogErr(), ErrCatalogUnavailable)
	assert.NoError(t, storages.Close())

	require.NotNil(t, storages.FileStorage)
	target := filepath.Join(dir, "song.mp3.ed3")
	require.NoError(t, storages.FileStorage.WriteFileAtomic(ctx, target, []byte("payload")))
	data, err := storages.FileStorage.ReadFile(ctx, target)
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), data)
}
