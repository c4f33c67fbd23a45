// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-ed3/internal/config"
	"github.com/MKhiriev/go-ed3/internal/logger"
)

// Storages groups the persistence layer handed to the services.
type Storages struct {
	FileStorage       FileStorage
	CatalogRepository CatalogRepository

	db         *DB
	catalogErr error
}

// NewStorages opens the catalog, migrates it and wires the file storage.
//
// The catalog is optional: when it cannot be opened or migrated the error is
// logged, CatalogRepository stays nil and [Storages.CatalogErr] reports the
// cause. File operations keep working.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Debug().Str("func", "NewStorages").Msg("creating new storages...")

	storages := &Storages{
		FileStorage: NewFileStorage(cfg.Files.TempDir, logger),
	}

	db, err := openCatalog(ctx, cfg.DB, logger)
	if err != nil {
		logger.Warn().Err(err).Str("func", "NewStorages").Msg("catalog disabled")
		storages.catalogErr = fmt.Errorf("%w: %w", ErrCatalogUnavailable, err)
		return storages, nil
	}

	storages.db = db
	storages.CatalogRepository = NewCatalogRepository(db, logger)

	return storages, nil
}

func openCatalog(ctx context.Context, cfg config.DB, logger *logger.Logger) (*DB, error) {
	db, err := NewConnect(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("catalog connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return db, nil
}

// CatalogErr returns why the catalog is unavailable, or nil.
func (s *Storages) CatalogErr() error {
	return s.catalogErr
}

// Close releases the catalog connection.
func (s *Storages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}

	return s.db.Close()
}
