// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-ed3/internal/logger"
	"github.com/MKhiriev/go-ed3/internal/utils"
	"github.com/MKhiriev/go-ed3/models"
)

// catalogRepository is the SQL implementation of [CatalogRepository] over the
// "containers" table.
type catalogRepository struct {
	*DB
	ids    *utils.UUIDGenerator
	now    func() time.Time
	logger *logger.Logger
}

// NewCatalogRepository constructs a [CatalogRepository] backed by db.
func NewCatalogRepository(db *DB, logger *logger.Logger) CatalogRepository {
	return &catalogRepository{
		DB:     db,
		ids:    utils.NewUUIDGenerator(),
		now:    time.Now,
		logger: logger,
	}
}

// Save inserts entry. An empty ID or zero CreatedAt is filled in; the stored
// entry is returned.
func (r *catalogRepository) Save(ctx context.Context, entry models.CatalogEntry) (models.CatalogEntry, error) {
	log := logger.FromContext(ctx)

	if entry.ID == "" {
		entry.ID = r.ids.Generate()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = r.now()
	}
	entry.CreatedAt = entry.CreatedAt.UTC()

	query, args, err := buildInsertCatalogEntryQuery(r.builder, entry)
	if err != nil {
		log.Err(err).Str("func", "catalogRepository.Save").Msg("failed to create query")
		return models.CatalogEntry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var res sql.Result
	err = r.withRetry(ctx, func() error {
		var execErr error
		res, execErr = r.DB.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "catalogRepository.Save").
			Str("path", entry.Path).
			Str("action", string(entry.Action)).
			Msg("failed to insert catalog entry")
		return models.CatalogEntry{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return models.CatalogEntry{}, ErrCatalogEntryNotSaved
	}

	log.Debug().
		Str("func", "catalogRepository.Save").
		Str("id", entry.ID).
		Str("path", entry.Path).
		Msg("catalog entry saved")

	return entry, nil
}

// ListRecent returns up to limit entries, newest first.
func (r *catalogRepository) ListRecent(ctx context.Context, limit uint64) ([]models.CatalogEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListRecentQuery(r.builder, limit)
	if err != nil {
		log.Err(err).Str("func", "catalogRepository.ListRecent").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "catalogRepository.ListRecent").
			Uint64("limit", limit).
			Msg("failed to execute query for recent entries")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.CatalogEntry, 0, min(limit, 64))
	for rows.Next() {
		entry, scanErr := scanCatalogEntry(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "catalogRepository.ListRecent").Msg("failed to scan catalog row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		entries = append(entries, entry)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "catalogRepository.ListRecent").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return entries, nil
}

// FindByPath returns the newest entry recorded for path.
func (r *catalogRepository) FindByPath(ctx context.Context, path string) (models.CatalogEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindByPathQuery(r.builder, path)
	if err != nil {
		log.Err(err).Str("func", "catalogRepository.FindByPath").Msg("failed to create query")
		return models.CatalogEntry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	entry, err := scanCatalogEntry(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.CatalogEntry{}, ErrCatalogEntryNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "catalogRepository.FindByPath").
			Str("path", path).
			Msg("failed to scan catalog row")
		return models.CatalogEntry{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return entry, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCatalogEntry(row rowScanner) (models.CatalogEntry, error) {
	var (
		entry  models.CatalogEntry
		action string
	)

	err := row.Scan(
		&entry.ID,
		&entry.Path,
		&action,
		&entry.PayloadSize,
		&entry.MetadataSize,
		&entry.HasMetadata,
		&entry.PayloadFormat,
		&entry.PayloadDigest,
		&entry.CreatedAt,
	)
	if err != nil {
		return models.CatalogEntry{}, err
	}
	entry.Action = models.CatalogAction(action)

	return entry, nil
}
