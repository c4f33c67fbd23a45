// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-ed3/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// FileStorage reads and writes whole files.
type FileStorage interface {
	// ReadFile returns the full contents of path.
	ReadFile(ctx context.Context, path string) ([]byte, error)
	// WriteFileAtomic replaces path with data. On failure the previous
	// content of path (if any) is kept.
	WriteFileAtomic(ctx context.Context, path string, data []byte) error
	// WriteTemp writes data to a new temp file with the given extension and
	// returns its path.
	WriteTemp(ctx context.Context, ext string, data []byte) (string, error)
	// CleanupTemp removes temp files last modified more than olderThan ago and
	// returns how many were removed.
	CleanupTemp(ctx context.Context, olderThan time.Duration) (int, error)
}

// CatalogRepository records created and opened containers.
type CatalogRepository interface {
	Save(ctx context.Context, entry models.CatalogEntry) (models.CatalogEntry, error)
	ListRecent(ctx context.Context, limit uint64) ([]models.CatalogEntry, error)
	FindByPath(ctx context.Context, path string) (models.CatalogEntry, error)
}

// ErrorClassificator decides whether a failed database call may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
