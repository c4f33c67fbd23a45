// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-ed3/internal/logger"
	"github.com/MKhiriev/go-ed3/internal/store"
	"github.com/MKhiriev/go-ed3/models"
)

// DefaultRecentLimit is used when Recent is asked for zero entries.
const DefaultRecentLimit = 20

type catalogService struct {
	catalog store.CatalogRepository
	logger  *logger.Logger
}

// NewCatalogService returns a [CatalogService] over catalog.
func NewCatalogService(catalog store.CatalogRepository, logger *logger.Logger) CatalogService {
	return &catalogService{catalog: catalog, logger: logger}
}

func (s *catalogService) Recent(ctx context.Context, limit uint64) ([]models.CatalogEntry, error) {
	if s.catalog == nil {
		return nil, store.ErrCatalogUnavailable
	}

	if limit == 0 {
		limit = DefaultRecentLimit
	}

	entries, err := s.catalog.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing recent containers: %w", err)
	}

	return entries, nil
}
