// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-ed3/internal/ed3"
	"github.com/MKhiriev/go-ed3/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// Codec builds and parses containers.
type Codec interface {
	Build(ctx context.Context, payload []byte, metadata string) ([]byte, error)
	Parse(ctx context.Context, data []byte) (ed3.Container, error)
}

// ContainerService implements the user-facing container operations.
type ContainerService interface {
	// Create embeds req.Metadata into the file at req.PayloadPath and writes
	// the container. Non-JSON metadata is refused with
	// validators.ErrNonJSONShape unless req.Force is set.
	Create(ctx context.Context, req models.CreateRequest) (models.CreateResult, error)
	// Open reads and parses a container.
	Open(ctx context.Context, path string) (models.OpenResult, error)
	// ExtractPayload writes the payload to dest, or to a new temp file when
	// dest is empty, and returns the written path.
	ExtractPayload(ctx context.Context, opened models.OpenResult, dest string) (string, error)
	// Play extracts the payload to a temp file and opens it in the media
	// player. The temp path is returned even when the player fails.
	Play(ctx context.Context, opened models.OpenResult) (string, error)
	// CopyMetadata puts the metadata text on the clipboard.
	CopyMetadata(ctx context.Context, opened models.OpenResult) error
	// Inspect summarises many containers concurrently. Per-file failures are
	// reported in the results.
	Inspect(ctx context.Context, paths ...string) ([]models.InspectResult, error)
}

// CatalogService reads the catalog of created and opened containers.
type CatalogService interface {
	Recent(ctx context.Context, limit uint64) ([]models.CatalogEntry, error)
}

// AppInfoService reports build information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
