// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-ed3/internal/adapter"
	"github.com/MKhiriev/go-ed3/internal/ed3"
	"github.com/MKhiriev/go-ed3/internal/logger"
	"github.com/MKhiriev/go-ed3/internal/store"
	"github.com/MKhiriev/go-ed3/internal/utils"
	"github.com/MKhiriev/go-ed3/internal/validators"
	"github.com/MKhiriev/go-ed3/models"
)

type containerService struct {
	codec     Codec
	files     store.FileStorage
	catalog   store.CatalogRepository
	opener    adapter.MediaOpener
	clipboard adapter.Clipboard
	validator validators.Validator

	outputDir string
	logger    *logger.Logger
}

// ContainerServiceDeps lists the collaborators of [NewContainerService].
// Catalog, Opener and Clipboard may be nil; the matching features are then
// skipped or reported unavailable.
type ContainerServiceDeps struct {
	Codec     Codec
	Files     store.FileStorage
	Catalog   store.CatalogRepository
	Opener    adapter.MediaOpener
	Clipboard adapter.Clipboard
}

// NewContainerService returns a [ContainerService]. Created containers go
// next to their source unless outputDir is set.
func NewContainerService(deps ContainerServiceDeps, outputDir string, logger *logger.Logger) ContainerService {
	return &containerService{
		codec:     deps.Codec,
		files:     deps.Files,
		catalog:   deps.Catalog,
		opener:    deps.Opener,
		clipboard: deps.Clipboard,
		validator: validators.NewMetadataValidator(),
		outputDir: outputDir,
		logger:    logger,
	}
}

func (s *containerService) Create(ctx context.Context, req models.CreateRequest) (models.CreateResult, error) {
	log := logger.FromContext(ctx)

	req.Metadata = strings.TrimSpace(req.Metadata)
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.CreateResult{}, err
	}

	payload, err := s.files.ReadFile(ctx, req.PayloadPath)
	if err != nil {
		return models.CreateResult{}, fmt.Errorf("error reading payload: %w", err)
	}

	container, err := s.codec.Build(ctx, payload, req.Metadata)
	if err != nil {
		return models.CreateResult{}, fmt.Errorf("error building container: %w", err)
	}

	outputPath := s.outputPath(req)
	if err = s.files.WriteFileAtomic(ctx, outputPath, container); err != nil {
		return models.CreateResult{}, fmt.Errorf("error writing container: %w", err)
	}

	format := ed3.DetectPayloadFormat(payload)
	result := models.CreateResult{
		OutputPath:      outputPath,
		PayloadSize:     len(payload),
		MetadataSize:    len(req.Metadata),
		Size:            len(container),
		PayloadFormat:   format.String(),
		MarkerCollision: ed3.ContainsMarker(payload),
	}

	if result.MarkerCollision {
		log.Warn().
			Str("func", "containerService.Create").
			Str("path", outputPath).
			Msg("payload already contains the marker")
	}

	log.Info().
		Str("func", "containerService.Create").
		Str("path", outputPath).
		Int("payload_size", result.PayloadSize).
		Int("metadata_size", result.MetadataSize).
		Msg("container created")

	s.record(ctx, models.CatalogEntry{
		Path:          outputPath,
		Action:        models.ActionCreated,
		PayloadSize:   int64(result.PayloadSize),
		MetadataSize:  int64(result.MetadataSize),
		HasMetadata:   true,
		PayloadFormat: result.PayloadFormat,
		PayloadDigest: utils.Digest(payload),
	})

	return result, nil
}

func (s *containerService) outputPath(req models.CreateRequest) string {
	if req.OutputPath != "" {
		return req.OutputPath
	}

	name := filepath.Base(req.PayloadPath) + ed3.Extension
	if s.outputDir != "" {
		return filepath.Join(s.outputDir, name)
	}

	return filepath.Join(filepath.Dir(req.PayloadPath), name)
}

func (s *containerService) Open(ctx context.Context, path string) (models.OpenResult, error) {
	log := logger.FromContext(ctx)

	data, err := s.files.ReadFile(ctx, path)
	if err != nil {
		return models.OpenResult{}, fmt.Errorf("error reading container: %w", err)
	}

	container, err := s.codec.Parse(ctx, data)
	if err != nil {
		return models.OpenResult{}, fmt.Errorf("error parsing container: %w", err)
	}

	format := ed3.DetectPayloadFormat(container.Payload)
	result := models.OpenResult{
		Path:          path,
		Payload:       container.Payload,
		Metadata:      container.Metadata,
		HasMetadata:   container.HasMetadata,
		PayloadFormat: format.String(),
		PayloadExt:    format.Extension(),
	}

	log.Info().
		Str("func", "containerService.Open").
		Str("path", path).
		Int("payload_size", len(result.Payload)).
		Int("metadata_size", len(result.Metadata)).
		Bool("has_metadata", result.HasMetadata).
		Msg("container opened")

	s.record(ctx, models.CatalogEntry{
		Path:          path,
		Action:        models.ActionOpened,
		PayloadSize:   int64(len(result.Payload)),
		MetadataSize:  int64(len(result.Metadata)),
		HasMetadata:   result.HasMetadata,
		PayloadFormat: result.PayloadFormat,
		PayloadDigest: utils.Digest(result.Payload),
	})

	return result, nil
}

func (s *containerService) ExtractPayload(ctx context.Context, opened models.OpenResult, dest string) (string, error) {
	if dest == "" {
		path, err := s.files.WriteTemp(ctx, opened.PayloadExt, opened.Payload)
		if err != nil {
			return "", fmt.Errorf("error extracting payload: %w", err)
		}
		return path, nil
	}

	if err := s.files.WriteFileAtomic(ctx, dest, opened.Payload); err != nil {
		return "", fmt.Errorf("error extracting payload: %w", err)
	}

	return dest, nil
}

func (s *containerService) Play(ctx context.Context, opened models.OpenResult) (string, error) {
	if s.opener == nil {
		return "", adapter.ErrPlayerUnavailable
	}

	path, err := s.ExtractPayload(ctx, opened, "")
	if err != nil {
		return "", err
	}

	if err = s.opener.Open(ctx, path); err != nil {
		return path, fmt.Errorf("error opening player: %w", err)
	}

	return path, nil
}

func (s *containerService) CopyMetadata(ctx context.Context, opened models.OpenResult) error {
	if !opened.HasMetadata {
		return ErrNoMetadata
	}

	if s.clipboard == nil {
		return adapter.ErrClipboardUnavailable
	}

	return s.clipboard.WriteText(opened.Metadata)
}

func (s *containerService) Inspect(ctx context.Context, paths ...string) ([]models.InspectResult, error) {
	results := make([]models.InspectResult, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, path := range paths {
		g.Go(func() error {
			results[i] = s.inspectOne(gctx, path)
			return nil
		})
	}

	// workers never fail; only cancellation is reported
	_ = g.Wait()
	if err := ctx.Err(); err != nil {
		return results, err
	}

	return results, nil
}

func (s *containerService) inspectOne(ctx context.Context, path string) models.InspectResult {
	result := models.InspectResult{Path: path}

	data, err := s.files.ReadFile(ctx, path)
	if err != nil {
		result.Err = err
		return result
	}
	result.Size = len(data)

	container, err := s.codec.Parse(ctx, data)
	if err != nil {
		result.Err = err
		return result
	}

	result.PayloadSize = len(container.Payload)
	result.MetadataSize = len(container.Metadata)
	result.HasMetadata = container.HasMetadata
	result.PayloadFormat = ed3.DetectPayloadFormat(container.Payload).String()
	result.LooksLikeJSON = container.HasMetadata && ed3.LooksLikeJSON(container.Metadata)

	return result
}

// record saves entry in the catalog. Failures are logged only.
func (s *containerService) record(ctx context.Context, entry models.CatalogEntry) {
	if s.catalog == nil {
		return
	}

	if _, err := s.catalog.Save(ctx, entry); err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "containerService.record").
			Str("path", entry.Path).
			Msg("failed to record container in catalog")
	}
}
