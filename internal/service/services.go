// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-ed3/internal/adapter"
	"github.com/MKhiriev/go-ed3/internal/config"
	"github.com/MKhiriev/go-ed3/internal/logger"
	"github.com/MKhiriev/go-ed3/internal/store"
)

// Services groups the application services.
type Services struct {
	ContainerService ContainerService
	CatalogService   CatalogService
	AppInfoService   AppInfoService
	Codec            Codec
}

// NewServices wires the services. The remote codec from adapters is used when
// present, the in-process one otherwise.
func NewServices(storages *store.Storages, adapters *adapter.Adapters, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	codec := NewLocalCodec()
	deps := ContainerServiceDeps{
		Codec:   codec,
		Files:   storages.FileStorage,
		Catalog: storages.CatalogRepository,
	}
	if adapters != nil {
		if adapters.Codec != nil {
			codec = adapters.Codec
			deps.Codec = codec
		}
		deps.Opener = adapters.MediaOpener
		deps.Clipboard = adapters.Clipboard
	}

	return &Services{
		ContainerService: NewContainerService(deps, cfg.Storage.Files.OutputDir, logger),
		CatalogService:   NewCatalogService(storages.CatalogRepository, logger),
		AppInfoService:   appInfo,
		Codec:            codec,
	}, nil
}
