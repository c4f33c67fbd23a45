// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/go-ed3/internal/config"
	"github.com/MKhiriev/go-ed3/internal/logger"
	"github.com/MKhiriev/go-ed3/internal/service"
	"github.com/MKhiriev/go-ed3/internal/utils"
	"github.com/MKhiriev/go-ed3/internal/validators"
)

type Handler struct {
	services  *service.Services
	validator validators.Validator
	traceIDs  *utils.UUIDGenerator

	maxBodySize    int64
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		validator:      validators.NewMetadataValidator(),
		traceIDs:       utils.NewUUIDGenerator(),
		maxBodySize:    cfg.MaxBodySize,
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}
