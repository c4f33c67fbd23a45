// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-ed3/internal/config"
	"github.com/MKhiriev/go-ed3/internal/ed3"
	"github.com/MKhiriev/go-ed3/internal/logger"
	"github.com/MKhiriev/go-ed3/internal/utils"
	"github.com/MKhiriev/go-ed3/models"
)

const (
	buildPath = "/api/containers/build"
	parsePath = "/api/containers/parse"
)

// HTTPCodecAdapter implements [CodecAdapter] on top of the go-ed3 HTTP API.
type HTTPCodecAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPCodecAdapter constructs an [HTTPCodecAdapter] for cfg.HTTPAddress.
// Returns an error if the address is empty or cannot be parsed as a URL.
func NewHTTPCodecAdapter(cfg config.Adapter, logger *logger.Logger) (*HTTPCodecAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &HTTPCodecAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Build implements [CodecAdapter]. Metadata is sent with force set: the caller
// has already run the shape check locally.
func (h *HTTPCodecAdapter) Build(ctx context.Context, payload []byte, metadata string) ([]byte, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/octet-stream").
		SetBody(models.BuildRequest{Payload: payload, Metadata: metadata, Force: true}).
		Post(buildPath)
	if err != nil {
		h.logger.Err(err).Str("func", "HTTPCodecAdapter.Build").Msg("build request failed")
		return nil, fmt.Errorf("%w: build request: %w", ErrServerUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return resp.Body(), nil
}

// Parse implements [CodecAdapter]. The container is uploaded as is.
func (h *HTTPCodecAdapter) Parse(ctx context.Context, data []byte) (ed3.Container, error) {
	var parsed models.ParseResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/octet-stream").
		SetBody(data).
		SetResult(&parsed).
		Post(parsePath)
	if err != nil {
		h.logger.Err(err).Str("func", "HTTPCodecAdapter.Parse").Msg("parse request failed")
		return ed3.Container{}, fmt.Errorf("%w: parse request: %w", ErrServerUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return ed3.Container{}, err
	}

	container := ed3.Container{
		Payload:      parsed.Payload,
		HasMetadata:  parsed.HasMetadata,
		MarkerOffset: -1,
	}
	if container.Payload == nil {
		container.Payload = []byte{}
	}
	if parsed.HasMetadata {
		container.MarkerOffset = len(container.Payload)
		if parsed.Metadata != nil {
			container.Metadata = *parsed.Metadata
		}
	}

	return container, nil
}
