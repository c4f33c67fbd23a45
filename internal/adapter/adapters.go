// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"

	"github.com/MKhiriev/go-ed3/internal/config"
	"github.com/MKhiriev/go-ed3/internal/logger"
)

// Adapters groups the external integrations handed to the services.
type Adapters struct {
	// Codec is nil when containers are built and parsed in-process.
	Codec       CodecAdapter
	MediaOpener MediaOpener
	Clipboard   Clipboard
}

// NewAdapters wires the adapters described by cfg.
func NewAdapters(cfg config.StructuredConfig, logger *logger.Logger) (*Adapters, error) {
	adapters := &Adapters{
		MediaOpener: NewMediaOpener(cfg.Player, logger),
		Clipboard:   NewClipboard(),
	}

	if cfg.Adapter.IsRemote() {
		codec, err := NewHTTPCodecAdapter(cfg.Adapter, logger)
		if err != nil {
			return nil, fmt.Errorf("error creating codec adapter: %w", err)
		}
		adapters.Codec = codec
	}

	return adapters, nil
}
