// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter connects go-ed3 to the world outside the process: a remote
// `ed3 serve` instance, the desktop media player and the system clipboard.
//
// Remote HTTP errors are mapped back onto the sentinels of the packages that
// raise them locally (validators, ed3), so callers handle a remote failure
// exactly like a local one.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-ed3/internal/ed3"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// CodecAdapter builds and parses containers on a remote server.
type CodecAdapter interface {
	Build(ctx context.Context, payload []byte, metadata string) ([]byte, error)
	Parse(ctx context.Context, data []byte) (ed3.Container, error)
}

// MediaOpener hands a file to an external player.
type MediaOpener interface {
	// Open starts the player for path and returns without waiting for it.
	Open(ctx context.Context, path string) error
}

// Clipboard writes text to the system clipboard.
type Clipboard interface {
	WriteText(text string) error
}
