// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-ed3/internal/ed3"
)

type localCodec struct{}

// NewLocalCodec returns a [Codec] that runs in-process.
func NewLocalCodec() Codec {
	return localCodec{}
}

func (localCodec) Build(ctx context.Context, payload []byte, metadata string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return ed3.Build(payload, metadata), nil
}

func (localCodec) Parse(ctx context.Context, data []byte) (ed3.Container, error) {
	if err := ctx.Err(); err != nil {
		return ed3.Container{}, err
	}

	return ed3.Parse(data)
}
