// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-ed3/internal/ed3"
	"github.com/MKhiriev/go-ed3/models"
)

// Field names accepted by [MetadataValidator.Validate].
const (
	FieldPayloadPath = "payload_path"
	FieldMetadata    = "metadata"
	FieldShape       = "shape"
)

// MetadataValidator checks create requests and bare metadata strings.
type MetadataValidator struct {
}

// NewMetadataValidator constructs a [MetadataValidator].
func NewMetadataValidator() Validator {
	return &MetadataValidator{}
}

// Validate accepts a string (metadata text), a models.CreateRequest or a
// pointer to one. Without fields every check runs, in the order payload
// path, metadata, shape; the first failure is returned.
func (v *MetadataValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case string:
		if len(fields) == 0 {
			fields = []string{FieldMetadata, FieldShape}
		}
		return v.validateCreateRequest(ctx, models.CreateRequest{Metadata: value}, fields...)
	case models.CreateRequest:
		return v.validateCreateRequest(ctx, value, fields...)
	case *models.CreateRequest:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateCreateRequest(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *MetadataValidator) validateCreateRequest(_ context.Context, req models.CreateRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPayloadPath, FieldMetadata, FieldShape}
	}

	for _, f := range fields {
		switch f {
		case FieldPayloadPath:
			if strings.TrimSpace(req.PayloadPath) == "" {
				return ErrEmptyPayloadPath
			}
		case FieldMetadata:
			if strings.TrimSpace(req.Metadata) == "" {
				return ErrEmptyMetadata
			}
		case FieldShape:
			if !req.Force && !ed3.LooksLikeJSON(req.Metadata) {
				return ErrNonJSONShape
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
