// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrEmptyMetadata is returned for empty or whitespace-only metadata.
	ErrEmptyMetadata = errors.New("no metadata provided")
	// ErrEmptyPayloadPath is returned when no source file was chosen.
	ErrEmptyPayloadPath = errors.New("no payload file provided")
	// ErrNonJSONShape is advisory: the metadata does not look like JSON.
	ErrNonJSONShape = errors.New("metadata does not look like JSON")
)

// IsAdvisory reports whether err only needs a user confirmation rather than
// aborting the operation.
func IsAdvisory(err error) bool {
	return errors.Is(err, ErrNonJSONShape)
}
