// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// BuildRequest is the body of POST /api/containers/build. Payload travels
// base64-encoded, as encoding/json does for []byte.
type BuildRequest struct {
	Payload  []byte `json:"payload"`
	Metadata string `json:"metadata"`
	Force    bool   `json:"force,omitempty"`
}

// ParseResponse is the body returned by POST /api/containers/parse.
type ParseResponse struct {
	Payload       []byte  `json:"payload"`
	Metadata      *string `json:"metadata"`
	HasMetadata   bool    `json:"has_metadata"`
	PayloadFormat string  `json:"payload_format"`
	PayloadSize   int     `json:"payload_size"`
}

// Error codes carried in the "code" field of HTTP error responses.
const (
	ErrCodeInvalidData       = "invalid_data"
	ErrCodeEmptyMetadata     = "empty_metadata"
	ErrCodeNonJSONShape      = "non_json_shape"
	ErrCodeMalformedMetadata = "malformed_metadata_encoding"
	ErrCodeBodyTooLarge      = "body_too_large"
	ErrCodeInternal          = "internal"
	ErrCodeNotFound          = "not_found"
	ErrCodeMethodNotAllowed  = "method_not_allowed"
)
