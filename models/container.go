// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CreateRequest describes a single "create .ed3" action.
type CreateRequest struct {
	// PayloadPath is the source audio file.
	PayloadPath string

	// Metadata is the text to embed. Surrounding whitespace is trimmed
	// before building.
	Metadata string

	// OutputPath overrides the destination. When empty the artifact is
	// written next to the source as "<name>.ed3".
	OutputPath string

	// Force skips the JSON shape confirmation.
	Force bool
}

// CreateResult reports what was written by a create action.
type CreateResult struct {
	OutputPath    string
	PayloadSize   int
	MetadataSize  int
	Size          int
	PayloadFormat string

	// MarkerCollision is set when the source payload already contains the
	// marker; the artifact will not parse back into the same payload.
	MarkerCollision bool
}

// OpenResult is the parsed content of an artifact.
type OpenResult struct {
	Path          string
	Payload       []byte
	Metadata      string
	HasMetadata   bool
	PayloadFormat string

	// PayloadExt is the file extension used when the payload is extracted
	// for playback.
	PayloadExt string
}

// InspectResult is one row of a batch inspection. Err is set when the file
// could not be opened; the other fields are then zero.
type InspectResult struct {
	Path          string
	Size          int
	PayloadSize   int
	MetadataSize  int
	HasMetadata   bool
	PayloadFormat string
	LooksLikeJSON bool
	Err           error
}
