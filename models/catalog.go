// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// CatalogAction tells whether a catalog entry was recorded on create or open.
type CatalogAction string

const (
	ActionCreated CatalogAction = "created"
	ActionOpened  CatalogAction = "opened"
)

// CatalogEntry is one row of the local history of created and opened
// artifacts.
type CatalogEntry struct {
	ID            string        `json:"id"`
	Path          string        `json:"path"`
	Action        CatalogAction `json:"action"`
	PayloadSize   int64         `json:"payload_size"`
	MetadataSize  int64         `json:"metadata_size"`
	HasMetadata   bool          `json:"has_metadata"`
	PayloadFormat string        `json:"payload_format"`
	PayloadDigest string        `json:"payload_digest"`
	CreatedAt     time.Time     `json:"created_at"`
}
