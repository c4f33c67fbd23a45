// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer messages used by the CLI,
// the TUI and the HTTP handlers.
//
// All Msg* constants are human-readable strings shown to the user or written
// into HTTP response bodies.
package app

const (
	// MsgInvalidDataProvided is returned when a request body cannot be decoded.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned when an unexpected failure occurs.
	MsgInternalServerError = "internal server error"

	// MsgNoPayloadFileProvided is shown when no source audio file was chosen.
	MsgNoPayloadFileProvided = "Please select an audio file first."

	// MsgNoMetadataProvided is shown for empty or whitespace-only metadata.
	MsgNoMetadataProvided = "Please enter JSON metadata."

	// MsgMetadataNotJSON is shown before asking the user to confirm non-JSON
	// metadata.
	MsgMetadataNotJSON = "Text does not look like JSON. Continue?"

	// MsgSourceNotFound is shown when the chosen file does not exist.
	MsgSourceNotFound = "File not found."

	// MsgMalformedMetadata is shown when the bytes after the marker are not
	// valid UTF-8.
	MsgMalformedMetadata = "Embedded metadata is not valid UTF-8 text."

	// MsgReadFailed is shown when a file exists but cannot be read.
	MsgReadFailed = "Could not read file."

	// MsgWriteFailed is shown when the output file cannot be written.
	MsgWriteFailed = "Could not write output file."

	// MsgNoEmbeddedJSON is shown when an opened file has no marker.
	MsgNoEmbeddedJSON = "No embedded JSON found in this .ed3 file."

	// MsgPlayerUnavailable is shown when no media player could be launched.
	MsgPlayerUnavailable = "No media player available to open the audio."

	// MsgClipboardUnavailable is shown when copying to the clipboard fails.
	MsgClipboardUnavailable = "Clipboard is not available."

	// MsgServerUnavailable is shown when the remote codec server cannot be
	// reached.
	MsgServerUnavailable = "ED3 server is unavailable."

	// MsgCatalogUnavailable is shown by the recent list when the catalog
	// database cannot be opened.
	MsgCatalogUnavailable = "Recent files are unavailable: the catalog database could not be opened."

	// MsgMarkerCollision warns that the payload already contains the marker
	// and the artifact will not round-trip.
	MsgMarkerCollision = "Warning: the audio data already contains the ED3 marker; the file will not open back identically."
)
