// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package ed3 implements the ED3 container format: an arbitrary binary
// payload (typically an audio file) followed by a fixed marker and a block of
// UTF-8 metadata text, usually JSON.
//
// Layout on disk:
//
//	<payload bytes><marker><metadata text, UTF-8>
//
// where the marker is the UTF-8 encoding of "\n--ED3-JSON-START--\n".
//
// A file without the marker is a valid container that carries no metadata, so
// a bare audio file can be opened as-is. The parser splits at the first
// occurrence of the marker; a payload that already contains the marker bytes
// will not survive a round trip. Use [ContainsMarker] to detect that case
// before building.
//
// Every function in this package is pure: no I/O, no shared mutable state.
// Reading and writing files is the job of the callers (see internal/store).
package ed3
