// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ed3

// MarkerText is the delimiter between payload and metadata. Builders and
// parsers of every ED3 implementation must agree on exactly these bytes.
const MarkerText = "\n--ED3-JSON-START--\n"

// MarkerLen is the length of the marker in bytes.
const MarkerLen = len(MarkerText)

// Extension is the conventional file extension of ED3 artifacts.
const Extension = ".ed3"

// Marker returns a fresh copy of the marker bytes. Callers may modify the
// returned slice without affecting the package.
func Marker() []byte {
	return []byte(MarkerText)
}

// ContainsMarker reports whether payload already holds the marker sequence.
// Such a payload splits at the wrong offset when parsed back.
func ContainsMarker(payload []byte) bool {
	return IndexOf(payload, []byte(MarkerText)) >= 0
}
