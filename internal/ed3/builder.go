// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ed3

// Build concatenates payload, the marker and the UTF-8 bytes of metadata into
// a newly allocated slice of length len(payload)+MarkerLen+len(metadata).
//
// Build does not validate metadata; rejecting empty or non-JSON text is the
// caller's decision. The returned slice never shares memory with payload.
func Build(payload []byte, metadata string) []byte {
	out := make([]byte, 0, BuiltSize(len(payload), metadata))
	out = append(out, payload...)
	out = append(out, MarkerText...)
	out = append(out, metadata...)

	return out
}

// BuiltSize returns the length of the container Build would produce for a
// payload of payloadLen bytes and the given metadata.
func BuiltSize(payloadLen int, metadata string) int {
	return payloadLen + MarkerLen + len(metadata)
}
