// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ed3

import (
	"fmt"
	"unicode/utf8"
)

// Container is the in-memory view of a parsed ED3 artifact.
type Container struct {
	// Payload is the exact byte range preceding the marker, or the whole
	// input when no marker was found. It aliases the parsed slice.
	Payload []byte

	// Metadata is the text following the marker. Empty when HasMetadata is
	// false, but also possibly empty when a marker ends the input.
	Metadata string

	// HasMetadata reports whether a marker was found.
	HasMetadata bool

	// MarkerOffset is the index of the marker in the parsed input, or -1.
	MarkerOffset int
}

// Parse splits data at the first marker occurrence.
//
// Without a marker the whole input is returned as payload and HasMetadata is
// false. With a marker, the trailing bytes must be valid UTF-8, otherwise
// Parse returns an error wrapping [ErrMalformedMetadataEncoding] and a zero
// Container.
func Parse(data []byte) (Container, error) {
	idx := IndexOf(data, []byte(MarkerText))
	if idx < 0 {
		return Container{
			Payload:      data,
			MarkerOffset: -1,
		}, nil
	}

	tail := data[idx+MarkerLen:]
	if off := invalidUTF8Offset(tail); off >= 0 {
		return Container{}, fmt.Errorf("%w: invalid byte at metadata offset %d", ErrMalformedMetadataEncoding, off)
	}

	return Container{
		// cap the slice so appending to Payload never overwrites the marker
		Payload:      data[:idx:idx],
		Metadata:     string(tail),
		HasMetadata:  true,
		MarkerOffset: idx,
	}, nil
}

// invalidUTF8Offset returns the offset of the first byte that does not start
// a valid UTF-8 sequence, or -1 if b is valid.
func invalidUTF8Offset(b []byte) int {
	if utf8.Valid(b) {
		return -1
	}

	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}

	return -1
}
