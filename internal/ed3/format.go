// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ed3

import (
	"bytes"
	"encoding/binary"
)

// PayloadFormat is the audio format guessed from a payload's magic bytes.
type PayloadFormat int

const (
	// FormatUnknown is returned when no known signature matches.
	FormatUnknown PayloadFormat = iota
	FormatMP3
	FormatFLAC
	FormatOgg
	FormatOpus
	FormatWAV
	FormatAIFF
	FormatM4A
)

// String returns a short display name.
func (f PayloadFormat) String() string {
	switch f {
	case FormatMP3:
		return "MP3"
	case FormatFLAC:
		return "FLAC"
	case FormatOgg:
		return "Ogg Vorbis"
	case FormatOpus:
		return "Opus"
	case FormatWAV:
		return "WAV"
	case FormatAIFF:
		return "AIFF"
	case FormatM4A:
		return "M4A"
	default:
		return "Unknown"
	}
}

// Extension returns the file extension used when the payload is written out
// for playback. Unknown payloads get ".mp3", since ED3 files are built from
// MP3 sources by default.
func (f PayloadFormat) Extension() string {
	switch f {
	case FormatFLAC:
		return ".flac"
	case FormatOgg:
		return ".ogg"
	case FormatOpus:
		return ".opus"
	case FormatWAV:
		return ".wav"
	case FormatAIFF:
		return ".aiff"
	case FormatM4A:
		return ".m4a"
	default:
		return ".mp3"
	}
}

// DetectPayloadFormat inspects the leading bytes of payload. Detection is by
// signature only; the rest of the stream is not validated.
func DetectPayloadFormat(payload []byte) PayloadFormat {
	if len(payload) < 4 {
		return FormatUnknown
	}

	magic := payload[:4]

	switch {
	case bytes.Equal(magic, []byte("fLaC")):
		return FormatFLAC
	case bytes.Equal(magic[:3], []byte("ID3")):
		return FormatMP3
	// MPEG audio frame sync: 11 set bits
	case magic[0] == 0xFF && magic[1]&0xE0 == 0xE0:
		return FormatMP3
	case bytes.Equal(magic, []byte("OggS")):
		return detectOggCodec(payload)
	case bytes.Equal(magic, []byte("RIFF")):
		if len(payload) >= 12 && bytes.Equal(payload[8:12], []byte("WAVE")) {
			return FormatWAV
		}
	case bytes.Equal(magic, []byte("FORM")):
		if len(payload) >= 12 && (bytes.Equal(payload[8:12], []byte("AIFF")) || bytes.Equal(payload[8:12], []byte("AIFC"))) {
			return FormatAIFF
		}
	}

	// ISO base media: [size:4]["ftyp"][brand:4]
	if len(payload) >= 12 && bytes.Equal(payload[4:8], []byte("ftyp")) && binary.BigEndian.Uint32(payload[:4]) >= 12 {
		return FormatM4A
	}

	return FormatUnknown
}

// detectOggCodec looks for the OpusHead magic at the start of the first
// packet. The first Ogg page header is 27 bytes plus a segment table whose
// length is stored at offset 26.
func detectOggCodec(payload []byte) PayloadFormat {
	if len(payload) < 27 {
		return FormatOgg
	}

	packet := 27 + int(payload[26])
	if packet+8 <= len(payload) && bytes.Equal(payload[packet:packet+8], []byte("OpusHead")) {
		return FormatOpus
	}

	return FormatOgg
}
