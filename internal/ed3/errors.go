// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ed3

import "errors"

// ErrMalformedMetadataEncoding is returned by [Parse] when the bytes after the
// marker are not valid UTF-8. It is distinct from a missing marker, which is
// not an error.
var ErrMalformedMetadataEncoding = errors.New("metadata is not valid UTF-8")
