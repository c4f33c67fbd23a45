// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// ErrInvalidRequestBody is returned when a request body cannot be read or
// decoded.
var ErrInvalidRequestBody = errors.New("invalid request body")
