// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNoHandler is returned by [NewServer] when there is nothing to serve.
var errNoHandler = errors.New("no http handler configured")
