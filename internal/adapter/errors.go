// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnprocessable       = errors.New("unprocessable content")
	ErrBodyTooLarge        = errors.New("request body too large")
	ErrInternalServerError = errors.New("internal server error")

	// ErrServerUnavailable is returned when the remote server cannot be
	// reached at all.
	ErrServerUnavailable = errors.New("ed3 server unavailable")

	// ErrPlayerUnavailable is returned when no media player can be started.
	ErrPlayerUnavailable = errors.New("media player unavailable")

	// ErrClipboardUnavailable is returned when the system clipboard cannot be
	// used.
	ErrClipboardUnavailable = errors.New("clipboard unavailable")
)
