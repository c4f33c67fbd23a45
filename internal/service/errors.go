// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrNoMetadata is returned when an operation needs metadata but the
	// container carries none.
	ErrNoMetadata = errors.New("container has no embedded metadata")
)
