// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import "errors"

var (
	errMetadataArgs  = errors.New("pass the metadata text or --metadata-file, not both")
	errInspectFailed = errors.New("some files could not be inspected")
)
