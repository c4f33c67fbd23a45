// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helpers used across the
// application: payload digests, identifier generation, HTTP response writing
// and HTTP client construction.
package utils
