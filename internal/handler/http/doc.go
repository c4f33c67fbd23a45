// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP API of `ed3 serve`.
//
// The API is a stateless codec: clients upload a payload and metadata to get
// a container back, or upload a container to get its parts. Request tracing,
// access logging, compression and body limits are handled by middlewares
// before requests reach the handlers.
package http
