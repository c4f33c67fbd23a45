// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the HTTP API of `ed3 serve`.
//
// It owns the listener lifecycle: startup, signal handling and graceful
// shutdown. Background workers run for as long as the server does.
package server
