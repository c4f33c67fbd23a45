// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs background jobs next to the interactive commands and
// the HTTP server. Every worker stops when its context is cancelled.
package workers

import "context"

// Worker is a periodic background job.
type Worker interface {
	// Run repeats the job until ctx is cancelled.
	Run(ctx context.Context)
	// RunOnce performs a single pass.
	RunOnce(ctx context.Context) error
}
