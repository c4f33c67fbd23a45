// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync"

	"github.com/MKhiriev/go-ed3/internal/config"
	"github.com/MKhiriev/go-ed3/internal/logger"
	"github.com/MKhiriev/go-ed3/internal/store"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the workers backed by files.
func NewWorkers(files store.FileStorage, cfg config.Workers, logger *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			NewTempCleaner(files, cfg.TempCleanupInterval, cfg.TempMaxAge, logger),
		},
	}
}

// Run starts every worker and blocks until all of them return.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Go(func() {
			worker.Run(ctx)
		})
	}
	wg.Wait()
}

// RunOnce runs a single pass of every worker in order.
func (w *Workers) RunOnce(ctx context.Context) error {
	var errs []error
	for _, worker := range w.workers {
		if err := worker.RunOnce(ctx); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
