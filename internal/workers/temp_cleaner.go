// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-ed3/internal/logger"
	"github.com/MKhiriev/go-ed3/internal/store"
)

// TempCleaner removes payloads extracted for playback once they are older
// than maxAge.
type TempCleaner struct {
	files    store.FileStorage
	interval time.Duration
	maxAge   time.Duration

	logger *logger.Logger
}

func NewTempCleaner(files store.FileStorage, interval, maxAge time.Duration, logger *logger.Logger) *TempCleaner {
	return &TempCleaner{
		files:    files,
		interval: interval,
		maxAge:   maxAge,
		logger:   logger,
	}
}

// Run cleans once immediately, then every interval. A non-positive interval
// disables the loop.
func (c *TempCleaner) Run(ctx context.Context) {
	if err := c.RunOnce(ctx); err != nil {
		c.logger.Warn().Err(err).Str("func", "TempCleaner.Run").Msg("temp cleanup failed")
	}
	if c.interval <= 0 {
		return
	}

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			c.logger.Debug().Str("func", "TempCleaner.Run").Msg("temp cleaner stopped")
			return
		case <-ticker.C:
			if err := c.RunOnce(ctx); err != nil {
				c.logger.Warn().Err(err).Str("func", "TempCleaner.Run").Msg("temp cleanup failed")
			}
		}
	}
}

func (c *TempCleaner) RunOnce(ctx context.Context) error {
	removed, err := c.files.CleanupTemp(ctx, c.maxAge)
	if err != nil {
		return fmt.Errorf("error cleaning temp files: %w", err)
	}

	if removed > 0 {
		c.logger.Info().
			Str("func", "TempCleaner.RunOnce").
			Int("removed", removed).
			Msg("stale temp files removed")
	}

	return nil
}
