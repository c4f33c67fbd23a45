// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"time"
)

const (
	DefaultHTTPAddress         = "localhost:8080"
	DefaultRequestTimeout      = 30 * time.Second
	DefaultMaxBodySize         = 256 << 20
	DefaultTempCleanupInterval = 10 * time.Minute
	DefaultTempMaxAge          = time.Hour
	DefaultCatalogFile         = "catalog.db"
)

// defaults returns the lowest-priority configuration layer.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		Storage: Storage{
			DB:    DB{DSN: defaultCatalogDSN()},
			Files: Files{TempDir: os.TempDir()},
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
			MaxBodySize:    DefaultMaxBodySize,
		},
		Adapter: Adapter{
			RequestTimeout: DefaultRequestTimeout,
		},
		Workers: Workers{
			TempCleanupInterval: DefaultTempCleanupInterval,
			TempMaxAge:          DefaultTempMaxAge,
		},
	}
}

// defaultCatalogDSN places the SQLite catalog in the user config directory,
// falling back to the working directory.
func defaultCatalogDSN() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return DefaultCatalogFile
	}

	return filepath.Join(dir, "ed3", DefaultCatalogFile)
}
