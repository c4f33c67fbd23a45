// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net/url"
	"strings"
)

// validate checks that the final merged [StructuredConfig] is usable.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || cfg.Storage.DB.IsInMemory() {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 || cfg.Server.MaxBodySize <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Adapter.HTTPAddress != "" {
		u, err := url.Parse(cfg.Adapter.HTTPAddress)
		if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
			return ErrInvalidAdapterConfigs
		}
	}
	if cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.TempCleanupInterval <= 0 || cfg.Workers.TempMaxAge <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

// IsPostgres reports whether the catalog DSN points to PostgreSQL.
func (db DB) IsPostgres() bool {
	return strings.HasPrefix(db.DSN, "postgres://") || strings.HasPrefix(db.DSN, "postgresql://")
}

// IsInMemory reports whether the DSN names a SQLite in-memory database
// (":memory:", "file::memory:" or a mode=memory query), which would lose the
// catalog on exit.
func (db DB) IsInMemory() bool {
	if db.IsPostgres() {
		return false
	}

	if strings.HasPrefix(db.DSN, ":memory:") || strings.HasPrefix(db.DSN, "file::memory:") {
		return true
	}

	_, query, ok := strings.Cut(db.DSN, "?")
	if !ok {
		return false
	}
	values, err := url.ParseQuery(query)

	return err == nil && values.Get("mode") == "memory"
}

// IsRemote reports whether Build and Parse go through a remote server.
func (a Adapter) IsRemote() bool {
	return a.HTTPAddress != ""
}
