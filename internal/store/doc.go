// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements persistence for go-ed3: file access for payloads
// and containers ([FileStorage]) and the SQL catalog of created and opened
// containers ([CatalogRepository]).
//
// The catalog runs on SQLite (default) or PostgreSQL. The driver is chosen by
// the DSN: anything starting with postgres:// goes to pgx, everything else is
// treated as a SQLite file path.
package store
