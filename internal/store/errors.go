// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// File storage errors. Callers should use [errors.Is] to match against these
// values.
var (
	// ErrSourceNotFound is returned when a file to be read does not exist or
	// is a directory.
	ErrSourceNotFound = errors.New("source file not found")

	// ErrReadFailed is returned when an existing file cannot be read.
	ErrReadFailed = errors.New("failed to read file")

	// ErrWriteFailed is returned when a file cannot be written. The
	// destination is left untouched.
	ErrWriteFailed = errors.New("failed to write file")
)

// Catalog errors.
var (
	// ErrCatalogEntryNotFound is returned when no entry matches a lookup.
	ErrCatalogEntryNotFound = errors.New("catalog entry was not found")

	// ErrCatalogEntryNotSaved is returned when an INSERT produced no id.
	ErrCatalogEntryNotSaved = errors.New("catalog entry was not saved")

	// ErrCatalogUnavailable is returned by catalog reads when the catalog
	// database could not be opened or migrated.
	ErrCatalogUnavailable = errors.New("catalog is unavailable")

	// ErrUnsupportedDialect is returned for an unknown SQL dialect.
	ErrUnsupportedDialect = errors.New("unsupported sql dialect")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan catalog row")

	// ErrScanningRows is returned when iterating over result rows fails.
	ErrScanningRows = errors.New("failed to scan catalog rows")
)
