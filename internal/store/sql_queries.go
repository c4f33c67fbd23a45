// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-ed3/models"
)

const containersTable = "containers"

var catalogColumns = []string{
	"id",
	"path",
	"action",
	"payload_size",
	"metadata_size",
	"has_metadata",
	"payload_format",
	"payload_digest",
	"created_at",
}

func buildInsertCatalogEntryQuery(b sq.StatementBuilderType, e models.CatalogEntry) (string, []any, error) {
	return b.Insert(containersTable).
		Columns(catalogColumns...).
		Values(
			e.ID,
			e.Path,
			string(e.Action),
			e.PayloadSize,
			e.MetadataSize,
			e.HasMetadata,
			e.PayloadFormat,
			e.PayloadDigest,
			e.CreatedAt,
		).
		ToSql()
}

func buildListRecentQuery(b sq.StatementBuilderType, limit uint64) (string, []any, error) {
	return b.Select(catalogColumns...).
		From(containersTable).
		OrderBy("created_at DESC", "id DESC").
		Limit(limit).
		ToSql()
}

func buildFindByPathQuery(b sq.StatementBuilderType, path string) (string, []any, error) {
	return b.Select(catalogColumns...).
		From(containersTable).
		Where(sq.Eq{"path": path}).
		OrderBy("created_at DESC", "id DESC").
		Limit(1).
		ToSql()
}
