// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-ed3/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildInsertCatalogEntryQuery_Placeholders(t *testing.T) {
	entry := models.CatalogEntry{
		ID:        "id-1",
		Path:      "/a.ed3",
		Action:    models.ActionCreated,
		CreatedAt: time.Unix(0, 0).UTC(),
	}

	tests := []struct {
		name    string
		builder sq.StatementBuilderType
		want    string
	}{
		{name: "postgres", builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar), want: "$9"},
		{name: "sqlite", builder: sq.StatementBuilder.PlaceholderFormat(sq.Question), want: "?,?,?,?,?,?,?,?,?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildInsertCatalogEntryQuery(tt.builder, entry)
			require.NoError(t, err)

			assert.Contains(t, query, "INSERT INTO containers")
			assert.Contains(t, query, tt.want)
			require.Len(t, args, len(catalogColumns))
			assert.Equal(t, "id-1", args[0])
			assert.Equal(t, "created", args[2])
		})
	}
}

func Test_buildListRecentQuery(t *testing.T) {
	query, args, err := buildListRecentQuery(sq.StatementBuilder.PlaceholderFormat(sq.Dollar), 10)
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.Contains(t, q, "from containers")
	assert.Contains(t, q, "order by created_at desc")
	assert.Contains(t, q, "limit 10")
	assert.Empty(t, args)
}

func Test_buildFindByPathQuery(t *testing.T) {
	query, args, err := buildFindByPathQuery(sq.StatementBuilder.PlaceholderFormat(sq.Dollar), "/a.ed3")
	require.NoError(t, err)

	assert.Contains(t, query, "WHERE path = $1")
	assert.Contains(t, query, "LIMIT 1")
	assert.Equal(t, []any{"/a.ed3"}, args)
}
