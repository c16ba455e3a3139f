package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cableworks/internal/core/entity"
	"cableworks/internal/core/id"
)

type fakeCatalogRow struct {
	entity.BaseCatalog
	Code   string `db:"code" json:"code"`
	Name   string `db:"name" json:"name"`
	Hidden string `db:"-"`
	NoTag  string
}

func TestExtractDBColumns_FlattensEmbedded(t *testing.T) {
	cols := ExtractDBColumns[fakeCatalogRow]()

	for _, want := range []string{
		"id", "deletion_mark", "version", "attributes", "_deleted_at", "_txid", "code", "name",
	} {
		assert.Contains(t, cols, want)
	}

	assert.NotContains(t, cols, "-")
	assert.NotContains(t, cols, "Hidden")
	assert.NotContains(t, cols, "NoTag")
}

func TestStructToMap_FlattensEmbedded(t *testing.T) {
	deletedAt := time.Date(2026, 7, 1, 10, 0, 0, 0, time.UTC)
	row := fakeCatalogRow{
		BaseCatalog: entity.BaseCatalog{
			BaseEntity: entity.BaseEntity{
				ID:           id.New(),
				DeletionMark: true,
				Version:      5,
				CDCFields: entity.CDCFields{
					TxID:      12345,
					DeletedAt: &deletedAt,
				},
			},
		},
		Code:   "CBL-001",
		Name:   "Copper conductor 1.5mm",
		Hidden: "not stored",
	}

	m := StructToMap(row)

	assert.Equal(t, row.ID, m["id"])
	assert.Equal(t, true, m["deletion_mark"])
	assert.Equal(t, 5, m["version"])
	assert.Equal(t, int64(12345), m["_txid"])
	assert.Equal(t, &deletedAt, m["_deleted_at"])
	assert.Equal(t, "CBL-001", m["code"])
	assert.Equal(t, "Copper conductor 1.5mm", m["name"])

	_, hasHidden := m["-"]
	assert.False(t, hasHidden)
}

func TestStructToMap_PointerAndNonStruct(t *testing.T) {
	row := &fakeCatalogRow{Code: "X"}
	m := StructToMap(row)
	require.NotNil(t, m)
	assert.Equal(t, "X", m["code"])

	assert.Nil(t, StructToMap(42))
}
