package entity

import (
	"context"
	"time"

	"cableworks/internal/core/id"
)

// Validatable is implemented by entities that check their own
// invariants without touching the database.
type Validatable interface {
	Validate(ctx context.Context) error
}

// BaseEntity holds the fields every stored record carries: a UUIDv7
// primary key, the soft-delete mark, the optimistic-locking version
// and the JSONB custom attributes.
type BaseEntity struct {
	ID           id.ID      `db:"id" json:"id"`
	DeletionMark bool       `db:"deletion_mark" json:"deletionMark"`
	Version      int        `db:"version" json:"version"`
	Attributes   Attributes `db:"attributes" json:"attributes,omitempty"`

	CDCFields
}

// NewBaseEntity generates an ID and starts the version at 1.
func NewBaseEntity() BaseEntity {
	return BaseEntity{
		ID:      id.New(),
		Version: 1,
	}
}

// Touch increments the optimistic-locking version.
func (b *BaseEntity) Touch() {
	b.Version++
}

// BaseCatalog is the base for reference data records. Catalogs carry
// no audit timestamps.
type BaseCatalog struct {
	BaseEntity
}

func NewBaseCatalog() BaseCatalog {
	return BaseCatalog{BaseEntity: NewBaseEntity()}
}

// BaseDocument adds audit fields to the entity base. Documents record
// who created and last changed them and when.
type BaseDocument struct {
	BaseEntity

	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
	CreatedBy string    `db:"created_by" json:"createdBy,omitempty"`
	UpdatedBy string    `db:"updated_by" json:"updatedBy,omitempty"`
}

func NewBaseDocument() BaseDocument {
	now := time.Now().UTC()
	return BaseDocument{
		BaseEntity: NewBaseEntity(),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// Touch bumps the version and the updated timestamp together.
func (b *BaseDocument) Touch() {
	b.UpdatedAt = time.Now().UTC()
	b.BaseEntity.Touch()
}
