package entity

import (
	"context"

	"cableworks/internal/core/apperror"
)

// Catalog is the shared shape of reference data: units, products,
// partners, employees, organizations. Concrete catalogs embed it and
// add their own fields.
type Catalog struct {
	BaseCatalog

	// Code is unique within a catalog; empty at creation means the
	// numerator assigns one before save
	Code string `db:"code" json:"code"`

	Name string `db:"name" json:"name"`

	// ParentID and IsFolder form the group hierarchy
	ParentID *string `db:"parent_id" json:"parentId,omitempty"`
	IsFolder bool    `db:"is_folder" json:"isFolder"`
}

// NewCatalog creates a catalog item with a generated ID.
func NewCatalog(code, name string) Catalog {
	return Catalog{
		BaseCatalog: NewBaseCatalog(),
		Code:        code,
		Name:        name,
	}
}

// Validate checks the invariants shared by every catalog.
func (c *Catalog) Validate(ctx context.Context) error {
	if c.Name == "" {
		return apperror.NewValidation("name is required").
			WithDetail("field", "name")
	}
	return nil
}
