package employee

import (
	"context"

	"cableworks/internal/core/id"
	"cableworks/internal/domain"
)

// Repository defines the interface for Employee persistence.
type Repository interface {
	domain.CatalogRepository[*Employee]

	// FindByPAN retrieves employee by PAN (unique across the catalog).
	FindByPAN(ctx context.Context, pan string) (*Employee, error)

	// GetForUpdate retrieves employee with row lock.
	GetForUpdate(ctx context.Context, id id.ID) (*Employee, error)
}
