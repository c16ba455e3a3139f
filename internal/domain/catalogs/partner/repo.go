package partner

import (
	"context"

	"cableworks/internal/core/id"
	"cableworks/internal/domain"
)

// Repository defines the interface for Partner persistence.
type Repository interface {
	domain.CatalogRepository[*Partner]

	// FindByGSTIN retrieves partner by GSTIN (unique across the catalog).
	FindByGSTIN(ctx context.Context, gstin string) (*Partner, error)

	// GetForUpdate retrieves partner with row lock (for transactional updates).
	GetForUpdate(ctx context.Context, id id.ID) (*Partner, error)
}
