package product

import (
	"context"

	"cableworks/internal/core/id"
	"cableworks/internal/domain"
)

// Repository defines the interface for Product persistence.
type Repository interface {
	domain.CatalogRepository[*Product]

	// FindByArticle retrieves product by article.
	FindByArticle(ctx context.Context, article string) (*Product, error)

	// GetForUpdate retrieves product with row lock.
	GetForUpdate(ctx context.Context, id id.ID) (*Product, error)
}
