package invoice

import (
	"context"
	"time"

	"cableworks/internal/core/id"
	"cableworks/internal/domain"
)

// Repository defines operations for invoice documents.
type Repository interface {
	Create(ctx context.Context, doc *Invoice) error
	GetByID(ctx context.Context, docID id.ID) (*Invoice, error)
	GetByNumber(ctx context.Context, number string) (*Invoice, error)
	Update(ctx context.Context, doc *Invoice) error
	Delete(ctx context.Context, docID id.ID) error

	List(ctx context.Context, filter ListFilter) (domain.ListResult[*Invoice], error)

	// GetForUpdate retrieves invoice with row lock.
	GetForUpdate(ctx context.Context, docID id.ID) (*Invoice, error)
}

// ListFilter for filtering invoices.
type ListFilter struct {
	domain.ListFilter

	CustomerID *id.ID
	ProductID  *id.ID
	Posted     *bool
	Unsettled  *bool
	DateFrom   *time.Time
	DateTo     *time.Time
}
