package document_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"cableworks/internal/domain"
	"cableworks/internal/domain/documents/purchase_order"
	"cableworks/internal/infrastructure/storage/postgres"
)

const purchaseOrdersTable = "doc_purchase_orders"

// PurchaseOrderRepo implements purchase_order.Repository.
type PurchaseOrderRepo struct {
	*BaseDocumentRepo[*purchase_order.PurchaseOrder]
}

// NewPurchaseOrderRepo creates a new purchase order repository.
func NewPurchaseOrderRepo(txManager *postgres.TxManager) *PurchaseOrderRepo {
	return &PurchaseOrderRepo{
		BaseDocumentRepo: NewBaseDocumentRepo[*purchase_order.PurchaseOrder](
			txManager,
			purchaseOrdersTable,
			postgres.ExtractDBColumns[purchase_order.PurchaseOrder](),
			func() *purchase_order.PurchaseOrder { return &purchase_order.PurchaseOrder{} },
		),
	}
}

// List retrieves purchase orders with order-specific filtering.
func (r *PurchaseOrderRepo) List(ctx context.Context, f purchase_order.ListFilter) (domain.ListResult[*purchase_order.PurchaseOrder], error) {
	q := r.baseSelect(ctx)

	if !f.IncludeDeleted {
		q = q.Where(squirrel.Eq{"deletion_mark": false})
	}
	if f.SupplierID != nil {
		q = q.Where(squirrel.Eq{"supplier_id": *f.SupplierID})
	}
	if f.ProductID != nil {
		q = q.Where(squirrel.Eq{"product_id": *f.ProductID})
	}
	if f.Status != nil {
		q = q.Where(squirrel.Eq{"status": *f.Status})
	}
	if f.Posted != nil {
		q = q.Where(squirrel.Eq{"posted": *f.Posted})
	}
	if f.DateFrom != nil {
		q = q.Where(squirrel.GtOrEq{"date": *f.DateFrom})
	}
	if f.DateTo != nil {
		q = q.Where(squirrel.LtOrEq{"date": *f.DateTo})
	}
	if f.Search != "" {
		q = q.Where(squirrel.ILike{"number": "%" + f.Search + "%"})
	}

	orderBy := "date DESC"
	if f.OrderBy != "" {
		orderBy = f.OrderBy
	}

	return r.runList(ctx, q, orderBy, f.Limit, f.Offset)
}
