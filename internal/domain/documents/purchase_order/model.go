// Package purchase_order provides the PurchaseOrder document.
package purchase_order

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"cableworks/internal/core/apperror"
	"cableworks/internal/core/entity"
	"cableworks/internal/core/id"
	"cableworks/internal/domain/finance"
)

// OrderStatus tracks the lifecycle of a purchase order.
type OrderStatus string

const (
	StatusDraft     OrderStatus = "draft"
	StatusSent      OrderStatus = "sent"
	StatusReceived  OrderStatus = "received"
	StatusCancelled OrderStatus = "cancelled"
)

// PurchaseOrder represents an order placed with a supplier.
//
// Unlike invoices, tax and shipping are entered as flat amounts taken
// from the supplier's quotation, not derived from rates. The final
// payable amount is floored at zero.
type PurchaseOrder struct {
	entity.Document

	// SupplierID references the supplying partner
	SupplierID id.ID `db:"supplier_id" json:"supplierId"`

	// ProductID references the ordered product
	ProductID id.ID `db:"product_id" json:"productId"`

	// QuantityOrdered in the product's base unit
	QuantityOrdered decimal.Decimal `db:"quantity_ordered" json:"quantityOrdered"`

	// UnitPrice quoted by the supplier
	UnitPrice decimal.Decimal `db:"unit_price" json:"unitPrice"`

	// TaxAmount quoted as a flat amount
	TaxAmount decimal.Decimal `db:"tax_amount" json:"taxAmount"`

	// ShippingCost quoted as a flat amount
	ShippingCost decimal.Decimal `db:"shipping_cost" json:"shippingCost"`

	// DiscountAmount negotiated as a flat amount
	DiscountAmount decimal.Decimal `db:"discount_amount" json:"discountAmount"`

	// AmountPaid advanced to the supplier so far. Tracked on the order
	// but feeds no derived amount.
	AmountPaid decimal.Decimal `db:"amount_paid" json:"amountPaid"`

	// Status tracks the order lifecycle
	Status OrderStatus `db:"status" json:"status"`

	// ExpectedDate is the promised delivery date
	ExpectedDate *time.Time `db:"expected_date" json:"expectedDate,omitempty"`

	// Derived fields, replaced wholesale by Recalculate
	TotalAmount decimal.Decimal `db:"total_amount" json:"totalAmount"`
	FinalAmount decimal.Decimal `db:"final_amount" json:"finalAmount"`
}

// NewPurchaseOrder creates a new purchase order document.
func NewPurchaseOrder(organizationID string, supplierID, productID id.ID) *PurchaseOrder {
	return &PurchaseOrder{
		Document:   entity.NewDocument(organizationID),
		SupplierID: supplierID,
		ProductID:  productID,
		Status:     StatusDraft,
	}
}

// Recalculate replaces the derived amounts from the current base fields.
// The final amount never goes below zero.
func (po *PurchaseOrder) Recalculate() {
	derived := finance.ComputePurchaseAmounts(finance.PurchaseBase{
		QuantityOrdered: po.QuantityOrdered,
		UnitPrice:       po.UnitPrice,
		TaxAmount:       po.TaxAmount,
		ShippingCost:    po.ShippingCost,
		DiscountAmount:  po.DiscountAmount,
	})

	po.TotalAmount = derived.TotalAmount
	po.FinalAmount = derived.FinalAmount
}

// Validate implements entity.Validatable.
func (po *PurchaseOrder) Validate(ctx context.Context) error {
	if err := po.Document.Validate(ctx); err != nil {
		return err
	}

	if id.IsNil(po.SupplierID) {
		return apperror.NewValidation("supplier is required").
			WithDetail("field", "supplierId")
	}

	if id.IsNil(po.ProductID) {
		return apperror.NewValidation("product is required").
			WithDetail("field", "productId")
	}

	if !po.QuantityOrdered.IsPositive() {
		return apperror.NewValidation("quantity must be positive").
			WithDetail("field", "quantityOrdered")
	}

	if po.UnitPrice.IsNegative() {
		return apperror.NewValidation("unit price cannot be negative").
			WithDetail("field", "unitPrice")
	}

	if po.TaxAmount.IsNegative() {
		return apperror.NewValidation("tax amount cannot be negative").
			WithDetail("field", "taxAmount")
	}

	if po.ShippingCost.IsNegative() {
		return apperror.NewValidation("shipping cost cannot be negative").
			WithDetail("field", "shippingCost")
	}

	if po.DiscountAmount.IsNegative() {
		return apperror.NewValidation("discount cannot be negative").
			WithDetail("field", "discountAmount")
	}

	if po.AmountPaid.IsNegative() {
		return apperror.NewValidation("amount paid cannot be negative").
			WithDetail("field", "amountPaid")
	}

	if po.Status != "" && !isValidStatus(po.Status) {
		return apperror.NewValidation("invalid order status").
			WithDetail("field", "status").
			WithDetail("value", string(po.Status))
	}

	return nil
}

func isValidStatus(s OrderStatus) bool {
	switch s {
	case StatusDraft, StatusSent, StatusReceived, StatusCancelled:
		return true
	}
	return false
}
