// Package invoice provides the sales Invoice document.
package invoice

import (
	"context"

	"github.com/shopspring/decimal"

	"cableworks/internal/core/apperror"
	"cableworks/internal/core/entity"
	"cableworks/internal/core/id"
	"cableworks/internal/domain/finance"
)

// Invoice represents a sales invoice issued to a customer.
//
// Base fields (quantity, unit price, discount, paid amount) are entered
// by the user; derived fields (subtotal, tax, total, balance) are always
// recomputed from them and never edited directly.
type Invoice struct {
	entity.Document

	// CustomerID references the partner being billed
	CustomerID id.ID `db:"customer_id" json:"customerId"`

	// ProductID references the invoiced product
	ProductID id.ID `db:"product_id" json:"productId"`

	// Quantity invoiced, in the product's base unit
	Quantity decimal.Decimal `db:"quantity" json:"quantity"`

	// UnitPrice is the price per base unit
	UnitPrice decimal.Decimal `db:"unit_price" json:"unitPrice"`

	// DiscountAmount is a flat discount applied to the invoice
	DiscountAmount decimal.Decimal `db:"discount_amount" json:"discountAmount"`

	// AmountPaid is the sum of payments received against this invoice
	AmountPaid decimal.Decimal `db:"amount_paid" json:"amountPaid"`

	// Derived fields, replaced wholesale by Recalculate
	Subtotal    decimal.Decimal `db:"subtotal" json:"subtotal"`
	TaxAmount   decimal.Decimal `db:"tax_amount" json:"taxAmount"`
	TotalAmount decimal.Decimal `db:"total_amount" json:"totalAmount"`
	BalanceDue  decimal.Decimal `db:"balance_due" json:"balanceDue"`
}

// NewInvoice creates a new invoice document.
func NewInvoice(organizationID string, customerID, productID id.ID) *Invoice {
	return &Invoice{
		Document:   entity.NewDocument(organizationID),
		CustomerID: customerID,
		ProductID:  productID,
	}
}

// Recalculate replaces all derived fields from the current base fields.
// Safe to call any number of times; the result depends only on the base
// fields. Stale derived values are discarded, never read.
func (inv *Invoice) Recalculate() {
	derived := finance.ComputeInvoiceTotals(finance.InvoiceBase{
		Quantity:       inv.Quantity,
		UnitPrice:      inv.UnitPrice,
		DiscountAmount: inv.DiscountAmount,
		AmountPaid:     inv.AmountPaid,
	})

	inv.Subtotal = derived.Subtotal
	inv.TaxAmount = derived.TaxAmount
	inv.TotalAmount = derived.TotalAmount
	inv.BalanceDue = derived.BalanceDue
}

// Validate implements entity.Validatable.
func (inv *Invoice) Validate(ctx context.Context) error {
	if err := inv.Document.Validate(ctx); err != nil {
		return err
	}

	if id.IsNil(inv.CustomerID) {
		return apperror.NewValidation("customer is required").
			WithDetail("field", "customerId")
	}

	if id.IsNil(inv.ProductID) {
		return apperror.NewValidation("product is required").
			WithDetail("field", "productId")
	}

	if !inv.Quantity.IsPositive() {
		return apperror.NewValidation("quantity must be positive").
			WithDetail("field", "quantity")
	}

	if inv.UnitPrice.IsNegative() {
		return apperror.NewValidation("unit price cannot be negative").
			WithDetail("field", "unitPrice")
	}

	if inv.DiscountAmount.IsNegative() {
		return apperror.NewValidation("discount cannot be negative").
			WithDetail("field", "discountAmount")
	}

	if inv.AmountPaid.IsNegative() {
		return apperror.NewValidation("paid amount cannot be negative").
			WithDetail("field", "amountPaid")
	}

	return nil
}

// IsSettled returns true when the invoice is fully paid.
func (inv *Invoice) IsSettled() bool {
	return !inv.BalanceDue.IsPositive()
}
