// Package finance provides the pure recomputation functions behind the
// derived financial fields of invoices, payslips and purchase orders.
//
// Every function here is a total, side-effect-free mapping from base
// fields to derived fields. Callers own validation; the calculators
// compute whatever the arithmetic yields, including negative results.
// Recomputing with the same base fields always produces the same
// derived fields, so callers can re-run them freely after every edit.
package finance

import "github.com/shopspring/decimal"

// InvoiceTaxRate is the fixed tax rate applied to the undiscounted subtotal.
var InvoiceTaxRate = decimal.RequireFromString("0.18")

// InvoiceBase holds the user-supplied fields of a single-line invoice.
type InvoiceBase struct {
	Quantity       decimal.Decimal
	UnitPrice      decimal.Decimal
	DiscountAmount decimal.Decimal
	AmountPaid     decimal.Decimal
}

// InvoiceDerived holds the fields computed from InvoiceBase.
type InvoiceDerived struct {
	Subtotal    decimal.Decimal
	TaxAmount   decimal.Decimal
	TotalAmount decimal.Decimal
	BalanceDue  decimal.Decimal
}

// ComputeInvoiceTotals derives subtotal, tax, total and balance from the
// base fields of an invoice line.
//
// Tax is charged on the full subtotal, not the discounted one. The total
// is NOT floored at zero: a discount larger than subtotal plus tax
// legitimately produces a negative total (and a negative balance once
// payments exceed it). Contrast with ComputePurchaseAmounts, which clamps.
func ComputeInvoiceTotals(base InvoiceBase) InvoiceDerived {
	subtotal := base.Quantity.Mul(base.UnitPrice)
	tax := subtotal.Mul(InvoiceTaxRate)
	total := subtotal.Sub(base.DiscountAmount).Add(tax)
	balance := total.Sub(base.AmountPaid)

	return InvoiceDerived{
		Subtotal:    subtotal,
		TaxAmount:   tax,
		TotalAmount: total,
		BalanceDue:  balance,
	}
}
