package finance

import "github.com/shopspring/decimal"

// PurchaseBase holds the user-supplied fields of a purchase order line.
// Tax, shipping and discount are direct inputs here, never rate-derived.
type PurchaseBase struct {
	QuantityOrdered decimal.Decimal
	UnitPrice       decimal.Decimal
	TaxAmount       decimal.Decimal
	ShippingCost    decimal.Decimal
	DiscountAmount  decimal.Decimal
}

// PurchaseDerived holds the fields computed from PurchaseBase.
type PurchaseDerived struct {
	TotalAmount decimal.Decimal
	FinalAmount decimal.Decimal
}

// ComputePurchaseAmounts derives the order total and the final payable
// amount from the base fields of a purchase order line.
//
// The final amount is floored at zero so a supplier-facing document never
// shows a negative payable, even when the discount exceeds total, tax and
// shipping combined. The invoice domain deliberately does not clamp.
func ComputePurchaseAmounts(base PurchaseBase) PurchaseDerived {
	total := base.QuantityOrdered.Mul(base.UnitPrice)
	final := total.Add(base.TaxAmount).Add(base.ShippingCost).Sub(base.DiscountAmount)
	if final.IsNegative() {
		final = decimal.Zero
	}

	return PurchaseDerived{
		TotalAmount: total,
		FinalAmount: final,
	}
}
