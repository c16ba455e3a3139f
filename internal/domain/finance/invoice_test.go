package finance

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestComputeInvoiceTotals(t *testing.T) {
	tests := []struct {
		name        string
		base        InvoiceBase
		subtotal    string
		taxAmount   string
		totalAmount string
		balanceDue  string
	}{
		{
			name: "typical line",
			base: InvoiceBase{
				Quantity:       d("10"),
				UnitPrice:      d("5"),
				DiscountAmount: d("2"),
				AmountPaid:     d("40"),
			},
			subtotal:    "50",
			taxAmount:   "9",
			totalAmount: "57",
			balanceDue:  "17",
		},
		{
			name:        "zero everything",
			base:        InvoiceBase{},
			subtotal:    "0",
			taxAmount:   "0",
			totalAmount: "0",
			balanceDue:  "0",
		},
		{
			name: "fractional quantity keeps full precision",
			base: InvoiceBase{
				Quantity:  d("2.5"),
				UnitPrice: d("19.99"),
			},
			subtotal:    "49.975",
			taxAmount:   "8.9955",
			totalAmount: "58.9705",
			balanceDue:  "58.9705",
		},
		{
			name: "discount larger than subtotal drives total negative",
			base: InvoiceBase{
				Quantity:       d("1"),
				UnitPrice:      d("10"),
				DiscountAmount: d("50"),
			},
			subtotal:    "10",
			taxAmount:   "1.8",
			totalAmount: "-38.2",
			balanceDue:  "-38.2",
		},
		{
			name: "overpayment drives balance negative",
			base: InvoiceBase{
				Quantity:   d("10"),
				UnitPrice:  d("5"),
				AmountPaid: d("100"),
			},
			subtotal:    "50",
			taxAmount:   "9",
			totalAmount: "59",
			balanceDue:  "-41",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeInvoiceTotals(tt.base)

			assert.True(t, got.Subtotal.Equal(d(tt.subtotal)), "subtotal = %s", got.Subtotal)
			assert.True(t, got.TaxAmount.Equal(d(tt.taxAmount)), "tax = %s", got.TaxAmount)
			assert.True(t, got.TotalAmount.Equal(d(tt.totalAmount)), "total = %s", got.TotalAmount)
			assert.True(t, got.BalanceDue.Equal(d(tt.balanceDue)), "balance = %s", got.BalanceDue)
		})
	}
}

// Tax applies to the undiscounted subtotal. A discounted line and an
// undiscounted line with the same quantity and price carry the same tax.
func TestComputeInvoiceTotals_TaxIgnoresDiscount(t *testing.T) {
	withDiscount := ComputeInvoiceTotals(InvoiceBase{
		Quantity:       d("4"),
		UnitPrice:      d("25"),
		DiscountAmount: d("30"),
	})
	withoutDiscount := ComputeInvoiceTotals(InvoiceBase{
		Quantity:  d("4"),
		UnitPrice: d("25"),
	})

	assert.True(t, withDiscount.TaxAmount.Equal(withoutDiscount.TaxAmount))
	assert.True(t, withDiscount.TaxAmount.Equal(d("18")))
}

func TestComputeInvoiceTotals_Invariants(t *testing.T) {
	bases := []InvoiceBase{
		{Quantity: d("1"), UnitPrice: d("1")},
		{Quantity: d("10"), UnitPrice: d("5"), DiscountAmount: d("2"), AmountPaid: d("40")},
		{Quantity: d("0.001"), UnitPrice: d("12345.6789")},
		{Quantity: d("1000000"), UnitPrice: d("0.03"), DiscountAmount: d("99999.99")},
	}

	for _, base := range bases {
		got := ComputeInvoiceTotals(base)

		assert.True(t, got.Subtotal.Equal(base.Quantity.Mul(base.UnitPrice)))
		assert.True(t, got.TaxAmount.Equal(got.Subtotal.Mul(InvoiceTaxRate)))
		assert.True(t, got.TotalAmount.Equal(got.Subtotal.Sub(base.DiscountAmount).Add(got.TaxAmount)))
		assert.True(t, got.BalanceDue.Equal(got.TotalAmount.Sub(base.AmountPaid)))
	}
}

func TestComputeInvoiceTotals_Idempotent(t *testing.T) {
	base := InvoiceBase{
		Quantity:       d("3.75"),
		UnitPrice:      d("101.11"),
		DiscountAmount: d("7.5"),
		AmountPaid:     d("100"),
	}

	first := ComputeInvoiceTotals(base)
	second := ComputeInvoiceTotals(base)

	assert.Equal(t, first.Subtotal.String(), second.Subtotal.String())
	assert.Equal(t, first.TaxAmount.String(), second.TaxAmount.String())
	assert.Equal(t, first.TotalAmount.String(), second.TotalAmount.String())
	assert.Equal(t, first.BalanceDue.String(), second.BalanceDue.String())
}

// The calculator does not validate. Negative input flows through and the
// caller decides whether to block submission.
func TestComputeInvoiceTotals_NegativeInputPassesThrough(t *testing.T) {
	got := ComputeInvoiceTotals(InvoiceBase{
		Quantity:  d("-2"),
		UnitPrice: d("10"),
	})

	assert.True(t, got.Subtotal.Equal(d("-20")))
	assert.True(t, got.TaxAmount.Equal(d("-3.6")))
	assert.True(t, got.TotalAmount.Equal(d("-23.6")))
}
