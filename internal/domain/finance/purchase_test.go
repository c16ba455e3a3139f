package finance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputePurchaseAmounts(t *testing.T) {
	tests := []struct {
		name        string
		base        PurchaseBase
		totalAmount string
		finalAmount string
	}{
		{
			name: "discount exceeds everything, final floored at zero",
			base: PurchaseBase{
				QuantityOrdered: d("100"),
				UnitPrice:       d("2"),
				TaxAmount:       d("10"),
				ShippingCost:    d("5"),
				DiscountAmount:  d("300"),
			},
			totalAmount: "200",
			finalAmount: "0",
		},
		{
			name: "typical order",
			base: PurchaseBase{
				QuantityOrdered: d("50"),
				UnitPrice:       d("12.40"),
				TaxAmount:       d("111.60"),
				ShippingCost:    d("45"),
				DiscountAmount:  d("20"),
			},
			totalAmount: "620",
			finalAmount: "756.60",
		},
		{
			name:        "zero order",
			base:        PurchaseBase{},
			totalAmount: "0",
			finalAmount: "0",
		},
		{
			name: "tax and shipping are direct inputs, no rate applied",
			base: PurchaseBase{
				QuantityOrdered: d("10"),
				UnitPrice:       d("100"),
				TaxAmount:       d("7"),
			},
			totalAmount: "1000",
			finalAmount: "1007",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputePurchaseAmounts(tt.base)

			assert.True(t, got.TotalAmount.Equal(d(tt.totalAmount)), "total = %s", got.TotalAmount)
			assert.True(t, got.FinalAmount.Equal(d(tt.finalAmount)), "final = %s", got.FinalAmount)
		})
	}
}

func TestComputePurchaseAmounts_FinalNeverNegative(t *testing.T) {
	bases := []PurchaseBase{
		{DiscountAmount: d("1")},
		{QuantityOrdered: d("1"), UnitPrice: d("1"), DiscountAmount: d("1000000")},
		{QuantityOrdered: d("3"), UnitPrice: d("9.99"), TaxAmount: d("1"), ShippingCost: d("2"), DiscountAmount: d("33")},
	}

	for _, base := range bases {
		got := ComputePurchaseAmounts(base)
		assert.False(t, got.FinalAmount.IsNegative(), "final = %s", got.FinalAmount)
	}
}

func TestComputePurchaseAmounts_Idempotent(t *testing.T) {
	base := PurchaseBase{
		QuantityOrdered: d("7"),
		UnitPrice:       d("3.33"),
		TaxAmount:       d("1.17"),
		ShippingCost:    d("12"),
		DiscountAmount:  d("5"),
	}

	first := ComputePurchaseAmounts(base)
	second := ComputePurchaseAmounts(base)

	assert.Equal(t, first, second)
}
