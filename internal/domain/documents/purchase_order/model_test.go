package purchase_order

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cableworks/internal/core/id"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func validOrder() *PurchaseOrder {
	po := NewPurchaseOrder("org-1", id.New(), id.New())
	po.QuantityOrdered = d("100")
	po.UnitPrice = d("2")
	po.TaxAmount = d("10")
	po.ShippingCost = d("5")
	po.DiscountAmount = d("300")
	return po
}

func TestPurchaseOrder_Recalculate_FlooredAtZero(t *testing.T) {
	po := validOrder()
	po.Recalculate()

	assert.True(t, po.TotalAmount.Equal(d("200")), "total: %s", po.TotalAmount)
	// 200 + 10 + 5 - 300 = -85, floored
	assert.True(t, po.FinalAmount.Equal(decimal.Zero), "final: %s", po.FinalAmount)
}

func TestPurchaseOrder_Recalculate(t *testing.T) {
	po := NewPurchaseOrder("org-1", id.New(), id.New())
	po.QuantityOrdered = d("50")
	po.UnitPrice = d("12.50")
	po.TaxAmount = d("112.50")
	po.ShippingCost = d("40")
	po.DiscountAmount = d("25")
	po.Recalculate()

	assert.True(t, po.TotalAmount.Equal(d("625")), "total: %s", po.TotalAmount)
	assert.True(t, po.FinalAmount.Equal(d("752.50")), "final: %s", po.FinalAmount)
}

func TestPurchaseOrder_Recalculate_Idempotent(t *testing.T) {
	po := validOrder()
	po.Recalculate()
	first := po.FinalAmount

	po.Recalculate()
	assert.True(t, po.FinalAmount.Equal(first))
}

func TestPurchaseOrder_AmountPaidDoesNotAffectDerived(t *testing.T) {
	po := validOrder()
	po.Recalculate()
	total, final := po.TotalAmount, po.FinalAmount

	po.AmountPaid = d("150")
	po.Recalculate()

	assert.True(t, po.TotalAmount.Equal(total))
	assert.True(t, po.FinalAmount.Equal(final))
}

func TestPurchaseOrder_Validate(t *testing.T) {
	ctx := context.Background()

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, validOrder().Validate(ctx))
	})

	t.Run("missing supplier", func(t *testing.T) {
		po := validOrder()
		po.SupplierID = id.Nil()
		err := po.Validate(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "supplier")
	})

	t.Run("missing product", func(t *testing.T) {
		po := validOrder()
		po.ProductID = id.Nil()
		assert.Error(t, po.Validate(ctx))
	})

	t.Run("zero quantity", func(t *testing.T) {
		po := validOrder()
		po.QuantityOrdered = decimal.Zero
		assert.Error(t, po.Validate(ctx))
	})

	t.Run("negative shipping cost", func(t *testing.T) {
		po := validOrder()
		po.ShippingCost = d("-1")
		assert.Error(t, po.Validate(ctx))
	})

	t.Run("negative amount paid", func(t *testing.T) {
		po := validOrder()
		po.AmountPaid = d("-1")
		assert.Error(t, po.Validate(ctx))
	})

	t.Run("unknown status", func(t *testing.T) {
		po := validOrder()
		po.Status = OrderStatus("shipped")
		assert.Error(t, po.Validate(ctx))
	})

	t.Run("all lifecycle statuses accepted", func(t *testing.T) {
		for _, status := range []OrderStatus{StatusDraft, StatusSent, StatusReceived, StatusCancelled} {
			po := validOrder()
			po.Status = status
			assert.NoError(t, po.Validate(ctx), "status %q", status)
		}
	})
}

func TestNewPurchaseOrder_StartsAsDraft(t *testing.T) {
	po := NewPurchaseOrder("org-1", id.New(), id.New())
	assert.Equal(t, StatusDraft, po.Status)
}
