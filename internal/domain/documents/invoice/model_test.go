package invoice

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

func validInvoice() *Invoice {
	inv := NewInvoice("org-1", id.New(), id.New())
	inv.Quantity = d("10")
	inv.UnitPrice = d("5")
	inv.DiscountAmount = d("2")
	inv.AmountPaid = d("40")
	return inv
}

func TestInvoice_Recalculate(t *testing.T) {
	inv := validInvoice()
	inv.Recalculate()

	assert.True(t, inv.Subtotal.Equal(d("50")), "subtotal: %s", inv.Subtotal)
	assert.True(t, inv.TaxAmount.Equal(d("9")), "tax: %s", inv.TaxAmount)
	assert.True(t, inv.TotalAmount.Equal(d("57")), "total: %s", inv.TotalAmount)
	assert.True(t, inv.BalanceDue.Equal(d("17")), "balance: %s", inv.BalanceDue)
}

func TestInvoice_Recalculate_Idempotent(t *testing.T) {
	inv := validInvoice()
	inv.Recalculate()
	first := inv.TotalAmount

	inv.Recalculate()
	inv.Recalculate()

	assert.True(t, inv.TotalAmount.Equal(first))
}

func TestInvoice_Recalculate_DiscardsStaleDerived(t *testing.T) {
	inv := validInvoice()

	// Derived values are never inputs, whatever the client sent
	inv.Subtotal = d("999")
	inv.TaxAmount = d("999")
	inv.TotalAmount = d("999")
	inv.BalanceDue = d("999")

	inv.Recalculate()

	assert.True(t, inv.Subtotal.Equal(d("50")))
	assert.True(t, inv.BalanceDue.Equal(d("17")))
}

func TestInvoice_Recalculate_TaxOnUndiscountedSubtotal(t *testing.T) {
	inv := NewInvoice("org-1", id.New(), id.New())
	inv.Quantity = d("1")
	inv.UnitPrice = d("100")
	inv.DiscountAmount = d("100")
	inv.Recalculate()

	// Discount does not shrink the tax base
	assert.True(t, inv.TaxAmount.Equal(d("18")), "tax: %s", inv.TaxAmount)
	assert.True(t, inv.TotalAmount.Equal(d("18")), "total: %s", inv.TotalAmount)
}

func TestInvoice_Validate(t *testing.T) {
	ctx := context.Background()

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, validInvoice().Validate(ctx))
	})

	t.Run("missing customer", func(t *testing.T) {
		inv := validInvoice()
		inv.CustomerID = id.Nil()
		err := inv.Validate(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "customer")
	})

	t.Run("missing product", func(t *testing.T) {
		inv := validInvoice()
		inv.ProductID = id.Nil()
		assert.Error(t, inv.Validate(ctx))
	})

	t.Run("zero quantity", func(t *testing.T) {
		inv := validInvoice()
		inv.Quantity = decimal.Zero
		assert.Error(t, inv.Validate(ctx))
	})

	t.Run("negative unit price", func(t *testing.T) {
		inv := validInvoice()
		inv.UnitPrice = d("-1")
		assert.Error(t, inv.Validate(ctx))
	})

	t.Run("negative discount", func(t *testing.T) {
		inv := validInvoice()
		inv.DiscountAmount = d("-1")
		assert.Error(t, inv.Validate(ctx))
	})

	t.Run("negative paid amount", func(t *testing.T) {
		inv := validInvoice()
		inv.AmountPaid = d("-1")
		assert.Error(t, inv.Validate(ctx))
	})

	t.Run("missing organization", func(t *testing.T) {
		inv := validInvoice()
		inv.OrganizationID = ""
		assert.Error(t, inv.Validate(ctx))
	})
}

func TestInvoice_IsSettled(t *testing.T) {
	inv := validInvoice()
	inv.Recalculate()
	assert.False(t, inv.IsSettled())

	inv.AmountPaid = d("57")
	inv.Recalculate()
	assert.True(t, inv.IsSettled())

	// Overpayment also counts as settled
	inv.AmountPaid = d("100")
	inv.Recalculate()
	assert.True(t, inv.IsSettled())
}
