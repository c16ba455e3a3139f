package document_repo

import (
	"testing"
)

// The select column lists are derived from the model db tags, so a field
// added to a document model must show up here. These tests pin the
// business columns per document so a model/schema drift fails fast.

func assertColumns(t *testing.T, got []string, want []string) {
	t.Helper()
	set := make(map[string]struct{}, len(got))
	for _, col := range got {
		set[col] = struct{}{}
	}
	for _, col := range want {
		if _, ok := set[col]; !ok {
			t.Errorf("column %q missing from select list %v", col, got)
		}
	}
}

var documentBaseColumns = []string{
	"id", "number", "date", "organization_id", "posted",
	"deletion_mark", "version", "created_at", "updated_at",
}

func TestInvoiceRepo_Columns(t *testing.T) {
	repo := NewInvoiceRepo(nil)

	assertColumns(t, repo.selectCols, documentBaseColumns)
	assertColumns(t, repo.selectCols, []string{
		"customer_id", "product_id", "quantity", "unit_price",
		"discount_amount", "amount_paid",
		"subtotal", "tax_amount", "total_amount", "balance_due",
	})
}

func TestPurchaseOrderRepo_Columns(t *testing.T) {
	repo := NewPurchaseOrderRepo(nil)

	assertColumns(t, repo.selectCols, documentBaseColumns)
	assertColumns(t, repo.selectCols, []string{
		"supplier_id", "product_id", "quantity_ordered", "unit_price",
		"tax_amount", "shipping_cost", "discount_amount", "amount_paid",
		"status", "expected_date",
		"total_amount", "final_amount",
	})
}

func TestPayslipRepo_Columns(t *testing.T) {
	repo := NewPayslipRepo(nil)

	assertColumns(t, repo.selectCols, documentBaseColumns)
	assertColumns(t, repo.selectCols, []string{
		"employee_id", "pay_period", "basic_salary",
		"hra", "da", "ta", "other_allowances", "gross_salary",
		"pf_deduction", "esi_deduction", "professional_tax", "income_tax",
		"total_deductions", "net_salary",
	})
}
