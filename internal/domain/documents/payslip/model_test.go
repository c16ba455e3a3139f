package payslip

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

func validPayslip() *Payslip {
	return NewPayslip("org-1", id.New(), "2025-08", d("1000"))
}

func TestPayslip_Recalculate(t *testing.T) {
	p := validPayslip()
	p.Recalculate()

	assert.True(t, p.HRA.Equal(d("300")), "hra: %s", p.HRA)
	assert.True(t, p.DA.Equal(d("100")), "da: %s", p.DA)
	assert.True(t, p.TA.Equal(d("50")), "ta: %s", p.TA)
	assert.True(t, p.OtherAllowances.Equal(d("15")), "other: %s", p.OtherAllowances)
	assert.True(t, p.GrossSalary.Equal(d("1465")), "gross: %s", p.GrossSalary)

	assert.True(t, p.PFDeduction.Equal(d("120")), "pf: %s", p.PFDeduction)
	assert.True(t, p.ESIDeduction.Equal(d("10.9875")), "esi: %s", p.ESIDeduction)
	assert.True(t, p.ProfessionalTax.Equal(d("200")), "prof tax: %s", p.ProfessionalTax)
	assert.True(t, p.IncomeTax.Equal(d("73.25")), "income tax: %s", p.IncomeTax)
	assert.True(t, p.TotalDeductions.Equal(d("404.2375")), "deductions: %s", p.TotalDeductions)

	assert.True(t, p.NetSalary.Equal(d("1060.7625")), "net: %s", p.NetSalary)
}

func TestPayslip_Recalculate_PFCap(t *testing.T) {
	p := NewPayslip("org-1", id.New(), "2025-08", d("20000"))
	p.Recalculate()

	// 12% of 20000 is 2400 but PF is capped
	assert.True(t, p.PFDeduction.Equal(d("1800")), "pf: %s", p.PFDeduction)
}

func TestPayslip_Recalculate_Idempotent(t *testing.T) {
	p := validPayslip()
	p.Recalculate()
	first := p.NetSalary

	p.Recalculate()
	assert.True(t, p.NetSalary.Equal(first))
}

func TestPayslip_Recalculate_DiscardsStaleDerived(t *testing.T) {
	p := validPayslip()
	p.GrossSalary = d("99999")
	p.NetSalary = d("99999")

	p.Recalculate()

	assert.True(t, p.GrossSalary.Equal(d("1465")))
	assert.True(t, p.NetSalary.Equal(d("1060.7625")))
}

func TestPayslip_Validate(t *testing.T) {
	ctx := context.Background()

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, validPayslip().Validate(ctx))
	})

	t.Run("missing employee", func(t *testing.T) {
		p := validPayslip()
		p.EmployeeID = id.Nil()
		err := p.Validate(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "employee")
	})

	t.Run("negative basic salary", func(t *testing.T) {
		p := validPayslip()
		p.BasicSalary = d("-1")
		assert.Error(t, p.Validate(ctx))
	})

	t.Run("zero basic salary is allowed", func(t *testing.T) {
		p := validPayslip()
		p.BasicSalary = decimal.Zero
		assert.NoError(t, p.Validate(ctx))
	})
}

func TestPayslip_Validate_PayPeriod(t *testing.T) {
	ctx := context.Background()

	valid := []string{"2025-01", "2025-09", "2025-12", "1999-06"}
	for _, period := range valid {
		p := validPayslip()
		p.PayPeriod = period
		assert.NoError(t, p.Validate(ctx), "period %q should be valid", period)
	}

	invalid := []string{"", "2025", "2025-13", "2025-00", "2025-1", "08-2025", "2025-08-01", "august"}
	for _, period := range invalid {
		p := validPayslip()
		p.PayPeriod = period
		assert.Error(t, p.Validate(ctx), "period %q should be invalid", period)
	}
}
