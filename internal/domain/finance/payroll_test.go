package finance

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestComputeSalaryComponents(t *testing.T) {
	got := ComputeSalaryComponents(d("1000"))

	assert.True(t, got.HRA.Equal(d("300")), "hra = %s", got.HRA)
	assert.True(t, got.DA.Equal(d("100")), "da = %s", got.DA)
	assert.True(t, got.TA.Equal(d("50")), "ta = %s", got.TA)
	assert.True(t, got.OtherAllowances.Equal(d("15")), "other = %s", got.OtherAllowances)
	assert.True(t, got.GrossSalary.Equal(d("1465")), "gross = %s", got.GrossSalary)

	assert.True(t, got.PFDeduction.Equal(d("120")), "pf = %s", got.PFDeduction)
	assert.True(t, got.ESIDeduction.Equal(d("10.9875")), "esi = %s", got.ESIDeduction)
	assert.True(t, got.ProfessionalTax.Equal(d("200")), "pt = %s", got.ProfessionalTax)
	assert.True(t, got.IncomeTax.Equal(d("73.25")), "income tax = %s", got.IncomeTax)
	assert.True(t, got.TotalDeductions.Equal(d("404.2375")), "deductions = %s", got.TotalDeductions)
	assert.True(t, got.NetSalary.Equal(d("1060.7625")), "net = %s", got.NetSalary)
}

func TestComputeSalaryComponents_PFCap(t *testing.T) {
	// 20000 * 0.12 = 2400, capped at 1800.
	got := ComputeSalaryComponents(d("20000"))
	assert.True(t, got.PFDeduction.Equal(d("1800")), "pf = %s", got.PFDeduction)

	// Just below the cap threshold (15000 * 0.12 = 1800 exactly).
	atThreshold := ComputeSalaryComponents(d("15000"))
	assert.True(t, atThreshold.PFDeduction.Equal(d("1800")))

	below := ComputeSalaryComponents(d("14999"))
	assert.True(t, below.PFDeduction.Equal(d("1799.88")))
}

func TestComputeSalaryComponents_ESICap(t *testing.T) {
	// gross = basic * 1.465; esi = gross * 0.0075 capped at 500.
	// basic = 50000 -> gross = 73250 -> esi raw = 549.375, capped.
	got := ComputeSalaryComponents(d("50000"))
	assert.True(t, got.ESIDeduction.Equal(d("500")), "esi = %s", got.ESIDeduction)

	small := ComputeSalaryComponents(d("1000"))
	assert.True(t, small.ESIDeduction.LessThan(d("500")))
}

func TestComputeSalaryComponents_Invariants(t *testing.T) {
	grossFactor := d("1.465") // 1 + 0.30 + 0.10 + 0.05 + 0.015

	for _, basic := range []decimal.Decimal{
		d("0"), d("1"), d("999.99"), d("1000"), d("15000"), d("20000"), d("123456.78"),
	} {
		got := ComputeSalaryComponents(basic)

		assert.True(t, got.GrossSalary.Equal(basic.Mul(grossFactor)),
			"gross(%s) = %s", basic, got.GrossSalary)
		assert.True(t, got.GrossSalary.Equal(
			basic.Add(got.HRA).Add(got.DA).Add(got.TA).Add(got.OtherAllowances)))
		assert.True(t, got.TotalDeductions.Equal(
			got.PFDeduction.Add(got.ESIDeduction).Add(got.ProfessionalTax).Add(got.IncomeTax)))
		assert.True(t, got.NetSalary.Equal(got.GrossSalary.Sub(got.TotalDeductions)))

		assert.True(t, got.PFDeduction.LessThanOrEqual(PFCap))
		assert.True(t, got.ESIDeduction.LessThanOrEqual(ESICap))
	}
}

func TestComputeSalaryComponents_Idempotent(t *testing.T) {
	basic := d("33333.33")

	first := ComputeSalaryComponents(basic)
	second := ComputeSalaryComponents(basic)

	assert.Equal(t, first, second)
	assert.Equal(t, first.NetSalary.String(), second.NetSalary.String())
}

// Negative basic produces negative derived values; the payslip document
// rejects negative input before it ever reaches persistence.
func TestComputeSalaryComponents_NegativeBasicPassesThrough(t *testing.T) {
	got := ComputeSalaryComponents(d("-1000"))

	assert.True(t, got.HRA.Equal(d("-300")))
	assert.True(t, got.GrossSalary.Equal(d("-1465")))
	assert.True(t, got.NetSalary.IsNegative())
}
