package finance

import "github.com/shopspring/decimal"

// Statutory rates and caps for salary computation.
// PF and professional tax follow the Indian EPF/PT slabs used by the business.
var (
	HRARate             = decimal.RequireFromString("0.30")
	DARate              = decimal.RequireFromString("0.10")
	TARate              = decimal.RequireFromString("0.05")
	OtherAllowancesRate = decimal.RequireFromString("0.015")

	PFRate = decimal.RequireFromString("0.12")
	PFCap  = decimal.RequireFromString("1800")

	ESIRate = decimal.RequireFromString("0.0075")
	ESICap  = decimal.RequireFromString("500")

	ProfessionalTax = decimal.RequireFromString("200")

	IncomeTaxRate = decimal.RequireFromString("0.05")
)

// SalaryComponents holds every derived field of a payroll record.
type SalaryComponents struct {
	HRA             decimal.Decimal
	DA              decimal.Decimal
	TA              decimal.Decimal
	OtherAllowances decimal.Decimal
	GrossSalary     decimal.Decimal

	PFDeduction     decimal.Decimal
	ESIDeduction    decimal.Decimal
	ProfessionalTax decimal.Decimal
	IncomeTax       decimal.Decimal
	TotalDeductions decimal.Decimal

	NetSalary decimal.Decimal
}

// ComputeSalaryComponents derives all salary components from basic salary.
//
// Order matters: allowances are computed first, gross is finalized from
// them, and only then are deductions computed (ESI reads the finalized
// gross). No rounding is applied here; presentation formats at the edge.
// Negative input flows through arithmetically, validation is the
// caller's job.
func ComputeSalaryComponents(basic decimal.Decimal) SalaryComponents {
	hra := basic.Mul(HRARate)
	da := basic.Mul(DARate)
	ta := basic.Mul(TARate)
	other := basic.Mul(OtherAllowancesRate)
	gross := basic.Add(hra).Add(da).Add(ta).Add(other)

	pf := decimal.Min(basic.Mul(PFRate), PFCap)
	esi := decimal.Min(gross.Mul(ESIRate), ESICap)
	incomeTax := gross.Mul(IncomeTaxRate)
	deductions := pf.Add(esi).Add(ProfessionalTax).Add(incomeTax)

	return SalaryComponents{
		HRA:             hra,
		DA:              da,
		TA:              ta,
		OtherAllowances: other,
		GrossSalary:     gross,
		PFDeduction:     pf,
		ESIDeduction:    esi,
		ProfessionalTax: ProfessionalTax,
		IncomeTax:       incomeTax,
		TotalDeductions: deductions,
		NetSalary:       gross.Sub(deductions),
	}
}
