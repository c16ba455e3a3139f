// Package payslip provides the monthly Payslip document.
package payslip

import (
	"context"
	"regexp"

	"github.com/shopspring/decimal"

	"cableworks/internal/core/apperror"
	"cableworks/internal/core/entity"
	"cableworks/internal/core/id"
	"cableworks/internal/domain/finance"
)

// Pay periods are calendar months in "YYYY-MM" form.
var payPeriodRE = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// Payslip represents one employee's salary for one pay period.
//
// BasicSalary is the only monetary input; every allowance and deduction
// is derived from it and replaced wholesale on each recalculation.
type Payslip struct {
	entity.Document

	// EmployeeID references the employee being paid
	EmployeeID id.ID `db:"employee_id" json:"employeeId"`

	// PayPeriod is the salary month in "YYYY-MM" form
	PayPeriod string `db:"pay_period" json:"payPeriod"`

	// BasicSalary is the monthly basic pay, base for all derived fields
	BasicSalary decimal.Decimal `db:"basic_salary" json:"basicSalary"`

	// Allowances
	HRA             decimal.Decimal `db:"hra" json:"hra"`
	DA              decimal.Decimal `db:"da" json:"da"`
	TA              decimal.Decimal `db:"ta" json:"ta"`
	OtherAllowances decimal.Decimal `db:"other_allowances" json:"otherAllowances"`
	GrossSalary     decimal.Decimal `db:"gross_salary" json:"grossSalary"`

	// Deductions
	PFDeduction     decimal.Decimal `db:"pf_deduction" json:"pfDeduction"`
	ESIDeduction    decimal.Decimal `db:"esi_deduction" json:"esiDeduction"`
	ProfessionalTax decimal.Decimal `db:"professional_tax" json:"professionalTax"`
	IncomeTax       decimal.Decimal `db:"income_tax" json:"incomeTax"`
	TotalDeductions decimal.Decimal `db:"total_deductions" json:"totalDeductions"`

	// NetSalary is gross minus total deductions
	NetSalary decimal.Decimal `db:"net_salary" json:"netSalary"`
}

// NewPayslip creates a new payslip document.
func NewPayslip(organizationID string, employeeID id.ID, payPeriod string, basicSalary decimal.Decimal) *Payslip {
	return &Payslip{
		Document:    entity.NewDocument(organizationID),
		EmployeeID:  employeeID,
		PayPeriod:   payPeriod,
		BasicSalary: basicSalary,
	}
}

// Recalculate replaces all derived fields from the basic salary.
// Allowances are derived first, then gross, then deductions against the
// finalized gross. Idempotent for a given basic salary.
func (p *Payslip) Recalculate() {
	c := finance.ComputeSalaryComponents(p.BasicSalary)

	p.HRA = c.HRA
	p.DA = c.DA
	p.TA = c.TA
	p.OtherAllowances = c.OtherAllowances
	p.GrossSalary = c.GrossSalary

	p.PFDeduction = c.PFDeduction
	p.ESIDeduction = c.ESIDeduction
	p.ProfessionalTax = c.ProfessionalTax
	p.IncomeTax = c.IncomeTax
	p.TotalDeductions = c.TotalDeductions

	p.NetSalary = c.NetSalary
}

// Validate implements entity.Validatable.
func (p *Payslip) Validate(ctx context.Context) error {
	if err := p.Document.Validate(ctx); err != nil {
		return err
	}

	if id.IsNil(p.EmployeeID) {
		return apperror.NewValidation("employee is required").
			WithDetail("field", "employeeId")
	}

	if !payPeriodRE.MatchString(p.PayPeriod) {
		return apperror.NewValidation("invalid pay period (expected YYYY-MM)").
			WithDetail("field", "payPeriod")
	}

	if p.BasicSalary.IsNegative() {
		return apperror.NewValidation("basic salary cannot be negative").
			WithDetail("field", "basicSalary")
	}

	return nil
}
