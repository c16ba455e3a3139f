// Package employee provides the Employee catalog.
// Employees are payroll subjects: payslips reference an employee and
// take the basic salary recorded here as the calculation base.
package employee

import (
	"context"
	"regexp"

	"cableworks/internal/core/apperror"
	"cableworks/internal/core/entity"
	"cableworks/internal/core/types"
)

var empPANRE = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)

// Department is the plant department an employee belongs to.
type Department string

const (
	DeptProduction  Department = "production"
	DeptQuality     Department = "quality"
	DeptMaintenance Department = "maintenance"
	DeptStores      Department = "stores"
	DeptSales       Department = "sales"
	DeptAccounts    Department = "accounts"
	DeptAdmin       Department = "admin"
)

// Employee represents a person on the payroll.
type Employee struct {
	entity.Catalog

	// Designation is the job title (e.g. "Extruder Operator")
	Designation *string `db:"designation" json:"designation,omitempty"`

	// Department the employee belongs to
	Department Department `db:"department" json:"department"`

	// PAN is the income tax permanent account number
	PAN *string `db:"pan" json:"pan,omitempty"`

	// BankAccount is the salary account number
	BankAccount *string `db:"bank_account" json:"bankAccount,omitempty"`

	// BankIFSC is the IFSC code of the salary account branch
	BankIFSC *string `db:"bank_ifsc" json:"bankIfsc,omitempty"`

	// BasicSalary is the monthly basic pay, the base for all payroll math
	BasicSalary types.Money `db:"basic_salary" json:"basicSalary"`

	// DateOfJoining in ISO format (YYYY-MM-DD)
	DateOfJoining *string `db:"date_of_joining" json:"dateOfJoining,omitempty"`

	// Phone is the contact number
	Phone *string `db:"phone" json:"phone,omitempty"`

	// Email is the contact email
	Email *string `db:"email" json:"email,omitempty"`
}

// NewEmployee creates a new Employee with required fields.
func NewEmployee(code, name string, basicSalary types.Money) *Employee {
	return &Employee{
		Catalog:     entity.NewCatalog(code, name),
		BasicSalary: basicSalary,
	}
}

// Validate implements entity.Validatable interface.
func (e *Employee) Validate(ctx context.Context) error {
	if err := e.Catalog.Validate(ctx); err != nil {
		return err
	}

	if e.Department != "" && !isValidDepartment(e.Department) {
		return apperror.NewValidation("invalid department").
			WithDetail("field", "department").
			WithDetail("value", string(e.Department))
	}

	if e.PAN != nil && *e.PAN != "" && !empPANRE.MatchString(*e.PAN) {
		return apperror.NewValidation("invalid PAN format").
			WithDetail("field", "pan")
	}

	if e.BasicSalary.IsNegative() {
		return apperror.NewValidation("basic salary cannot be negative").
			WithDetail("field", "basicSalary")
	}

	return nil
}

func isValidDepartment(d Department) bool {
	switch d {
	case DeptProduction, DeptQuality, DeptMaintenance, DeptStores,
		DeptSales, DeptAccounts, DeptAdmin:
		return true
	}
	return false
}
