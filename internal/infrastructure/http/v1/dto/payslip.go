package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"cableworks/internal/core/id"
	"cableworks/internal/domain/documents/payslip"
)

// --- Request DTOs ---

// CreatePayslipRequest represents a request to create a payslip.
// BasicSalary may be omitted; it then defaults from the employee card.
type CreatePayslipRequest struct {
	Number         string          `json:"number,omitempty"`
	Date           time.Time       `json:"date" binding:"required"`
	OrganizationID string          `json:"organizationId" binding:"required"`
	EmployeeID     string          `json:"employeeId" binding:"required"`
	PayPeriod      string          `json:"payPeriod" binding:"required"`
	BasicSalary    decimal.Decimal `json:"basicSalary"`
	Comment        string          `json:"comment,omitempty"`
}

// ToEntity converts request to domain entity.
func (r *CreatePayslipRequest) ToEntity() *payslip.Payslip {
	employeeID, _ := id.Parse(r.EmployeeID)

	doc := payslip.NewPayslip(r.OrganizationID, employeeID, r.PayPeriod, r.BasicSalary)
	doc.Number = r.Number
	doc.Date = r.Date
	doc.Comment = r.Comment

	return doc
}

// UpdatePayslipRequest represents a request to update a payslip.
type UpdatePayslipRequest struct {
	Date        time.Time       `json:"date" binding:"required"`
	EmployeeID  string          `json:"employeeId" binding:"required"`
	PayPeriod   string          `json:"payPeriod" binding:"required"`
	BasicSalary decimal.Decimal `json:"basicSalary"`
	Comment     string          `json:"comment,omitempty"`
	Version     int             `json:"version" binding:"required"`
}

// ApplyTo applies update request to existing entity.
func (r *UpdatePayslipRequest) ApplyTo(doc *payslip.Payslip) {
	employeeID, _ := id.Parse(r.EmployeeID)

	doc.Date = r.Date
	doc.EmployeeID = employeeID
	doc.PayPeriod = r.PayPeriod
	doc.BasicSalary = r.BasicSalary
	doc.Comment = r.Comment
	doc.Version = r.Version
}

// --- Response DTOs ---

// PayslipResponse is the response body for a payslip.
type PayslipResponse struct {
	DocumentResponse

	EmployeeID  string          `json:"employeeId"`
	PayPeriod   string          `json:"payPeriod"`
	BasicSalary decimal.Decimal `json:"basicSalary"`

	HRA             decimal.Decimal `json:"hra"`
	DA              decimal.Decimal `json:"da"`
	TA              decimal.Decimal `json:"ta"`
	OtherAllowances decimal.Decimal `json:"otherAllowances"`
	GrossSalary     decimal.Decimal `json:"grossSalary"`

	PFDeduction     decimal.Decimal `json:"pfDeduction"`
	ESIDeduction    decimal.Decimal `json:"esiDeduction"`
	ProfessionalTax decimal.Decimal `json:"professionalTax"`
	IncomeTax       decimal.Decimal `json:"incomeTax"`
	TotalDeductions decimal.Decimal `json:"totalDeductions"`

	NetSalary decimal.Decimal `json:"netSalary"`
}

// FromPayslip creates response DTO from domain entity.
func FromPayslip(doc *payslip.Payslip) *PayslipResponse {
	return &PayslipResponse{
		DocumentResponse: FromDocument(doc.Document),
		EmployeeID:       doc.EmployeeID.String(),
		PayPeriod:        doc.PayPeriod,
		BasicSalary:      doc.BasicSalary,
		HRA:              doc.HRA,
		DA:               doc.DA,
		TA:               doc.TA,
		OtherAllowances:  doc.OtherAllowances,
		GrossSalary:      doc.GrossSalary,
		PFDeduction:      doc.PFDeduction,
		ESIDeduction:     doc.ESIDeduction,
		ProfessionalTax:  doc.ProfessionalTax,
		IncomeTax:        doc.IncomeTax,
		TotalDeductions:  doc.TotalDeductions,
		NetSalary:        doc.NetSalary,
	}
}
