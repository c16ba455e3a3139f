package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"cableworks/internal/core/id"
	"cableworks/internal/domain/documents/invoice"
)

// --- Request DTOs ---

// CreateInvoiceRequest represents a request to create an invoice.
// Only base fields are accepted; totals are always computed server side.
type CreateInvoiceRequest struct {
	Number         string          `json:"number,omitempty"`
	Date           time.Time       `json:"date" binding:"required"`
	OrganizationID string          `json:"organizationId" binding:"required"`
	CustomerID     string          `json:"customerId" binding:"required"`
	ProductID      string          `json:"productId" binding:"required"`
	Quantity       decimal.Decimal `json:"quantity" binding:"required"`
	UnitPrice      decimal.Decimal `json:"unitPrice"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	AmountPaid     decimal.Decimal `json:"amountPaid"`
	Comment        string          `json:"comment,omitempty"`
}

// ToEntity converts request to domain entity.
func (r *CreateInvoiceRequest) ToEntity() *invoice.Invoice {
	customerID, _ := id.Parse(r.CustomerID)
	productID, _ := id.Parse(r.ProductID)

	doc := invoice.NewInvoice(r.OrganizationID, customerID, productID)
	doc.Number = r.Number
	doc.Date = r.Date
	doc.Quantity = r.Quantity
	doc.UnitPrice = r.UnitPrice
	doc.DiscountAmount = r.DiscountAmount
	doc.AmountPaid = r.AmountPaid
	doc.Comment = r.Comment

	return doc
}

// UpdateInvoiceRequest represents a request to update an invoice.
type UpdateInvoiceRequest struct {
	Date           time.Time       `json:"date" binding:"required"`
	CustomerID     string          `json:"customerId" binding:"required"`
	ProductID      string          `json:"productId" binding:"required"`
	Quantity       decimal.Decimal `json:"quantity" binding:"required"`
	UnitPrice      decimal.Decimal `json:"unitPrice"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	AmountPaid     decimal.Decimal `json:"amountPaid"`
	Comment        string          `json:"comment,omitempty"`
	Version        int             `json:"version" binding:"required"`
}

// ApplyTo applies update request to existing entity.
func (r *UpdateInvoiceRequest) ApplyTo(doc *invoice.Invoice) {
	customerID, _ := id.Parse(r.CustomerID)
	productID, _ := id.Parse(r.ProductID)

	doc.Date = r.Date
	doc.CustomerID = customerID
	doc.ProductID = productID
	doc.Quantity = r.Quantity
	doc.UnitPrice = r.UnitPrice
	doc.DiscountAmount = r.DiscountAmount
	doc.AmountPaid = r.AmountPaid
	doc.Comment = r.Comment
	doc.Version = r.Version
}

// RecordPaymentRequest represents a payment against an invoice.
type RecordPaymentRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// --- Response DTOs ---

// InvoiceResponse is the response body for an invoice.
type InvoiceResponse struct {
	DocumentResponse

	CustomerID     string          `json:"customerId"`
	ProductID      string          `json:"productId"`
	Quantity       decimal.Decimal `json:"quantity"`
	UnitPrice      decimal.Decimal `json:"unitPrice"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	AmountPaid     decimal.Decimal `json:"amountPaid"`

	Subtotal    decimal.Decimal `json:"subtotal"`
	TaxAmount   decimal.Decimal `json:"taxAmount"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	BalanceDue  decimal.Decimal `json:"balanceDue"`
	Settled     bool            `json:"settled"`
}

// FromInvoice creates response DTO from domain entity.
func FromInvoice(doc *invoice.Invoice) *InvoiceResponse {
	return &InvoiceResponse{
		DocumentResponse: FromDocument(doc.Document),
		CustomerID:       doc.CustomerID.String(),
		ProductID:        doc.ProductID.String(),
		Quantity:         doc.Quantity,
		UnitPrice:        doc.UnitPrice,
		DiscountAmount:   doc.DiscountAmount,
		AmountPaid:       doc.AmountPaid,
		Subtotal:         doc.Subtotal,
		TaxAmount:        doc.TaxAmount,
		TotalAmount:      doc.TotalAmount,
		BalanceDue:       doc.BalanceDue,
		Settled:          doc.IsSettled(),
	}
}
