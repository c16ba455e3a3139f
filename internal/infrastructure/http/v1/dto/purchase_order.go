package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"cableworks/internal/core/id"
	"cableworks/internal/domain/documents/purchase_order"
)

// --- Request DTOs ---

// CreatePurchaseOrderRequest represents a request to create a purchase order.
type CreatePurchaseOrderRequest struct {
	Number          string          `json:"number,omitempty"`
	Date            time.Time       `json:"date" binding:"required"`
	OrganizationID  string          `json:"organizationId" binding:"required"`
	SupplierID      string          `json:"supplierId" binding:"required"`
	ProductID       string          `json:"productId" binding:"required"`
	QuantityOrdered decimal.Decimal `json:"quantityOrdered" binding:"required"`
	UnitPrice       decimal.Decimal `json:"unitPrice"`
	TaxAmount       decimal.Decimal `json:"taxAmount"`
	ShippingCost    decimal.Decimal `json:"shippingCost"`
	DiscountAmount  decimal.Decimal `json:"discountAmount"`
	AmountPaid      decimal.Decimal `json:"amountPaid"`
	ExpectedDate    *time.Time      `json:"expectedDate"`
	Comment         string          `json:"comment,omitempty"`
}

// ToEntity converts request to domain entity.
func (r *CreatePurchaseOrderRequest) ToEntity() *purchase_order.PurchaseOrder {
	supplierID, _ := id.Parse(r.SupplierID)
	productID, _ := id.Parse(r.ProductID)

	doc := purchase_order.NewPurchaseOrder(r.OrganizationID, supplierID, productID)
	doc.Number = r.Number
	doc.Date = r.Date
	doc.QuantityOrdered = r.QuantityOrdered
	doc.UnitPrice = r.UnitPrice
	doc.TaxAmount = r.TaxAmount
	doc.ShippingCost = r.ShippingCost
	doc.DiscountAmount = r.DiscountAmount
	doc.AmountPaid = r.AmountPaid
	doc.ExpectedDate = r.ExpectedDate
	doc.Comment = r.Comment

	return doc
}

// UpdatePurchaseOrderRequest represents a request to update a purchase order.
type UpdatePurchaseOrderRequest struct {
	Date            time.Time       `json:"date" binding:"required"`
	SupplierID      string          `json:"supplierId" binding:"required"`
	ProductID       string          `json:"productId" binding:"required"`
	QuantityOrdered decimal.Decimal `json:"quantityOrdered" binding:"required"`
	UnitPrice       decimal.Decimal `json:"unitPrice"`
	TaxAmount       decimal.Decimal `json:"taxAmount"`
	ShippingCost    decimal.Decimal `json:"shippingCost"`
	DiscountAmount  decimal.Decimal `json:"discountAmount"`
	AmountPaid      decimal.Decimal `json:"amountPaid"`
	ExpectedDate    *time.Time      `json:"expectedDate"`
	Comment         string          `json:"comment,omitempty"`
	Version         int             `json:"version" binding:"required"`
}

// ApplyTo applies update request to existing entity.
func (r *UpdatePurchaseOrderRequest) ApplyTo(doc *purchase_order.PurchaseOrder) {
	supplierID, _ := id.Parse(r.SupplierID)
	productID, _ := id.Parse(r.ProductID)

	doc.Date = r.Date
	doc.SupplierID = supplierID
	doc.ProductID = productID
	doc.QuantityOrdered = r.QuantityOrdered
	doc.UnitPrice = r.UnitPrice
	doc.TaxAmount = r.TaxAmount
	doc.ShippingCost = r.ShippingCost
	doc.DiscountAmount = r.DiscountAmount
	doc.AmountPaid = r.AmountPaid
	doc.ExpectedDate = r.ExpectedDate
	doc.Comment = r.Comment
	doc.Version = r.Version
}

// SetOrderStatusRequest moves an order through its lifecycle.
type SetOrderStatusRequest struct {
	Status purchase_order.OrderStatus `json:"status" binding:"required"`
}

// --- Response DTOs ---

// PurchaseOrderResponse is the response body for a purchase order.
type PurchaseOrderResponse struct {
	DocumentResponse

	SupplierID      string                     `json:"supplierId"`
	ProductID       string                     `json:"productId"`
	QuantityOrdered decimal.Decimal            `json:"quantityOrdered"`
	UnitPrice       decimal.Decimal            `json:"unitPrice"`
	TaxAmount       decimal.Decimal            `json:"taxAmount"`
	ShippingCost    decimal.Decimal            `json:"shippingCost"`
	DiscountAmount  decimal.Decimal            `json:"discountAmount"`
	AmountPaid      decimal.Decimal            `json:"amountPaid"`
	Status          purchase_order.OrderStatus `json:"status"`
	ExpectedDate    *time.Time                 `json:"expectedDate,omitempty"`

	TotalAmount decimal.Decimal `json:"totalAmount"`
	FinalAmount decimal.Decimal `json:"finalAmount"`
}

// FromPurchaseOrder creates response DTO from domain entity.
func FromPurchaseOrder(doc *purchase_order.PurchaseOrder) *PurchaseOrderResponse {
	return &PurchaseOrderResponse{
		DocumentResponse: FromDocument(doc.Document),
		SupplierID:       doc.SupplierID.String(),
		ProductID:        doc.ProductID.String(),
		QuantityOrdered:  doc.QuantityOrdered,
		UnitPrice:        doc.UnitPrice,
		TaxAmount:        doc.TaxAmount,
		ShippingCost:     doc.ShippingCost,
		DiscountAmount:   doc.DiscountAmount,
		AmountPaid:       doc.AmountPaid,
		Status:           doc.Status,
		ExpectedDate:     doc.ExpectedDate,
		TotalAmount:      doc.TotalAmount,
		FinalAmount:      doc.FinalAmount,
	}
}
