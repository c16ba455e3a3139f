package dto

import (
	"github.com/shopspring/decimal"

	"cableworks/internal/core/entity"
	"cableworks/internal/core/types"
	"cableworks/internal/domain/catalogs/product"
)

// --- Request DTOs ---

// CreateProductRequest is the request body for creating a product.
type CreateProductRequest struct {
	Code           string              `json:"code"`
	Name           string              `json:"name" binding:"required"`
	Type           product.ProductType `json:"type" binding:"required"`
	Article        *string             `json:"article"`
	HSNCode        *string             `json:"hsnCode"`
	BaseUnitID     *string             `json:"baseUnitId"`
	UnitPrice      types.Money         `json:"unitPrice"`
	Weight         decimal.Decimal     `json:"weight"`
	Description    *string             `json:"description"`
	ManufacturerID *string             `json:"manufacturerId"`
	ParentID       *string             `json:"parentId"`
	IsFolder       bool                `json:"isFolder"`
	Attributes     entity.Attributes   `json:"attributes"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateProductRequest) ToEntity() *product.Product {
	item := product.NewProduct(r.Code, r.Name, r.Type)
	item.Article = r.Article
	item.HSNCode = r.HSNCode
	item.BaseUnitID = r.BaseUnitID
	item.UnitPrice = r.UnitPrice
	item.Weight = r.Weight
	item.Description = r.Description
	item.ManufacturerID = r.ManufacturerID
	item.ParentID = r.ParentID
	item.IsFolder = r.IsFolder
	item.Attributes = r.Attributes
	return item
}

// UpdateProductRequest is the request body for updating a product.
type UpdateProductRequest struct {
	Code           string              `json:"code"`
	Name           string              `json:"name" binding:"required"`
	Type           product.ProductType `json:"type" binding:"required"`
	Article        *string             `json:"article"`
	HSNCode        *string             `json:"hsnCode"`
	BaseUnitID     *string             `json:"baseUnitId"`
	UnitPrice      types.Money         `json:"unitPrice"`
	Weight         decimal.Decimal     `json:"weight"`
	Description    *string             `json:"description"`
	ManufacturerID *string             `json:"manufacturerId"`
	ParentID       *string             `json:"parentId"`
	IsFolder       bool                `json:"isFolder"`
	Attributes     entity.Attributes   `json:"attributes"`
	Version        int                 `json:"version" binding:"required"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateProductRequest) ApplyTo(item *product.Product) {
	item.Code = r.Code
	item.Name = r.Name
	item.Type = r.Type
	item.Article = r.Article
	item.HSNCode = r.HSNCode
	item.BaseUnitID = r.BaseUnitID
	item.UnitPrice = r.UnitPrice
	item.Weight = r.Weight
	item.Description = r.Description
	item.ManufacturerID = r.ManufacturerID
	item.ParentID = r.ParentID
	item.IsFolder = r.IsFolder
	item.Attributes = r.Attributes
	item.Version = r.Version
}

// --- Response DTOs ---

// ProductResponse is the response body for a product.
type ProductResponse struct {
	ID             string              `json:"id"`
	Code           string              `json:"code"`
	Name           string              `json:"name"`
	Type           product.ProductType `json:"type"`
	Article        *string             `json:"article,omitempty"`
	HSNCode        *string             `json:"hsnCode,omitempty"`
	BaseUnitID     *string             `json:"baseUnitId,omitempty"`
	UnitPrice      types.Money         `json:"unitPrice"`
	Weight         decimal.Decimal     `json:"weight"`
	Description    *string             `json:"description,omitempty"`
	ManufacturerID *string             `json:"manufacturerId,omitempty"`
	ParentID       *string             `json:"parentId,omitempty"`
	IsFolder       bool                `json:"isFolder"`
	DeletionMark   bool                `json:"deletionMark"`
	Version        int                 `json:"version"`
	Attributes     entity.Attributes   `json:"attributes,omitempty"`
}

// FromProduct creates response DTO from domain entity.
func FromProduct(item *product.Product) *ProductResponse {
	return &ProductResponse{
		ID:             item.ID.String(),
		Code:           item.Code,
		Name:           item.Name,
		Type:           item.Type,
		Article:        item.Article,
		HSNCode:        item.HSNCode,
		BaseUnitID:     item.BaseUnitID,
		UnitPrice:      item.UnitPrice,
		Weight:         item.Weight,
		Description:    item.Description,
		ManufacturerID: item.ManufacturerID,
		ParentID:       item.ParentID,
		IsFolder:       item.IsFolder,
		DeletionMark:   item.DeletionMark,
		Version:        item.Version,
		Attributes:     item.Attributes,
	}
}
