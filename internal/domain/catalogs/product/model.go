// Package product provides the Product catalog.
// Products cover everything the plant buys and sells: finished cable,
// raw materials (copper, aluminium, PVC compound), semi-finished goods
// and services.
package product

import (
	"context"
	"regexp"

	"github.com/shopspring/decimal"

	"cableworks/internal/core/apperror"
	"cableworks/internal/core/entity"
	"cableworks/internal/core/types"
)

// HSN codes are 4, 6 or 8 digit GST classification codes.
var hsnRE = regexp.MustCompile(`^(\d{4}|\d{6}|\d{8})$`)

// ProductType defines the type of item.
type ProductType string

const (
	TypeFinished ProductType = "finished" // finished cable, ready for sale
	TypeMaterial ProductType = "material" // raw material (copper, PVC, steel)
	TypeSemi     ProductType = "semi"     // semi-finished (drawn wire, insulated core)
	TypeService  ProductType = "service"  // services (testing, cutting, delivery)
)

// Product represents an item the plant manufactures, consumes or sells.
type Product struct {
	entity.Catalog

	// Type defines item category
	Type ProductType `db:"type" json:"type"`

	// Article is the item article/SKU
	Article *string `db:"article" json:"article,omitempty"`

	// HSNCode is the GST classification code
	HSNCode *string `db:"hsn_code" json:"hsnCode,omitempty"`

	// BaseUnitID is the reference to base unit of measure
	BaseUnitID *string `db:"base_unit_id" json:"baseUnitId,omitempty"`

	// UnitPrice is the default selling price per base unit
	UnitPrice types.Money `db:"unit_price" json:"unitPrice"`

	// Weight in kg per base unit (for logistics)
	Weight decimal.Decimal `db:"weight" json:"weight"`

	// Description is a detailed description (conductor size, core count, insulation)
	Description *string `db:"description" json:"description,omitempty"`

	// ManufacturerID is reference to manufacturer (partner)
	ManufacturerID *string `db:"manufacturer_id" json:"manufacturerId,omitempty"`
}

// NewProduct creates a new Product with required fields.
func NewProduct(code, name string, itemType ProductType) *Product {
	return &Product{
		Catalog:   entity.NewCatalog(code, name),
		Type:      itemType,
		UnitPrice: types.Zero(),
		Weight:    decimal.Zero,
	}
}

// Validate implements entity.Validatable interface.
func (p *Product) Validate(ctx context.Context) error {
	// Base catalog validation
	if err := p.Catalog.Validate(ctx); err != nil {
		return err
	}

	// Type validation
	if !isValidProductType(p.Type) {
		return apperror.NewValidation("invalid product type").
			WithDetail("field", "type").
			WithDetail("value", string(p.Type))
	}

	// HSN code validation (if provided)
	if p.HSNCode != nil && *p.HSNCode != "" && !hsnRE.MatchString(*p.HSNCode) {
		return apperror.NewValidation("invalid HSN code (must be 4, 6 or 8 digits)").
			WithDetail("field", "hsnCode")
	}

	// Price must be non-negative
	if p.UnitPrice.IsNegative() {
		return apperror.NewValidation("unit price cannot be negative").
			WithDetail("field", "unitPrice")
	}

	// Weight must be non-negative
	if p.Weight.IsNegative() {
		return apperror.NewValidation("weight cannot be negative").
			WithDetail("field", "weight")
	}

	return nil
}

// IsPhysical returns true if item has physical presence (not a service).
func (p *Product) IsPhysical() bool {
	return p.Type != TypeService
}

// --- Validation Helpers ---

func isValidProductType(t ProductType) bool {
	switch t {
	case TypeFinished, TypeMaterial, TypeSemi, TypeService:
		return true
	}
	return false
}
