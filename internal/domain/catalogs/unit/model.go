// Package unit provides the measurement unit catalog. Cable stock
// moves in metres and kilograms on the shop floor but ships in drums
// and rolls, so units carry conversion factors and the UQC codes that
// GST filings require.
package unit

import (
	"context"

	"github.com/shopspring/decimal"

	"cableworks/internal/core/apperror"
	"cableworks/internal/core/entity"
)

// UnitType is the measurement category. Conversions only work within
// one category.
type UnitType string

const (
	TypePiece  UnitType = "piece"
	TypeWeight UnitType = "weight"
	TypeLength UnitType = "length"
	TypeArea   UnitType = "area"
	TypeVolume UnitType = "volume"
	TypeTime   UnitType = "time"
	TypePack   UnitType = "pack" // drums, rolls, boxes
)

var validTypes = map[UnitType]bool{
	TypePiece:  true,
	TypeWeight: true,
	TypeLength: true,
	TypeArea:   true,
	TypeVolume: true,
	TypeTime:   true,
	TypePack:   true,
}

// uqcCodes lists the GST Unit Quantity Codes accepted on invoices.
// Subset of the GSTN master covering what a cable plant ships in.
var uqcCodes = map[string]bool{
	"NOS": true, // numbers
	"PCS": true, // pieces
	"KGS": true, // kilograms
	"GMS": true, // grams
	"TON": true, // tonnes
	"MTR": true, // metres
	"KME": true, // kilometres
	"CMS": true, // centimetres
	"SQM": true, // square metres
	"CBM": true, // cubic metres
	"LTR": true, // litres
	"ROL": true, // rolls
	"DRM": true, // drums
	"BDL": true, // bundles
	"BOX": true,
	"CTN": true, // cartons
	"SET": true,
	"PAC": true, // packs
	"DOZ": true, // dozens
	"HRS": true, // hours
}

// conversionScale is the rounding applied to converted quantities.
const conversionScale = 3

// Unit is a measurement unit. A derived unit (gram, drum of 500 m)
// points at its base unit and carries the factor to reach it.
type Unit struct {
	entity.Catalog

	Type UnitType `db:"type" json:"type"`

	// Symbol is the short form shown on documents ("kg", "m", "drum")
	Symbol string `db:"symbol" json:"symbol"`

	// UQCCode is the Unit Quantity Code reported in GST returns
	UQCCode *string `db:"uqc_code" json:"uqcCode,omitempty"`

	// BaseUnitID and ConversionFactor define the derivation:
	// quantity in base units = quantity * ConversionFactor
	BaseUnitID       *string         `db:"base_unit_id" json:"baseUnitId,omitempty"`
	ConversionFactor decimal.Decimal `db:"conversion_factor" json:"conversionFactor"`

	// IsBase marks the unit other units of this type derive from
	IsBase bool `db:"is_base" json:"isBase"`

	Description *string `db:"description" json:"description,omitempty"`
}

// NewUnit creates a base unit with factor 1.
func NewUnit(code, name, symbol string, unitType UnitType) *Unit {
	return &Unit{
		Catalog:          entity.NewCatalog(code, name),
		Type:             unitType,
		Symbol:           symbol,
		ConversionFactor: decimal.NewFromInt(1),
		IsBase:           true,
	}
}

// Validate implements entity.Validatable.
func (u *Unit) Validate(ctx context.Context) error {
	if err := u.Catalog.Validate(ctx); err != nil {
		return err
	}

	if u.Symbol == "" {
		return apperror.NewValidation("symbol is required").
			WithDetail("field", "symbol")
	}

	if !validTypes[u.Type] {
		return apperror.NewValidation("invalid unit type").
			WithDetail("field", "type").
			WithDetail("value", string(u.Type))
	}

	if u.UQCCode != nil && *u.UQCCode != "" && !uqcCodes[*u.UQCCode] {
		return apperror.NewValidation("unknown UQC code").
			WithDetail("field", "uqcCode").
			WithDetail("value", *u.UQCCode)
	}

	if !u.ConversionFactor.IsPositive() {
		return apperror.NewValidation("conversion factor must be positive").
			WithDetail("field", "conversionFactor")
	}

	if u.BaseUnitID != nil && *u.BaseUnitID != "" && u.IsBase {
		return apperror.NewValidation("unit with base unit reference cannot be marked as base").
			WithDetail("field", "isBase")
	}

	return nil
}

// ConvertTo converts a quantity from this unit into target. Both units
// must share a type, so a 500 m drum converts to metres but never to
// kilograms.
func (u *Unit) ConvertTo(qty decimal.Decimal, target *Unit) (decimal.Decimal, error) {
	if u.Type != target.Type {
		return decimal.Zero, apperror.NewValidation("cannot convert between different unit types").
			WithDetail("source", string(u.Type)).
			WithDetail("target", string(target.Type))
	}
	if !target.ConversionFactor.IsPositive() {
		return decimal.Zero, apperror.NewValidation("target conversion factor must be positive").
			WithDetail("target", target.Symbol)
	}

	// Through the base unit: qty * source factor / target factor
	return qty.Mul(u.ConversionFactor).Div(target.ConversionFactor).Round(conversionScale), nil
}
