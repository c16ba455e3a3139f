package dto

import (
	"github.com/shopspring/decimal"

	"cableworks/internal/core/entity"
	"cableworks/internal/domain/catalogs/unit"
)

// UnitPayload carries the writable unit fields shared by create and
// update requests.
type UnitPayload struct {
	Code             string            `json:"code"`
	Name             string            `json:"name" binding:"required"`
	Type             unit.UnitType     `json:"type" binding:"required"`
	Symbol           string            `json:"symbol" binding:"required"`
	UQCCode          *string           `json:"uqcCode"`
	BaseUnitID       *string           `json:"baseUnitId"`
	ConversionFactor decimal.Decimal   `json:"conversionFactor"`
	IsBase           bool              `json:"isBase"`
	Description      *string           `json:"description"`
	ParentID         *string           `json:"parentId"`
	IsFolder         bool              `json:"isFolder"`
	Attributes       entity.Attributes `json:"attributes"`
}

func (p *UnitPayload) apply(u *unit.Unit) {
	u.Code = p.Code
	u.Name = p.Name
	u.Type = p.Type
	u.Symbol = p.Symbol
	u.UQCCode = p.UQCCode
	u.BaseUnitID = p.BaseUnitID
	u.ConversionFactor = p.ConversionFactor
	u.IsBase = p.IsBase
	u.Description = p.Description
	u.ParentID = p.ParentID
	u.IsFolder = p.IsFolder
	u.Attributes = p.Attributes
}

// CreateUnitRequest is the request body for creating a unit.
type CreateUnitRequest struct {
	UnitPayload
}

// ToEntity converts the request to a domain entity. An omitted
// conversion factor keeps the constructor default of 1.
func (r *CreateUnitRequest) ToEntity() *unit.Unit {
	u := unit.NewUnit(r.Code, r.Name, r.Symbol, r.Type)
	factor := u.ConversionFactor
	r.apply(u)
	if r.ConversionFactor.IsZero() {
		u.ConversionFactor = factor
	}
	return u
}

// UpdateUnitRequest is the request body for updating a unit. Version
// carries the optimistic lock.
type UpdateUnitRequest struct {
	UnitPayload
	Version int `json:"version" binding:"required"`
}

// ApplyTo writes the request fields onto the stored entity.
func (r *UpdateUnitRequest) ApplyTo(u *unit.Unit) {
	r.apply(u)
	u.Version = r.Version
}

// UnitResponse is the response body for a unit.
type UnitResponse struct {
	ID               string            `json:"id"`
	Code             string            `json:"code"`
	Name             string            `json:"name"`
	Type             unit.UnitType     `json:"type"`
	Symbol           string            `json:"symbol"`
	UQCCode          *string           `json:"uqcCode,omitempty"`
	BaseUnitID       *string           `json:"baseUnitId,omitempty"`
	ConversionFactor decimal.Decimal   `json:"conversionFactor"`
	IsBase           bool              `json:"isBase"`
	Description      *string           `json:"description,omitempty"`
	ParentID         *string           `json:"parentId,omitempty"`
	IsFolder         bool              `json:"isFolder"`
	DeletionMark     bool              `json:"deletionMark"`
	Version          int               `json:"version"`
	Attributes       entity.Attributes `json:"attributes,omitempty"`
}

// FromUnit maps a unit onto its response body.
func FromUnit(u *unit.Unit) *UnitResponse {
	return &UnitResponse{
		ID:               u.ID.String(),
		Code:             u.Code,
		Name:             u.Name,
		Type:             u.Type,
		Symbol:           u.Symbol,
		UQCCode:          u.UQCCode,
		BaseUnitID:       u.BaseUnitID,
		ConversionFactor: u.ConversionFactor,
		IsBase:           u.IsBase,
		Description:      u.Description,
		ParentID:         u.ParentID,
		IsFolder:         u.IsFolder,
		DeletionMark:     u.DeletionMark,
		Version:          u.Version,
		Attributes:       u.Attributes,
	}
}
