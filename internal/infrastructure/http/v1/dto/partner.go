package dto

import (
	"cableworks/internal/core/entity"
	"cableworks/internal/domain/catalogs/partner"
)

// --- Request DTOs ---

// CreatePartnerRequest is the request body for creating a partner.
type CreatePartnerRequest struct {
	Code            string              `json:"code"`
	Name            string              `json:"name" binding:"required"`
	Type            partner.PartnerType `json:"type" binding:"required"`
	LegalForm       partner.LegalForm   `json:"legalForm" binding:"required"`
	FullName        *string             `json:"fullName"`
	GSTIN           *string             `json:"gstin"`
	PAN             *string             `json:"pan"`
	BillingAddress  *string             `json:"billingAddress"`
	ShippingAddress *string             `json:"shippingAddress"`
	Phone           *string             `json:"phone"`
	Email           *string             `json:"email"`
	ContactPerson   *string             `json:"contactPerson"`
	Comment         *string             `json:"comment"`
	ParentID        *string             `json:"parentId"`
	IsFolder        bool                `json:"isFolder"`
	Attributes      entity.Attributes   `json:"attributes"`
}

// ToEntity converts DTO to domain entity.
func (r *CreatePartnerRequest) ToEntity() *partner.Partner {
	p := partner.NewPartner(r.Code, r.Name, r.Type, r.LegalForm)
	p.FullName = r.FullName
	p.GSTIN = r.GSTIN
	p.PAN = r.PAN
	p.BillingAddress = r.BillingAddress
	p.ShippingAddress = r.ShippingAddress
	p.Phone = r.Phone
	p.Email = r.Email
	p.ContactPerson = r.ContactPerson
	p.Comment = r.Comment
	p.ParentID = r.ParentID
	p.IsFolder = r.IsFolder
	p.Attributes = r.Attributes
	return p
}

// UpdatePartnerRequest is the request body for updating a partner.
type UpdatePartnerRequest struct {
	Code            string              `json:"code"`
	Name            string              `json:"name" binding:"required"`
	Type            partner.PartnerType `json:"type" binding:"required"`
	LegalForm       partner.LegalForm   `json:"legalForm" binding:"required"`
	FullName        *string             `json:"fullName"`
	GSTIN           *string             `json:"gstin"`
	PAN             *string             `json:"pan"`
	BillingAddress  *string             `json:"billingAddress"`
	ShippingAddress *string             `json:"shippingAddress"`
	Phone           *string             `json:"phone"`
	Email           *string             `json:"email"`
	ContactPerson   *string             `json:"contactPerson"`
	Comment         *string             `json:"comment"`
	ParentID        *string             `json:"parentId"`
	IsFolder        bool                `json:"isFolder"`
	Attributes      entity.Attributes   `json:"attributes"`
	Version         int                 `json:"version" binding:"required"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdatePartnerRequest) ApplyTo(p *partner.Partner) {
	p.Code = r.Code
	p.Name = r.Name
	p.Type = r.Type
	p.LegalForm = r.LegalForm
	p.FullName = r.FullName
	p.GSTIN = r.GSTIN
	p.PAN = r.PAN
	p.BillingAddress = r.BillingAddress
	p.ShippingAddress = r.ShippingAddress
	p.Phone = r.Phone
	p.Email = r.Email
	p.ContactPerson = r.ContactPerson
	p.Comment = r.Comment
	p.ParentID = r.ParentID
	p.IsFolder = r.IsFolder
	p.Attributes = r.Attributes
	p.Version = r.Version
}

// --- Response DTOs ---

// PartnerResponse is the response body for a partner.
type PartnerResponse struct {
	ID              string              `json:"id"`
	Code            string              `json:"code"`
	Name            string              `json:"name"`
	Type            partner.PartnerType `json:"type"`
	LegalForm       partner.LegalForm   `json:"legalForm"`
	FullName        *string             `json:"fullName"`
	GSTIN           *string             `json:"gstin,omitempty"`
	PAN             *string             `json:"pan,omitempty"`
	BillingAddress  *string             `json:"billingAddress,omitempty"`
	ShippingAddress *string             `json:"shippingAddress,omitempty"`
	Phone           *string             `json:"phone,omitempty"`
	Email           *string             `json:"email,omitempty"`
	ContactPerson   *string             `json:"contactPerson,omitempty"`
	Comment         *string             `json:"comment,omitempty"`
	ParentID        *string             `json:"parentId,omitempty"`
	IsFolder        bool                `json:"isFolder"`
	DeletionMark    bool                `json:"deletionMark"`
	Version         int                 `json:"version"`
	Attributes      entity.Attributes   `json:"attributes,omitempty"`
}

// FromPartner creates response DTO from domain entity.
func FromPartner(p *partner.Partner) *PartnerResponse {
	return &PartnerResponse{
		ID:              p.ID.String(),
		Code:            p.Code,
		Name:            p.Name,
		Type:            p.Type,
		LegalForm:       p.LegalForm,
		FullName:        p.FullName,
		GSTIN:           p.GSTIN,
		PAN:             p.PAN,
		BillingAddress:  p.BillingAddress,
		ShippingAddress: p.ShippingAddress,
		Phone:           p.Phone,
		Email:           p.Email,
		ContactPerson:   p.ContactPerson,
		Comment:         p.Comment,
		ParentID:        p.ParentID,
		IsFolder:        p.IsFolder,
		DeletionMark:    p.DeletionMark,
		Version:         p.Version,
		Attributes:      p.Attributes,
	}
}
