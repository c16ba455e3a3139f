package dto

import (
	"cableworks/internal/core/id"
	"cableworks/internal/domain/catalogs/organization"
)

// CreateOrganizationRequest is the DTO for creating an organization.
type CreateOrganizationRequest struct {
	Code      string `json:"code"`
	Name      string `json:"name" binding:"required"`
	FullName  string `json:"fullName"`
	GSTIN     string `json:"gstin"`
	PAN       string `json:"pan"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	IsDefault bool   `json:"isDefault"`
}

func (r CreateOrganizationRequest) ToEntity() *organization.Organization {
	org := organization.NewOrganization(r.Code, r.Name)
	org.FullName = optString(r.FullName)
	org.GSTIN = optString(r.GSTIN)
	org.PAN = optString(r.PAN)
	org.Address = optString(r.Address)
	org.Phone = optString(r.Phone)
	org.Email = optString(r.Email)
	org.IsDefault = r.IsDefault
	return org
}

// UpdateOrganizationRequest is the DTO for updating an organization.
type UpdateOrganizationRequest struct {
	ID           id.ID  `json:"id" binding:"required"`
	Version      int    `json:"version" binding:"required"`
	Code         string `json:"code"`
	Name         string `json:"name" binding:"required"`
	FullName     string `json:"fullName"`
	GSTIN        string `json:"gstin"`
	PAN          string `json:"pan"`
	Address      string `json:"address"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	IsDefault    bool   `json:"isDefault"`
	DeletionMark bool   `json:"deletionMark"`
}

func (r UpdateOrganizationRequest) ApplyTo(org *organization.Organization) {
	org.Code = r.Code
	org.Name = r.Name
	org.FullName = optString(r.FullName)
	org.GSTIN = optString(r.GSTIN)
	org.PAN = optString(r.PAN)
	org.Address = optString(r.Address)
	org.Phone = optString(r.Phone)
	org.Email = optString(r.Email)
	org.IsDefault = r.IsDefault
	org.DeletionMark = r.DeletionMark
}

// OrganizationResponse is the DTO for returning organization data.
type OrganizationResponse struct {
	ID           id.ID  `json:"id"`
	Version      int    `json:"version"`
	Code         string `json:"code"`
	Name         string `json:"name"`
	FullName     string `json:"fullName"`
	GSTIN        string `json:"gstin"`
	PAN          string `json:"pan"`
	Address      string `json:"address"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	IsDefault    bool   `json:"isDefault"`
	DeletionMark bool   `json:"deletionMark"`
}

func FromOrganization(org *organization.Organization) OrganizationResponse {
	return OrganizationResponse{
		ID:           org.ID,
		Version:      org.Version,
		Code:         org.Code,
		Name:         org.Name,
		FullName:     strOrEmpty(org.FullName),
		GSTIN:        strOrEmpty(org.GSTIN),
		PAN:          strOrEmpty(org.PAN),
		Address:      strOrEmpty(org.Address),
		Phone:        strOrEmpty(org.Phone),
		Email:        strOrEmpty(org.Email),
		IsDefault:    org.IsDefault,
		DeletionMark: org.DeletionMark,
	}
}

func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
