// Package organization provides the Organization catalog.
package organization

import (
	"context"
	"regexp"

	"cableworks/internal/core/apperror"
	"cableworks/internal/core/entity"
)

var (
	// GSTIN: 2-digit state code, PAN, entity number, "Z", checksum.
	orgGSTINRE = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z][1-9A-Z]Z[0-9A-Z]$`)
	orgPANRE   = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)
)

// Organization represents the legal entity issuing documents.
// A plant usually has one, but branches with separate GST registrations
// are modeled as separate organizations.
type Organization struct {
	entity.Catalog

	// FullName is the official registered name
	FullName *string `db:"full_name" json:"fullName,omitempty"`

	// GSTIN is the GST registration of this organization
	GSTIN *string `db:"gstin" json:"gstin,omitempty"`

	// PAN is the income tax permanent account number
	PAN *string `db:"pan" json:"pan,omitempty"`

	// Address is the registered office address
	Address *string `db:"address" json:"address,omitempty"`

	// Phone is the office contact number
	Phone *string `db:"phone" json:"phone,omitempty"`

	// Email is the office contact email
	Email *string `db:"email" json:"email,omitempty"`

	// IsDefault indicates the default organization for new documents
	IsDefault bool `db:"is_default" json:"isDefault"`
}

// NewOrganization creates a new Organization with required fields.
func NewOrganization(code, name string) *Organization {
	return &Organization{
		Catalog: entity.NewCatalog(code, name),
	}
}

// Validate implements entity.Validatable interface.
func (o *Organization) Validate(ctx context.Context) error {
	if err := o.Catalog.Validate(ctx); err != nil {
		return err
	}

	if o.GSTIN != nil && *o.GSTIN != "" && !orgGSTINRE.MatchString(*o.GSTIN) {
		return apperror.NewValidation("invalid GSTIN format").
			WithDetail("field", "gstin")
	}

	if o.PAN != nil && *o.PAN != "" && !orgPANRE.MatchString(*o.PAN) {
		return apperror.NewValidation("invalid PAN format").
			WithDetail("field", "pan")
	}

	return nil
}
