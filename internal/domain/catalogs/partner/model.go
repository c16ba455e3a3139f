// Package partner provides the Partner catalog.
// Partners represent the business relations of the plant: customers
// buying cable, suppliers of raw material, or both.
package partner

import (
	"context"
	"regexp"
	"strings"

	"cableworks/internal/core/apperror"
	"cableworks/internal/core/entity"
)

// Pre-compiled regex patterns for validation (performance optimization)
var (
	gstinRE = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z][1-9A-Z]Z[0-9A-Z]$`)
	panRE   = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)
	emailRE = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// PartnerType defines the type of partner.
type PartnerType string

const (
	TypeCustomer PartnerType = "customer"
	TypeSupplier PartnerType = "supplier"
	TypeBoth     PartnerType = "both"
	TypeOther    PartnerType = "other"
)

// LegalForm defines the legal form of partner.
type LegalForm string

const (
	LegalIndividual     LegalForm = "individual"
	LegalProprietorship LegalForm = "proprietorship"
	LegalCompany        LegalForm = "company"
	LegalGovernment     LegalForm = "government"
)

// Partner represents a business partner (customer, supplier, etc.).
type Partner struct {
	entity.Catalog

	// Type defines whether this is a customer, supplier, or both
	Type PartnerType `db:"type" json:"type"`

	// LegalForm defines the legal status
	LegalForm LegalForm `db:"legal_form" json:"legalForm"`

	// FullName is the official registered name
	FullName *string `db:"full_name" json:"fullName"`

	// GSTIN - Goods and Services Tax Identification Number
	GSTIN *string `db:"gstin" json:"gstin,omitempty"`

	// PAN - Permanent Account Number
	PAN *string `db:"pan" json:"pan,omitempty"`

	// BillingAddress is the registered billing address
	BillingAddress *string `db:"billing_address" json:"billingAddress,omitempty"`

	// ShippingAddress is the delivery address
	ShippingAddress *string `db:"shipping_address" json:"shippingAddress,omitempty"`

	// Phone is the primary contact phone
	Phone *string `db:"phone" json:"phone,omitempty"`

	// Email is the primary contact email
	Email *string `db:"email" json:"email,omitempty"`

	// ContactPerson is the primary contact name
	ContactPerson *string `db:"contact_person" json:"contactPerson,omitempty"`

	// Comment is a free-form note
	Comment *string `db:"comment" json:"comment,omitempty"`
}

// NewPartner creates a new Partner with required fields.
func NewPartner(code, name string, pType PartnerType, legalForm LegalForm) *Partner {
	return &Partner{
		Catalog:   entity.NewCatalog(code, name),
		Type:      pType,
		LegalForm: legalForm,
	}
}

// Validate implements entity.Validatable interface.
func (p *Partner) Validate(ctx context.Context) error {
	// Base catalog validation
	if err := p.Catalog.Validate(ctx); err != nil {
		return err
	}

	// Type validation
	if !isValidPartnerType(p.Type) {
		return apperror.NewValidation("invalid partner type").
			WithDetail("field", "type").
			WithDetail("value", string(p.Type))
	}

	// Legal form validation
	if !isValidLegalForm(p.LegalForm) {
		return apperror.NewValidation("invalid legal form").
			WithDetail("field", "legalForm").
			WithDetail("value", string(p.LegalForm))
	}

	// GSTIN validation (if provided)
	if p.GSTIN != nil && *p.GSTIN != "" {
		if !isValidGSTIN(*p.GSTIN) {
			return apperror.NewValidation("invalid GSTIN format").
				WithDetail("field", "gstin")
		}
	}

	// PAN validation (if provided)
	if p.PAN != nil && *p.PAN != "" {
		if !isValidPAN(*p.PAN) {
			return apperror.NewValidation("invalid PAN format").
				WithDetail("field", "pan")
		}
	}

	// Email validation (if provided)
	if p.Email != nil && *p.Email != "" && !isValidEmail(*p.Email) {
		return apperror.NewValidation("invalid email format").
			WithDetail("field", "email")
	}

	return nil
}

// IsCustomer returns true if partner is a customer.
func (p *Partner) IsCustomer() bool {
	return p.Type == TypeCustomer || p.Type == TypeBoth
}

// IsSupplier returns true if partner is a supplier.
func (p *Partner) IsSupplier() bool {
	return p.Type == TypeSupplier || p.Type == TypeBoth
}

// --- Validation Helpers ---

func isValidPartnerType(t PartnerType) bool {
	switch t {
	case TypeCustomer, TypeSupplier, TypeBoth, TypeOther:
		return true
	}
	return false
}

func isValidLegalForm(f LegalForm) bool {
	switch f {
	case LegalIndividual, LegalProprietorship, LegalCompany, LegalGovernment:
		return true
	}
	return false
}

// isValidGSTIN checks the 15-character GSTIN layout:
// state code, embedded PAN, entity number, Z, check character.
func isValidGSTIN(gstin string) bool {
	return gstinRE.MatchString(strings.ToUpper(strings.TrimSpace(gstin)))
}

func isValidPAN(pan string) bool {
	return panRE.MatchString(strings.ToUpper(strings.TrimSpace(pan)))
}

func isValidEmail(email string) bool {
	return emailRE.MatchString(email)
}
