package partner

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestPartner_Validate(t *testing.T) {
	ctx := context.Background()

	t.Run("valid minimal", func(t *testing.T) {
		p := NewPartner("PTR-001", "Apex Electricals", TypeCustomer, LegalCompany)
		assert.NoError(t, p.Validate(ctx))
	})

	t.Run("invalid type", func(t *testing.T) {
		p := NewPartner("PTR-001", "Apex Electricals", PartnerType("vendor"), LegalCompany)
		assert.Error(t, p.Validate(ctx))
	})

	t.Run("invalid legal form", func(t *testing.T) {
		p := NewPartner("PTR-001", "Apex Electricals", TypeCustomer, LegalForm("llp"))
		assert.Error(t, p.Validate(ctx))
	})

	t.Run("missing name", func(t *testing.T) {
		p := NewPartner("PTR-001", "", TypeCustomer, LegalCompany)
		assert.Error(t, p.Validate(ctx))
	})
}

func TestPartner_Validate_GSTIN(t *testing.T) {
	ctx := context.Background()

	valid := []string{"27AABCS1234F1Z5", "29AAACA9012M1Z8"}
	for _, gstin := range valid {
		p := NewPartner("PTR-001", "Apex Electricals", TypeCustomer, LegalCompany)
		p.GSTIN = strPtr(gstin)
		assert.NoError(t, p.Validate(ctx), "GSTIN %q should be valid", gstin)
	}

	invalid := []string{"27AABCS1234F1X5", "AABCS1234F", "27aabcs1234f1z5", "27AABCS1234F1Z"}
	for _, gstin := range invalid {
		p := NewPartner("PTR-001", "Apex Electricals", TypeCustomer, LegalCompany)
		p.GSTIN = strPtr(gstin)
		assert.Error(t, p.Validate(ctx), "GSTIN %q should be invalid", gstin)
	}

	// Empty GSTIN is fine, unregistered partners exist
	p := NewPartner("PTR-001", "Apex Electricals", TypeCustomer, LegalCompany)
	p.GSTIN = strPtr("")
	assert.NoError(t, p.Validate(ctx))
}

func TestPartner_Validate_PAN(t *testing.T) {
	ctx := context.Background()

	p := NewPartner("PTR-001", "Apex Electricals", TypeCustomer, LegalCompany)
	p.PAN = strPtr("AABCS1234F")
	assert.NoError(t, p.Validate(ctx))

	p.PAN = strPtr("aabcs1234f")
	assert.Error(t, p.Validate(ctx))

	p.PAN = strPtr("AABCS1234")
	assert.Error(t, p.Validate(ctx))
}

func TestPartner_Validate_Email(t *testing.T) {
	ctx := context.Background()

	p := NewPartner("PTR-001", "Apex Electricals", TypeCustomer, LegalCompany)
	p.Email = strPtr("sales@apex.in")
	assert.NoError(t, p.Validate(ctx))

	p.Email = strPtr("not-an-email")
	assert.Error(t, p.Validate(ctx))
}

func TestPartner_Roles(t *testing.T) {
	customer := NewPartner("PTR-001", "Apex Electricals", TypeCustomer, LegalCompany)
	assert.True(t, customer.IsCustomer())
	assert.False(t, customer.IsSupplier())

	supplier := NewPartner("PTR-002", "Vidarbha Copper", TypeSupplier, LegalCompany)
	assert.False(t, supplier.IsCustomer())
	assert.True(t, supplier.IsSupplier())

	both := NewPartner("PTR-003", "R K Enterprises", TypeBoth, LegalIndividual)
	assert.True(t, both.IsCustomer())
	assert.True(t, both.IsSupplier())
}
