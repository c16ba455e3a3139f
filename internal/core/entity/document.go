package entity

import (
	"context"
	"time"

	"cableworks/internal/core/apperror"
	"cableworks/internal/core/id"
)

// Document is the shared header of business transactions: invoices,
// purchase orders, payslips. A document belongs to one organization
// and is frozen against edits while posted.
type Document struct {
	BaseDocument

	// Number is assigned by the numerator, unique within type and period
	Number string `db:"number" json:"number"`

	// Date is the business date, not the creation timestamp
	Date time.Time `db:"date" json:"date"`

	Posted bool `db:"posted" json:"posted"`

	// PostedVersion counts posting iterations
	PostedVersion int `db:"posted_version" json:"postedVersion"`

	OrganizationID string `db:"organization_id" json:"organizationId"`

	Comment string `db:"comment" json:"comment,omitempty"`
}

// NewDocument creates an unposted document dated now.
func NewDocument(organizationID string) Document {
	return Document{
		BaseDocument:   NewBaseDocument(),
		Date:           time.Now().UTC(),
		OrganizationID: organizationID,
	}
}

// Validate checks the invariants shared by every document.
func (d *Document) Validate(ctx context.Context) error {
	if d.OrganizationID == "" {
		return apperror.NewValidation("organization is required").
			WithDetail("field", "organizationId")
	}
	if d.Date.IsZero() {
		return apperror.NewValidation("date is required").
			WithDetail("field", "date")
	}
	return nil
}

// CanModify rejects edits while the document is posted.
func (d *Document) CanModify() error {
	if d.Posted {
		return apperror.NewBusinessRule(
			apperror.CodeDocumentPosted,
			"Cannot modify posted document. Unpost first.",
		).WithDetail("document_id", d.ID.String())
	}
	return nil
}

// MarkPosted freezes the document and counts the posting iteration.
func (d *Document) MarkPosted() {
	d.Posted = true
	d.PostedVersion++
	d.Touch()
}

// MarkUnposted reopens the document for edits.
func (d *Document) MarkUnposted() {
	d.Posted = false
	d.Touch()
}

// GetID returns the document ID.
func (d *Document) GetID() id.ID {
	return d.ID
}
