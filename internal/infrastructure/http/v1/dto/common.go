// Package dto provides request and response bodies for the v1 API.
package dto

import (
	"time"

	"cableworks/internal/core/entity"
)

// ListResponse wraps a page of items with the total match count.
type ListResponse struct {
	Items      any   `json:"items"`
	TotalCount int64 `json:"totalCount"`
	Limit      int   `json:"limit"`
	Offset     int   `json:"offset"`
}

// IDResponse is the body for operations that only return an identifier.
type IDResponse struct {
	ID string `json:"id"`
}

// SuccessResponse is the body for operations with no data to return.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// SetDeletionMarkRequest toggles the soft-delete mark on a record.
type SetDeletionMarkRequest struct {
	Marked bool `json:"marked"`
}

// DocumentResponse carries the header fields shared by every document.
// Document-specific responses embed it next to their business fields.
type DocumentResponse struct {
	ID             string            `json:"id"`
	Number         string            `json:"number"`
	Date           time.Time         `json:"date"`
	Posted         bool              `json:"posted"`
	PostedVersion  int               `json:"postedVersion"`
	OrganizationID string            `json:"organizationId"`
	Comment        string            `json:"comment,omitempty"`
	DeletionMark   bool              `json:"deletionMark"`
	Version        int               `json:"version"`
	Attributes     entity.Attributes `json:"attributes,omitempty"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
}

// FromDocument maps the shared document header.
func FromDocument(d entity.Document) DocumentResponse {
	return DocumentResponse{
		ID:             d.ID.String(),
		Number:         d.Number,
		Date:           d.Date,
		Posted:         d.Posted,
		PostedVersion:  d.PostedVersion,
		OrganizationID: d.OrganizationID,
		Comment:        d.Comment,
		DeletionMark:   d.DeletionMark,
		Version:        d.Version,
		Attributes:     d.Attributes,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
}
