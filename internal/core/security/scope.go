// Package security provides authorization and access control.
package security

import (
	"context"

	"cableworks/internal/core/apperror"
	appctx "cableworks/internal/core/context"
)

// AccessScope bounds data visibility for the current request. The
// user-context middleware builds it once per request; document services
// consult it before touching organization-owned records and the audit
// writer stamps entries with its user fields.
type AccessScope struct {
	// UserID is the authenticated user
	UserID string

	// Email of the authenticated user
	Email string

	// IsAdmin bypasses organization filtering
	IsAdmin bool

	// AllowedOrgIDs limits access to specific organizations.
	// Empty means unrestricted.
	AllowedOrgIDs []string
}

// NewAccessScope builds an AccessScope from the user in the context.
func NewAccessScope(ctx context.Context) *AccessScope {
	user := appctx.GetUser(ctx)
	if user == nil {
		return &AccessScope{}
	}

	return &AccessScope{
		UserID:        user.UserID,
		Email:         user.Email,
		IsAdmin:       user.IsAdmin,
		AllowedOrgIDs: user.OrgIDs,
	}
}

// CanAccessOrg reports whether the scope allows working with records of
// the given organization. Admins and scopes without org restrictions
// pass everything.
func (s *AccessScope) CanAccessOrg(orgID string) bool {
	if s.IsAdmin || len(s.AllowedOrgIDs) == 0 {
		return true
	}
	for _, allowed := range s.AllowedOrgIDs {
		if allowed == orgID {
			return true
		}
	}
	return false
}

// CheckOrgAccess returns a forbidden error when the request scope does
// not cover the organization.
func CheckOrgAccess(ctx context.Context, orgID string) error {
	if GetScope(ctx).CanAccessOrg(orgID) {
		return nil
	}
	return apperror.NewForbidden("no access to organization").
		WithDetail("organization_id", orgID)
}

type scopeKey struct{}

// WithScope adds AccessScope to context.
func WithScope(ctx context.Context, scope *AccessScope) context.Context {
	return context.WithValue(ctx, scopeKey{}, scope)
}

// GetScope returns the AccessScope from context, deriving one from the
// context user when the middleware has not stored one.
func GetScope(ctx context.Context) *AccessScope {
	if v, ok := ctx.Value(scopeKey{}).(*AccessScope); ok {
		return v
	}
	return NewAccessScope(ctx)
}
