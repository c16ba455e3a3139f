// Package context carries request-scoped values: the authenticated
// user and the trace identifiers.
package context

import "context"

// UserContext is the authenticated user as seen by the request. The
// auth middleware fills it from the validated token.
type UserContext struct {
	UserID      string
	Email       string
	Roles       []string
	Permissions []string

	// OrgIDs lists the organizations the user may work with; empty
	// means unrestricted
	OrgIDs []string

	IsAdmin bool
}

type userContextKey struct{}

// WithUser stores the user on the context.
func WithUser(ctx context.Context, user *UserContext) context.Context {
	return context.WithValue(ctx, userContextKey{}, user)
}

// GetUser returns the user from the context, or nil on an
// unauthenticated request.
func GetUser(ctx context.Context) *UserContext {
	user, _ := ctx.Value(userContextKey{}).(*UserContext)
	return user
}
