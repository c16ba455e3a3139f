package security

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cableworks/internal/core/apperror"
	appctx "cableworks/internal/core/context"
)

func TestAccessScope_CanAccessOrg(t *testing.T) {
	tests := []struct {
		name  string
		scope AccessScope
		orgID string
		want  bool
	}{
		{
			name:  "unrestricted scope passes everything",
			scope: AccessScope{UserID: "u1"},
			orgID: "org-1",
			want:  true,
		},
		{
			name:  "allowed org",
			scope: AccessScope{UserID: "u1", AllowedOrgIDs: []string{"org-1", "org-2"}},
			orgID: "org-2",
			want:  true,
		},
		{
			name:  "foreign org",
			scope: AccessScope{UserID: "u1", AllowedOrgIDs: []string{"org-1"}},
			orgID: "org-3",
			want:  false,
		},
		{
			name:  "admin bypasses restriction",
			scope: AccessScope{UserID: "u1", IsAdmin: true, AllowedOrgIDs: []string{"org-1"}},
			orgID: "org-3",
			want:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.scope.CanAccessOrg(tt.orgID))
		})
	}
}

func TestCheckOrgAccess(t *testing.T) {
	ctx := WithScope(context.Background(), &AccessScope{
		UserID:        "u1",
		AllowedOrgIDs: []string{"org-1"},
	})

	assert.NoError(t, CheckOrgAccess(ctx, "org-1"))

	err := CheckOrgAccess(ctx, "org-2")
	require.Error(t, err)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.CodeForbidden, appErr.Code)
	assert.Equal(t, "org-2", appErr.Details["organization_id"])
}

func TestCheckOrgAccess_PlainContext(t *testing.T) {
	// No scope stored and no user: treated as unrestricted.
	assert.NoError(t, CheckOrgAccess(context.Background(), "org-1"))
}

func TestNewAccessScope_FromContextUser(t *testing.T) {
	ctx := appctx.WithUser(context.Background(), &appctx.UserContext{
		UserID:  "u1",
		Email:   "ops@cableworks.in",
		IsAdmin: false,
		OrgIDs:  []string{"org-1"},
	})

	scope := NewAccessScope(ctx)
	assert.Equal(t, "u1", scope.UserID)
	assert.Equal(t, "ops@cableworks.in", scope.Email)
	assert.Equal(t, []string{"org-1"}, scope.AllowedOrgIDs)

	// GetScope falls back to deriving from the user when the
	// middleware has not stored a scope.
	derived := GetScope(ctx)
	assert.Equal(t, "u1", derived.UserID)
}
