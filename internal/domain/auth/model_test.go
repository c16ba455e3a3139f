package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser_Defaults(t *testing.T) {
	u := NewUser("ops@cableworks.in", "hash")

	assert.True(t, u.IsActive)
	assert.False(t, u.IsAdmin)
	assert.Equal(t, 1, u.Version)

	// Persistence fields shared with the rest of the platform
	assert.False(t, u.DeletionMark)
	assert.Nil(t, u.Attributes)

	u.Attributes = map[string]any{"shift": "night"}
	u.DeletionMark = true
	assert.Equal(t, "night", u.Attributes["shift"])
}

func TestUser_Validate(t *testing.T) {
	u := NewUser("", "hash")
	require.Error(t, u.Validate(context.Background()))

	u.Email = "ops@cableworks.in"
	assert.NoError(t, u.Validate(context.Background()))
}

func TestUser_LockoutCycle(t *testing.T) {
	u := NewUser("ops@cableworks.in", "hash")

	u.RecordFailedLogin(3, time.Hour)
	u.RecordFailedLogin(3, time.Hour)
	assert.False(t, u.IsLocked())
	assert.NoError(t, u.CanLogin())

	u.RecordFailedLogin(3, time.Hour)
	assert.True(t, u.IsLocked())
	assert.Error(t, u.CanLogin())

	u.RecordSuccessfulLogin()
	assert.False(t, u.IsLocked())
	assert.Zero(t, u.FailedLoginAttempts)
	require.NotNil(t, u.LastLoginAt)
}

func TestUser_CanLogin_Disabled(t *testing.T) {
	u := NewUser("ops@cableworks.in", "hash")
	u.IsActive = false
	assert.Error(t, u.CanLogin())
}

func TestUser_HasPermission(t *testing.T) {
	u := NewUser("ops@cableworks.in", "hash")
	u.Permissions = []string{"document:invoice:read"}

	assert.True(t, u.HasPermission("document:invoice:read"))
	assert.False(t, u.HasPermission("document:invoice:delete"))

	u.IsAdmin = true
	assert.True(t, u.HasPermission("document:invoice:delete"))
}

func TestRefreshToken_IsValid(t *testing.T) {
	tok := &RefreshToken{ExpiresAt: time.Now().Add(time.Hour)}
	assert.True(t, tok.IsValid())

	revoked := time.Now()
	tok.RevokedAt = &revoked
	assert.False(t, tok.IsValid())

	expired := &RefreshToken{ExpiresAt: time.Now().Add(-time.Minute)}
	assert.False(t, expired.IsValid())
}
