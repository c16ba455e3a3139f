// Package auth provides authentication and authorization domain logic.
package auth

import (
	"context"
	"strings"
	"time"

	"cableworks/internal/core/apperror"
	"cableworks/internal/core/entity"
	"cableworks/internal/core/id"
)

// User represents a system user.
type User struct {
	ID                  id.ID             `db:"id" json:"id"`
	Email               string            `db:"email" json:"email"`
	PasswordHash        string            `db:"password_hash" json:"-"`
	FirstName           string            `db:"first_name" json:"firstName,omitempty"`
	LastName            string            `db:"last_name" json:"lastName,omitempty"`
	IsActive            bool              `db:"is_active" json:"isActive"`
	IsAdmin             bool              `db:"is_admin" json:"isAdmin"`
	EmailVerified       bool              `db:"email_verified" json:"emailVerified"`
	EmailVerifiedAt     *time.Time        `db:"email_verified_at" json:"emailVerifiedAt,omitempty"`
	LastLoginAt         *time.Time        `db:"last_login_at" json:"lastLoginAt,omitempty"`
	FailedLoginAttempts int               `db:"failed_login_attempts" json:"-"`
	LockedUntil         *time.Time        `db:"locked_until" json:"-"`
	CreatedAt           time.Time         `db:"created_at" json:"createdAt"`
	UpdatedAt           time.Time         `db:"updated_at" json:"updatedAt"`
	DeletionMark        bool              `db:"deletion_mark" json:"deletionMark"`
	Attributes          entity.Attributes `db:"attributes" json:"attributes,omitempty"`
	Version             int               `db:"version" json:"version"`

	// Loaded relations
	Roles       []Role   `db:"-" json:"roles,omitempty"`
	Permissions []string `db:"-" json:"permissions,omitempty"`
	OrgIDs      []string `db:"-" json:"orgIds,omitempty"`
}

// NewUser creates a new user.
func NewUser(email, passwordHash string) *User {
	return &User{
		ID:           id.New(),
		Email:        email,
		PasswordHash: passwordHash,
		IsActive:     true,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
		Version:      1,
	}
}

// Validate checks the user before it is persisted.
func (u *User) Validate(ctx context.Context) error {
	if u.Email == "" {
		return apperror.NewValidation("email is required").WithDetail("field", "email")
	}
	return nil
}

// IsLocked reports whether the lockout window is still open.
func (u *User) IsLocked() bool {
	return u.LockedUntil != nil && time.Now().Before(*u.LockedUntil)
}

// CanLogin rejects disabled and locked accounts.
func (u *User) CanLogin() error {
	switch {
	case !u.IsActive:
		return apperror.NewForbidden("account is disabled")
	case u.IsLocked():
		return apperror.NewForbidden("account is temporarily locked")
	}
	return nil
}

// RecordFailedLogin counts the attempt and locks the account once the
// limit is hit.
func (u *User) RecordFailedLogin(maxAttempts int, lockDuration time.Duration) {
	u.FailedLoginAttempts++
	if u.FailedLoginAttempts >= maxAttempts {
		until := time.Now().Add(lockDuration)
		u.LockedUntil = &until
	}
}

// RecordSuccessfulLogin clears the failure counter and lock, and
// stamps the login time.
func (u *User) RecordSuccessfulLogin() {
	now := time.Now()
	u.FailedLoginAttempts = 0
	u.LockedUntil = nil
	u.LastLoginAt = &now
}

// HasPermission reports whether the loaded permissions contain the
// code. Admins hold every permission implicitly.
func (u *User) HasPermission(permissionCode string) bool {
	if u.IsAdmin {
		return true
	}
	for _, p := range u.Permissions {
		if p == permissionCode {
			return true
		}
	}
	return false
}

// FullName joins the name parts, falling back to the email when the
// profile has no name.
func (u *User) FullName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		return u.Email
	}
	return name
}

// Role represents a user role.
type Role struct {
	ID          id.ID     `db:"id" json:"id"`
	Code        string    `db:"code" json:"code"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description,omitempty"`
	IsSystem    bool      `db:"is_system" json:"isSystem"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

// RefreshToken represents a refresh token for JWT refresh.
type RefreshToken struct {
	ID            id.ID      `db:"id"`
	UserID        id.ID      `db:"user_id"`
	TokenHash     string     `db:"token_hash"`
	ExpiresAt     time.Time  `db:"expires_at"`
	CreatedAt     time.Time  `db:"created_at"`
	RevokedAt     *time.Time `db:"revoked_at"`
	RevokedReason string     `db:"revoked_reason"`
	UserAgent     string     `db:"user_agent"`
	IPAddress     string     `db:"ip_address"`
}

// IsValid reports whether the token is unrevoked and unexpired.
func (t *RefreshToken) IsValid() bool {
	return t.RevokedAt == nil && time.Now().Before(t.ExpiresAt)
}

// TokenPair is what a successful login or refresh hands back.
type TokenPair struct {
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken"`
	ExpiresAt    time.Time `json:"expiresAt"`
	TokenType    string    `json:"tokenType"`
}

// Credentials identify a user at login.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest carries the fields for creating an account.
type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
}
