package auth

import (
	"context"

	"cableworks/internal/core/id"
)

// UserRepository defines user storage operations.
type UserRepository interface {
	// Create creates a new user.
	Create(ctx context.Context, user *User) error

	// GetByID retrieves user by ID.
	GetByID(ctx context.Context, userID id.ID) (*User, error)

	// GetByEmail retrieves user by email.
	GetByEmail(ctx context.Context, email string) (*User, error)

	// Update updates user data.
	Update(ctx context.Context, user *User) error

	// Exists checks if email exists.
	Exists(ctx context.Context, email string) (bool, error)

	// AssignRole grants a role to the user.
	AssignRole(ctx context.Context, userID, roleID id.ID, grantedBy id.ID) error

	// LoadRoles loads the user's roles.
	LoadRoles(ctx context.Context, userID id.ID) ([]Role, error)

	// LoadPermissions loads the user's permissions, flattened from roles.
	LoadPermissions(ctx context.Context, userID id.ID) ([]string, error)

	// LoadOrganizations loads the organization IDs the user may work in.
	LoadOrganizations(ctx context.Context, userID id.ID) ([]string, error)
}

// RoleRepository defines role storage operations.
type RoleRepository interface {
	// GetByCode retrieves role by code.
	GetByCode(ctx context.Context, code string) (*Role, error)
}

// TokenRepository defines refresh token storage operations.
type TokenRepository interface {
	// SaveRefreshToken saves a refresh token.
	SaveRefreshToken(ctx context.Context, token *RefreshToken) error

	// GetRefreshToken retrieves refresh token by hash.
	GetRefreshToken(ctx context.Context, tokenHash string) (*RefreshToken, error)

	// RevokeRefreshToken revokes a single refresh token.
	RevokeRefreshToken(ctx context.Context, tokenID id.ID, reason string) error

	// RevokeAllUserTokens revokes all tokens for a user.
	RevokeAllUserTokens(ctx context.Context, userID id.ID, reason string) error
}
