package auth_repo

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"

	"cableworks/internal/core/apperror"
	"cableworks/internal/domain/auth"
	"cableworks/internal/infrastructure/storage/postgres"
)

// RoleRepo implements auth.RoleRepository. Roles and their permission
// grants are seeded by migrations; at runtime the service only resolves
// role codes.
type RoleRepo struct {
	txManager *postgres.TxManager
}

// NewRoleRepo creates a new role repository.
func NewRoleRepo(txManager *postgres.TxManager) *RoleRepo {
	return &RoleRepo{txManager: txManager}
}

// GetByCode retrieves role by code.
func (r *RoleRepo) GetByCode(ctx context.Context, code string) (*auth.Role, error) {
	sql := `
		SELECT id, code, name, description, is_system, created_at, updated_at
		FROM roles WHERE code = $1
	`

	var role auth.Role
	if err := pgxscan.Get(ctx, r.txManager.GetQuerier(ctx), &role, sql, code); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("role", code)
		}
		return nil, fmt.Errorf("query role: %w", err)
	}

	return &role, nil
}

var _ auth.RoleRepository = (*RoleRepo)(nil)
