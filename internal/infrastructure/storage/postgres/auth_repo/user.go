// Package auth_repo provides PostgreSQL implementations for auth repositories.
package auth_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"cableworks/internal/core/apperror"
	"cableworks/internal/core/id"
	"cableworks/internal/domain/auth"
	"cableworks/internal/infrastructure/storage/postgres"
)

const usersTable = "users"

// userColumns is derived from the auth.User db tags so repo and model
// cannot drift apart. Relation fields carry `db:"-"` and are excluded.
var userColumns = postgres.ExtractDBColumns[auth.User]()

// UserRepo implements auth.UserRepository.
type UserRepo struct {
	txManager *postgres.TxManager
}

// NewUserRepo creates a new user repository.
func NewUserRepo(txManager *postgres.TxManager) *UserRepo {
	return &UserRepo{txManager: txManager}
}

func (r *UserRepo) builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

func (r *UserRepo) querier(ctx context.Context) postgres.Querier {
	return r.txManager.GetQuerier(ctx)
}

// Create inserts a new user row.
func (r *UserRepo) Create(ctx context.Context, user *auth.User) error {
	data := postgres.StructToMap(user)

	sql, args, err := r.builder().
		Insert(usersTable).
		SetMap(data).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := r.querier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert user: %w", err)
	}

	return nil
}

func (r *UserRepo) getOne(ctx context.Context, pred squirrel.Eq, notFoundKey string) (*auth.User, error) {
	sql, args, err := r.builder().
		Select(userColumns...).
		From(usersTable).
		Where(pred).
		Where(squirrel.Eq{"deletion_mark": false}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var user auth.User
	if err := pgxscan.Get(ctx, r.querier(ctx), &user, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("user", notFoundKey)
		}
		return nil, fmt.Errorf("query user: %w", err)
	}

	return &user, nil
}

// GetByID retrieves user by ID.
func (r *UserRepo) GetByID(ctx context.Context, userID id.ID) (*auth.User, error) {
	return r.getOne(ctx, squirrel.Eq{"id": userID}, userID.String())
}

// GetByEmail retrieves user by email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*auth.User, error) {
	return r.getOne(ctx, squirrel.Eq{"email": email}, email)
}

// Update writes user data with optimistic locking on version.
func (r *UserRepo) Update(ctx context.Context, user *auth.User) error {
	data := postgres.StructToMap(user)
	delete(data, "id")
	delete(data, "email")
	delete(data, "created_at")
	delete(data, "version")

	sql, args, err := r.builder().
		Update(usersTable).
		SetMap(data).
		Set("version", squirrel.Expr("version + 1")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": user.ID, "version": user.Version}).
		Where(squirrel.Eq{"deletion_mark": false}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	result, err := r.querier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperror.NewConcurrentModification("user", user.ID)
	}

	user.Version++
	return nil
}

// Exists reports whether an email is already registered.
func (r *UserRepo) Exists(ctx context.Context, email string) (bool, error) {
	sql := `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1 AND deletion_mark = FALSE)`

	var exists bool
	if err := r.querier(ctx).QueryRow(ctx, sql, email).Scan(&exists); err != nil {
		return false, fmt.Errorf("check exists: %w", err)
	}

	return exists, nil
}

// AssignRole grants a role, ignoring duplicates.
func (r *UserRepo) AssignRole(ctx context.Context, userID, roleID id.ID, grantedBy id.ID) error {
	sql := `
		INSERT INTO user_roles (user_id, role_id, granted_by)
		VALUES ($1, $2, NULLIF($3, '00000000-0000-0000-0000-000000000000'::uuid))
		ON CONFLICT (user_id, role_id) DO NOTHING
	`

	if _, err := r.querier(ctx).Exec(ctx, sql, userID, roleID, grantedBy); err != nil {
		return fmt.Errorf("assign role: %w", err)
	}

	return nil
}

// LoadRoles loads the user's roles through user_roles.
func (r *UserRepo) LoadRoles(ctx context.Context, userID id.ID) ([]auth.Role, error) {
	sql := `
		SELECT r.id, r.code, r.name, r.description, r.is_system, r.created_at, r.updated_at
		FROM roles r
		INNER JOIN user_roles ur ON r.id = ur.role_id
		WHERE ur.user_id = $1
	`

	var roles []auth.Role
	if err := pgxscan.Select(ctx, r.querier(ctx), &roles, sql, userID); err != nil {
		return nil, fmt.Errorf("query roles: %w", err)
	}

	return roles, nil
}

// LoadPermissions flattens permission codes across the user's roles.
func (r *UserRepo) LoadPermissions(ctx context.Context, userID id.ID) ([]string, error) {
	sql := `
		SELECT DISTINCT p.code
		FROM permissions p
		INNER JOIN role_permissions rp ON p.id = rp.permission_id
		INNER JOIN user_roles ur ON rp.role_id = ur.role_id
		WHERE ur.user_id = $1
	`

	var permissions []string
	if err := pgxscan.Select(ctx, r.querier(ctx), &permissions, sql, userID); err != nil {
		return nil, fmt.Errorf("query permissions: %w", err)
	}

	return permissions, nil
}

// LoadOrganizations loads the organization scope of the user.
func (r *UserRepo) LoadOrganizations(ctx context.Context, userID id.ID) ([]string, error) {
	sql := `SELECT organization_id FROM user_organizations WHERE user_id = $1`

	var orgIDs []string
	if err := pgxscan.Select(ctx, r.querier(ctx), &orgIDs, sql, userID); err != nil {
		return nil, fmt.Errorf("query organizations: %w", err)
	}

	return orgIDs, nil
}

var _ auth.UserRepository = (*UserRepo)(nil)
