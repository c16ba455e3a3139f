package catalog_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"cableworks/internal/domain/catalogs/organization"
	"cableworks/internal/infrastructure/storage/postgres"
)

const organizationTable = "cat_organizations"

// OrganizationRepo implements organization.Repository.
type OrganizationRepo struct {
	*BaseCatalogRepo[*organization.Organization]
}

// NewOrganizationRepo creates a new organization repository.
func NewOrganizationRepo(txManager *postgres.TxManager) *OrganizationRepo {
	return &OrganizationRepo{
		BaseCatalogRepo: NewBaseCatalogRepo[*organization.Organization](
			txManager,
			organizationTable,
			postgres.ExtractDBColumns[organization.Organization](),
			func() *organization.Organization { return &organization.Organization{} },
		),
	}
}

// GetDefault retrieves the organization documents fall back to when no
// explicit one is given.
func (r *OrganizationRepo) GetDefault(ctx context.Context) (*organization.Organization, error) {
	q := r.baseSelect(ctx).
		Where(squirrel.Eq{"is_default": true, "deletion_mark": false}).
		Limit(1)
	return r.scanOne(ctx, q, "default")
}
