package catalog_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"cableworks/internal/core/apperror"
	"cableworks/internal/domain/catalogs/partner"
	"cableworks/internal/infrastructure/storage/postgres"
)

const partnerTable = "cat_partners"

// PartnerRepo implements partner.Repository.
type PartnerRepo struct {
	*BaseCatalogRepo[*partner.Partner]
}

// NewPartnerRepo creates a new partner repository.
func NewPartnerRepo(txManager *postgres.TxManager) *PartnerRepo {
	return &PartnerRepo{
		BaseCatalogRepo: NewBaseCatalogRepo[*partner.Partner](
			txManager,
			partnerTable,
			postgres.ExtractDBColumns[partner.Partner](),
			func() *partner.Partner { return &partner.Partner{} },
		),
	}
}

// FindByGSTIN retrieves partner by GSTIN.
func (r *PartnerRepo) FindByGSTIN(ctx context.Context, gstin string) (*partner.Partner, error) {
	q := r.baseSelect(ctx).
		Where(squirrel.Eq{"gstin": gstin}).
		Where(squirrel.Eq{"deletion_mark": false}).
		Limit(1)

	p, err := r.FindOne(ctx, q)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewNotFound("partner", gstin)
		}
		return nil, err
	}
	return p, nil
}
