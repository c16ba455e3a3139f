package organization

import (
	"context"
	"fmt"
	"time"

	"cableworks/internal/core/numerator"
	"cableworks/internal/core/tx"
	"cableworks/internal/domain"
)

// Service provides business logic for Organization catalog.
type Service struct {
	*domain.CatalogService[*Organization]
	repo      Repository
	numerator numerator.Generator
}

// NewService creates a new Organization service.
func NewService(
	repo Repository,
	txManager tx.Manager,
	numGen numerator.Generator,
) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Organization]{
		Repo:       repo,
		TxManager:  txManager,
		Numerator:  numGen,
		EntityName: "organization",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
		numerator:      numGen,
	}

	base.Hooks().OnBeforeCreate(svc.prepareForCreate)

	return svc
}

// prepareForCreate generates a code when one is not provided.
func (s *Service) prepareForCreate(ctx context.Context, o *Organization) error {
	if o.Code == "" {
		code, err := s.numerator.GetNextNumber(ctx, numerator.DefaultConfig("ORG"), nil, time.Now())
		if err != nil {
			return fmt.Errorf("generate code: %w", err)
		}
		o.Code = code
	}
	return nil
}

// GetDefault retrieves the default organization.
func (s *Service) GetDefault(ctx context.Context) (*Organization, error) {
	return s.repo.GetDefault(ctx)
}
