package unit

import (
	"context"
	"fmt"
	"time"

	"cableworks/internal/core/apperror"
	"cableworks/internal/core/id"
	"cableworks/internal/core/numerator"
	"cableworks/internal/core/tx"
	"cableworks/internal/domain"
)

// Service provides business logic for the unit catalog on top of the
// generic CRUD.
type Service struct {
	*domain.CatalogService[*Unit]
	repo      Repository
	numerator numerator.Generator
}

// NewService creates a new Unit service.
func NewService(
	repo Repository,
	txManager tx.Manager,
	numGen numerator.Generator,
) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Unit]{
		Repo:       repo,
		TxManager:  txManager,
		Numerator:  numGen,
		EntityName: "unit",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
		numerator:      numGen,
	}

	base.Hooks().OnBeforeCreate(svc.prepareForCreate)
	base.Hooks().OnBeforeUpdate(svc.prepareForUpdate)

	return svc
}

func (s *Service) prepareForCreate(ctx context.Context, u *Unit) error {
	if u.Code == "" {
		code, err := s.numerator.GetNextNumber(ctx, numerator.DefaultConfig("UN"), nil, time.Now())
		if err != nil {
			return fmt.Errorf("generate code: %w", err)
		}
		u.Code = code
	}

	return s.ensureSymbolFree(ctx, u)
}

func (s *Service) prepareForUpdate(ctx context.Context, u *Unit) error {
	return s.ensureSymbolFree(ctx, u)
}

// ensureSymbolFree rejects a save when another unit already owns the
// symbol. The unit being saved itself is not a collision.
func (s *Service) ensureSymbolFree(ctx context.Context, u *Unit) error {
	if u.Symbol == "" {
		return nil
	}
	if exists, _ := s.checkSymbolExists(ctx, u.Symbol, u.ID); exists {
		return apperror.NewConflict("unit with this symbol already exists").
			WithDetail("symbol", u.Symbol)
	}
	return nil
}

// FindBySymbol retrieves a unit by symbol.
func (s *Service) FindBySymbol(ctx context.Context, symbol string) (*Unit, error) {
	return s.repo.FindBySymbol(ctx, symbol)
}

func (s *Service) checkSymbolExists(ctx context.Context, symbol string, excludeID id.ID) (bool, error) {
	existing, err := s.repo.FindBySymbol(ctx, symbol)
	if err != nil {
		return false, nil
	}
	return existing.ID != excludeID, nil
}
