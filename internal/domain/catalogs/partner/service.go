package partner

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

// Service provides business logic for Partner catalog.
// Uses composition with domain.CatalogService for common CRUD operations.
type Service struct {
	*domain.CatalogService[*Partner] // Embedded for delegation
	repo                             Repository
	numerator                        numerator.Generator
}

// NewService creates a new Partner service.
func NewService(
	repo Repository,
	txManager tx.Manager,
	numGen numerator.Generator,
) *Service {
	// Create base service
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Partner]{
		Repo:       repo,
		TxManager:  txManager,
		Numerator:  numGen,
		EntityName: "partner",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
		numerator:      numGen,
	}

	// Register hooks for entity-specific logic
	base.Hooks().OnBeforeCreate(svc.prepareForCreate)
	base.Hooks().OnBeforeUpdate(svc.prepareForUpdate)

	return svc
}

// prepareForCreate handles code generation and uniqueness checks before create.
func (s *Service) prepareForCreate(ctx context.Context, p *Partner) error {
	// Generate code if not provided
	if p.Code == "" {
		cfg := numerator.DefaultConfig("PTR")
		code, err := s.numerator.GetNextNumber(ctx, cfg, nil, time.Now())
		if err != nil {
			return fmt.Errorf("generate code: %w", err)
		}
		p.Code = code
	}

	// Check GSTIN uniqueness
	if p.GSTIN != nil && *p.GSTIN != "" {
		exists, err := s.checkGSTINExists(ctx, *p.GSTIN, p.ID)
		if err != nil {
			return err
		}
		if exists {
			return apperror.NewConflict("partner with this GSTIN already exists").
				WithDetail("gstin", p.GSTIN)
		}
	}

	return nil
}

// prepareForUpdate handles uniqueness checks before update.
func (s *Service) prepareForUpdate(ctx context.Context, p *Partner) error {
	// Check GSTIN uniqueness (exclude current record)
	if p.GSTIN != nil && *p.GSTIN != "" {
		exists, err := s.checkGSTINExists(ctx, *p.GSTIN, p.ID)
		if err != nil {
			return err
		}
		if exists {
			return apperror.NewConflict("partner with this GSTIN already exists").
				WithDetail("gstin", p.GSTIN)
		}
	}

	return nil
}

// --- Entity-specific methods (not in base CatalogService) ---

// FindByGSTIN retrieves partner by GSTIN.
func (s *Service) FindByGSTIN(ctx context.Context, gstin string) (*Partner, error) {
	return s.repo.FindByGSTIN(ctx, gstin)
}

// checkGSTINExists checks if GSTIN is already used by another partner.
func (s *Service) checkGSTINExists(ctx context.Context, gstin string, excludeID id.ID) (bool, error) {
	existing, err := s.repo.FindByGSTIN(ctx, gstin)
	if err != nil {
		// Not found is OK; other errors must be propagated (DB errors, timeouts, etc.).
		if apperror.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	// If found and it's a different record
	return existing.ID != excludeID, nil
}
