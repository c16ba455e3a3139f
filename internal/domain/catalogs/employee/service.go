package employee

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

// Service provides business logic for Employee catalog.
// Uses composition with domain.CatalogService for common CRUD operations.
type Service struct {
	*domain.CatalogService[*Employee]
	repo      Repository
	numerator numerator.Generator
}

// NewService creates a new Employee service.
func NewService(
	repo Repository,
	txManager tx.Manager,
	numGen numerator.Generator,
) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Employee]{
		Repo:       repo,
		TxManager:  txManager,
		Numerator:  numGen,
		EntityName: "employee",
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

// prepareForCreate handles code generation and uniqueness checks.
func (s *Service) prepareForCreate(ctx context.Context, e *Employee) error {
	// Generate code if not provided
	if e.Code == "" {
		cfg := numerator.DefaultConfig("EMP")
		cfg.IncludeYear = false
		code, err := s.numerator.GetNextNumber(ctx, cfg, nil, time.Now())
		if err != nil {
			return fmt.Errorf("generate code: %w", err)
		}
		e.Code = code
	}

	// Check PAN uniqueness
	if e.PAN != nil && *e.PAN != "" {
		exists, err := s.checkPANExists(ctx, *e.PAN, e.ID)
		if err != nil {
			return err
		}
		if exists {
			return apperror.NewConflict("employee with this PAN already exists").
				WithDetail("pan", e.PAN)
		}
	}

	return nil
}

// prepareForUpdate handles uniqueness checks.
func (s *Service) prepareForUpdate(ctx context.Context, e *Employee) error {
	if e.PAN != nil && *e.PAN != "" {
		exists, err := s.checkPANExists(ctx, *e.PAN, e.ID)
		if err != nil {
			return err
		}
		if exists {
			return apperror.NewConflict("employee with this PAN already exists").
				WithDetail("pan", e.PAN)
		}
	}

	return nil
}

// --- Entity-specific methods ---

// FindByPAN retrieves employee by PAN.
func (s *Service) FindByPAN(ctx context.Context, pan string) (*Employee, error) {
	return s.repo.FindByPAN(ctx, pan)
}

// checkPANExists checks if PAN is already used by another employee.
func (s *Service) checkPANExists(ctx context.Context, pan string, excludeID id.ID) (bool, error) {
	existing, err := s.repo.FindByPAN(ctx, pan)
	if err != nil {
		if apperror.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return existing.ID != excludeID, nil
}
