// Package payslip provides the Payslip document service.
package payslip

import (
	"context"
	"fmt"
	"time"

	"cableworks/internal/core/apperror"
	"cableworks/internal/core/id"
	"cableworks/internal/core/numerator"
	"cableworks/internal/core/security"
	"cableworks/internal/core/tx"
	"cableworks/internal/domain"
	"cableworks/internal/domain/catalogs/employee"
	"cableworks/pkg/logger"
)

// Service provides business operations for payslip documents.
type Service struct {
	repo      Repository
	employees employee.Repository
	numerator numerator.Generator
	txManager tx.Manager
	policy    security.PostingPolicy
	hooks     *domain.HookRegistry[*Payslip]
}

// NewService creates a new payslip service.
func NewService(
	repo Repository,
	employees employee.Repository,
	txManager tx.Manager,
	numGen numerator.Generator,
	policy security.PostingPolicy,
) *Service {
	return &Service{
		repo:      repo,
		employees: employees,
		numerator: numGen,
		txManager: txManager,
		policy:    policy,
		hooks:     domain.NewHookRegistry[*Payslip](),
	}
}

// Hooks returns the hook registry for registering callbacks.
func (s *Service) Hooks() *domain.HookRegistry[*Payslip] {
	return s.hooks
}

func (s *Service) getTxManager() (tx.Manager, error) {
	if s.txManager == nil {
		return nil, fmt.Errorf("tx manager is not configured")
	}
	return s.txManager, nil
}

// Create creates a new payslip. When the basic salary is zero it is
// pulled from the employee card; all derived components are recomputed
// before validation.
func (s *Service) Create(ctx context.Context, doc *Payslip) error {
	if err := security.CheckOrgAccess(ctx, doc.OrganizationID); err != nil {
		return err
	}

	if err := s.hooks.RunBeforeCreate(ctx, doc); err != nil {
		return err
	}

	// Default basic salary from the employee card
	if doc.BasicSalary.IsZero() && !id.IsNil(doc.EmployeeID) {
		emp, err := s.employees.GetByID(ctx, doc.EmployeeID)
		if err != nil {
			return fmt.Errorf("load employee: %w", err)
		}
		doc.BasicSalary = emp.BasicSalary
	}

	doc.Recalculate()

	if err := doc.Validate(ctx); err != nil {
		return err
	}

	// One payslip per employee per period
	existing, err := s.repo.FindByEmployeePeriod(ctx, doc.EmployeeID, doc.PayPeriod)
	if err != nil && !apperror.IsNotFound(err) {
		return err
	}
	if err == nil && existing.ID != doc.ID {
		return apperror.NewConflict("payslip for this employee and period already exists").
			WithDetail("employeeId", doc.EmployeeID.String()).
			WithDetail("payPeriod", doc.PayPeriod)
	}

	if doc.Number == "" {
		cfg := numerator.DefaultConfig(NumberPrefix)
		number, err := s.numerator.GetNextNumber(ctx, cfg, &numerator.Options{Strategy: NumeratorStrategy}, time.Now())
		if err != nil {
			return fmt.Errorf("generate number: %w", err)
		}
		doc.Number = number
	}

	txm, err := s.getTxManager()
	if err != nil {
		return apperror.NewInternal(err).WithDetail("missing", "tx_manager")
	}
	err = txm.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Create(ctx, doc)
	})
	if err != nil {
		return err
	}

	if err := s.hooks.RunAfterCreate(ctx, doc); err != nil {
		logger.Warn(ctx, "after-create hook failed", "error", err)
	}

	logger.Info(ctx, "payslip created",
		"id", doc.ID,
		"number", doc.Number,
		"period", doc.PayPeriod,
		"net", doc.NetSalary)

	return nil
}

// GetByID retrieves a payslip.
func (s *Service) GetByID(ctx context.Context, docID id.ID) (*Payslip, error) {
	return s.repo.GetByID(ctx, docID)
}

// Update updates a payslip, recomputing all derived components.
// Posted payslips must be unposted first.
func (s *Service) Update(ctx context.Context, doc *Payslip) error {
	if err := security.CheckOrgAccess(ctx, doc.OrganizationID); err != nil {
		return err
	}

	if err := s.hooks.RunBeforeUpdate(ctx, doc); err != nil {
		return err
	}

	if err := doc.CanModify(); err != nil {
		return err
	}

	doc.Recalculate()

	if err := doc.Validate(ctx); err != nil {
		return err
	}

	txm, err := s.getTxManager()
	if err != nil {
		return apperror.NewInternal(err).WithDetail("missing", "tx_manager")
	}
	err = txm.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Update(ctx, doc)
	})
	if err != nil {
		return err
	}

	if err := s.hooks.RunAfterUpdate(ctx, doc); err != nil {
		logger.Warn(ctx, "after-update hook failed", "error", err)
	}

	return nil
}

// Delete soft-deletes a payslip.
func (s *Service) Delete(ctx context.Context, docID id.ID) error {
	doc, err := s.repo.GetByID(ctx, docID)
	if err != nil {
		return err
	}

	if doc.Posted {
		return doc.CanModify()
	}

	return s.repo.Delete(ctx, docID)
}

// Recalculate reloads the payslip, recomputes every derived component
// from the stored basic salary and saves the result.
func (s *Service) Recalculate(ctx context.Context, docID id.ID) (*Payslip, error) {
	txm, err := s.getTxManager()
	if err != nil {
		return nil, apperror.NewInternal(err).WithDetail("missing", "tx_manager")
	}

	var doc *Payslip
	err = txm.RunInTransaction(ctx, func(ctx context.Context) error {
		var err error
		doc, err = s.repo.GetForUpdate(ctx, docID)
		if err != nil {
			return err
		}

		doc.Recalculate()

		return s.repo.Update(ctx, doc)
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "payslip recalculated",
		"id", doc.ID,
		"number", doc.Number,
		"net", doc.NetSalary)

	return doc, nil
}

// Post marks the payslip as posted, freezing it against edits.
func (s *Service) Post(ctx context.Context, docID id.ID) error {
	doc, err := s.repo.GetByID(ctx, docID)
	if err != nil {
		return err
	}

	if doc.Posted {
		return apperror.NewBusinessRule(
			apperror.CodeDocumentPosted,
			"Document is already posted.",
		).WithDetail("document_id", docID.String())
	}

	if err := s.policy.CanPost(ctx, doc.Date); err != nil {
		return err
	}

	doc.Recalculate()

	if err := doc.Validate(ctx); err != nil {
		return err
	}

	txm, err := s.getTxManager()
	if err != nil {
		return apperror.NewInternal(err).WithDetail("missing", "tx_manager")
	}
	err = txm.RunInTransaction(ctx, func(ctx context.Context) error {
		doc.MarkPosted()
		return s.repo.Update(ctx, doc)
	})
	if err != nil {
		return err
	}

	logger.Info(ctx, "payslip posted", "id", doc.ID, "number", doc.Number)
	return nil
}

// Unpost clears the posted flag.
func (s *Service) Unpost(ctx context.Context, docID id.ID) error {
	doc, err := s.repo.GetByID(ctx, docID)
	if err != nil {
		return err
	}

	if !doc.Posted {
		return nil
	}

	if err := s.policy.CanUnpost(ctx, doc.Date); err != nil {
		return err
	}

	txm, err := s.getTxManager()
	if err != nil {
		return apperror.NewInternal(err).WithDetail("missing", "tx_manager")
	}
	err = txm.RunInTransaction(ctx, func(ctx context.Context) error {
		doc.MarkUnposted()
		return s.repo.Update(ctx, doc)
	})
	if err != nil {
		return err
	}

	logger.Info(ctx, "payslip unposted", "id", doc.ID, "number", doc.Number)
	return nil
}

// List retrieves payslips with filtering.
func (s *Service) List(ctx context.Context, filter ListFilter) (domain.ListResult[*Payslip], error) {
	return s.repo.List(ctx, filter)
}
