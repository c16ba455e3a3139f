// Package invoice provides the Invoice document service.
package invoice

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"cableworks/internal/core/apperror"
	"cableworks/internal/core/id"
	"cableworks/internal/core/numerator"
	"cableworks/internal/core/security"
	"cableworks/internal/core/tx"
	"cableworks/internal/domain"
	"cableworks/pkg/logger"
)

// Service provides business operations for invoice documents.
type Service struct {
	repo      Repository
	numerator numerator.Generator
	txManager tx.Manager
	policy    security.PostingPolicy
	hooks     *domain.HookRegistry[*Invoice]
}

// NewService creates a new invoice service.
func NewService(
	repo Repository,
	txManager tx.Manager,
	numGen numerator.Generator,
	policy security.PostingPolicy,
) *Service {
	return &Service{
		repo:      repo,
		numerator: numGen,
		txManager: txManager,
		policy:    policy,
		hooks:     domain.NewHookRegistry[*Invoice](),
	}
}

// Hooks returns the hook registry for registering callbacks.
func (s *Service) Hooks() *domain.HookRegistry[*Invoice] {
	return s.hooks
}

func (s *Service) getTxManager() (tx.Manager, error) {
	if s.txManager == nil {
		return nil, fmt.Errorf("tx manager is not configured")
	}
	return s.txManager, nil
}

// Create creates a new invoice. Derived totals are recomputed from the
// base fields before validation, whatever the client sent for them.
func (s *Service) Create(ctx context.Context, doc *Invoice) error {
	if err := security.CheckOrgAccess(ctx, doc.OrganizationID); err != nil {
		return err
	}

	if err := s.hooks.RunBeforeCreate(ctx, doc); err != nil {
		return err
	}

	doc.Recalculate()

	if err := doc.Validate(ctx); err != nil {
		return err
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

	logger.Info(ctx, "invoice created",
		"id", doc.ID,
		"number", doc.Number,
		"total", doc.TotalAmount)

	return nil
}

// GetByID retrieves an invoice.
func (s *Service) GetByID(ctx context.Context, docID id.ID) (*Invoice, error) {
	return s.repo.GetByID(ctx, docID)
}

// Update updates an invoice, recomputing derived totals from the base
// fields. Posted invoices must be unposted first.
func (s *Service) Update(ctx context.Context, doc *Invoice) error {
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

// Delete soft-deletes an invoice.
func (s *Service) Delete(ctx context.Context, docID id.ID) error {
	doc, err := s.repo.GetByID(ctx, docID)
	if err != nil {
		return err
	}

	// Cannot delete posted document
	if doc.Posted {
		return doc.CanModify()
	}

	return s.repo.Delete(ctx, docID)
}

// Recalculate reloads the invoice, recomputes every derived field from
// the stored base fields and saves the result. Running it twice in a row
// yields the same stored values.
func (s *Service) Recalculate(ctx context.Context, docID id.ID) (*Invoice, error) {
	txm, err := s.getTxManager()
	if err != nil {
		return nil, apperror.NewInternal(err).WithDetail("missing", "tx_manager")
	}

	var doc *Invoice
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

	logger.Info(ctx, "invoice recalculated",
		"id", doc.ID,
		"number", doc.Number,
		"total", doc.TotalAmount)

	return doc, nil
}

// Post marks the invoice as posted, freezing it against edits.
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

	logger.Info(ctx, "invoice posted", "id", doc.ID, "number", doc.Number)
	return nil
}

// Unpost clears the posted flag, making the invoice editable again.
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

	logger.Info(ctx, "invoice unposted", "id", doc.ID, "number", doc.Number)
	return nil
}

// RecordPayment adds a payment against the invoice and recomputes the
// balance.
func (s *Service) RecordPayment(ctx context.Context, docID id.ID, payment decimal.Decimal) (*Invoice, error) {
	if payment.IsNegative() {
		return nil, apperror.NewValidation("payment amount cannot be negative").
			WithDetail("field", "amount")
	}

	txm, err := s.getTxManager()
	if err != nil {
		return nil, apperror.NewInternal(err).WithDetail("missing", "tx_manager")
	}

	var doc *Invoice
	err = txm.RunInTransaction(ctx, func(ctx context.Context) error {
		var err error
		doc, err = s.repo.GetForUpdate(ctx, docID)
		if err != nil {
			return err
		}

		doc.AmountPaid = doc.AmountPaid.Add(payment)
		doc.Recalculate()

		return s.repo.Update(ctx, doc)
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "payment recorded",
		"id", doc.ID,
		"amount", payment,
		"balance", doc.BalanceDue)

	return doc, nil
}

// List retrieves invoices with filtering.
func (s *Service) List(ctx context.Context, filter ListFilter) (domain.ListResult[*Invoice], error) {
	return s.repo.List(ctx, filter)
}
