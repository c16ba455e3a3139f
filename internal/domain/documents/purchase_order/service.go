// Package purchase_order provides the PurchaseOrder document service.
package purchase_order

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
	"cableworks/pkg/logger"
)

// Service provides business operations for purchase order documents.
type Service struct {
	repo      Repository
	numerator numerator.Generator
	txManager tx.Manager
	policy    security.PostingPolicy
	hooks     *domain.HookRegistry[*PurchaseOrder]
}

// NewService creates a new purchase order service.
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
		hooks:     domain.NewHookRegistry[*PurchaseOrder](),
	}
}

// Hooks returns the hook registry for registering callbacks.
func (s *Service) Hooks() *domain.HookRegistry[*PurchaseOrder] {
	return s.hooks
}

func (s *Service) getTxManager() (tx.Manager, error) {
	if s.txManager == nil {
		return nil, fmt.Errorf("tx manager is not configured")
	}
	return s.txManager, nil
}

// Create creates a new purchase order. Derived amounts are recomputed
// from the base fields before validation.
func (s *Service) Create(ctx context.Context, doc *PurchaseOrder) error {
	if err := security.CheckOrgAccess(ctx, doc.OrganizationID); err != nil {
		return err
	}

	if err := s.hooks.RunBeforeCreate(ctx, doc); err != nil {
		return err
	}

	if doc.Status == "" {
		doc.Status = StatusDraft
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

	logger.Info(ctx, "purchase order created",
		"id", doc.ID,
		"number", doc.Number,
		"final", doc.FinalAmount)

	return nil
}

// GetByID retrieves a purchase order.
func (s *Service) GetByID(ctx context.Context, docID id.ID) (*PurchaseOrder, error) {
	return s.repo.GetByID(ctx, docID)
}

// Update updates a purchase order, recomputing derived amounts.
// Posted orders must be unposted first.
func (s *Service) Update(ctx context.Context, doc *PurchaseOrder) error {
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

// Delete soft-deletes a purchase order.
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

// Recalculate reloads the order, recomputes the derived amounts from the
// stored base fields and saves the result.
func (s *Service) Recalculate(ctx context.Context, docID id.ID) (*PurchaseOrder, error) {
	txm, err := s.getTxManager()
	if err != nil {
		return nil, apperror.NewInternal(err).WithDetail("missing", "tx_manager")
	}

	var doc *PurchaseOrder
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

	logger.Info(ctx, "purchase order recalculated",
		"id", doc.ID,
		"number", doc.Number,
		"final", doc.FinalAmount)

	return doc, nil
}

// SetStatus moves the order through its lifecycle.
func (s *Service) SetStatus(ctx context.Context, docID id.ID, status OrderStatus) (*PurchaseOrder, error) {
	if !isValidStatus(status) {
		return nil, apperror.NewValidation("invalid order status").
			WithDetail("field", "status").
			WithDetail("value", string(status))
	}

	txm, err := s.getTxManager()
	if err != nil {
		return nil, apperror.NewInternal(err).WithDetail("missing", "tx_manager")
	}

	var doc *PurchaseOrder
	err = txm.RunInTransaction(ctx, func(ctx context.Context) error {
		var err error
		doc, err = s.repo.GetForUpdate(ctx, docID)
		if err != nil {
			return err
		}

		if doc.Status == StatusCancelled && status != StatusCancelled {
			return apperror.NewBusinessRule(
				apperror.CodeBusinessRule,
				"Cancelled order cannot be reopened.",
			).WithDetail("document_id", docID.String())
		}

		doc.Status = status
		doc.Touch()

		return s.repo.Update(ctx, doc)
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "purchase order status changed",
		"id", doc.ID,
		"number", doc.Number,
		"status", doc.Status)

	return doc, nil
}

// Post marks the order as posted, freezing it against edits.
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

	logger.Info(ctx, "purchase order posted", "id", doc.ID, "number", doc.Number)
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

	logger.Info(ctx, "purchase order unposted", "id", doc.ID, "number", doc.Number)
	return nil
}

// List retrieves purchase orders with filtering.
func (s *Service) List(ctx context.Context, filter ListFilter) (domain.ListResult[*PurchaseOrder], error) {
	return s.repo.List(ctx, filter)
}
