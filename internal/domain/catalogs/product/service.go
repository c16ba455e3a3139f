package product

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

// Service provides business logic for Product catalog.
// Uses composition with domain.CatalogService for common CRUD operations.
type Service struct {
	*domain.CatalogService[*Product]
	repo      Repository
	numerator numerator.Generator
}

// NewService creates a new Product service.
func NewService(
	repo Repository,
	txManager tx.Manager,
	numGen numerator.Generator,
) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Product]{
		Repo:       repo,
		TxManager:  txManager,
		Numerator:  numGen,
		EntityName: "product",
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
func (s *Service) prepareForCreate(ctx context.Context, item *Product) error {
	// Generate code if not provided
	if item.Code == "" {
		code, err := s.numerator.GetNextNumber(ctx, numerator.DefaultConfig("PRD"), nil, time.Now())
		if err != nil {
			return fmt.Errorf("generate code: %w", err)
		}
		item.Code = code
	}

	// Check article uniqueness
	if item.Article != nil && *item.Article != "" {
		exists, err := s.checkArticleExists(ctx, *item.Article, item.ID)
		if err != nil {
			return err
		}
		if exists {
			return apperror.NewConflict("product with this article already exists").
				WithDetail("article", item.Article)
		}
	}

	return nil
}

// prepareForUpdate handles uniqueness checks.
func (s *Service) prepareForUpdate(ctx context.Context, item *Product) error {
	if item.Article != nil && *item.Article != "" {
		exists, err := s.checkArticleExists(ctx, *item.Article, item.ID)
		if err != nil {
			return err
		}
		if exists {
			return apperror.NewConflict("product with this article already exists").
				WithDetail("article", item.Article)
		}
	}

	return nil
}

// --- Entity-specific methods ---

// FindByArticle retrieves product by article.
func (s *Service) FindByArticle(ctx context.Context, article string) (*Product, error) {
	return s.repo.FindByArticle(ctx, article)
}

// checkArticleExists checks if article is already used.
func (s *Service) checkArticleExists(ctx context.Context, article string, excludeID id.ID) (bool, error) {
	existing, err := s.repo.FindByArticle(ctx, article)
	if err != nil {
		if apperror.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return existing.ID != excludeID, nil
}
