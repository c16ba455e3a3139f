// Package v1 provides HTTP API version 1.
package v1

import (
	"context"
	"encoding/json"

	"github.com/gin-gonic/gin"

	"cableworks/internal/core/id"
	"cableworks/internal/core/numerator"
	"cableworks/internal/core/security"
	"cableworks/internal/domain"
	"cableworks/internal/domain/audit"
	"cableworks/internal/domain/auth"
	"cableworks/internal/domain/catalogs/employee"
	"cableworks/internal/domain/catalogs/organization"
	"cableworks/internal/domain/catalogs/partner"
	"cableworks/internal/domain/catalogs/product"
	"cableworks/internal/domain/catalogs/unit"
	"cableworks/internal/domain/documents/invoice"
	"cableworks/internal/domain/documents/payslip"
	"cableworks/internal/domain/documents/purchase_order"
	"cableworks/internal/infrastructure/http/v1/handlers"
	"cableworks/internal/infrastructure/http/v1/middleware"
	"cableworks/internal/infrastructure/storage/postgres"
	"cableworks/internal/infrastructure/storage/postgres/catalog_repo"
	"cableworks/internal/infrastructure/storage/postgres/document_repo"
	"cableworks/pkg/logger"
)

// RouterConfig holds router dependencies.
type RouterConfig struct {
	// Pool is the database connection pool
	Pool *postgres.Pool

	// TxManager wraps transactional work on the pool
	TxManager *postgres.TxManager

	// Logger for request logging
	Logger *logger.Logger

	// JWTValidator for token validation
	JWTValidator middleware.JWTValidator

	// AuthService for authentication endpoints
	AuthService *auth.Service

	// Numerator for catalog code and document number generation
	Numerator numerator.Generator

	// Audit records document snapshots into sys_audit; nil disables it
	Audit *postgres.AuditService

	// PostingPolicy controls posting into closed periods
	PostingPolicy security.PostingPolicy

	// Idempotency stores replayable responses for mutating requests;
	// nil disables the middleware
	Idempotency *postgres.IdempotencyStore
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	if cfg.PostingPolicy == nil {
		cfg.PostingPolicy = security.OpenPolicy{}
	}
	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	// Health endpoints (no auth required)
	healthHandler := handlers.NewHealthHandler(cfg.Pool)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
		health.GET("/info", healthHandler.Info)
	}

	// API v1
	v1 := router.Group("/api/v1")
	{
		registerAuthRoutes(v1, cfg)

		protected := v1.Group("")
		protected.Use(middleware.Auth(cfg.JWTValidator))
		protected.Use(middleware.UserContext())

		if cfg.Idempotency != nil {
			protected.Use(middleware.Idempotency(cfg.Idempotency))
		}

		registerCatalogRoutes(protected, cfg)
		registerDocumentRoutes(protected, cfg)
	}

	return router
}

// registerAuthRoutes registers authentication endpoints.
func registerAuthRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	if cfg.AuthService == nil {
		return
	}

	baseHandler := handlers.NewBaseHandler()
	authHandler := handlers.NewAuthHandler(baseHandler, cfg.AuthService)

	// Public auth endpoints (no JWT required)
	publicAuth := rg.Group("/auth")

	// Protected auth endpoints (JWT required)
	protectedAuth := rg.Group("/auth")
	protectedAuth.Use(middleware.Auth(cfg.JWTValidator))

	authHandler.RegisterRoutes(publicAuth, protectedAuth)
}

// registerCatalogRoutes registers catalog endpoints.
func registerCatalogRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	catalogs := rg.Group("/catalog")
	baseHandler := handlers.NewBaseHandler()

	// --- PARTNERS ---
	{
		repo := catalog_repo.NewPartnerRepo(cfg.TxManager)
		service := partner.NewService(repo, cfg.TxManager, cfg.Numerator)
		handler := handlers.NewPartnerHandler(baseHandler, service)
		RegisterCatalogRoutes(catalogs.Group("/partners"), handler, "catalog:partner")
	}

	// --- PRODUCTS ---
	{
		repo := catalog_repo.NewProductRepo(cfg.TxManager)
		service := product.NewService(repo, cfg.TxManager, cfg.Numerator)
		handler := handlers.NewProductHandler(baseHandler, service)
		RegisterCatalogRoutes(catalogs.Group("/products"), handler, "catalog:product")
	}

	// --- UNITS ---
	{
		repo := catalog_repo.NewUnitRepo(cfg.TxManager)
		service := unit.NewService(repo, cfg.TxManager, cfg.Numerator)
		handler := handlers.NewUnitHandler(baseHandler, service)
		RegisterCatalogRoutes(catalogs.Group("/units"), handler, "catalog:unit")
	}

	// --- EMPLOYEES ---
	{
		repo := catalog_repo.NewEmployeeRepo(cfg.TxManager)
		service := employee.NewService(repo, cfg.TxManager, cfg.Numerator)
		handler := handlers.NewEmployeeHandler(baseHandler, service)
		RegisterCatalogRoutes(catalogs.Group("/employees"), handler, "catalog:employee")
	}

	// --- ORGANIZATIONS ---
	{
		repo := catalog_repo.NewOrganizationRepo(cfg.TxManager)
		service := organization.NewService(repo, cfg.TxManager, cfg.Numerator)
		handler := handlers.NewOrganizationHandler(baseHandler, service)
		RegisterCatalogRoutes(catalogs.Group("/organizations"), handler, "catalog:organization")
	}
}

// registerDocumentRoutes registers document endpoints.
func registerDocumentRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	docsGroup := rg.Group("/document")
	baseHandler := handlers.NewBaseHandler()

	var auditHandler *handlers.AuditHandler
	if cfg.Audit != nil {
		auditHandler = handlers.NewAuditHandler(baseHandler, cfg.Audit)
	}

	// --- INVOICES ---
	{
		repo := document_repo.NewInvoiceRepo(cfg.TxManager)
		service := invoice.NewService(repo, cfg.TxManager, cfg.Numerator, cfg.PostingPolicy)

		service.Hooks().OnBeforeCreate(func(ctx context.Context, doc *invoice.Invoice) error {
			audit.EnrichCreatedByDirect(ctx, &doc.CreatedBy, &doc.UpdatedBy)
			return nil
		})
		service.Hooks().OnBeforeUpdate(func(ctx context.Context, doc *invoice.Invoice) error {
			audit.EnrichUpdatedByDirect(ctx, &doc.UpdatedBy)
			return nil
		})

		registerAuditHooks(service.Hooks(), cfg.Audit, "invoice")

		handler := handlers.NewInvoiceHandler(baseHandler, service)
		group := docsGroup.Group("/invoices")
		RegisterDocumentRoutes(group, handler, "document:invoice")
		group.POST("/:id/payments", middleware.RequirePermission("document:invoice:update"), handler.RecordPayment)
		if auditHandler != nil {
			group.GET("/:id/history", middleware.RequirePermission("document:invoice:read"), auditHandler.History("invoice"))
		}
	}

	// --- PAYSLIPS ---
	{
		repo := document_repo.NewPayslipRepo(cfg.TxManager)
		employeeRepo := catalog_repo.NewEmployeeRepo(cfg.TxManager)
		service := payslip.NewService(repo, employeeRepo, cfg.TxManager, cfg.Numerator, cfg.PostingPolicy)

		service.Hooks().OnBeforeCreate(func(ctx context.Context, doc *payslip.Payslip) error {
			audit.EnrichCreatedByDirect(ctx, &doc.CreatedBy, &doc.UpdatedBy)
			return nil
		})
		service.Hooks().OnBeforeUpdate(func(ctx context.Context, doc *payslip.Payslip) error {
			audit.EnrichUpdatedByDirect(ctx, &doc.UpdatedBy)
			return nil
		})

		registerAuditHooks(service.Hooks(), cfg.Audit, "payslip")

		handler := handlers.NewPayslipHandler(baseHandler, service)
		group := docsGroup.Group("/payslips")
		RegisterDocumentRoutes(group, handler, "document:payslip")
		if auditHandler != nil {
			group.GET("/:id/history", middleware.RequirePermission("document:payslip:read"), auditHandler.History("payslip"))
		}
	}

	// --- PURCHASE ORDERS ---
	{
		repo := document_repo.NewPurchaseOrderRepo(cfg.TxManager)
		service := purchase_order.NewService(repo, cfg.TxManager, cfg.Numerator, cfg.PostingPolicy)

		service.Hooks().OnBeforeCreate(func(ctx context.Context, doc *purchase_order.PurchaseOrder) error {
			audit.EnrichCreatedByDirect(ctx, &doc.CreatedBy, &doc.UpdatedBy)
			return nil
		})
		service.Hooks().OnBeforeUpdate(func(ctx context.Context, doc *purchase_order.PurchaseOrder) error {
			audit.EnrichUpdatedByDirect(ctx, &doc.UpdatedBy)
			return nil
		})

		registerAuditHooks(service.Hooks(), cfg.Audit, "purchase_order")

		handler := handlers.NewPurchaseOrderHandler(baseHandler, service)
		group := docsGroup.Group("/purchase-orders")
		RegisterDocumentRoutes(group, handler, "document:purchase_order")
		group.POST("/:id/status", middleware.RequirePermission("document:purchase_order:update"), handler.SetStatus)
		if auditHandler != nil {
			group.GET("/:id/history", middleware.RequirePermission("document:purchase_order:read"), auditHandler.History("purchase_order"))
		}
	}
}

// registerAuditHooks records full document snapshots on create and update.
func registerAuditHooks[T interface{ GetID() id.ID }](
	hooks *domain.HookRegistry[T],
	auditLog *postgres.AuditService,
	entityType string,
) {
	if auditLog == nil {
		return
	}

	snapshot := func(action postgres.AuditAction) domain.Hook[T] {
		return func(ctx context.Context, doc T) error {
			changes, err := json.Marshal(doc)
			if err != nil {
				return err
			}
			return auditLog.Log(ctx, postgres.AuditEntry{
				EntityType: entityType,
				EntityID:   doc.GetID(),
				Action:     action,
				Changes:    changes,
			})
		}
	}

	hooks.OnAfterCreate(snapshot(postgres.AuditActionCreate))
	hooks.OnAfterUpdate(snapshot(postgres.AuditActionUpdate))
}
