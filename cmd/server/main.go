// Package main is the entry point for the Cableworks API server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cableworks/internal/core/security"
	"cableworks/internal/domain/auth"
	v1 "cableworks/internal/infrastructure/http/v1"
	"cableworks/internal/infrastructure/numerator"
	"cableworks/internal/infrastructure/storage/postgres"
	"cableworks/internal/infrastructure/storage/postgres/auth_repo"
	"cableworks/pkg/logger"
)

func main() {
	// Initialize logger
	log, err := logger.New(logger.Config{
		Level:       getEnv("LOG_LEVEL", "info"),
		Development: getEnv("APP_ENV", "development") == "development",
	})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	log.Info("starting cableworks server")

	// --- Database connection ---
	dsn := mustEnv("DATABASE_URL")
	poolCfg := postgres.DefaultPoolConfig(dsn)
	if maxConns := getEnvInt("DB_MAX_CONNS", 0); maxConns > 0 {
		poolCfg.MaxConns = int32(maxConns)
	}

	pool, err := postgres.NewPool(ctx, poolCfg)
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()
	log.Info("database connection established")

	txManager := postgres.NewTxManager(pool)

	// --- JWT Service ---
	jwtSecret := getEnv("JWT_SECRET", "your-secret-key-change-in-production")
	jwtConfig := auth.DefaultJWTConfig(jwtSecret)
	jwtService := auth.NewJWTService(jwtConfig)

	// --- Auth Service ---
	userRepo := auth_repo.NewUserRepo(txManager)
	roleRepo := auth_repo.NewRoleRepo(txManager)
	tokenRepo := auth_repo.NewTokenRepo(txManager)

	authConfig := auth.DefaultServiceConfig()
	authService := auth.NewService(
		userRepo,
		roleRepo,
		tokenRepo,
		txManager,
		jwtService,
		authConfig,
	)

	// --- Numerator Service ---
	// Numbers are generated outside business transactions, the pool is the querier.
	numeratorService := numerator.New(pool)

	// --- Posting Policy ---
	postingPolicy := buildPostingPolicy(log)

	// --- Audit ---
	auditService, err := postgres.NewAuditService(txManager)
	if err != nil {
		log.Fatalw("failed to initialize audit service", "error", err)
	}

	// --- Idempotency ---
	var idempotencyStore *postgres.IdempotencyStore
	if getEnv("IDEMPOTENCY_ENABLED", "false") == "true" {
		ttl := getEnvDuration("IDEMPOTENCY_TTL", 10*time.Minute)
		idempotencyStore = postgres.NewIdempotencyStore(txManager, ttl)
		go runIdempotencyJanitor(ctx, idempotencyStore, ttl, log)
	}

	// --- Router ---
	router := v1.NewRouter(v1.RouterConfig{
		Pool:          pool,
		TxManager:     txManager,
		Logger:        log,
		JWTValidator:  jwtService,
		AuthService:   authService,
		Numerator:     numeratorService,
		PostingPolicy: postingPolicy,
		Audit:         auditService,
		Idempotency:   idempotencyStore,
	})

	// --- HTTP Server ---
	port := getEnv("APP_PORT", "8080")
	server := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Infow("server starting", "port", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalw("server failed", "error", err)
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	// Give outstanding requests 30 seconds to complete
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalw("server forced to shutdown", "error", err)
	}

	log.Info("server stopped")
}

// runIdempotencyJanitor deletes expired idempotency records on a fixed
// cadence until the context is cancelled.
func runIdempotencyJanitor(ctx context.Context, store *postgres.IdempotencyStore, ttl time.Duration, log *logger.Logger) {
	ticker := time.NewTicker(ttl)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed, err := store.CleanupExpired(ctx)
			if err != nil {
				log.Warnw("idempotency cleanup failed", "error", err)
				continue
			}
			if removed > 0 {
				log.Infow("idempotency records cleaned", "removed", removed)
			}
		}
	}
}

// buildPostingPolicy selects the period-close policy from environment.
// POSTING_POLICY: open (default), strict, flexible.
// POSTING_CLOSED_UNTIL: RFC3339 date before which documents are locked.
func buildPostingPolicy(log *logger.Logger) security.PostingPolicy {
	closedUntil := time.Time{}
	if raw := os.Getenv("POSTING_CLOSED_UNTIL"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			log.Warnw("invalid POSTING_CLOSED_UNTIL, ignoring", "value", raw, "error", err)
		} else {
			closedUntil = parsed
		}
	}

	switch getEnv("POSTING_POLICY", "open") {
	case "strict":
		return security.NewStrictPolicy(closedUntil)
	case "flexible":
		threshold := getEnvDuration("POSTING_BACKDATE_WARNING", 30*24*time.Hour)
		return security.NewFlexiblePolicy(threshold, closedUntil)
	default:
		return security.OpenPolicy{}
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func mustEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		fmt.Printf("required environment variable %s not set\n", key)
		os.Exit(1)
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		var result int
		if _, err := fmt.Sscanf(value, "%d", &result); err == nil {
			return result
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
