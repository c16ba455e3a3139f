package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"cableworks/internal/core/tx"
	"cableworks/pkg/logger"
)

var tracer = otel.Tracer("cableworks/tx")

var _ tx.Manager = (*TxManager)(nil)

// statementTimeout bounds every statement inside a managed transaction.
const statementTimeout = 30 * time.Second

// Querier is the subset of pgx shared by a pool and a transaction.
// Repositories run against whichever one the context provides.
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Tx carries the active transaction through the context.
type Tx struct {
	pgx.Tx
}

type txKey struct{}

// TxManager runs functions inside pgx transactions. A nested
// RunInTransaction call joins the transaction already in the context,
// so a service composing several repository calls commits atomically.
type TxManager struct {
	pool *pgxpool.Pool
}

// NewTxManager creates a transaction manager backed by the pool.
func NewTxManager(pool *Pool) *TxManager {
	return &TxManager{pool: pool.Pool}
}

// RunInTransaction executes fn within a transaction. The transaction
// commits when fn returns nil and rolls back otherwise. If the context
// already carries a transaction, fn runs inside it.
func (m *TxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	ctx, span := tracer.Start(ctx, "transaction",
		trace.WithAttributes(
			attribute.String("tx.isolation", string(pgx.ReadCommitted)),
		))
	defer span.End()

	if m.GetTx(ctx) != nil {
		return fn(ctx)
	}

	pgxTx, err := m.pool.BeginTx(ctx, pgx.TxOptions{
		IsoLevel:   pgx.ReadCommitted,
		AccessMode: pgx.ReadWrite,
	})
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	_, err = pgxTx.Exec(ctx, fmt.Sprintf("SET LOCAL statement_timeout = '%dms'", statementTimeout.Milliseconds()))
	if err != nil {
		_ = pgxTx.Rollback(ctx)
		return fmt.Errorf("set statement_timeout: %w", err)
	}

	txCtx := context.WithValue(ctx, txKey{}, &Tx{Tx: pgxTx})

	if err := fn(txCtx); err != nil {
		// Rollback on a fresh context so it runs even after cancellation
		if rbErr := pgxTx.Rollback(context.Background()); rbErr != nil {
			logger.Error(ctx, "rollback failed", "error", rbErr, "original_error", err)
		}
		return err
	}

	if err := pgxTx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// GetTx returns the transaction carried by the context, or nil.
func (m *TxManager) GetTx(ctx context.Context) *Tx {
	if t, ok := ctx.Value(txKey{}).(*Tx); ok {
		return t
	}
	return nil
}

// GetQuerier returns the context's transaction when present, otherwise
// the pool. Repositories use it so the same code works inside and
// outside transactions.
func (m *TxManager) GetQuerier(ctx context.Context) Querier {
	if t := m.GetTx(ctx); t != nil {
		return t.Tx
	}
	return m.pool
}
