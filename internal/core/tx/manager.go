// Package tx defines the transaction boundary the domain layer depends
// on. The concrete manager lives in infrastructure/storage/postgres.
package tx

import "context"

// Manager runs a function inside a database transaction.
type Manager interface {
	// RunInTransaction commits when fn returns nil and rolls back
	// otherwise. A nested call joins the transaction already carried
	// by the context.
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
