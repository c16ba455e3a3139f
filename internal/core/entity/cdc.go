// Package entity provides the base types shared by catalogs and
// documents.
package entity

import "time"

// CDCFields are the system columns consumed by the change data capture
// pipeline. They never appear in API responses.
type CDCFields struct {
	// DeletedAt lets logical replication reconstruct DELETE events
	// for soft-deleted rows
	DeletedAt *time.Time `db:"_deleted_at" json:"-"`

	// TxID orders changes; more reliable than xmin across wraparound
	TxID int64 `db:"_txid" json:"-"`
}
