package store

import (
	"context"
	"database/sql"
)

// DBTX abstracts the database access layer. It is satisfied by
// *sql.DB, *sql.Tx and *sql.Conn, so store implementations can run
// against the pool, a pinned connection, or an open transaction
// without knowing which they were handed.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
