package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// ErrUnitOfWorkClosed is returned when Commit or Rollback is called on
// a closed unit of work.
var ErrUnitOfWorkClosed = errors.New("unit of work is closed")

// UnitOfWork owns one pinned database connection and exactly one open
// transaction for as long as it is alive. Every store bound to its
// transaction observes the same uncommitted writes.
//
// Commit and Rollback dispose the current transaction and immediately
// begin a fresh one, so a single instance can carry several logical
// operations back to back. Close releases the connection and is safe
// to call more than once.
type UnitOfWork struct {
	conn   *sql.Conn
	tx     *sql.Tx
	closed bool
}

// BeginUnitOfWork pins a connection from the pool and opens the first
// transaction.
func BeginUnitOfWork(ctx context.Context, db *sql.DB) (*UnitOfWork, error) {
	conn, err := db.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire connection: %w", err)
	}

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}

	return &UnitOfWork{conn: conn, tx: tx}, nil
}

// Tx returns the currently open transaction. Stores are bound to it
// via their WithTx methods.
func (u *UnitOfWork) Tx() *sql.Tx {
	return u.tx
}

// Commit commits the current transaction and begins a new one. If the
// commit fails the transaction is rolled back and the commit error is
// returned; the unit of work is closed in that case since the
// connection state is no longer trustworthy.
func (u *UnitOfWork) Commit(ctx context.Context) error {
	if u.closed {
		return ErrUnitOfWorkClosed
	}

	if err := u.tx.Commit(); err != nil {
		_ = u.tx.Rollback()
		u.tx = nil
		_ = u.release()
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return u.begin(ctx)
}

// Rollback rolls back the current transaction and begins a new one.
func (u *UnitOfWork) Rollback(ctx context.Context) error {
	if u.closed {
		return ErrUnitOfWorkClosed
	}

	if err := u.tx.Rollback(); err != nil {
		u.tx = nil
		_ = u.release()
		return fmt.Errorf("failed to roll back transaction: %w", err)
	}

	return u.begin(ctx)
}

// Close rolls back any in-flight transaction and releases the
// connection back to the pool. It is idempotent.
func (u *UnitOfWork) Close() error {
	if u.closed {
		return nil
	}

	var rollbackErr error
	if u.tx != nil {
		if err := u.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			rollbackErr = fmt.Errorf("failed to roll back transaction: %w", err)
		}
		u.tx = nil
	}

	return errors.Join(rollbackErr, u.release())
}

func (u *UnitOfWork) begin(ctx context.Context) error {
	tx, err := u.conn.BeginTx(ctx, nil)
	if err != nil {
		u.tx = nil
		_ = u.release()
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	u.tx = tx
	return nil
}

func (u *UnitOfWork) release() error {
	u.closed = true
	if err := u.conn.Close(); err != nil && !errors.Is(err, sql.ErrConnDone) {
		return fmt.Errorf("failed to release connection: %w", err)
	}
	return nil
}
