package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/potetoapp/poteto-api/internal/platform/logger"
)

// TxFn is a function executed within a unit of work. It receives the
// open transaction; the unit of work commits if it returns nil and
// rolls back if it returns an error.
type TxFn func(ctx context.Context, tx *sql.Tx) error

// RunInUnitOfWork opens a unit of work, executes fn inside its
// transaction, and commits or rolls back depending on the outcome.
// The connection is released on every exit path, including panics,
// which are re-raised after rollback.
func RunInUnitOfWork(ctx context.Context, db *sql.DB, fn TxFn) error {
	log := logger.FromContext(ctx)

	uow, err := BeginUnitOfWork(ctx, db)
	if err != nil {
		log.Error("failed to begin unit of work",
			slog.String("error", err.Error()))
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			if closeErr := uow.Close(); closeErr != nil {
				log.Error("failed to roll back unit of work after panic",
					slog.String("error", closeErr.Error()),
					slog.Any("panic", p))
			} else {
				log.Error("rolled back unit of work after panic",
					slog.Any("panic", p))
			}
			panic(p)
		}
	}()

	if err := fn(ctx, uow.Tx()); err != nil {
		if closeErr := uow.Close(); closeErr != nil {
			log.Error("failed to roll back unit of work",
				slog.String("rollback_error", closeErr.Error()),
				slog.String("original_error", err.Error()))
			return fmt.Errorf(
				"error rolling back unit of work: %v (original error: %w)",
				closeErr,
				err,
			)
		}
		log.Debug("rolled back unit of work due to error",
			slog.String("error", err.Error()))
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		_ = uow.Close()
		log.Error("failed to commit unit of work",
			slog.String("error", err.Error()))
		return err
	}

	if err := uow.Close(); err != nil {
		log.Error("failed to release unit of work",
			slog.String("error", err.Error()))
	}

	log.Debug("unit of work committed successfully")
	return nil
}
