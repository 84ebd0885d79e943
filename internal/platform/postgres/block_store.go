package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/potetoapp/poteto-api/internal/domain"
	"github.com/potetoapp/poteto-api/internal/platform/logger"
	"github.com/potetoapp/poteto-api/internal/store"
)

// PostgresBlockStore implements the store.BlockStore interface
// using a PostgreSQL database as the storage backend.
type PostgresBlockStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresBlockStore creates a new PostgreSQL implementation of the BlockStore
// interface. If logger is nil, a default logger will be used.
func NewPostgresBlockStore(db store.DBTX, logger *slog.Logger) *PostgresBlockStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresBlockStore{
		db:     db,
		logger: logger.With(slog.String("component", "block_store")),
	}
}

// Ensure PostgresBlockStore implements store.BlockStore interface
var _ store.BlockStore = (*PostgresBlockStore)(nil)

// WithTx implements store.BlockStore.WithTx
func (s *PostgresBlockStore) WithTx(tx *sql.Tx) store.BlockStore {
	return &PostgresBlockStore{
		db:     tx,
		logger: s.logger,
	}
}

// Create implements store.BlockStore.Create
func (s *PostgresBlockStore) Create(ctx context.Context, block domain.Block) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO blocks (blocker_id, blocked_id, created_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	var id int64
	err := s.db.QueryRowContext(ctx, query,
		block.BlockerID,
		block.BlockedID,
		block.CreatedAt,
	).Scan(&id)
	if err != nil {
		mapped := MapError(err)
		if !store.IsDuplicateError(mapped) {
			log.Error("failed to create block",
				"blocker_id", block.BlockerID,
				"blocked_id", block.BlockedID,
				"error", err)
		}
		return 0, mapped
	}

	return id, nil
}

// GetByPair implements store.BlockStore.GetByPair
func (s *PostgresBlockStore) GetByPair(ctx context.Context, blockerID, blockedID int64) (*domain.Block, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, blocker_id, blocked_id, created_at
		FROM blocks
		WHERE blocker_id = $1 AND blocked_id = $2
	`

	var block domain.Block
	err := s.db.QueryRowContext(ctx, query, blockerID, blockedID).Scan(
		&block.ID,
		&block.BlockerID,
		&block.BlockedID,
		&block.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrBlockNotFound
		}
		log.Error("failed to get block",
			"blocker_id", blockerID,
			"blocked_id", blockedID,
			"error", err)
		return nil, fmt.Errorf("failed to get block: %w", err)
	}

	return &block, nil
}

// ListByBlocker implements store.BlockStore.ListByBlocker
// Blocks are returned most recent first.
func (s *PostgresBlockStore) ListByBlocker(ctx context.Context, blockerID int64) ([]*domain.Block, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, blocker_id, blocked_id, created_at
		FROM blocks
		WHERE blocker_id = $1
		ORDER BY created_at DESC, id DESC
	`

	rows, err := s.db.QueryContext(ctx, query, blockerID)
	if err != nil {
		log.Error("failed to list blocks", "blocker_id", blockerID, "error", err)
		return nil, fmt.Errorf("failed to list blocks: %w", err)
	}
	defer func() { _ = rows.Close() }()

	blocks := make([]*domain.Block, 0)
	for rows.Next() {
		var block domain.Block
		if err := rows.Scan(
			&block.ID,
			&block.BlockerID,
			&block.BlockedID,
			&block.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan block row: %w", err)
		}
		blocks = append(blocks, &block)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating block rows: %w", err)
	}

	return blocks, nil
}

// Delete implements store.BlockStore.Delete
func (s *PostgresBlockStore) Delete(ctx context.Context, blockerID, blockedID int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		DELETE FROM blocks
		WHERE blocker_id = $1 AND blocked_id = $2
	`

	result, err := s.db.ExecContext(ctx, query, blockerID, blockedID)
	if err != nil {
		log.Error("failed to delete block",
			"blocker_id", blockerID,
			"blocked_id", blockedID,
			"error", err)
		return fmt.Errorf("failed to delete block: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return store.ErrBlockNotFound
	}

	return nil
}
