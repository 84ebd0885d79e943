package service

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/potetoapp/poteto-api/internal/domain"
	"github.com/potetoapp/poteto-api/internal/store"
)

// BlockService provides block relationship operations.
type BlockService interface {
	// Block records that blockerID blocks blockedID. Blocking the same
	// user twice surfaces store.ErrBlockExists; self-blocks are rejected
	// by the entity constructor.
	Block(ctx context.Context, blockerID, blockedID int64) (*domain.Block, error)

	// ListBlocked returns the blocks issued by the user, most recent
	// first.
	ListBlocked(ctx context.Context, blockerID int64) ([]*domain.Block, error)

	// Unblock removes the block relationship.
	// Returns store.ErrBlockNotFound if there is none.
	Unblock(ctx context.Context, blockerID, blockedID int64) error
}

// BlockServiceImpl implements the BlockService interface
type BlockServiceImpl struct {
	blockStore store.BlockStore
	db         *sql.DB
	logger     *slog.Logger
	now        func() time.Time
}

// NewBlockService creates a new BlockService.
func NewBlockService(blockStore store.BlockStore, db *sql.DB, logger *slog.Logger) *BlockServiceImpl {
	return &BlockServiceImpl{
		blockStore: blockStore,
		db:         db,
		logger:     logger.With("component", "block_service"),
		now:        time.Now,
	}
}

var _ BlockService = (*BlockServiceImpl)(nil)

// Block records the block inside a unit of work and reads it back.
func (s *BlockServiceImpl) Block(ctx context.Context, blockerID, blockedID int64) (*domain.Block, error) {
	block, err := domain.NewBlock(blockerID, blockedID, s.now().UTC())
	if err != nil {
		return nil, fmt.Errorf("invalid block: %w", err)
	}

	var created *domain.Block
	err = store.RunInUnitOfWork(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.blockStore.WithTx(tx)

		if _, err := txStore.Create(ctx, block); err != nil {
			return err
		}

		created, err = txStore.GetByPair(ctx, blockerID, blockedID)
		return err
	})
	if err != nil {
		if store.IsDuplicateError(err) {
			s.logger.Debug("duplicate block rejected",
				"blocker_id", blockerID,
				"blocked_id", blockedID)
		} else {
			s.logger.Error("failed to create block", "error", err)
		}
		return nil, err
	}

	s.logger.Info("user blocked", "blocker_id", blockerID, "blocked_id", blockedID)
	return created, nil
}

// ListBlocked returns the blocks issued by the user.
func (s *BlockServiceImpl) ListBlocked(ctx context.Context, blockerID int64) ([]*domain.Block, error) {
	blocks, err := s.blockStore.ListByBlocker(ctx, blockerID)
	if err != nil {
		s.logger.Error("failed to list blocks", "error", err, "blocker_id", blockerID)
		return nil, err
	}
	return blocks, nil
}

// Unblock removes the block relationship.
func (s *BlockServiceImpl) Unblock(ctx context.Context, blockerID, blockedID int64) error {
	err := s.blockStore.Delete(ctx, blockerID, blockedID)
	if err != nil && !store.IsNotFoundError(err) {
		s.logger.Error("failed to delete block", "error", err,
			"blocker_id", blockerID,
			"blocked_id", blockedID)
	}
	return err
}
