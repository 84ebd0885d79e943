package store

import (
	"context"
	"database/sql"

	"github.com/potetoapp/poteto-api/internal/domain"
)

// BlockStore defines the interface for block persistence.
type BlockStore interface {
	// Create inserts a new block and returns the store-assigned id.
	// Returns ErrBlockExists if the pair already exists,
	// ErrInvalidEntity if either user does not exist.
	Create(ctx context.Context, block domain.Block) (int64, error)

	// GetByPair retrieves the block for a (blocker, blocked) pair.
	// Returns ErrBlockNotFound if there is none.
	GetByPair(ctx context.Context, blockerID, blockedID int64) (*domain.Block, error)

	// ListByBlocker returns the blocks issued by blockerID, most
	// recent first. Returns an empty slice when there are none.
	ListByBlocker(ctx context.Context, blockerID int64) ([]*domain.Block, error)

	// Delete removes the block for a (blocker, blocked) pair.
	// Returns ErrBlockNotFound if there is none.
	Delete(ctx context.Context, blockerID, blockedID int64) error

	// WithTx returns a BlockStore bound to the given transaction.
	WithTx(tx *sql.Tx) BlockStore
}
