package store

import (
	"context"
	"database/sql"

	"github.com/potetoapp/poteto-api/internal/domain"
)

// FollowStore defines the interface for follow persistence.
type FollowStore interface {
	// Create inserts a new follow and returns the store-assigned id.
	// Returns ErrFollowExists if the pair already exists,
	// ErrInvalidEntity if either user does not exist.
	Create(ctx context.Context, follow domain.Follow) (int64, error)

	// GetByPair retrieves the follow for a (follower, followee) pair.
	// Returns ErrFollowNotFound if there is none.
	GetByPair(ctx context.Context, followerID, followeeID int64) (*domain.Follow, error)

	// ListFollowers returns the follows targeting followeeID, most
	// recent first. Returns an empty slice when there are none.
	ListFollowers(ctx context.Context, followeeID int64) ([]*domain.Follow, error)

	// ListFollowees returns the follows issued by followerID, most
	// recent first. Returns an empty slice when there are none.
	ListFollowees(ctx context.Context, followerID int64) ([]*domain.Follow, error)

	// Delete removes the follow for a (follower, followee) pair.
	// Returns ErrFollowNotFound if there is none.
	Delete(ctx context.Context, followerID, followeeID int64) error

	// WithTx returns a FollowStore bound to the given transaction.
	WithTx(tx *sql.Tx) FollowStore
}
