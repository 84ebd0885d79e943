package store

import (
	"context"
	"database/sql"

	"github.com/potetoapp/poteto-api/internal/domain"
)

// LikeStore defines the interface for like persistence.
type LikeStore interface {
	// Create inserts a new like and returns the store-assigned id.
	// Returns ErrLikeExists if the (tweet, user) pair already has one,
	// ErrInvalidEntity if the tweet or user does not exist.
	Create(ctx context.Context, like domain.Like) (int64, error)

	// GetByTweetAndUser retrieves the like for a (tweet, user) pair.
	// Returns ErrLikeNotFound if there is none.
	GetByTweetAndUser(ctx context.Context, tweetID, userID int64) (*domain.Like, error)

	// ListByTweet returns the tweet's likes, most recent first.
	// Returns an empty slice when there are none.
	ListByTweet(ctx context.Context, tweetID int64) ([]*domain.Like, error)

	// Delete removes the like for a (tweet, user) pair.
	// Returns ErrLikeNotFound if there is none.
	Delete(ctx context.Context, tweetID, userID int64) error

	// WithTx returns a LikeStore bound to the given transaction.
	WithTx(tx *sql.Tx) LikeStore
}
