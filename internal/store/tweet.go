package store

import (
	"context"
	"database/sql"

	"github.com/potetoapp/poteto-api/internal/domain"
)

// TweetStore defines the interface for tweet persistence.
type TweetStore interface {
	// Create inserts a new tweet and returns the store-assigned id.
	// Returns ErrInvalidEntity if the author does not exist.
	Create(ctx context.Context, tweet domain.Tweet) (int64, error)

	// GetByID retrieves a tweet by id, without its comments.
	// Returns ErrTweetNotFound if the tweet does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Tweet, error)

	// ListByAuthor returns the author's tweets, most recent first.
	// Returns an empty slice when the author has no tweets.
	ListByAuthor(ctx context.Context, authorID int64) ([]*domain.Tweet, error)

	// Update persists a tweet snapshot's content and updated_at.
	// Returns ErrTweetNotFound if the tweet does not exist.
	Update(ctx context.Context, tweet domain.Tweet) error

	// WithTx returns a TweetStore bound to the given transaction.
	WithTx(tx *sql.Tx) TweetStore
}
