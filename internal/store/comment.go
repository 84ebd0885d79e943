package store

import (
	"context"
	"database/sql"

	"github.com/potetoapp/poteto-api/internal/domain"
)

// CommentStore defines the interface for comment persistence.
type CommentStore interface {
	// Create inserts a new comment and returns the store-assigned id.
	// Returns ErrInvalidEntity if the tweet or author does not exist.
	Create(ctx context.Context, comment domain.Comment) (int64, error)

	// GetByID retrieves a comment by id.
	// Returns ErrCommentNotFound if the comment does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Comment, error)

	// ListByTweet returns the tweet's comments in conversation order
	// (oldest first). Returns an empty slice when there are none.
	ListByTweet(ctx context.Context, tweetID int64) ([]*domain.Comment, error)

	// Update persists a comment snapshot's content and updated_at.
	// Returns ErrCommentNotFound if the comment does not exist.
	Update(ctx context.Context, comment domain.Comment) error

	// WithTx returns a CommentStore bound to the given transaction.
	WithTx(tx *sql.Tx) CommentStore
}
