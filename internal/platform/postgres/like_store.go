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

// PostgresLikeStore implements the store.LikeStore interface
// using a PostgreSQL database as the storage backend.
type PostgresLikeStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresLikeStore creates a new PostgreSQL implementation of the LikeStore
// interface. If logger is nil, a default logger will be used.
func NewPostgresLikeStore(db store.DBTX, logger *slog.Logger) *PostgresLikeStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresLikeStore{
		db:     db,
		logger: logger.With(slog.String("component", "like_store")),
	}
}

// Ensure PostgresLikeStore implements store.LikeStore interface
var _ store.LikeStore = (*PostgresLikeStore)(nil)

// WithTx implements store.LikeStore.WithTx
func (s *PostgresLikeStore) WithTx(tx *sql.Tx) store.LikeStore {
	return &PostgresLikeStore{
		db:     tx,
		logger: s.logger,
	}
}

// Create implements store.LikeStore.Create
// The unique index on (tweet_id, user_id) rejects double likes, which
// surface as store.ErrLikeExists.
func (s *PostgresLikeStore) Create(ctx context.Context, like domain.Like) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO likes (tweet_id, user_id, created_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	var id int64
	err := s.db.QueryRowContext(ctx, query, like.TweetID, like.UserID, like.CreatedAt).Scan(&id)
	if err != nil {
		mapped := MapError(err)
		if !store.IsDuplicateError(mapped) {
			log.Error("failed to create like",
				"tweet_id", like.TweetID,
				"user_id", like.UserID,
				"error", err)
		}
		return 0, mapped
	}

	return id, nil
}

// GetByTweetAndUser implements store.LikeStore.GetByTweetAndUser
func (s *PostgresLikeStore) GetByTweetAndUser(ctx context.Context, tweetID, userID int64) (*domain.Like, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, tweet_id, user_id, created_at
		FROM likes
		WHERE tweet_id = $1 AND user_id = $2
	`

	var like domain.Like
	err := s.db.QueryRowContext(ctx, query, tweetID, userID).Scan(
		&like.ID,
		&like.TweetID,
		&like.UserID,
		&like.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrLikeNotFound
		}
		log.Error("failed to get like", "tweet_id", tweetID, "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to get like: %w", err)
	}

	return &like, nil
}

// ListByTweet implements store.LikeStore.ListByTweet
// Likes are returned most recent first.
func (s *PostgresLikeStore) ListByTweet(ctx context.Context, tweetID int64) ([]*domain.Like, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, tweet_id, user_id, created_at
		FROM likes
		WHERE tweet_id = $1
		ORDER BY created_at DESC, id DESC
	`

	rows, err := s.db.QueryContext(ctx, query, tweetID)
	if err != nil {
		log.Error("failed to list likes by tweet", "tweet_id", tweetID, "error", err)
		return nil, fmt.Errorf("failed to list likes by tweet: %w", err)
	}
	defer func() { _ = rows.Close() }()

	likes := make([]*domain.Like, 0)
	for rows.Next() {
		var like domain.Like
		if err := rows.Scan(&like.ID, &like.TweetID, &like.UserID, &like.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan like row: %w", err)
		}
		likes = append(likes, &like)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating like rows: %w", err)
	}

	return likes, nil
}

// Delete implements store.LikeStore.Delete
func (s *PostgresLikeStore) Delete(ctx context.Context, tweetID, userID int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		DELETE FROM likes
		WHERE tweet_id = $1 AND user_id = $2
	`

	result, err := s.db.ExecContext(ctx, query, tweetID, userID)
	if err != nil {
		log.Error("failed to delete like", "tweet_id", tweetID, "user_id", userID, "error", err)
		return fmt.Errorf("failed to delete like: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return store.ErrLikeNotFound
	}

	return nil
}
