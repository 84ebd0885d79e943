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

// PostgresTweetStore implements the store.TweetStore interface
// using a PostgreSQL database as the storage backend.
type PostgresTweetStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresTweetStore creates a new PostgreSQL implementation of the TweetStore interface.
// It accepts a database connection or transaction that should be initialized and managed
// by the caller. If logger is nil, a default logger will be used.
func NewPostgresTweetStore(db store.DBTX, logger *slog.Logger) *PostgresTweetStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresTweetStore{
		db:     db,
		logger: logger.With(slog.String("component", "tweet_store")),
	}
}

// Ensure PostgresTweetStore implements store.TweetStore interface
var _ store.TweetStore = (*PostgresTweetStore)(nil)

// WithTx implements store.TweetStore.WithTx
func (s *PostgresTweetStore) WithTx(tx *sql.Tx) store.TweetStore {
	return &PostgresTweetStore{
		db:     tx,
		logger: s.logger,
	}
}

// Create implements store.TweetStore.Create
func (s *PostgresTweetStore) Create(ctx context.Context, tweet domain.Tweet) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO tweets (author_id, content, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	var id int64
	err := s.db.QueryRowContext(ctx, query,
		tweet.AuthorID,
		tweet.Content,
		tweet.CreatedAt,
		tweet.UpdatedAt,
	).Scan(&id)
	if err != nil {
		log.Error("failed to create tweet", "author_id", tweet.AuthorID, "error", err)
		return 0, MapError(err)
	}

	return id, nil
}

// GetByID implements store.TweetStore.GetByID
// The returned tweet does not carry its comments; use CommentStore.ListByTweet.
func (s *PostgresTweetStore) GetByID(ctx context.Context, id int64) (*domain.Tweet, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, author_id, content, created_at, updated_at
		FROM tweets
		WHERE id = $1
	`

	var tweet domain.Tweet
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&tweet.ID,
		&tweet.AuthorID,
		&tweet.Content,
		&tweet.CreatedAt,
		&tweet.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrTweetNotFound
		}
		log.Error("failed to get tweet by id", "tweet_id", id, "error", err)
		return nil, fmt.Errorf("failed to get tweet by id: %w", err)
	}

	return &tweet, nil
}

// ListByAuthor implements store.TweetStore.ListByAuthor
// Tweets are returned most recent first.
func (s *PostgresTweetStore) ListByAuthor(ctx context.Context, authorID int64) ([]*domain.Tweet, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, author_id, content, created_at, updated_at
		FROM tweets
		WHERE author_id = $1
		ORDER BY created_at DESC, id DESC
	`

	rows, err := s.db.QueryContext(ctx, query, authorID)
	if err != nil {
		log.Error("failed to list tweets by author", "author_id", authorID, "error", err)
		return nil, fmt.Errorf("failed to list tweets by author: %w", err)
	}
	defer func() { _ = rows.Close() }()

	tweets := make([]*domain.Tweet, 0)
	for rows.Next() {
		var tweet domain.Tweet
		if err := rows.Scan(
			&tweet.ID,
			&tweet.AuthorID,
			&tweet.Content,
			&tweet.CreatedAt,
			&tweet.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan tweet row: %w", err)
		}
		tweets = append(tweets, &tweet)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tweet rows: %w", err)
	}

	return tweets, nil
}

// Update implements store.TweetStore.Update
// It persists the snapshot's content and updated_at.
func (s *PostgresTweetStore) Update(ctx context.Context, tweet domain.Tweet) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE tweets
		SET content = $1, updated_at = $2
		WHERE id = $3
	`

	result, err := s.db.ExecContext(ctx, query, tweet.Content, tweet.UpdatedAt, tweet.ID)
	if err != nil {
		log.Error("failed to update tweet", "tweet_id", tweet.ID, "error", err)
		return MapError(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return store.ErrTweetNotFound
	}

	return nil
}
