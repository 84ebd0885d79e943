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

// PostgresFollowStore implements the store.FollowStore interface
// using a PostgreSQL database as the storage backend.
type PostgresFollowStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresFollowStore creates a new PostgreSQL implementation of the FollowStore
// interface. If logger is nil, a default logger will be used.
func NewPostgresFollowStore(db store.DBTX, logger *slog.Logger) *PostgresFollowStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresFollowStore{
		db:     db,
		logger: logger.With(slog.String("component", "follow_store")),
	}
}

// Ensure PostgresFollowStore implements store.FollowStore interface
var _ store.FollowStore = (*PostgresFollowStore)(nil)

// WithTx implements store.FollowStore.WithTx
func (s *PostgresFollowStore) WithTx(tx *sql.Tx) store.FollowStore {
	return &PostgresFollowStore{
		db:     tx,
		logger: s.logger,
	}
}

// Create implements store.FollowStore.Create
func (s *PostgresFollowStore) Create(ctx context.Context, follow domain.Follow) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO follows (follower_id, followee_id, created_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	var id int64
	err := s.db.QueryRowContext(ctx, query,
		follow.FollowerID,
		follow.FolloweeID,
		follow.CreatedAt,
	).Scan(&id)
	if err != nil {
		mapped := MapError(err)
		if !store.IsDuplicateError(mapped) {
			log.Error("failed to create follow",
				"follower_id", follow.FollowerID,
				"followee_id", follow.FolloweeID,
				"error", err)
		}
		return 0, mapped
	}

	return id, nil
}

// GetByPair implements store.FollowStore.GetByPair
func (s *PostgresFollowStore) GetByPair(ctx context.Context, followerID, followeeID int64) (*domain.Follow, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, follower_id, followee_id, created_at
		FROM follows
		WHERE follower_id = $1 AND followee_id = $2
	`

	var follow domain.Follow
	err := s.db.QueryRowContext(ctx, query, followerID, followeeID).Scan(
		&follow.ID,
		&follow.FollowerID,
		&follow.FolloweeID,
		&follow.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrFollowNotFound
		}
		log.Error("failed to get follow",
			"follower_id", followerID,
			"followee_id", followeeID,
			"error", err)
		return nil, fmt.Errorf("failed to get follow: %w", err)
	}

	return &follow, nil
}

// ListFollowers implements store.FollowStore.ListFollowers
// Follows are returned most recent first.
func (s *PostgresFollowStore) ListFollowers(ctx context.Context, followeeID int64) ([]*domain.Follow, error) {
	query := `
		SELECT id, follower_id, followee_id, created_at
		FROM follows
		WHERE followee_id = $1
		ORDER BY created_at DESC, id DESC
	`
	return s.list(ctx, query, followeeID)
}

// ListFollowees implements store.FollowStore.ListFollowees
// Follows are returned most recent first.
func (s *PostgresFollowStore) ListFollowees(ctx context.Context, followerID int64) ([]*domain.Follow, error) {
	query := `
		SELECT id, follower_id, followee_id, created_at
		FROM follows
		WHERE follower_id = $1
		ORDER BY created_at DESC, id DESC
	`
	return s.list(ctx, query, followerID)
}

func (s *PostgresFollowStore) list(ctx context.Context, query string, arg int64) ([]*domain.Follow, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, query, arg)
	if err != nil {
		log.Error("failed to list follows", "error", err)
		return nil, fmt.Errorf("failed to list follows: %w", err)
	}
	defer func() { _ = rows.Close() }()

	follows := make([]*domain.Follow, 0)
	for rows.Next() {
		var follow domain.Follow
		if err := rows.Scan(
			&follow.ID,
			&follow.FollowerID,
			&follow.FolloweeID,
			&follow.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan follow row: %w", err)
		}
		follows = append(follows, &follow)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating follow rows: %w", err)
	}

	return follows, nil
}

// Delete implements store.FollowStore.Delete
func (s *PostgresFollowStore) Delete(ctx context.Context, followerID, followeeID int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		DELETE FROM follows
		WHERE follower_id = $1 AND followee_id = $2
	`

	result, err := s.db.ExecContext(ctx, query, followerID, followeeID)
	if err != nil {
		log.Error("failed to delete follow",
			"follower_id", followerID,
			"followee_id", followeeID,
			"error", err)
		return fmt.Errorf("failed to delete follow: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return store.ErrFollowNotFound
	}

	return nil
}
