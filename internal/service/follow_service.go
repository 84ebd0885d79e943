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

// FollowService provides follow relationship operations.
type FollowService interface {
	// Follow records that followerID follows followeeID. Following the
	// same user twice surfaces store.ErrFollowExists; self-follows are
	// rejected by the entity constructor.
	Follow(ctx context.Context, followerID, followeeID int64) (*domain.Follow, error)

	// ListFollowers returns the follows targeting the user, most recent
	// first.
	ListFollowers(ctx context.Context, followeeID int64) ([]*domain.Follow, error)

	// ListFollowees returns the follows issued by the user, most recent
	// first.
	ListFollowees(ctx context.Context, followerID int64) ([]*domain.Follow, error)

	// Unfollow removes the follow relationship.
	// Returns store.ErrFollowNotFound if there is none.
	Unfollow(ctx context.Context, followerID, followeeID int64) error
}

// FollowServiceImpl implements the FollowService interface
type FollowServiceImpl struct {
	followStore store.FollowStore
	db          *sql.DB
	logger      *slog.Logger
	now         func() time.Time
}

// NewFollowService creates a new FollowService.
func NewFollowService(followStore store.FollowStore, db *sql.DB, logger *slog.Logger) *FollowServiceImpl {
	return &FollowServiceImpl{
		followStore: followStore,
		db:          db,
		logger:      logger.With("component", "follow_service"),
		now:         time.Now,
	}
}

var _ FollowService = (*FollowServiceImpl)(nil)

// Follow records the relationship inside a unit of work and reads it back.
func (s *FollowServiceImpl) Follow(ctx context.Context, followerID, followeeID int64) (*domain.Follow, error) {
	follow, err := domain.NewFollow(followerID, followeeID, s.now().UTC())
	if err != nil {
		return nil, fmt.Errorf("invalid follow: %w", err)
	}

	var created *domain.Follow
	err = store.RunInUnitOfWork(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.followStore.WithTx(tx)

		if _, err := txStore.Create(ctx, follow); err != nil {
			return err
		}

		created, err = txStore.GetByPair(ctx, followerID, followeeID)
		return err
	})
	if err != nil {
		if store.IsDuplicateError(err) {
			s.logger.Debug("duplicate follow rejected",
				"follower_id", followerID,
				"followee_id", followeeID)
		} else {
			s.logger.Error("failed to create follow", "error", err)
		}
		return nil, err
	}

	return created, nil
}

// ListFollowers returns the follows targeting the user.
func (s *FollowServiceImpl) ListFollowers(ctx context.Context, followeeID int64) ([]*domain.Follow, error) {
	follows, err := s.followStore.ListFollowers(ctx, followeeID)
	if err != nil {
		s.logger.Error("failed to list followers", "error", err, "followee_id", followeeID)
		return nil, err
	}
	return follows, nil
}

// ListFollowees returns the follows issued by the user.
func (s *FollowServiceImpl) ListFollowees(ctx context.Context, followerID int64) ([]*domain.Follow, error) {
	follows, err := s.followStore.ListFollowees(ctx, followerID)
	if err != nil {
		s.logger.Error("failed to list followees", "error", err, "follower_id", followerID)
		return nil, err
	}
	return follows, nil
}

// Unfollow removes the follow relationship.
func (s *FollowServiceImpl) Unfollow(ctx context.Context, followerID, followeeID int64) error {
	err := s.followStore.Delete(ctx, followerID, followeeID)
	if err != nil && !store.IsNotFoundError(err) {
		s.logger.Error("failed to delete follow", "error", err,
			"follower_id", followerID,
			"followee_id", followeeID)
	}
	return err
}
