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

// LikeService provides like and unlike operations on tweets.
type LikeService interface {
	// Like records that the user likes the tweet. Liking the same tweet
	// twice surfaces store.ErrLikeExists.
	Like(ctx context.Context, tweetID, userID int64) (*domain.Like, error)

	// ListByTweet returns a tweet's likes, most recent first.
	ListByTweet(ctx context.Context, tweetID int64) ([]*domain.Like, error)

	// Unlike removes the user's like from the tweet.
	// Returns store.ErrLikeNotFound if there is none.
	Unlike(ctx context.Context, tweetID, userID int64) error
}

// LikeServiceImpl implements the LikeService interface
type LikeServiceImpl struct {
	likeStore store.LikeStore
	db        *sql.DB
	logger    *slog.Logger
	now       func() time.Time
}

// NewLikeService creates a new LikeService.
func NewLikeService(likeStore store.LikeStore, db *sql.DB, logger *slog.Logger) *LikeServiceImpl {
	return &LikeServiceImpl{
		likeStore: likeStore,
		db:        db,
		logger:    logger.With("component", "like_service"),
		now:       time.Now,
	}
}

var _ LikeService = (*LikeServiceImpl)(nil)

// Like records the like inside a unit of work and reads it back.
func (s *LikeServiceImpl) Like(ctx context.Context, tweetID, userID int64) (*domain.Like, error) {
	like, err := domain.NewLike(tweetID, userID, s.now().UTC())
	if err != nil {
		return nil, fmt.Errorf("invalid like: %w", err)
	}

	var created *domain.Like
	err = store.RunInUnitOfWork(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.likeStore.WithTx(tx)

		if _, err := txStore.Create(ctx, like); err != nil {
			return err
		}

		created, err = txStore.GetByTweetAndUser(ctx, tweetID, userID)
		return err
	})
	if err != nil {
		if store.IsDuplicateError(err) {
			s.logger.Debug("duplicate like rejected", "tweet_id", tweetID, "user_id", userID)
		} else {
			s.logger.Error("failed to create like", "error", err, "tweet_id", tweetID)
		}
		return nil, err
	}

	return created, nil
}

// ListByTweet returns a tweet's likes, most recent first.
func (s *LikeServiceImpl) ListByTweet(ctx context.Context, tweetID int64) ([]*domain.Like, error) {
	likes, err := s.likeStore.ListByTweet(ctx, tweetID)
	if err != nil {
		s.logger.Error("failed to list likes", "error", err, "tweet_id", tweetID)
		return nil, err
	}
	return likes, nil
}

// Unlike removes the user's like from the tweet.
func (s *LikeServiceImpl) Unlike(ctx context.Context, tweetID, userID int64) error {
	err := s.likeStore.Delete(ctx, tweetID, userID)
	if err != nil && !store.IsNotFoundError(err) {
		s.logger.Error("failed to delete like", "error", err, "tweet_id", tweetID, "user_id", userID)
	}
	return err
}
