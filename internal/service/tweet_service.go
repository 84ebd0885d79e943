package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/potetoapp/poteto-api/internal/domain"
	"github.com/potetoapp/poteto-api/internal/domain/rules"
	"github.com/potetoapp/poteto-api/internal/store"
)

// TweetService provides tweet posting, reading and editing operations.
type TweetService interface {
	// Create posts a new tweet for the author and returns the stored
	// tweet, server-assigned fields included.
	Create(ctx context.Context, authorID int64, content string) (*domain.Tweet, error)

	// GetByID retrieves a tweet with its comments attached in
	// conversation order.
	GetByID(ctx context.Context, tweetID int64) (*domain.Tweet, error)

	// ListByAuthor returns the author's tweets, most recent first,
	// without comments.
	ListByAuthor(ctx context.Context, authorID int64) ([]*domain.Tweet, error)

	// UpdateContent replaces a tweet's content. Only the author may edit,
	// and only within the edit window measured from CreatedAt.
	UpdateContent(ctx context.Context, tweetID, editorID int64, newContent string) (*domain.Tweet, error)
}

// TweetServiceImpl implements the TweetService interface
type TweetServiceImpl struct {
	tweetStore   store.TweetStore
	commentStore store.CommentStore
	tweetRules   *rules.TweetRules
	db           *sql.DB
	logger       *slog.Logger
	now          func() time.Time
}

// NewTweetService creates a new TweetService.
func NewTweetService(
	tweetStore store.TweetStore,
	commentStore store.CommentStore,
	tweetRules *rules.TweetRules,
	db *sql.DB,
	logger *slog.Logger,
) *TweetServiceImpl {
	if tweetRules == nil {
		tweetRules = rules.NewDefaultTweetRules()
	}
	return &TweetServiceImpl{
		tweetStore:   tweetStore,
		commentStore: commentStore,
		tweetRules:   tweetRules,
		db:           db,
		logger:       logger.With("component", "tweet_service"),
		now:          time.Now,
	}
}

var _ TweetService = (*TweetServiceImpl)(nil)

// Create posts a new tweet inside a unit of work and reads it back.
func (s *TweetServiceImpl) Create(ctx context.Context, authorID int64, content string) (*domain.Tweet, error) {
	tweet, err := domain.NewTweet(authorID, content, s.now().UTC())
	if err != nil {
		return nil, fmt.Errorf("invalid tweet: %w", err)
	}

	var created *domain.Tweet
	err = store.RunInUnitOfWork(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.tweetStore.WithTx(tx)

		id, err := txStore.Create(ctx, tweet)
		if err != nil {
			return err
		}

		created, err = txStore.GetByID(ctx, id)
		return err
	})
	if err != nil {
		s.logger.Error("failed to create tweet", "error", err, "author_id", authorID)
		return nil, err
	}

	s.logger.Info("tweet created", "tweet_id", created.ID, "author_id", authorID)
	return created, nil
}

// GetByID retrieves a tweet and attaches its comments.
func (s *TweetServiceImpl) GetByID(ctx context.Context, tweetID int64) (*domain.Tweet, error) {
	tweet, err := s.tweetStore.GetByID(ctx, tweetID)
	if err != nil {
		if !errors.Is(err, store.ErrTweetNotFound) {
			s.logger.Error("failed to retrieve tweet", "error", err, "tweet_id", tweetID)
		}
		return nil, err
	}

	comments, err := s.commentStore.ListByTweet(ctx, tweetID)
	if err != nil {
		s.logger.Error("failed to load tweet comments", "error", err, "tweet_id", tweetID)
		return nil, err
	}

	attached := make([]domain.Comment, len(comments))
	for i, c := range comments {
		attached[i] = *c
	}
	withComments := tweet.WithComments(attached)
	return &withComments, nil
}

// ListByAuthor returns the author's tweets, most recent first.
func (s *TweetServiceImpl) ListByAuthor(ctx context.Context, authorID int64) ([]*domain.Tweet, error) {
	tweets, err := s.tweetStore.ListByAuthor(ctx, authorID)
	if err != nil {
		s.logger.Error("failed to list tweets", "error", err, "author_id", authorID)
		return nil, err
	}
	return tweets, nil
}

// UpdateContent edits a tweet within the edit window.
func (s *TweetServiceImpl) UpdateContent(ctx context.Context, tweetID, editorID int64, newContent string) (*domain.Tweet, error) {
	var updated *domain.Tweet
	err := store.RunInUnitOfWork(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.tweetStore.WithTx(tx)

		tweet, err := txStore.GetByID(ctx, tweetID)
		if err != nil {
			return err
		}
		if tweet.AuthorID != editorID {
			return ErrNotOwned
		}

		edited, err := s.tweetRules.UpdateContent(*tweet, newContent, s.now())
		if err != nil {
			return err
		}
		if err := txStore.Update(ctx, edited); err != nil {
			return err
		}

		updated, err = txStore.GetByID(ctx, tweetID)
		return err
	})
	if err != nil {
		if errors.Is(err, rules.ErrEditWindowExpired) || errors.Is(err, ErrNotOwned) {
			s.logger.Debug("tweet edit rejected", "tweet_id", tweetID, "editor_id", editorID, "reason", err)
		} else if !store.IsNotFoundError(err) {
			s.logger.Error("failed to update tweet", "error", err, "tweet_id", tweetID)
		}
		return nil, err
	}

	return updated, nil
}
