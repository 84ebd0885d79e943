package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/potetoapp/poteto-api/internal/domain"
	"github.com/potetoapp/poteto-api/internal/store"
)

// CommentService provides comment posting, reading and editing operations.
type CommentService interface {
	// Create posts a new comment under a tweet and returns the stored
	// comment, server-assigned fields included.
	Create(ctx context.Context, tweetID, authorID int64, content string) (*domain.Comment, error)

	// GetByID retrieves a comment by id.
	GetByID(ctx context.Context, commentID int64) (*domain.Comment, error)

	// ListByTweet returns a tweet's comments in conversation order,
	// oldest first.
	ListByTweet(ctx context.Context, tweetID int64) ([]*domain.Comment, error)

	// UpdateContent replaces a comment's content. Only the author may
	// edit.
	UpdateContent(ctx context.Context, commentID, editorID int64, newContent string) (*domain.Comment, error)
}

// CommentServiceImpl implements the CommentService interface
type CommentServiceImpl struct {
	commentStore store.CommentStore
	tweetStore   store.TweetStore
	db           *sql.DB
	logger       *slog.Logger
	now          func() time.Time
}

// NewCommentService creates a new CommentService.
func NewCommentService(
	commentStore store.CommentStore,
	tweetStore store.TweetStore,
	db *sql.DB,
	logger *slog.Logger,
) *CommentServiceImpl {
	return &CommentServiceImpl{
		commentStore: commentStore,
		tweetStore:   tweetStore,
		db:           db,
		logger:       logger.With("component", "comment_service"),
		now:          time.Now,
	}
}

var _ CommentService = (*CommentServiceImpl)(nil)

// Create posts a new comment inside a unit of work and reads it back.
// The target tweet is checked first so a missing tweet surfaces as
// ErrTweetNotFound rather than a bare foreign key violation.
func (s *CommentServiceImpl) Create(ctx context.Context, tweetID, authorID int64, content string) (*domain.Comment, error) {
	comment, err := domain.NewComment(tweetID, authorID, content, s.now().UTC())
	if err != nil {
		return nil, fmt.Errorf("invalid comment: %w", err)
	}

	var created *domain.Comment
	err = store.RunInUnitOfWork(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		if _, err := s.tweetStore.WithTx(tx).GetByID(ctx, tweetID); err != nil {
			return err
		}

		txStore := s.commentStore.WithTx(tx)
		id, err := txStore.Create(ctx, comment)
		if err != nil {
			return err
		}

		created, err = txStore.GetByID(ctx, id)
		return err
	})
	if err != nil {
		if !store.IsNotFoundError(err) {
			s.logger.Error("failed to create comment", "error", err, "tweet_id", tweetID)
		}
		return nil, err
	}

	s.logger.Info("comment created",
		"comment_id", created.ID,
		"tweet_id", tweetID,
		"author_id", authorID)
	return created, nil
}

// GetByID retrieves a comment by id.
func (s *CommentServiceImpl) GetByID(ctx context.Context, commentID int64) (*domain.Comment, error) {
	comment, err := s.commentStore.GetByID(ctx, commentID)
	if err != nil {
		if !errors.Is(err, store.ErrCommentNotFound) {
			s.logger.Error("failed to retrieve comment", "error", err, "comment_id", commentID)
		}
		return nil, err
	}
	return comment, nil
}

// ListByTweet returns a tweet's comments, oldest first.
func (s *CommentServiceImpl) ListByTweet(ctx context.Context, tweetID int64) ([]*domain.Comment, error) {
	comments, err := s.commentStore.ListByTweet(ctx, tweetID)
	if err != nil {
		s.logger.Error("failed to list comments", "error", err, "tweet_id", tweetID)
		return nil, err
	}
	return comments, nil
}

// UpdateContent edits a comment.
func (s *CommentServiceImpl) UpdateContent(ctx context.Context, commentID, editorID int64, newContent string) (*domain.Comment, error) {
	var updated *domain.Comment
	err := store.RunInUnitOfWork(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.commentStore.WithTx(tx)

		comment, err := txStore.GetByID(ctx, commentID)
		if err != nil {
			return err
		}
		if comment.AuthorID != editorID {
			return ErrNotOwned
		}

		edited, err := comment.WithContent(newContent, s.now().UTC())
		if err != nil {
			return err
		}
		if err := txStore.Update(ctx, edited); err != nil {
			return err
		}

		updated, err = txStore.GetByID(ctx, commentID)
		return err
	})
	if err != nil {
		if errors.Is(err, ErrNotOwned) {
			s.logger.Debug("comment edit rejected", "comment_id", commentID, "editor_id", editorID)
		} else if !store.IsNotFoundError(err) {
			s.logger.Error("failed to update comment", "error", err, "comment_id", commentID)
		}
		return nil, err
	}

	return updated, nil
}
