package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/potetoapp/poteto-api/internal/domain"
	"github.com/potetoapp/poteto-api/internal/store"
)

// stubUserStore implements store.UserStore with injectable behavior per
// method. Methods without an injected function fail the call, so tests
// notice unexpected store access.
type stubUserStore struct {
	createFn     func(ctx context.Context, user domain.User) (int64, error)
	getByIDFn    func(ctx context.Context, id int64) (*domain.User, error)
	getByEmailFn func(ctx context.Context, email string) (*domain.User, error)
	updateFn     func(ctx context.Context, user domain.User) error

	createCalls int
}

var _ store.UserStore = (*stubUserStore)(nil)

func (s *stubUserStore) Create(ctx context.Context, user domain.User) (int64, error) {
	s.createCalls++
	if s.createFn == nil {
		return 0, errors.New("unexpected Create call")
	}
	return s.createFn(ctx, user)
}

func (s *stubUserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if s.getByIDFn == nil {
		return nil, errors.New("unexpected GetByID call")
	}
	return s.getByIDFn(ctx, id)
}

func (s *stubUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if s.getByEmailFn == nil {
		return nil, errors.New("unexpected GetByEmail call")
	}
	return s.getByEmailFn(ctx, email)
}

func (s *stubUserStore) Update(ctx context.Context, user domain.User) error {
	if s.updateFn == nil {
		return errors.New("unexpected Update call")
	}
	return s.updateFn(ctx, user)
}

func (s *stubUserStore) WithTx(tx *sql.Tx) store.UserStore { return s }

// stubTweetStore implements store.TweetStore the same way.
type stubTweetStore struct {
	createFn       func(ctx context.Context, tweet domain.Tweet) (int64, error)
	getByIDFn      func(ctx context.Context, id int64) (*domain.Tweet, error)
	listByAuthorFn func(ctx context.Context, authorID int64) ([]*domain.Tweet, error)
	updateFn       func(ctx context.Context, tweet domain.Tweet) error

	createCalls int
}

var _ store.TweetStore = (*stubTweetStore)(nil)

func (s *stubTweetStore) Create(ctx context.Context, tweet domain.Tweet) (int64, error) {
	s.createCalls++
	if s.createFn == nil {
		return 0, errors.New("unexpected Create call")
	}
	return s.createFn(ctx, tweet)
}

func (s *stubTweetStore) GetByID(ctx context.Context, id int64) (*domain.Tweet, error) {
	if s.getByIDFn == nil {
		return nil, errors.New("unexpected GetByID call")
	}
	return s.getByIDFn(ctx, id)
}

func (s *stubTweetStore) ListByAuthor(ctx context.Context, authorID int64) ([]*domain.Tweet, error) {
	if s.listByAuthorFn == nil {
		return nil, errors.New("unexpected ListByAuthor call")
	}
	return s.listByAuthorFn(ctx, authorID)
}

func (s *stubTweetStore) Update(ctx context.Context, tweet domain.Tweet) error {
	if s.updateFn == nil {
		return errors.New("unexpected Update call")
	}
	return s.updateFn(ctx, tweet)
}

func (s *stubTweetStore) WithTx(tx *sql.Tx) store.TweetStore { return s }

// stubCommentStore implements store.CommentStore.
type stubCommentStore struct {
	createFn      func(ctx context.Context, comment domain.Comment) (int64, error)
	getByIDFn     func(ctx context.Context, id int64) (*domain.Comment, error)
	listByTweetFn func(ctx context.Context, tweetID int64) ([]*domain.Comment, error)
	updateFn      func(ctx context.Context, comment domain.Comment) error
}

var _ store.CommentStore = (*stubCommentStore)(nil)

func (s *stubCommentStore) Create(ctx context.Context, comment domain.Comment) (int64, error) {
	if s.createFn == nil {
		return 0, errors.New("unexpected Create call")
	}
	return s.createFn(ctx, comment)
}

func (s *stubCommentStore) GetByID(ctx context.Context, id int64) (*domain.Comment, error) {
	if s.getByIDFn == nil {
		return nil, errors.New("unexpected GetByID call")
	}
	return s.getByIDFn(ctx, id)
}

func (s *stubCommentStore) ListByTweet(ctx context.Context, tweetID int64) ([]*domain.Comment, error) {
	if s.listByTweetFn == nil {
		return nil, errors.New("unexpected ListByTweet call")
	}
	return s.listByTweetFn(ctx, tweetID)
}

func (s *stubCommentStore) Update(ctx context.Context, comment domain.Comment) error {
	if s.updateFn == nil {
		return errors.New("unexpected Update call")
	}
	return s.updateFn(ctx, comment)
}

func (s *stubCommentStore) WithTx(tx *sql.Tx) store.CommentStore { return s }

// stubLikeStore implements store.LikeStore.
type stubLikeStore struct {
	createFn func(ctx context.Context, like domain.Like) (int64, error)
	getFn    func(ctx context.Context, tweetID, userID int64) (*domain.Like, error)
	listFn   func(ctx context.Context, tweetID int64) ([]*domain.Like, error)
	deleteFn func(ctx context.Context, tweetID, userID int64) error

	createCalls int
}

var _ store.LikeStore = (*stubLikeStore)(nil)

func (s *stubLikeStore) Create(ctx context.Context, like domain.Like) (int64, error) {
	s.createCalls++
	if s.createFn == nil {
		return 0, errors.New("unexpected Create call")
	}
	return s.createFn(ctx, like)
}

func (s *stubLikeStore) GetByTweetAndUser(ctx context.Context, tweetID, userID int64) (*domain.Like, error) {
	if s.getFn == nil {
		return nil, errors.New("unexpected GetByTweetAndUser call")
	}
	return s.getFn(ctx, tweetID, userID)
}

func (s *stubLikeStore) ListByTweet(ctx context.Context, tweetID int64) ([]*domain.Like, error) {
	if s.listFn == nil {
		return nil, errors.New("unexpected ListByTweet call")
	}
	return s.listFn(ctx, tweetID)
}

func (s *stubLikeStore) Delete(ctx context.Context, tweetID, userID int64) error {
	if s.deleteFn == nil {
		return errors.New("unexpected Delete call")
	}
	return s.deleteFn(ctx, tweetID, userID)
}

func (s *stubLikeStore) WithTx(tx *sql.Tx) store.LikeStore { return s }
