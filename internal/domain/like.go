package domain

import (
	"errors"
	"time"
)

// Relationship id validation errors, shared by Like, Follow and Block.
var (
	ErrInvalidTweetID = errors.New("tweet id must be positive")
	ErrInvalidUserID  = errors.New("user id must be positive")
)

// Like marks that a user liked a tweet. Uniqueness of the
// (TweetID, UserID) pair is enforced by the store, not here.
type Like struct {
	ID        int64
	TweetID   int64
	UserID    int64
	CreatedAt time.Time
}

// NewLike creates a new Like snapshot.
func NewLike(tweetID, userID int64, now time.Time) (Like, error) {
	if tweetID <= 0 {
		return Like{}, ErrInvalidTweetID
	}
	if userID <= 0 {
		return Like{}, ErrInvalidUserID
	}
	return Like{
		TweetID:   tweetID,
		UserID:    userID,
		CreatedAt: now.UTC(),
	}, nil
}
