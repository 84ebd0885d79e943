package domain

import (
	"errors"
	"time"
)

// Follow validation errors
var (
	ErrInvalidFollowerID = errors.New("follower id must be positive")
	ErrInvalidFolloweeID = errors.New("followee id must be positive")
	ErrSelfFollow        = errors.New("users cannot follow themselves")
)

// Follow is a directed relationship: FollowerID follows FolloweeID.
type Follow struct {
	ID         int64
	FollowerID int64
	FolloweeID int64
	CreatedAt  time.Time
}

// NewFollow creates a new Follow snapshot. Self-follows are rejected.
func NewFollow(followerID, followeeID int64, now time.Time) (Follow, error) {
	if followerID <= 0 {
		return Follow{}, ErrInvalidFollowerID
	}
	if followeeID <= 0 {
		return Follow{}, ErrInvalidFolloweeID
	}
	if followerID == followeeID {
		return Follow{}, ErrSelfFollow
	}
	return Follow{
		FollowerID: followerID,
		FolloweeID: followeeID,
		CreatedAt:  now.UTC(),
	}, nil
}
