package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist.
	// Entity-specific variants below wrap it so callers can match
	// either the generic or the specific error with errors.Is.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a
	// duplicate of a unique entity.
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity is returned when an entity references a parent
	// that does not exist (foreign key violation) or fails validation
	// before being stored.
	ErrInvalidEntity = errors.New("invalid entity")

	// Entity-specific "not found" errors

	ErrUserNotFound    = fmt.Errorf("%w: user", ErrNotFound)
	ErrTweetNotFound   = fmt.Errorf("%w: tweet", ErrNotFound)
	ErrCommentNotFound = fmt.Errorf("%w: comment", ErrNotFound)
	ErrLikeNotFound    = fmt.Errorf("%w: like", ErrNotFound)
	ErrFollowNotFound  = fmt.Errorf("%w: follow", ErrNotFound)
	ErrBlockNotFound   = fmt.Errorf("%w: block", ErrNotFound)

	// Entity-specific "duplicate" errors

	// ErrEmailExists indicates a user with the given email already
	// exists.
	ErrEmailExists = fmt.Errorf("%w: email", ErrDuplicate)

	// ErrUsernameExists indicates a user with the given username
	// already exists.
	ErrUsernameExists = fmt.Errorf("%w: username", ErrDuplicate)

	// ErrLikeExists indicates the (tweet, user) pair already has a
	// like.
	ErrLikeExists = fmt.Errorf("%w: like", ErrDuplicate)

	// ErrFollowExists indicates the follower already follows the
	// followee.
	ErrFollowExists = fmt.Errorf("%w: follow", ErrDuplicate)

	// ErrBlockExists indicates the blocker already blocks the blocked
	// user.
	ErrBlockExists = fmt.Errorf("%w: block", ErrDuplicate)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}
