package domain

import (
	"errors"
	"time"
)

// Block validation errors
var (
	ErrInvalidBlockerID = errors.New("blocker id must be positive")
	ErrInvalidBlockedID = errors.New("blocked id must be positive")
	ErrSelfBlock        = errors.New("users cannot block themselves")
)

// Block is a directed relationship: BlockerID blocks BlockedID.
type Block struct {
	ID        int64
	BlockerID int64
	BlockedID int64
	CreatedAt time.Time
}

// NewBlock creates a new Block snapshot. Self-blocks are rejected.
func NewBlock(blockerID, blockedID int64, now time.Time) (Block, error) {
	if blockerID <= 0 {
		return Block{}, ErrInvalidBlockerID
	}
	if blockedID <= 0 {
		return Block{}, ErrInvalidBlockedID
	}
	if blockerID == blockedID {
		return Block{}, ErrSelfBlock
	}
	return Block{
		BlockerID: blockerID,
		BlockedID: blockedID,
		CreatedAt: now.UTC(),
	}, nil
}
