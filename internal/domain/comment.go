package domain

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

// MaxCommentContentLength is the maximum comment length in characters.
const MaxCommentContentLength = 500

// Comment validation errors
var (
	ErrEmptyCommentContent   = errors.New("comment content cannot be empty")
	ErrCommentContentTooLong = errors.New("comment content cannot exceed 500 characters")
)

// Comment represents a reply to a tweet.
type Comment struct {
	ID        int64
	TweetID   int64
	AuthorID  int64
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewComment creates a new Comment snapshot.
func NewComment(tweetID, authorID int64, content string, now time.Time) (Comment, error) {
	comment := Comment{
		TweetID:   tweetID,
		AuthorID:  authorID,
		Content:   content,
		CreatedAt: now.UTC(),
		UpdatedAt: now.UTC(),
	}
	if err := comment.Validate(); err != nil {
		return Comment{}, err
	}
	return comment, nil
}

// Validate checks the Comment's field invariants.
func (c Comment) Validate() error {
	if c.TweetID <= 0 {
		return ErrInvalidTweetID
	}
	if c.AuthorID <= 0 {
		return ErrInvalidAuthorID
	}
	return validateCommentContent(c.Content)
}

// WithContent returns a snapshot carrying the new content and a fresh
// UpdatedAt.
func (c Comment) WithContent(content string, now time.Time) (Comment, error) {
	if err := validateCommentContent(content); err != nil {
		return Comment{}, err
	}
	c.Content = content
	c.UpdatedAt = now.UTC()
	return c, nil
}

func validateCommentContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return ErrEmptyCommentContent
	}
	if utf8.RuneCountInString(content) > MaxCommentContentLength {
		return ErrCommentContentTooLong
	}
	return nil
}
