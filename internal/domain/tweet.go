package domain

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

// MaxTweetContentLength is the maximum tweet length in characters.
const MaxTweetContentLength = 280

// Tweet validation errors
var (
	ErrEmptyTweetContent   = errors.New("tweet content cannot be empty")
	ErrTweetContentTooLong = errors.New("tweet content cannot exceed 280 characters")
	ErrInvalidAuthorID     = errors.New("author id must be positive")
)

// Tweet represents a single post. Comments holds the owned replies in
// conversation order when the caller asked for them; it is nil
// otherwise.
type Tweet struct {
	ID        int64
	AuthorID  int64
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
	Comments  []Comment
}

// NewTweet creates a new Tweet snapshot.
// Returns an error if the author id is not positive or the content is
// empty or longer than MaxTweetContentLength characters.
func NewTweet(authorID int64, content string, now time.Time) (Tweet, error) {
	tweet := Tweet{
		AuthorID:  authorID,
		Content:   content,
		CreatedAt: now.UTC(),
		UpdatedAt: now.UTC(),
	}
	if err := tweet.Validate(); err != nil {
		return Tweet{}, err
	}
	return tweet, nil
}

// Validate checks the Tweet's field invariants.
func (t Tweet) Validate() error {
	if t.AuthorID <= 0 {
		return ErrInvalidAuthorID
	}
	return ValidateTweetContent(t.Content)
}

// WithContent returns a snapshot carrying the new content and a fresh
// UpdatedAt. Edit-window policy is enforced by rules.TweetRules, not
// here.
func (t Tweet) WithContent(content string, now time.Time) (Tweet, error) {
	if err := ValidateTweetContent(content); err != nil {
		return Tweet{}, err
	}
	t.Content = content
	t.UpdatedAt = now.UTC()
	return t, nil
}

// WithComments returns a snapshot with the owned comment list attached.
func (t Tweet) WithComments(comments []Comment) Tweet {
	t.Comments = comments
	return t
}

// ValidateTweetContent checks that content is non-empty and at most
// MaxTweetContentLength characters.
func ValidateTweetContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return ErrEmptyTweetContent
	}
	if utf8.RuneCountInString(content) > MaxTweetContentLength {
		return ErrTweetContentTooLong
	}
	return nil
}
