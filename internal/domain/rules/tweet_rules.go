// Package rules implements cross-entity business policies that do not
// belong to a single entity: tweet content policy with its edit window
// and the registration preconditions for new users.
package rules

import (
	"errors"
	"strings"
	"time"

	"github.com/potetoapp/poteto-api/internal/domain"
)

// Business-rule errors
var (
	// ErrEditWindowExpired is returned when a tweet is edited after
	// the post-creation edit window has elapsed.
	ErrEditWindowExpired = errors.New("edit window expired")
)

// TweetParams configures the tweet content policy.
type TweetParams struct {
	// EditWindow is the span after creation during which a tweet may
	// still be edited.
	EditWindow time.Duration

	// BannedTerms are matched case-insensitively as substrings by
	// IsSpam.
	BannedTerms []string
}

// NewDefaultTweetParams returns the standard policy: a 15-minute edit
// window and the stock banned-term list.
func NewDefaultTweetParams() *TweetParams {
	return &TweetParams{
		EditWindow:  15 * time.Minute,
		BannedTerms: []string{"spam"},
	}
}

// TweetRules applies the tweet content policy.
type TweetRules struct {
	params *TweetParams
}

// NewTweetRules creates a TweetRules with custom parameters.
func NewTweetRules(params *TweetParams) *TweetRules {
	return &TweetRules{params: params}
}

// NewDefaultTweetRules creates a TweetRules with default parameters.
func NewDefaultTweetRules() *TweetRules {
	return NewTweetRules(NewDefaultTweetParams())
}

// ValidateContent checks that content is acceptable for a tweet:
// non-empty and at most domain.MaxTweetContentLength characters.
func (r *TweetRules) ValidateContent(content string) error {
	return domain.ValidateTweetContent(content)
}

// IsSpam reports whether the tweet's content contains any banned term.
// It never returns an error; an empty banned list means nothing is
// spam.
func (r *TweetRules) IsSpam(tweet domain.Tweet) bool {
	content := strings.ToLower(tweet.Content)
	for _, term := range r.params.BannedTerms {
		if term == "" {
			continue
		}
		if strings.Contains(content, strings.ToLower(term)) {
			return true
		}
	}
	return false
}

// UpdateContent validates the new content, enforces the edit window
// measured from the tweet's CreatedAt, and returns the updated
// snapshot. Returns ErrEditWindowExpired once the window has elapsed.
func (r *TweetRules) UpdateContent(
	tweet domain.Tweet,
	newContent string,
	now time.Time,
) (domain.Tweet, error) {
	if err := domain.ValidateTweetContent(newContent); err != nil {
		return domain.Tweet{}, err
	}
	if now.UTC().Sub(tweet.CreatedAt) > r.params.EditWindow {
		return domain.Tweet{}, ErrEditWindowExpired
	}
	return tweet.WithContent(newContent, now)
}
