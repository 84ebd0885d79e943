package rules

import (
	"strings"
	"testing"
	"time"

	"github.com/potetoapp/poteto-api/internal/domain"
)

func TestTweetRulesValidateContent(t *testing.T) {
	t.Parallel()

	rules := NewDefaultTweetRules()

	if err := rules.ValidateContent("a"); err != nil {
		t.Errorf("Expected one character to be accepted, got %v", err)
	}
	if err := rules.ValidateContent(strings.Repeat("a", 280)); err != nil {
		t.Errorf("Expected 280 characters to be accepted, got %v", err)
	}
	if err := rules.ValidateContent(""); err != domain.ErrEmptyTweetContent {
		t.Errorf("Expected error %v, got %v", domain.ErrEmptyTweetContent, err)
	}
	if err := rules.ValidateContent(strings.Repeat("a", 281)); err != domain.ErrTweetContentTooLong {
		t.Errorf("Expected error %v, got %v", domain.ErrTweetContentTooLong, err)
	}
}

func TestTweetRulesIsSpam(t *testing.T) {
	t.Parallel()

	rules := NewDefaultTweetRules()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	clean, err := domain.NewTweet(1, "a perfectly fine tweet", now)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rules.IsSpam(clean) {
		t.Error("Expected clean tweet not to be spam")
	}

	spammy, err := domain.NewTweet(1, "Buy now, great SPAM offer", now)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !rules.IsSpam(spammy) {
		t.Error("Expected banned term to be matched case-insensitively")
	}

	permissive := NewTweetRules(&TweetParams{EditWindow: 15 * time.Minute})
	if permissive.IsSpam(spammy) {
		t.Error("Expected empty banned list to flag nothing")
	}
}

func TestTweetRulesUpdateContentWithinWindow(t *testing.T) {
	t.Parallel()

	rules := NewDefaultTweetRules()
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	tweet, err := domain.NewTweet(1, "original", created)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Immediately after creation
	updated, err := rules.UpdateContent(tweet, "edited", created)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if updated.Content != "edited" {
		t.Errorf("Expected content edited, got %s", updated.Content)
	}

	// Exactly at the window boundary
	if _, err := rules.UpdateContent(tweet, "edited", created.Add(15*time.Minute)); err != nil {
		t.Errorf("Expected edit at the boundary to succeed, got %v", err)
	}
}

func TestTweetRulesUpdateContentAfterWindow(t *testing.T) {
	t.Parallel()

	rules := NewDefaultTweetRules()
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	tweet, err := domain.NewTweet(1, "original", created)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	_, err = rules.UpdateContent(tweet, "too late", created.Add(16*time.Minute))
	if err != ErrEditWindowExpired {
		t.Errorf("Expected error %v, got %v", ErrEditWindowExpired, err)
	}

	// Invalid replacement content is rejected before the window check.
	if _, err := rules.UpdateContent(tweet, "", created); err != domain.ErrEmptyTweetContent {
		t.Errorf("Expected error %v, got %v", domain.ErrEmptyTweetContent, err)
	}
}
