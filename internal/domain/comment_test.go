package domain

import (
	"strings"
	"testing"
	"time"
)

func TestNewComment(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	comment, err := NewComment(3, 7, "nice tweet", now)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if comment.TweetID != 3 || comment.AuthorID != 7 {
		t.Errorf("Expected tweet 3 / author 7, got %d / %d", comment.TweetID, comment.AuthorID)
	}

	if _, err := NewComment(0, 7, "hi", now); err != ErrInvalidTweetID {
		t.Errorf("Expected error %v, got %v", ErrInvalidTweetID, err)
	}
	if _, err := NewComment(3, 0, "hi", now); err != ErrInvalidAuthorID {
		t.Errorf("Expected error %v, got %v", ErrInvalidAuthorID, err)
	}
	if _, err := NewComment(3, 7, "", now); err != ErrEmptyCommentContent {
		t.Errorf("Expected error %v, got %v", ErrEmptyCommentContent, err)
	}
	if _, err := NewComment(3, 7, strings.Repeat("a", 501), now); err != ErrCommentContentTooLong {
		t.Errorf("Expected error %v, got %v", ErrCommentContentTooLong, err)
	}
	if _, err := NewComment(3, 7, strings.Repeat("a", 500), now); err != nil {
		t.Errorf("Expected 500-character comment to be accepted, got %v", err)
	}
}

func TestCommentWithContent(t *testing.T) {
	t.Parallel()

	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	later := created.Add(time.Minute)

	comment, err := NewComment(3, 7, "original", created)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	updated, err := comment.WithContent("edited", later)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if updated.Content != "edited" {
		t.Errorf("Expected content edited, got %s", updated.Content)
	}
	if !updated.UpdatedAt.Equal(later) {
		t.Errorf("Expected UpdatedAt %v, got %v", later, updated.UpdatedAt)
	}
	if comment.Content != "original" {
		t.Error("Expected original snapshot to be unchanged")
	}
}
