package testutils

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/potetoapp/poteto-api/internal/domain"
)

// MustInsertUser inserts a user with generated unique credentials directly
// through the given transaction and returns it with its assigned id.
// The password hash is the digest of "Password1".
func MustInsertUser(t *testing.T, tx *sql.Tx, username string) *domain.User {
	t.Helper()

	suffix := uuid.New().String()[:8]
	email, err := domain.NewEmail(fmt.Sprintf("%s-%s@example.com", username, suffix))
	if err != nil {
		t.Fatalf("failed to build test email: %v", err)
	}
	password, err := domain.NewPassword("Password1")
	if err != nil {
		t.Fatalf("failed to build test password: %v", err)
	}

	now := time.Now().UTC()
	user, err := domain.NewUser(fmt.Sprintf("%s-%s", username, suffix), email.String(), password.Hash(), now)
	if err != nil {
		t.Fatalf("failed to build test user: %v", err)
	}

	err = tx.QueryRowContext(context.Background(),
		`INSERT INTO users (username, email, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		user.Username, user.Email, user.PasswordHash, user.CreatedAt, user.UpdatedAt,
	).Scan(&user.ID)
	if err != nil {
		t.Fatalf("failed to insert test user: %v", err)
	}

	return &user
}

// MustInsertTweet inserts a tweet for the given author directly through the
// transaction and returns it with its assigned id.
func MustInsertTweet(t *testing.T, tx *sql.Tx, authorID int64, content string) *domain.Tweet {
	t.Helper()

	now := time.Now().UTC()
	tweet, err := domain.NewTweet(authorID, content, now)
	if err != nil {
		t.Fatalf("failed to build test tweet: %v", err)
	}

	err = tx.QueryRowContext(context.Background(),
		`INSERT INTO tweets (author_id, content, created_at, updated_at)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		tweet.AuthorID, tweet.Content, tweet.CreatedAt, tweet.UpdatedAt,
	).Scan(&tweet.ID)
	if err != nil {
		t.Fatalf("failed to insert test tweet: %v", err)
	}

	return &tweet
}
