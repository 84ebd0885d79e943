package domain

import (
	"errors"
	"strings"
	"time"
)

// User validation errors
var (
	ErrEmptyUsername     = errors.New("username cannot be empty")
	ErrEmptyPasswordHash = errors.New("password hash cannot be empty")
)

// User represents a registered account. The PasswordHash field carries
// only the digest produced by the Password value object; services must
// never expose it to callers.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser creates a new User snapshot with the given credentials.
// The ID is zero until the store assigns one.
// Returns an error if validation fails.
func NewUser(username, email, passwordHash string, now time.Time) (User, error) {
	user := User{
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    now.UTC(),
		UpdatedAt:    now.UTC(),
	}
	if err := user.Validate(); err != nil {
		return User{}, err
	}
	return user, nil
}

// Validate checks the User's field invariants.
func (u User) Validate() error {
	if strings.TrimSpace(u.Username) == "" {
		return ErrEmptyUsername
	}
	if _, err := NewEmail(u.Email); err != nil {
		return err
	}
	if u.PasswordHash == "" {
		return ErrEmptyPasswordHash
	}
	return nil
}

// WithPasswordHash returns a snapshot carrying the new hash and a
// fresh UpdatedAt.
func (u User) WithPasswordHash(hash string, now time.Time) (User, error) {
	if strings.TrimSpace(hash) == "" {
		return User{}, ErrEmptyPasswordHash
	}
	u.PasswordHash = hash
	u.UpdatedAt = now.UTC()
	return u, nil
}

// WithUsername returns a snapshot carrying the new username and a
// fresh UpdatedAt.
func (u User) WithUsername(username string, now time.Time) (User, error) {
	if strings.TrimSpace(username) == "" {
		return User{}, ErrEmptyUsername
	}
	u.Username = username
	u.UpdatedAt = now.UTC()
	return u, nil
}
