package domain

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"strings"
	"unicode"
)

// Password validation errors
var (
	ErrEmptyPassword    = errors.New("password cannot be empty")
	ErrPasswordTooShort = errors.New("password must be at least 8 characters long")
	ErrPasswordTooWeak  = errors.New(
		"password must contain an uppercase letter, a lowercase letter and a digit")
)

// Password holds only the hex-encoded SHA-256 digest of a validated
// plaintext password. The plaintext itself is never retained, and the
// same plaintext always yields the same digest.
type Password struct {
	digest string
}

// NewPassword validates the plaintext and returns a Password exposing
// only its digest. The plaintext must be at least 8 characters and
// contain at least one uppercase letter, one lowercase letter and one
// digit.
func NewPassword(plain string) (Password, error) {
	if strings.TrimSpace(plain) == "" {
		return Password{}, ErrEmptyPassword
	}
	if len(plain) < 8 {
		return Password{}, ErrPasswordTooShort
	}

	var hasUpper, hasLower, hasDigit bool
	for _, r := range plain {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit {
		return Password{}, ErrPasswordTooWeak
	}

	sum := sha256.Sum256([]byte(plain))
	return Password{digest: hex.EncodeToString(sum[:])}, nil
}

// Hash returns the hex-encoded SHA-256 digest.
func (p Password) Hash() string {
	return p.digest
}

// Matches reports whether the stored hash equals this password's
// digest, compared in constant time.
func (p Password) Matches(hash string) bool {
	return subtle.ConstantTimeCompare([]byte(p.digest), []byte(hash)) == 1
}

// Equals compares digests only.
func (p Password) Equals(other Password) bool {
	return p.Matches(other.digest)
}
