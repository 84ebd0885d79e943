package domain

import (
	"errors"
	"regexp"
	"strings"
)

// Email validation errors
var (
	ErrEmptyEmail   = errors.New("email cannot be empty")
	ErrInvalidEmail = errors.New("invalid email format")
)

// Deliberately loose: one "@" separating non-empty parts and a dotted
// domain. Full RFC 5322 validation is not attempted.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Email is an immutable, validated email address.
// Equality is case-insensitive on the normalized value.
type Email struct {
	value string
}

// NewEmail validates the raw address and returns the value object.
// Returns ErrEmptyEmail or ErrInvalidEmail on failure.
func NewEmail(raw string) (Email, error) {
	if strings.TrimSpace(raw) == "" {
		return Email{}, ErrEmptyEmail
	}
	if !emailPattern.MatchString(raw) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: raw}, nil
}

// String returns the address as it was supplied.
func (e Email) String() string {
	return e.value
}

// Normalized returns the lowercased form used for equality checks and
// store lookups.
func (e Email) Normalized() string {
	return strings.ToLower(e.value)
}

// Domain returns the lowercased part after the last "@".
func (e Email) Domain() string {
	at := strings.LastIndex(e.value, "@")
	return strings.ToLower(e.value[at+1:])
}

// Equals compares two addresses case-insensitively.
func (e Email) Equals(other Email) bool {
	return strings.EqualFold(e.value, other.value)
}
