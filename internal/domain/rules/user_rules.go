package rules

import (
	"errors"
	"strings"

	"github.com/potetoapp/poteto-api/internal/domain"
)

// Registration business-rule errors
var (
	// ErrEmailDomainNotAllowed is returned when the email's domain is
	// not on the configured allow-list.
	ErrEmailDomainNotAllowed = errors.New("email domain is not allowed")
)

// UserParams configures the registration policy.
type UserParams struct {
	// AllowedEmailDomains lists the domains accepted at registration.
	// An empty list allows every domain.
	AllowedEmailDomains []string
}

// NewDefaultUserParams returns the standard policy: no domain
// restriction.
func NewDefaultUserParams() *UserParams {
	return &UserParams{}
}

// UserRules applies the registration policy.
type UserRules struct {
	params *UserParams
}

// NewUserRules creates a UserRules with custom parameters.
func NewUserRules(params *UserParams) *UserRules {
	return &UserRules{params: params}
}

// NewDefaultUserRules creates a UserRules with default parameters.
func NewDefaultUserRules() *UserRules {
	return NewUserRules(NewDefaultUserParams())
}

// IsAllowedEmailDomain reports whether the email's domain is on the
// allow-list. An empty allow-list admits every domain.
func (r *UserRules) IsAllowedEmailDomain(email domain.Email) bool {
	if len(r.params.AllowedEmailDomains) == 0 {
		return true
	}
	for _, allowed := range r.params.AllowedEmailDomains {
		if strings.EqualFold(email.Domain(), allowed) {
			return true
		}
	}
	return false
}

// ValidateNewUser checks the aggregate registration preconditions,
// failing fast on the first violation.
func (r *UserRules) ValidateNewUser(
	username string,
	email domain.Email,
	password domain.Password,
) error {
	if strings.TrimSpace(username) == "" {
		return domain.ErrEmptyUsername
	}
	if !r.IsAllowedEmailDomain(email) {
		return ErrEmailDomainNotAllowed
	}
	if password.Hash() == "" {
		return domain.ErrEmptyPassword
	}
	return nil
}
