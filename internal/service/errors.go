package service

import "errors"

// Common service errors - sentinel errors used across service implementations.
// Callers check for these with errors.Is().
var (
	// ErrNotOwned indicates a resource is owned by a different user than the
	// one making the request. Returned when a user attempts to modify a tweet
	// or comment they did not author.
	ErrNotOwned = errors.New("resource is owned by another user")
)
