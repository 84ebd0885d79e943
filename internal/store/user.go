package store

import (
	"context"
	"database/sql"

	"github.com/potetoapp/poteto-api/internal/domain"
)

// UserStore defines the interface for user persistence.
type UserStore interface {
	// Create inserts a new user and returns the store-assigned id.
	// Returns ErrEmailExists or ErrUsernameExists on a uniqueness
	// violation.
	Create(ctx context.Context, user domain.User) (int64, error)

	// GetByID retrieves a user by id.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id int64) (*domain.User, error)

	// GetByEmail retrieves a user by email address. The lookup is
	// case-insensitive.
	// Returns ErrUserNotFound if no user has that address.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// Update persists a user snapshot's username, password hash and
	// updated_at. Returns ErrUserNotFound if the user does not exist.
	Update(ctx context.Context, user domain.User) error

	// WithTx returns a UserStore bound to the given transaction, so
	// several operations can share one unit of work.
	WithTx(tx *sql.Tx) UserStore
}
