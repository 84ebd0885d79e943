package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/potetoapp/poteto-api/internal/domain"
	"github.com/potetoapp/poteto-api/internal/domain/rules"
	"github.com/potetoapp/poteto-api/internal/service/auth"
	"github.com/potetoapp/poteto-api/internal/store"
)

// UserAccount is the sanitized projection of a user returned by the
// service layer. It never carries the password hash.
type UserAccount struct {
	ID        int64
	Username  string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TokenPair carries the access and refresh tokens issued on login.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// UserService provides user registration, authentication and profile
// operations.
type UserService interface {
	// Register creates a new user from raw credentials. The email and
	// password are validated as value objects and the registration rules
	// are applied before anything touches the database. The create and
	// the re-read of the stored row happen in one unit of work.
	Register(ctx context.Context, username, email, password string) (*UserAccount, error)

	// Authenticate verifies the credentials. A missing user and a wrong
	// password are the same non-error outcome: ok is false and the
	// account is nil. Errors are reserved for infrastructure failures.
	Authenticate(ctx context.Context, email, password string) (*UserAccount, bool, error)

	// Login authenticates and, on success, issues an access/refresh
	// token pair. Failed credentials return ok false with no tokens.
	Login(ctx context.Context, email, password string) (*UserAccount, *TokenPair, bool, error)

	// GetByID retrieves a user account by id.
	GetByID(ctx context.Context, userID int64) (*UserAccount, error)

	// UpdatePassword replaces the user's password after validating the
	// new one as a value object.
	UpdatePassword(ctx context.Context, userID int64, newPassword string) error

	// UpdateUsername replaces the user's username.
	UpdateUsername(ctx context.Context, userID int64, newUsername string) error
}

// UserServiceImpl implements the UserService interface
type UserServiceImpl struct {
	userStore  store.UserStore
	jwtService auth.JWTService
	userRules  *rules.UserRules
	db         *sql.DB
	logger     *slog.Logger
	now        func() time.Time
}

// NewUserService creates a new UserService. jwtService may be nil when the
// login flow is not needed; Login then fails with an error.
func NewUserService(
	userStore store.UserStore,
	jwtService auth.JWTService,
	userRules *rules.UserRules,
	db *sql.DB,
	logger *slog.Logger,
) *UserServiceImpl {
	if userRules == nil {
		userRules = rules.NewDefaultUserRules()
	}
	return &UserServiceImpl{
		userStore:  userStore,
		jwtService: jwtService,
		userRules:  userRules,
		db:         db,
		logger:     logger.With("component", "user_service"),
		now:        time.Now,
	}
}

var _ UserService = (*UserServiceImpl)(nil)

// Register creates a new user with the specified credentials.
// Uses a unit of work so the create and the follow-up read are atomic.
func (s *UserServiceImpl) Register(ctx context.Context, username, email, password string) (*UserAccount, error) {
	emailVO, err := domain.NewEmail(email)
	if err != nil {
		return nil, fmt.Errorf("invalid email: %w", err)
	}
	passwordVO, err := domain.NewPassword(password)
	if err != nil {
		return nil, fmt.Errorf("invalid password: %w", err)
	}
	if err := s.userRules.ValidateNewUser(username, emailVO, passwordVO); err != nil {
		return nil, fmt.Errorf("registration rejected: %w", err)
	}

	user, err := domain.NewUser(username, emailVO.String(), passwordVO.Hash(), s.now().UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	var created *domain.User
	err = store.RunInUnitOfWork(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.userStore.WithTx(tx)

		id, err := txStore.Create(ctx, user)
		if err != nil {
			return err
		}

		// Read the stored row back so the caller sees exactly what was
		// persisted, server-assigned fields included.
		created, err = txStore.GetByID(ctx, id)
		return err
	})
	if err != nil {
		if store.IsDuplicateError(err) {
			s.logger.Debug("attempted to register duplicate user", "username", username)
		} else {
			s.logger.Error("failed to register user", "error", err)
		}
		return nil, err
	}

	s.logger.Info("user registered", "user_id", created.ID, "username", created.Username)
	return sanitize(created), nil
}

// Authenticate verifies the given credentials against the stored digest.
func (s *UserServiceImpl) Authenticate(ctx context.Context, email, password string) (*UserAccount, bool, error) {
	passwordVO, err := domain.NewPassword(password)
	if err != nil {
		// A password that cannot even be constructed can never match.
		return nil, false, nil
	}

	user, err := s.userStore.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, false, nil
		}
		s.logger.Error("failed to look up user for authentication", "error", err)
		return nil, false, fmt.Errorf("failed to authenticate: %w", err)
	}

	if !passwordVO.Matches(user.PasswordHash) {
		return nil, false, nil
	}

	return sanitize(user), true, nil
}

// Login authenticates and issues a token pair on success.
func (s *UserServiceImpl) Login(ctx context.Context, email, password string) (*UserAccount, *TokenPair, bool, error) {
	if s.jwtService == nil {
		return nil, nil, false, fmt.Errorf("login is not configured")
	}

	account, ok, err := s.Authenticate(ctx, email, password)
	if err != nil || !ok {
		return nil, nil, false, err
	}

	accessToken, err := s.jwtService.GenerateToken(ctx, account.ID)
	if err != nil {
		s.logger.Error("failed to generate access token", "error", err, "user_id", account.ID)
		return nil, nil, false, fmt.Errorf("failed to generate access token: %w", err)
	}
	refreshToken, err := s.jwtService.GenerateRefreshToken(ctx, account.ID)
	if err != nil {
		s.logger.Error("failed to generate refresh token", "error", err, "user_id", account.ID)
		return nil, nil, false, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	s.logger.Info("user logged in", "user_id", account.ID)
	return account, &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, true, nil
}

// GetByID retrieves a user account by id.
func (s *UserServiceImpl) GetByID(ctx context.Context, userID int64) (*UserAccount, error) {
	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, store.ErrUserNotFound) {
			s.logger.Error("failed to retrieve user", "error", err, "user_id", userID)
		}
		return nil, err
	}
	return sanitize(user), nil
}

// UpdatePassword replaces the user's password with a freshly validated one.
func (s *UserServiceImpl) UpdatePassword(ctx context.Context, userID int64, newPassword string) error {
	passwordVO, err := domain.NewPassword(newPassword)
	if err != nil {
		return fmt.Errorf("invalid password: %w", err)
	}

	return store.RunInUnitOfWork(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.userStore.WithTx(tx)

		user, err := txStore.GetByID(ctx, userID)
		if err != nil {
			return err
		}

		updated, err := user.WithPasswordHash(passwordVO.Hash(), s.now().UTC())
		if err != nil {
			return err
		}
		return txStore.Update(ctx, updated)
	})
}

// UpdateUsername replaces the user's username.
func (s *UserServiceImpl) UpdateUsername(ctx context.Context, userID int64, newUsername string) error {
	return store.RunInUnitOfWork(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.userStore.WithTx(tx)

		user, err := txStore.GetByID(ctx, userID)
		if err != nil {
			return err
		}

		updated, err := user.WithUsername(newUsername, s.now().UTC())
		if err != nil {
			return err
		}
		return txStore.Update(ctx, updated)
	})
}

func sanitize(user *domain.User) *UserAccount {
	return &UserAccount{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
