// Package services contains the application services sitting between the
// presentation layer and the repositories: credential management and the
// encrypted transaction ledger.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"securepay/internal/common"
	"securepay/internal/logging"
	"securepay/internal/models"
	"securepay/internal/repositories/users"
)

// timeNow is a test seam for the clock.
var timeNow = time.Now

// UserService provides credential operations:
//   - Register: create an account with a bcrypt-hashed password
//   - Verify: check credentials and return the matching user
type UserService struct {
	repo      users.Repository
	logger    logging.Logger
	cost      int
	dummyHash []byte
}

// NewUserService constructs a UserService. cost is the bcrypt work factor;
// values outside bcrypt's supported range fall back to the library default.
func NewUserService(repo users.Repository, logger logging.Logger, cost int) *UserService {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	// Hashed once at construction and compared against whenever a username
	// lookup misses, so unknown-user and wrong-password verifications take
	// comparable time.
	dummy, err := bcrypt.GenerateFromPassword([]byte("securepay-dummy"), cost)
	if err != nil {
		panic(err)
	}

	return &UserService{repo: repo, logger: logger, cost: cost, dummyHash: dummy}
}

// Register creates a new user with the given username, password, and optional
// email. A duplicate username yields common.ErrorAlreadyExists, which is an
// expected outcome, not a failure of the store.
func (s *UserService) Register(ctx context.Context, username, password, email string) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Username:     username,
		PasswordHash: hash,
		Email:        email,
		CreatedAt:    timeNow().UTC(),
	}

	u, err := s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		s.logger.Error(ctx, "user creation failed", "username", username, "error", err.Error())
		return nil, common.ErrorInternal
	}

	s.logger.Info(ctx, "user registered", "username", username)
	return u, nil
}

// Verify looks up the user by exact username and compares the password
// against the stored bcrypt hash. Unknown usernames and wrong passwords both
// collapse to common.ErrorUnauthorized so callers cannot enumerate accounts.
func (s *UserService) Verify(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password))
			return nil, common.ErrorUnauthorized
		}
		s.logger.Error(ctx, "user lookup failed", "username", username, "error", err.Error())
		return nil, common.ErrorInternal
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		s.logger.Warn(ctx, "failed login attempt", "username", username)
		return nil, common.ErrorUnauthorized
	}

	s.logger.Info(ctx, "user verified", "username", username)
	return user, nil
}
