package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/userhub/auth-service/internal/core/domain"
	"github.com/userhub/auth-service/internal/core/ports"
)

const defaultBcryptCost = 12

// UserService implements the registration and login pipeline.
type UserService struct {
	repo     ports.UserRepository
	cost     int
	validate *validator.Validate
	log      zerolog.Logger
}

// NewUserService returns a UserService hashing passwords at the given bcrypt
// cost. Costs outside the library's supported range fall back to the default.
func NewUserService(repo ports.UserRepository, bcryptCost int, log zerolog.Logger) *UserService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = defaultBcryptCost
	}
	return &UserService{
		repo:     repo,
		cost:     bcryptCost,
		validate: validator.New(),
		log:      log,
	}
}

// Register runs the full pipeline: input validation, duplicate-email check,
// password hashing, insert. All checks complete before the insert, so no
// partial write survives a failure. The pre-insert count check is a fast
// path only; the store's unique email index is the real guarantee, and a
// constraint violation on insert also surfaces as domain.ErrEmailTaken.
func (s *UserService) Register(ctx context.Context, in ports.RegisterInput) (string, error) {
	if err := checkInput(s.validate, in); err != nil {
		return "", err
	}

	n, err := s.repo.CountByEmail(ctx, in.Email)
	if err != nil {
		return "", fmt.Errorf("check existing user: %w", err)
	}
	if n > 0 {
		return "", domain.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	id, err := s.repo.Insert(ctx, user)
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return "", domain.ErrEmailTaken
		}
		return "", fmt.Errorf("insert user: %w", err)
	}

	s.log.Info().Str("id", id).Msg("user registered")
	return id, nil
}

// Login verifies the submitted credentials against the stored hash and
// returns the account's display name. A lookup miss and a hash mismatch
// collapse into the same domain.ErrInvalidCredentials so the HTTP surface
// cannot leak which emails are registered.
func (s *UserService) Login(ctx context.Context, in ports.LoginInput) (string, error) {
	if err := checkInput(s.validate, in); err != nil {
		return "", err
	}

	user, err := s.repo.FindByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return "", domain.ErrInvalidCredentials
		}
		return "", fmt.Errorf("verify password: %w", err)
	}

	s.log.Debug().Str("id", user.ID).Msg("login verified")
	return user.Name, nil
}

// Count returns the total number of registered users.
func (s *UserService) Count(ctx context.Context) (int64, error) {
	n, err := s.repo.CountAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}
