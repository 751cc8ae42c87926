package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/dom/user-auth-service/internal/domain"
	"github.com/dom/user-auth-service/internal/password"
	"github.com/dom/user-auth-service/internal/repository"
	"github.com/dom/user-auth-service/internal/token"
	"gorm.io/gorm"
)

type AuthService struct {
	userRepo repository.UserRepository
	hasher   *password.Hasher
	tokens   *token.Manager
	log      *slog.Logger
}

func NewAuthService(userRepo repository.UserRepository, hasher *password.Hasher, tokens *token.Manager, log *slog.Logger) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		log:      log,
	}
}

type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

type LoginInput struct {
	Email    string
	Password string
}

// Register creates a new user and returns a signed token bound to it.
// The email lookup is a best-effort pre-check; the database unique index is
// the authoritative guard, so a duplicate-key failure on insert is translated
// to the same domain error.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (string, error) {
	email := strings.TrimSpace(input.Email)

	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}
	if existing != nil {
		return "", domain.ErrAccountAlreadyExists
	}

	hashed, err := s.hasher.Hash(input.Password)
	if err != nil {
		return "", err
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: hashed,
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", domain.ErrAccountAlreadyExists
		}
		return "", err
	}

	s.log.InfoContext(ctx, "user registered", slog.String("user_id", user.ID.String()))

	return s.tokens.Issue(user.ID, user.Email)
}

// Login verifies credentials and returns a fresh token. Unknown email and
// wrong password produce the identical error so callers cannot enumerate
// accounts.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (string, error) {
	user, err := s.userRepo.GetByEmail(ctx, strings.TrimSpace(input.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if !s.hasher.Verify(input.Password, user.PasswordHash) {
		return "", domain.ErrInvalidCredentials
	}

	return s.tokens.Issue(user.ID, user.Email)
}
