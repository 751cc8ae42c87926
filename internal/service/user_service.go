package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/dom/user-auth-service/internal/domain"
	"github.com/dom/user-auth-service/internal/password"
	"github.com/dom/user-auth-service/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserService struct {
	userRepo     repository.UserRepository
	hasher       *password.Hasher
	adminEnabled bool
	log          *slog.Logger
}

func NewUserService(userRepo repository.UserRepository, hasher *password.Hasher, adminEnabled bool, log *slog.Logger) *UserService {
	return &UserService{
		userRepo:     userRepo,
		hasher:       hasher,
		adminEnabled: adminEnabled,
		log:          log,
	}
}

type UpdateUserInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

func (s *UserService) GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// UpdateUser replaces the user's profile fields. A supplied password is
// rehashed before it is stored; the plaintext never reaches the repository.
func (s *UserService) UpdateUser(ctx context.Context, id uuid.UUID, input UpdateUserInput) (*domain.User, error) {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Email = strings.TrimSpace(input.Email)
	user.FirstName = strings.TrimSpace(input.FirstName)
	user.LastName = strings.TrimSpace(input.LastName)

	if input.Password != "" {
		hashed, err := s.hasher.Hash(input.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hashed
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrAccountAlreadyExists
		}
		return nil, err
	}

	s.log.InfoContext(ctx, "user updated", slog.String("user_id", user.ID.String()))

	return user, nil
}

// ListUsers is admin-only and the admin flag is disabled in this deployment,
// so in practice every call is denied before touching the store.
func (s *UserService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	if !s.adminEnabled {
		return nil, domain.ErrAdminOnly
	}
	return s.userRepo.GetAll(ctx)
}

// DeleteUser is gated the same way as ListUsers.
func (s *UserService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if !s.adminEnabled {
		return domain.ErrAdminOnly
	}
	if _, err := s.GetUser(ctx, id); err != nil {
		return err
	}
	return s.userRepo.Delete(ctx, id)
}
