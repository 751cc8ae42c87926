package service

import (
	"log/slog"

	"github.com/dom/user-auth-service/internal/config"
	"github.com/dom/user-auth-service/internal/password"
	"github.com/dom/user-auth-service/internal/repository"
	"github.com/dom/user-auth-service/internal/token"
)

type Services struct {
	Auth *AuthService
	User *UserService
}

func NewServices(repos *repository.Repositories, cfg *config.Config, tokens *token.Manager, log *slog.Logger) *Services {
	hasher := password.NewHasher(cfg.BcryptCost)

	return &Services{
		Auth: NewAuthService(repos.User, hasher, tokens, log),
		User: NewUserService(repos.User, hasher, cfg.AdminEndpointsEnabled, log),
	}
}
