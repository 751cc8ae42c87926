package api

import (
	"log/slog"
	"net/http"

	"github.com/dom/user-auth-service/internal/api/handlers"
	"github.com/dom/user-auth-service/internal/api/middleware"
	"github.com/dom/user-auth-service/internal/repository"
	"github.com/dom/user-auth-service/internal/service"
	"github.com/dom/user-auth-service/internal/token"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(services *service.Services, repos *repository.Repositories, tokens *token.Manager, log *slog.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.CORS)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	authHandler := handlers.NewAuthHandler(services.Auth, log)
	userHandler := handlers.NewUserHandler(services.User, log)

	r.Route("/api/v1", func(r chi.Router) {
		// Public auth routes
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
		})

		// Protected user routes
		r.Route("/user", func(r chi.Router) {
			r.Use(middleware.Auth(tokens, repos.User, log))
			r.Get("/", userHandler.Index)
			r.Get("/{id}", userHandler.Show)
			r.Put("/{id}", userHandler.Update)
			r.Delete("/{id}", userHandler.Destroy)
		})
	})

	return r
}
