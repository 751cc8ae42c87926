package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/dom/user-auth-service/internal/domain"
	"github.com/dom/user-auth-service/internal/repository"
	"github.com/dom/user-auth-service/internal/token"
	"gorm.io/gorm"
)

type contextKey string

const userKey contextKey = "user"

// Auth is the request gate in front of every protected route. It extracts
// the bearer token, verifies it, resolves the subject against the user store
// and attaches the resolved record to the request context. Any failure along
// the way rejects the request with 401 and the downstream handler never runs.
func Auth(tokens *token.Manager, users repository.UserRepository, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				unauthorized(w)
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				unauthorized(w)
				return
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				log.DebugContext(r.Context(), "token verification failed", slog.String("error", err.Error()))
				unauthorized(w)
				return
			}

			userID, err := claims.SubjectID()
			if err != nil {
				unauthorized(w)
				return
			}

			// A valid token can outlive its user record
			user, err := users.GetByID(r.Context(), userID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					unauthorized(w)
					return
				}
				// A store fault is not an auth failure
				log.ErrorContext(r.Context(), "failed to load user", slog.String("error", err.Error()))
				internalError(w)
				return
			}

			ctx := context.WithValue(r.Context(), userKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUser returns the authenticated user attached by Auth.
func GetUser(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(userKey).(*domain.User)
	return user, ok
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"message":"Unauthorized"}`))
}

func internalError(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	w.Write([]byte(`{"message":"Internal Server Error"}`))
}
