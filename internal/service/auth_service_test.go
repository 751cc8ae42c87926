package service_test

import (
	"context"
	"testing"

	"github.com/dom/user-auth-service/internal/domain"
	"github.com/dom/user-auth-service/internal/logger"
	"github.com/dom/user-auth-service/internal/password"
	"github.com/dom/user-auth-service/internal/repository/postgres"
	"github.com/dom/user-auth-service/internal/service"
	"github.com/dom/user-auth-service/internal/testutil"
	"github.com/dom/user-auth-service/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) (*service.AuthService, *testutil.TestDB, *token.Manager) {
	t.Helper()

	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	cfg := testutil.TestConfig()
	log := logger.New(cfg.Environment, cfg.LogLevel)
	tokens := token.NewManager(cfg.JWTSecret, cfg.TokenTTL)
	hasher := password.NewHasher(cfg.BcryptCost)

	return service.NewAuthService(repos.User, hasher, tokens, log), testDB, tokens
}

func TestAuthService_Register(t *testing.T) {
	authService, testDB, tokens := newAuthService(t)
	ctx := context.Background()

	tests := []struct {
		name      string
		input     service.RegisterInput
		setup     func()
		wantErr   error
		wantCount int64
	}{
		{
			name: "successful registration",
			input: service.RegisterInput{
				Email:     "alice@example.com",
				Password:  "secretpw",
				FirstName: "Alice",
				LastName:  "A",
			},
			wantCount: 1,
		},
		{
			name: "duplicate email",
			input: service.RegisterInput{
				Email:     "existing@example.com",
				Password:  "secretpw",
				FirstName: "Bob",
				LastName:  "B",
			},
			setup: func() {
				testutil.NewUserBuilder().
					WithEmail("existing@example.com").
					Build(t, testDB.DB)
			},
			wantErr:   domain.ErrAccountAlreadyExists,
			wantCount: 1,
		},
		{
			name: "email is trimmed before lookup and insert",
			input: service.RegisterInput{
				Email:     "  carol@example.com  ",
				Password:  "secretpw",
				FirstName: "Carol",
				LastName:  "C",
			},
			wantCount: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testDB.Truncate(t)

			if tt.setup != nil {
				tt.setup()
			}

			tokenString, err := authService.Register(ctx, tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, tokenString)
				assert.Equal(t, tt.wantCount, testDB.CountUsers(t))
				return
			}

			require.NoError(t, err)
			require.NotEmpty(t, tokenString)
			assert.Equal(t, tt.wantCount, testDB.CountUsers(t))

			claims, err := tokens.Verify(tokenString)
			require.NoError(t, err)

			var stored domain.User
			require.NoError(t, testDB.DB.First(&stored, "email = ?", claims.Email).Error)
			subjectID, err := claims.SubjectID()
			require.NoError(t, err)
			assert.Equal(t, stored.ID, subjectID)
			assert.NotEqual(t, tt.input.Password, stored.PasswordHash)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	authService, testDB, tokens := newAuthService(t)
	ctx := context.Background()

	user, rawPassword := testutil.NewUserBuilder().
		WithEmail("login@example.com").
		WithPassword("correctpassword").
		Build(t, testDB.DB)

	tests := []struct {
		name    string
		input   service.LoginInput
		wantErr error
	}{
		{
			name: "successful login",
			input: service.LoginInput{
				Email:    user.Email,
				Password: rawPassword,
			},
		},
		{
			name: "wrong password",
			input: service.LoginInput{
				Email:    user.Email,
				Password: "wrongpassword",
			},
			wantErr: domain.ErrInvalidCredentials,
		},
		{
			name: "unknown email",
			input: service.LoginInput{
				Email:    "nobody@example.com",
				Password: "anypassword",
			},
			wantErr: domain.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenString, err := authService.Login(ctx, tt.input)

			if tt.wantErr != nil {
				// Unknown email and wrong password are indistinguishable
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, tokenString)
				return
			}

			require.NoError(t, err)

			claims, err := tokens.Verify(tokenString)
			require.NoError(t, err)
			subjectID, err := claims.SubjectID()
			require.NoError(t, err)
			assert.Equal(t, user.ID, subjectID)
			assert.Equal(t, user.Email, claims.Email)
		})
	}
}

func TestAuthService_TokenSurvivesProfileUpdate(t *testing.T) {
	authService, testDB, tokens := newAuthService(t)
	ctx := context.Background()

	cfg := testutil.TestConfig()
	log := logger.New(cfg.Environment, cfg.LogLevel)
	repos := postgres.NewRepositories(testDB.DB)
	hasher := password.NewHasher(cfg.BcryptCost)
	userService := service.NewUserService(repos.User, hasher, cfg.AdminEndpointsEnabled, log)

	tokenString, err := authService.Register(ctx, service.RegisterInput{
		Email:     "before@example.com",
		Password:  "secretpw",
		FirstName: "Before",
		LastName:  "Update",
	})
	require.NoError(t, err)

	claims, err := tokens.Verify(tokenString)
	require.NoError(t, err)
	userID, err := claims.SubjectID()
	require.NoError(t, err)

	// Change email and password; the issued token is stateless and unaffected
	_, err = userService.UpdateUser(ctx, userID, service.UpdateUserInput{
		Email:     "after@example.com",
		Password:  "newsecretpw",
		FirstName: "After",
		LastName:  "Update",
	})
	require.NoError(t, err)

	claims, err = tokens.Verify(tokenString)
	require.NoError(t, err)
	subjectID, err := claims.SubjectID()
	require.NoError(t, err)
	assert.Equal(t, userID, subjectID)
	// Claims carry the email as of issuance, not the updated one
	assert.Equal(t, "before@example.com", claims.Email)
}
