package validation_test

import (
	"strings"
	"testing"

	"github.com/dom/user-auth-service/internal/validation"
	"github.com/stretchr/testify/assert"
)

func TestRegisterRules(t *testing.T) {
	tests := []struct {
		name      string
		email     string
		password  string
		firstName string
		lastName  string
		wantErrs  map[string]string
	}{
		{
			name:      "valid input",
			email:     "alice@example.com",
			password:  "secretpw",
			firstName: "Alice",
			lastName:  "A",
			wantErrs:  nil,
		},
		{
			name:      "all fields missing",
			email:     "",
			password:  "",
			firstName: "",
			lastName:  "",
			wantErrs: map[string]string{
				"email":     "The email field is required.",
				"password":  "The password field is required.",
				"firstName": "The firstName field is required.",
				"lastName":  "The lastName field is required.",
			},
		},
		{
			name:      "invalid email",
			email:     "not-an-email",
			password:  "secretpw",
			firstName: "Alice",
			lastName:  "A",
			wantErrs: map[string]string{
				"email": "The email must be a valid email address.",
			},
		},
		{
			name:      "password too short",
			email:     "alice@example.com",
			password:  "short",
			firstName: "Alice",
			lastName:  "A",
			wantErrs: map[string]string{
				"password": "The password must be between 8 and 255 characters.",
			},
		},
		{
			name:      "padded fields are trimmed before checks",
			email:     "  alice@example.com  ",
			password:  "secretpw",
			firstName: "  Alice  ",
			lastName:  " A ",
			wantErrs:  nil,
		},
		{
			name:      "padding does not count toward length limits",
			email:     "  " + strings.Repeat("a", 243) + "@example.com  ",
			password:  "secretpw",
			firstName: "Alice",
			lastName:  "A",
			wantErrs:  nil,
		},
		{
			name:      "whitespace-only name is still required",
			email:     "alice@example.com",
			password:  "secretpw",
			firstName: "   ",
			lastName:  "A",
			wantErrs: map[string]string{
				"firstName": "The firstName field is required.",
			},
		},
		{
			name:      "first name too long",
			email:     "alice@example.com",
			password:  "secretpw",
			firstName: strings.Repeat("a", 101),
			lastName:  "A",
			wantErrs: map[string]string{
				"firstName": "The firstName must not be greater than 100 characters.",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := validation.Apply(validation.RegisterRules(tt.email, tt.password, tt.firstName, tt.lastName))

			if tt.wantErrs == nil {
				assert.Nil(t, errs)
				return
			}

			assert.Equal(t, validation.Errors(tt.wantErrs), errs)
		})
	}
}

func TestLoginRules(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		wantErrs map[string]string
	}{
		{
			name:     "valid input",
			email:    "alice@example.com",
			password: "anything",
			wantErrs: nil,
		},
		{
			name:     "missing password",
			email:    "alice@example.com",
			password: "",
			wantErrs: map[string]string{
				"password": "The password field is required.",
			},
		},
		{
			name:     "missing email reports required not format",
			email:    "",
			password: "secretpw",
			wantErrs: map[string]string{
				"email": "The email field is required.",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := validation.Apply(validation.LoginRules(tt.email, tt.password))

			if tt.wantErrs == nil {
				assert.Nil(t, errs)
				return
			}

			assert.Equal(t, validation.Errors(tt.wantErrs), errs)
		})
	}
}

func TestApply_FirstFailurePerFieldWins(t *testing.T) {
	// Empty value fails both Required and Email; only Required is reported
	errs := validation.Apply([]validation.Rule{
		{Attribute: "email", Value: "", Checks: []validation.Check{
			validation.Required(), validation.Email(),
		}},
	})

	assert.Equal(t, validation.Errors{"email": "The email field is required."}, errs)
}
