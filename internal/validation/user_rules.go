package validation

import (
	"strings"

	"github.com/dom/user-auth-service/internal/domain"
)

// RegisterRules mirrors the registration input contract: all four fields
// required, email well-formed and bounded, password within its length band.
// Email and names are validated post-trim, matching what the store persists;
// the password is taken verbatim.
func RegisterRules(email, password, firstName, lastName string) []Rule {
	return []Rule{
		{Attribute: "email", Value: strings.TrimSpace(email), Checks: []Check{
			Required(), Email(), Max(domain.EmailMaxLength),
		}},
		{Attribute: "password", Value: password, Checks: []Check{
			Required(), Between(domain.PasswordMinLength, domain.PasswordMaxLength),
		}},
		{Attribute: "firstName", Value: strings.TrimSpace(firstName), Checks: []Check{
			Required(), Max(domain.FirstNameMaxLength),
		}},
		{Attribute: "lastName", Value: strings.TrimSpace(lastName), Checks: []Check{
			Required(), Max(domain.LastNameMaxLength),
		}},
	}
}

func LoginRules(email, password string) []Rule {
	return []Rule{
		{Attribute: "email", Value: strings.TrimSpace(email), Checks: []Check{
			Required(), Email(),
		}},
		{Attribute: "password", Value: password, Checks: []Check{
			Required(),
		}},
	}
}

// UpdateRules matches RegisterRules; a profile update re-supplies the full
// field set.
func UpdateRules(email, password, firstName, lastName string) []Rule {
	return RegisterRules(email, password, firstName, lastName)
}
