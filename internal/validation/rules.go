package validation

import "net/mail"

// Errors maps an offending field to its message. At most one message is
// recorded per field: the first rule that fails wins.
type Errors map[string]string

// Rule validates a single named field. A failing rule returns its message.
type Rule struct {
	Attribute string
	Value     string
	Checks    []Check
}

type Check func(attribute, value string) (string, bool)

// Apply runs every rule in order, collecting the first failure per field.
func Apply(rules []Rule) Errors {
	errs := Errors{}
	for _, rule := range rules {
		if _, seen := errs[rule.Attribute]; seen {
			continue
		}
		for _, check := range rule.Checks {
			if msg, ok := check(rule.Attribute, rule.Value); !ok {
				errs[rule.Attribute] = msg
				break
			}
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func Required() Check {
	return func(attribute, value string) (string, bool) {
		if value == "" {
			return requiredMessage(attribute), false
		}
		return "", true
	}
}

func Email() Check {
	return func(attribute, value string) (string, bool) {
		if _, err := mail.ParseAddress(value); err != nil {
			return emailMessage(attribute), false
		}
		return "", true
	}
}

func Max(max int) Check {
	return func(attribute, value string) (string, bool) {
		if len(value) > max {
			return maxMessage(attribute, max), false
		}
		return "", true
	}
}

func Between(min, max int) Check {
	return func(attribute, value string) (string, bool) {
		if len(value) < min || len(value) > max {
			return betweenMessage(attribute, min, max), false
		}
		return "", true
	}
}
