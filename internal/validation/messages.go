package validation

import (
	"fmt"
	"strings"
)

const (
	requiredTemplate = "The :attribute field is required."
	emailTemplate    = "The :attribute must be a valid email address."
	maxTemplate      = "The :attribute must not be greater than :max characters."
	betweenTemplate  = "The :attribute must be between :min and :max characters."
)

func requiredMessage(attribute string) string {
	return strings.ReplaceAll(requiredTemplate, ":attribute", attribute)
}

func emailMessage(attribute string) string {
	return strings.ReplaceAll(emailTemplate, ":attribute", attribute)
}

func maxMessage(attribute string, max int) string {
	msg := strings.ReplaceAll(maxTemplate, ":attribute", attribute)
	return strings.ReplaceAll(msg, ":max", fmt.Sprint(max))
}

func betweenMessage(attribute string, min, max int) string {
	msg := strings.ReplaceAll(betweenTemplate, ":attribute", attribute)
	msg = strings.ReplaceAll(msg, ":min", fmt.Sprint(min))
	return strings.ReplaceAll(msg, ":max", fmt.Sprint(max))
}
