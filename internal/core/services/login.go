package services

import (
	"regexp"
	"strings"

	"github.com/nyaruka/phonenumbers"

	"github.com/qispark/chatpick/internal/core/domain"
)

// emailPattern accepts the practical shape logins take. Deliverability is not
// checked; this only guards invite synthesis against garbage queries.
var emailPattern = regexp.MustCompile(`^[A-Za-z0-9.!#$%&'*+/=?^_` + "`" + `{|}~-]+@[A-Za-z0-9](?:[A-Za-z0-9-]*[A-Za-z0-9])?(?:\.[A-Za-z0-9](?:[A-Za-z0-9-]*[A-Za-z0-9])?)+$`)

// isValidEmail reports whether value is a syntactically plausible email.
func isValidEmail(value string) bool {
	return emailPattern.MatchString(value)
}

// isDomainEmail reports whether value is a whole-domain group address.
// Domain addresses are never individual users, so they cannot be invited.
func isDomainEmail(value string) bool {
	return strings.HasPrefix(value, "+")
}

// isValidPhone reports whether value parses as a real phone number. Numbers
// without an international prefix are completed with countryCode first.
func isValidPhone(value, countryCode string) bool {
	candidate := appendCountryCode(value, countryCode)
	num, err := phonenumbers.Parse(candidate, "")
	if err != nil {
		return false
	}
	return phonenumbers.IsValidNumber(num)
}

// appendCountryCode prefixes value with "+<countryCode>" when it carries no
// international prefix of its own.
func appendCountryCode(value, countryCode string) string {
	if strings.Contains(value, "+") || countryCode == "" {
		return value
	}
	return "+" + countryCode + value
}

// addSMSDomainIfPhoneNumber converts a phone number into its login form by
// appending the SMS domain. Email-shaped values pass through untouched.
func addSMSDomainIfPhoneNumber(value, countryCode string) string {
	if strings.Contains(value, "@") || !isValidPhone(value, countryCode) {
		return value
	}
	return appendCountryCode(value, countryCode) + domain.SMSDomain
}
