package domain

import "strings"

// Session carries the per-user context a pipeline invocation needs.
// It replaces process-wide subscription state with an explicit, read-only
// value passed into every call.
type Session struct {
	// CurrentUserLogin is the login of the signed-in user.
	CurrentUserLogin string

	// Betas are the feature flags granted to the user.
	Betas []Beta

	// Locale is the preferred locale for translated strings (e.g. "en").
	Locale string

	// CountryCode is the international calling code derived from the user's
	// IP address, without the leading "+". Used to complete partial phone
	// numbers typed into search.
	CountryCode string
}

// IsCurrentUser reports whether login identifies the session user.
// Phone-number logins match with or without the SMS domain suffix.
func (s *Session) IsCurrentUser(login string) bool {
	if login == "" || s.CurrentUserLogin == "" {
		return false
	}
	candidate := strings.ToLower(login)
	current := strings.ToLower(s.CurrentUserLogin)
	if candidate == current {
		return true
	}
	return strings.TrimSuffix(candidate, SMSDomain) == strings.TrimSuffix(current, SMSDomain)
}
