package domain

import "strings"

// Reserved login domains and addresses.
const (
	// SMSDomain is appended to phone-number logins so they fit the email shape.
	SMSDomain = "@chatpick.sms"

	// StaffDomain identifies internal staff accounts.
	StaffDomain = "@chatpick.com"

	// ConciergeLogin is the reserved assistant account. Inviting it is gated
	// behind the concierge beta.
	ConciergeLogin = "concierge@chatpick.com"
)

// PersonalDetail is a read-only snapshot of a user profile, keyed by login.
type PersonalDetail struct {
	// Login is the email or phone-derived identifier of the user.
	Login string

	// DisplayName is the preferred display name. May be empty.
	DisplayName string

	// FirstName is the given name. May be empty.
	FirstName string

	// LastName is the family name. May be empty.
	LastName string

	// AvatarURL points at the user's avatar image.
	AvatarURL string

	// PhoneNumber is an optional contact number.
	PhoneNumber string

	// PaymentAddress is an optional peer-to-peer payment identifier.
	PaymentAddress string
}

// DisplayNameOrLogin falls back to the SMS-stripped login when the profile
// has no display name.
func (p *PersonalDetail) DisplayNameOrLogin() string {
	if p.DisplayName != "" {
		return p.DisplayName
	}
	return RemoveSMSDomain(p.Login)
}

// RemoveSMSDomain strips the SMS login domain so phone logins render as
// plain numbers.
func RemoveSMSDomain(login string) string {
	return strings.TrimSuffix(login, SMSDomain)
}

// IsStaffLogin returns true for internal staff accounts.
func IsStaffLogin(login string) bool {
	return strings.HasSuffix(strings.ToLower(login), StaffDomain)
}
