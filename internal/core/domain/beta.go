package domain

// Beta names a feature flag gating experimental capabilities.
type Beta string

// Available betas.
const (
	// BetaAll grants every gated capability.
	BetaAll Beta = "all"

	// BetaDefaultRooms exposes system-created workspace/domain rooms.
	BetaDefaultRooms Beta = "defaultRooms"

	// BetaPolicyRooms exposes user-created workspace rooms.
	BetaPolicyRooms Beta = "policyRooms"

	// BetaPolicyExpenseChat exposes workspace expense conversations.
	BetaPolicyExpenseChat Beta = "policyExpenseChat"

	// BetaConciergeInvite allows inviting the reserved concierge account.
	BetaConciergeInvite Beta = "conciergeInvite"
)

// HasBeta returns true when the given beta (or the all-access beta) is granted.
func HasBeta(betas []Beta, beta Beta) bool {
	for _, b := range betas {
		if b == beta || b == BetaAll {
			return true
		}
	}
	return false
}

// CanUseDefaultRooms returns true when default rooms are visible.
func CanUseDefaultRooms(betas []Beta) bool {
	return HasBeta(betas, BetaDefaultRooms)
}

// CanUsePolicyRooms returns true when user-created workspace rooms are visible.
func CanUsePolicyRooms(betas []Beta) bool {
	return HasBeta(betas, BetaPolicyRooms)
}

// CanUsePolicyExpenseChat returns true when expense chats are visible.
func CanUsePolicyExpenseChat(betas []Beta) bool {
	return HasBeta(betas, BetaPolicyExpenseChat)
}

// CanInviteConcierge returns true when the concierge account may be invited.
func CanInviteConcierge(betas []Beta) bool {
	return HasBeta(betas, BetaConciergeInvite)
}
