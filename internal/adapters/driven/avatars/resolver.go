// Package avatars resolves icon descriptors for picker options. Rooms and
// workspace chats get glyphs; everything else gets participant avatars with a
// deterministic fallback image when a detail carries no avatar URL.
package avatars

import (
	"fmt"
	"hash/fnv"

	"github.com/qispark/chatpick/internal/core/domain"
	"github.com/qispark/chatpick/internal/core/ports/driven"
)

// defaultAvatarCount matches the number of built-in fallback avatar images.
const defaultAvatarCount = 8

var _ driven.IconResolver = (*Resolver)(nil)

// Resolver maps reports and personal details to icon descriptors.
type Resolver struct{}

// New creates an icon resolver.
func New() *Resolver {
	return &Resolver{}
}

// Icons returns the descriptors to render for a report and its resolved
// participants. Chat rooms render a single room glyph, policy expense chats a
// workspace glyph, and direct/group chats one avatar per participant.
func (r *Resolver) Icons(report *domain.Report, details []domain.PersonalDetail,
	policies map[string]domain.Policy) []domain.Icon {
	if report != nil {
		if report.IsChatRoom() {
			return []domain.Icon{{
				Type:   domain.IconTypeRoom,
				Source: "room",
				Name:   report.ReportName,
			}}
		}
		if report.IsPolicyExpenseChat() {
			name := report.ReportName
			if policy, ok := policies[report.PolicyID]; ok && policy.Name != "" {
				name = policy.Name
			}
			return []domain.Icon{{
				Type:   domain.IconTypeWorkspace,
				Source: "workspace",
				Name:   name,
			}}
		}
	}

	icons := make([]domain.Icon, 0, len(details))
	for _, detail := range details {
		icons = append(icons, domain.Icon{
			Type:   domain.IconTypeAvatar,
			Source: avatarSource(detail),
			Name:   detail.DisplayNameOrLogin(),
		})
	}
	return icons
}

// avatarSource picks the detail's own avatar URL, falling back to one of the
// built-in defaults keyed off the login so the same user always gets the same
// fallback image.
func avatarSource(detail domain.PersonalDetail) string {
	if detail.AvatarURL != "" {
		return detail.AvatarURL
	}
	h := fnv.New32a()
	h.Write([]byte(detail.Login))
	return fmt.Sprintf("default-avatar-%d", h.Sum32()%defaultAvatarCount+1)
}
