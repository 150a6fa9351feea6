package driven

import (
	"github.com/qispark/chatpick/internal/core/domain"
)

// IconResolver produces icon descriptors for an option. Avatar storage and
// image resolution are external; the core only carries descriptors through.
type IconResolver interface {
	// Icons returns the descriptors to render for a report (may be nil for
	// standalone contacts) and its resolved participants.
	Icons(report *domain.Report, details []domain.PersonalDetail,
		policies map[string]domain.Policy) []domain.Icon
}
