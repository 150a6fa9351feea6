package driving

import (
	"context"

	"github.com/qispark/chatpick/internal/core/domain"
)

// SidebarMode selects how the sidebar view orders and filters reports.
type SidebarMode string

// Available sidebar modes.
const (
	// SidebarModeDefault shows everything, most recent first, with pinned,
	// IOU and draft reports prioritised.
	SidebarModeDefault SidebarMode = "default"

	// SidebarModeCompact hides read reports and sorts alphabetically.
	SidebarModeCompact SidebarMode = "compact"
)

// IsValid returns true if the sidebar mode is recognised.
func (m SidebarMode) IsValid() bool {
	return m == SidebarModeDefault || m == SidebarModeCompact
}

// OptionsService derives selectable option lists from the current report and
// profile snapshots. Every call reads fresh snapshots and returns newly built
// values; nothing is cached or mutated.
type OptionsService interface {
	// Options runs the pipeline with explicit configuration.
	Options(ctx context.Context, session domain.Session, opts domain.ListOptions) (domain.OptionList, error)

	// SearchOptions backs the global search view: unlimited results, merged
	// and re-ranked while a query is active, previews shown, empty reports
	// included.
	SearchOptions(ctx context.Context, session domain.Session, searchValue string) (domain.OptionList, error)

	// NewChatOptions backs the new-chat picker: rooms excluded, at most five
	// recent reports, contacts included.
	NewChatOptions(ctx context.Context, session domain.Session, searchValue string) (domain.OptionList, error)

	// MemberInviteOptions backs the workspace invite picker: contacts only.
	MemberInviteOptions(ctx context.Context, session domain.Session, searchValue string,
		excludeLogins []string) (domain.OptionList, error)

	// SidebarOptions backs the chat sidebar in the given mode.
	SidebarOptions(ctx context.Context, session domain.Session, mode SidebarMode,
		activeReportID int64) (domain.OptionList, error)
}
