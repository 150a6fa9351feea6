package domain

// ListOptions configures one run of the option pipeline. The zero value
// includes nothing; callers (or the view adapters) switch on what they need.
type ListOptions struct {
	// SearchValue filters options through the string matcher. Empty disables
	// search filtering.
	SearchValue string

	// ActiveReportID is the currently open report. It is never filtered out
	// for being empty or read.
	ActiveReportID int64

	// SelectedOptions are options the caller has already picked; their logins
	// are excluded from the results.
	SelectedOptions []Option

	// ExcludeLogins removes specific logins from the results.
	ExcludeLogins []string

	// IncludeRecentReports enables the report section of the result.
	IncludeRecentReports bool

	// MaxRecentReportsToShow caps the plain recent bucket. Prioritised
	// buckets (pinned, IOU, draft) do not count toward the cap. 0 = unlimited.
	MaxRecentReportsToShow int

	// IncludeMultipleParticipantReports keeps reports that have no single
	// counterpart login (group chats, rooms). Off, such reports are skipped.
	IncludeMultipleParticipantReports bool

	// IncludePersonalDetails enables the standalone contact section.
	IncludePersonalDetails bool

	// SortPersonalDetailsAlphabetically orders contact candidates by display
	// text before selection.
	SortPersonalDetailsAlphabetically bool

	// ExcludeChatRooms removes all room-style reports.
	ExcludeChatRooms bool

	// ShowReportsWithNoComments keeps reports that have no messages yet.
	ShowReportsWithNoComments bool

	// HideReadReports removes reports with no unread messages.
	HideReadReports bool

	// SortByLastMessageTimestamp orders reports by most recent message instead
	// of most recent visit.
	SortByLastMessageTimestamp bool

	// SortByAlphaAsc orders reports by name ascending, overriding the
	// timestamp ordering.
	SortByAlphaAsc bool

	// ShowChatPreviewLine uses the last message as the alternate text.
	ShowChatPreviewLine bool

	// ForcePolicyNamePreview shows the room subtitle even when a message
	// preview is available.
	ForcePolicyNamePreview bool

	// PrioritizePinnedReports moves pinned reports to the front.
	PrioritizePinnedReports bool

	// PrioritizeIOUDebts moves reports whose debt the current user owes to
	// the front, ordered by amount.
	PrioritizeIOUDebts bool

	// PrioritizeReportsWithDraftComments moves reports with unsent drafts to
	// the front.
	PrioritizeReportsWithDraftComments bool

	// PrioritizeDefaultRoomsInSearch moves room entries ahead of non-room
	// entries while a search is active.
	PrioritizeDefaultRoomsInSearch bool

	// SortByReportTypeInSearch merges contacts into the report list and
	// re-ranks everything by match quality while a search is active.
	SortByReportTypeInSearch bool
}
