package services

import (
	"context"
	"strings"

	"github.com/qispark/chatpick/internal/core/domain"
	"github.com/qispark/chatpick/internal/core/ports/driving"
)

// SearchOptions backs the global search view. Results are unlimited, empty
// reports stay visible, previews are shown and an active query merges and
// re-ranks everything by match quality.
func (s *OptionsService) SearchOptions(
	ctx context.Context, session domain.Session, searchValue string,
) (domain.OptionList, error) {
	return s.Options(ctx, session, domain.ListOptions{
		SearchValue:                       strings.TrimSpace(searchValue),
		IncludeRecentReports:              true,
		IncludeMultipleParticipantReports: true,
		IncludePersonalDetails:            true,
		ShowChatPreviewLine:               true,
		ShowReportsWithNoComments:         true,
		SortByLastMessageTimestamp:        true,
		SortByReportTypeInSearch:          true,
	})
}

// NewChatOptions backs the new-chat picker: no rooms, at most five recent
// reports, contacts included.
func (s *OptionsService) NewChatOptions(
	ctx context.Context, session domain.Session, searchValue string,
) (domain.OptionList, error) {
	return s.Options(ctx, session, domain.ListOptions{
		SearchValue:                strings.TrimSpace(searchValue),
		IncludeRecentReports:       true,
		MaxRecentReportsToShow:     5,
		IncludePersonalDetails:     true,
		ExcludeChatRooms:           true,
		SortByLastMessageTimestamp: true,
	})
}

// MemberInviteOptions backs the workspace invite picker: contacts only, in
// snapshot order.
func (s *OptionsService) MemberInviteOptions(
	ctx context.Context, session domain.Session, searchValue string, excludeLogins []string,
) (domain.OptionList, error) {
	return s.Options(ctx, session, domain.ListOptions{
		SearchValue:            strings.TrimSpace(searchValue),
		IncludePersonalDetails: true,
		ExcludeLogins:          excludeLogins,
	})
}

// SidebarOptions backs the chat sidebar. The default mode shows everything
// most-recent-first with pinned, IOU and draft reports prioritised; compact
// mode hides read reports and sorts by name.
func (s *OptionsService) SidebarOptions(
	ctx context.Context, session domain.Session, mode driving.SidebarMode, activeReportID int64,
) (domain.OptionList, error) {
	opts := domain.ListOptions{
		ActiveReportID:                    activeReportID,
		IncludeRecentReports:              true,
		IncludeMultipleParticipantReports: true,
		ShowChatPreviewLine:               true,
	}

	switch mode {
	case driving.SidebarModeCompact:
		opts.HideReadReports = true
		opts.SortByAlphaAsc = true
	case driving.SidebarModeDefault:
		opts.SortByLastMessageTimestamp = true
		opts.PrioritizePinnedReports = true
		opts.PrioritizeIOUDebts = true
		opts.PrioritizeReportsWithDraftComments = true
	default:
		return domain.OptionList{}, domain.ErrInvalidInput
	}

	return s.Options(ctx, session, opts)
}
