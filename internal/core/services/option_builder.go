package services

import (
	"strconv"
	"strings"

	"github.com/qispark/chatpick/internal/core/domain"
)

// Localization keys the builder depends on.
const (
	localeKeyArchivedPreview  = "report.archiveReasons.default"
	localeKeyUnknownWorkspace = "workspace.unknown"
)

// snapshot bundles the read-only store state one pipeline run works from.
// It is assembled once per call; the builder and pipeline never touch the
// stores directly after that.
type snapshot struct {
	session  domain.Session
	details  map[string]domain.PersonalDetail
	policies map[string]domain.Policy
	ious     map[int64]domain.IOUReport
	actions  map[int64][]domain.ReportAction
}

// buildOptions tweaks how the builder picks the alternate text line.
type buildOptions struct {
	// showChatPreviewLine prefers the last message over the room subtitle or
	// counterpart login.
	showChatPreviewLine bool

	// forcePolicyNamePreview shows the room subtitle even when a preview is
	// available.
	forcePolicyNamePreview bool
}

// buildOption projects a set of logins plus an optional report into a single
// renderable option. Missing profiles are synthesised as placeholders so a
// report never fails to produce an option.
func (s *OptionsService) buildOption(snap *snapshot, logins []string, report *domain.Report, o buildOptions) domain.Option {
	details := resolveDetails(snap.details, logins)

	isChatRoom := report != nil && report.IsChatRoom()
	isPolicyExpenseChat := report != nil && report.IsPolicyExpenseChat()
	isRoomLike := isChatRoom || isPolicyExpenseChat
	hasMultipleParticipants := len(details) > 1 || isRoomLike

	result := domain.Option{
		ParticipantsList:    details,
		IsChatRoom:          isChatRoom,
		IsPolicyExpenseChat: isPolicyExpenseChat,
	}

	var subtitle string
	if report != nil {
		subtitle = s.roomSubtitle(snap, report)

		result.IsDefaultRoom = report.IsDefaultRoom()
		result.IsArchivedRoom = report.IsArchivedRoom()
		result.ReportID = report.ReportID
		result.KeyForList = strconv.FormatInt(report.ReportID, 10)
		result.IsPinned = report.IsPinned
		result.IsUnread = report.IsUnread
		result.HasDraftComment = report.HasDraft
		result.HasOutstandingIOU = report.HasOutstandingIOU
		result.BrickRoadIndicator = hasReportErrors(report, snap.actions[report.ReportID])

		lastMessage := report.LastMessageText
		if lastMessage != "" && hasMultipleParticipants &&
			report.LastActorLogin != "" && !snap.session.IsCurrentUser(report.LastActorLogin) {
			if actor, ok := snap.details[report.LastActorLogin]; ok {
				lastMessage = actor.DisplayNameOrLogin() + ": " + lastMessage
			}
		}
		if result.IsArchivedRoom {
			lastMessage = s.localizer.Translate(snap.session.Locale, localeKeyArchivedPreview, nil)
		}

		if isRoomLike {
			if o.showChatPreviewLine && !o.forcePolicyNamePreview && lastMessage != "" {
				result.AlternateText = lastMessage
			} else {
				result.AlternateText = subtitle
			}
		} else {
			if o.showChatPreviewLine && lastMessage != "" {
				result.AlternateText = lastMessage
			} else if len(details) > 0 {
				result.AlternateText = domain.RemoveSMSDomain(details[0].Login)
			}
		}

		if report.HasOutstandingIOU {
			if iou, ok := snap.ious[report.IOUReportID]; ok {
				result.IsIOUReportOwner = snap.session.IsCurrentUser(iou.OwnerLogin)
				result.IOUReportAmount = iou.Total
			}
		}
	} else if len(details) > 0 {
		result.KeyForList = details[0].Login
		result.AlternateText = domain.RemoveSMSDomain(details[0].Login)
	}

	if !hasMultipleParticipants && len(details) > 0 {
		result.Login = details[0].Login
		result.PhoneNumber = details[0].PhoneNumber
		result.PaymentAddress = details[0].PaymentAddress
	}

	if report != nil && isRoomLike {
		result.Text = report.ReportName
	} else {
		names := make([]string, 0, len(details))
		for i := range details {
			names = append(names, details[i].DisplayNameOrLogin())
		}
		result.Text = strings.Join(names, ", ")
	}

	result.Subtitle = subtitle
	result.SearchText = buildSearchText(report, details, subtitle, isRoomLike)
	result.Icons = s.icons.Icons(report, details, snap.policies)

	return result
}

// resolveDetails maps logins to profiles, synthesising a placeholder (login
// as display name) for anyone the profile snapshot does not know yet.
func resolveDetails(known map[string]domain.PersonalDetail, logins []string) []domain.PersonalDetail {
	details := make([]domain.PersonalDetail, 0, len(logins))
	for _, login := range logins {
		if detail, ok := known[login]; ok {
			details = append(details, detail)
			continue
		}
		details = append(details, domain.PersonalDetail{
			Login:       login,
			DisplayName: domain.RemoveSMSDomain(login),
		})
	}
	return details
}

// roomSubtitle returns the workspace name a room-like report belongs to.
// Direct chats have no subtitle.
func (s *OptionsService) roomSubtitle(snap *snapshot, report *domain.Report) string {
	if !report.IsChatRoom() && !report.IsPolicyExpenseChat() {
		return ""
	}
	if policy, ok := snap.policies[report.PolicyID]; ok {
		return policy.Name
	}
	return s.localizer.Translate(snap.session.Locale, localeKeyUnknownWorkspace, nil)
}

// hasReportErrors reports whether the report or any of its actions carry
// error payloads. This drives the brick-road indicator and nothing else.
func hasReportErrors(report *domain.Report, actions []domain.ReportAction) bool {
	if len(report.Errors) > 0 {
		return true
	}
	for _, fieldErrors := range report.ErrorFields {
		if len(fieldErrors) > 0 {
			return true
		}
	}
	for i := range actions {
		if len(actions[i].Errors) > 0 {
			return true
		}
	}
	return false
}
