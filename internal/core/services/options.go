package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/qispark/chatpick/internal/core/domain"
	"github.com/qispark/chatpick/internal/core/ports/driven"
	"github.com/qispark/chatpick/internal/core/ports/driving"
	"github.com/qispark/chatpick/internal/logger"
)

// Ensure OptionsService implements the interface.
var _ driving.OptionsService = (*OptionsService)(nil)

// OptionsService derives picker option lists from snapshot stores.
type OptionsService struct {
	reports   driven.ReportStore
	actions   driven.ReportActionStore
	details   driven.PersonalDetailStore
	policies  driven.PolicyStore
	ious      driven.IOUReportStore
	localizer driven.Localizer
	icons     driven.IconResolver
}

// NewOptionsService creates a new options service.
func NewOptionsService(
	reports driven.ReportStore,
	actions driven.ReportActionStore,
	details driven.PersonalDetailStore,
	policies driven.PolicyStore,
	ious driven.IOUReportStore,
	localizer driven.Localizer,
	icons driven.IconResolver,
) *OptionsService {
	return &OptionsService{
		reports:   reports,
		actions:   actions,
		details:   details,
		policies:  policies,
		ious:      ious,
		localizer: localizer,
		icons:     icons,
	}
}

// Options runs the filter/sort pipeline with explicit configuration.
func (s *OptionsService) Options(
	ctx context.Context, session domain.Session, opts domain.ListOptions,
) (domain.OptionList, error) {
	if session.CurrentUserLogin == "" {
		return domain.OptionList{}, domain.ErrNoSession
	}

	logger.Section("Option Pipeline")
	logger.Debug("Search value: %q", opts.SearchValue)

	snap, reports, err := s.loadSnapshot(ctx, session)
	if err != nil {
		return domain.OptionList{}, err
	}
	logger.Debug("Snapshot: %d reports, %d profiles", len(reports), len(snap.details))

	ordered := orderReports(reports, opts)

	reportOptions, reportsByLogin := s.buildReportCandidates(snap, ordered, opts)
	logger.Debug("Report candidates: %d", len(reportOptions))

	detailCandidates := s.buildDetailCandidates(snap, reportsByLogin, opts)

	// Union of caller-selected options, the current user and explicit
	// exclusions. Grows as recents are accepted so contacts never duplicate
	// a report entry.
	excluded := make(map[string]bool)
	for i := range opts.SelectedOptions {
		if login := opts.SelectedOptions[i].Login; login != "" {
			excluded[strings.ToLower(login)] = true
		}
	}
	excluded[strings.ToLower(session.CurrentUserLogin)] = true
	for _, login := range opts.ExcludeLogins {
		excluded[strings.ToLower(login)] = true
	}

	recentReports := s.selectRecentReports(reportOptions, opts, excluded)
	logger.Debug("Recent reports selected: %d", len(recentReports))

	var personalDetails []domain.Option
	if opts.IncludePersonalDetails {
		for _, opt := range detailCandidates {
			if excluded[strings.ToLower(opt.Login)] {
				continue
			}
			if opts.SearchValue != "" && !IsSearchStringMatch(
				opts.SearchValue, opt.SearchText, participantNameSet(opt.ParticipantsList), false) {
				continue
			}
			personalDetails = append(personalDetails, opt)
		}
	}
	logger.Debug("Personal details selected: %d", len(personalDetails))

	userToInvite := s.buildInvite(snap, opts, recentReports, personalDetails, excluded)
	if userToInvite != nil {
		logger.Info("Invite synthesised for %q", userToInvite.Login)
	}

	if opts.SortByReportTypeInSearch && opts.SearchValue != "" {
		recentReports = append(recentReports, personalDetails...)
		personalDetails = nil
		sortByMatchRank(recentReports, opts.SearchValue)
	}

	return domain.OptionList{
		RecentReports:   recentReports,
		PersonalDetails: personalDetails,
		UserToInvite:    userToInvite,
	}, nil
}

// loadSnapshot reads all five stores once. Every later step works from the
// returned snapshot, never the stores.
func (s *OptionsService) loadSnapshot(
	ctx context.Context, session domain.Session,
) (*snapshot, []domain.Report, error) {
	reports, err := s.reports.All(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("loading reports: %w", err)
	}
	details, err := s.details.All(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("loading personal details: %w", err)
	}
	policies, err := s.policies.All(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("loading policies: %w", err)
	}
	ious, err := s.ious.All(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("loading IOU reports: %w", err)
	}
	actions, err := s.actions.All(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("loading report actions: %w", err)
	}

	return &snapshot{
		session:  session,
		details:  details,
		policies: policies,
		ious:     ious,
		actions:  actions,
	}, reports, nil
}

// orderReports sorts by the configured primary field, then stably moves
// archived rooms to the end regardless of that field.
func orderReports(reports []domain.Report, opts domain.ListOptions) []domain.Report {
	ordered := make([]domain.Report, len(reports))
	copy(ordered, reports)

	sort.SliceStable(ordered, func(i, j int) bool {
		switch {
		case opts.SortByAlphaAsc:
			return strings.ToLower(ordered[i].ReportName) < strings.ToLower(ordered[j].ReportName)
		case opts.SortByLastMessageTimestamp:
			return ordered[i].LastMessageTimestamp > ordered[j].LastMessageTimestamp
		default:
			return ordered[i].LastVisitedTimestamp > ordered[j].LastVisitedTimestamp
		}
	})

	sort.SliceStable(ordered, func(i, j int) bool {
		return !ordered[i].IsArchivedRoom() && ordered[j].IsArchivedRoom()
	})

	return ordered
}

// buildReportCandidates applies the per-report exclusion rules in order and
// converts survivors into options. Single-counterpart direct reports are also
// indexed by that counterpart's login so contact candidates can reference them.
func (s *OptionsService) buildReportCandidates(
	snap *snapshot, ordered []domain.Report, opts domain.ListOptions,
) ([]domain.Option, map[string]*domain.Report) {
	buildOpts := buildOptions{
		showChatPreviewLine:    opts.ShowChatPreviewLine,
		forcePolicyNamePreview: opts.ForcePolicyNamePreview,
	}

	var options []domain.Option
	reportsByLogin := make(map[string]*domain.Report)

	for i := range ordered {
		report := &ordered[i]

		roomKind := report.IsChatRoom() || report.IsPolicyExpenseChat()
		if report.ReportID == 0 || (len(report.Participants) == 0 && !roomKind) {
			continue
		}

		containsOwedDebt := false
		if report.HasOutstandingIOU {
			if iou, ok := snap.ious[report.IOUReportID]; ok {
				containsOwedDebt = iou.OwnerLogin != "" && !snap.session.IsCurrentUser(iou.OwnerLogin)
			}
		}

		filterIfEmpty := !opts.ShowReportsWithNoComments && report.LastMessageTimestamp == 0 &&
			!(report.IsNewlyCreated && (report.IsDefaultRoom() || report.IsPolicyExpenseChat()))
		filterIfRead := opts.HideReadReports && !report.IsUnread

		if report.ReportID != opts.ActiveReportID && !report.IsPinned && !report.HasDraft &&
			!containsOwedDebt && (filterIfEmpty || filterIfRead) {
			continue
		}

		if report.IsChatRoom() && opts.ExcludeChatRooms {
			continue
		}
		if report.IsDefaultRoom() && !domain.CanUseDefaultRooms(snap.session.Betas) &&
			s.policyType(snap, report) != domain.PolicyTypeFree && !hasStaffParticipant(report) {
			continue
		}
		if report.IsUserCreatedPolicyRoom() && !domain.CanUsePolicyRooms(snap.session.Betas) {
			continue
		}
		if report.IsPolicyExpenseChat() && !domain.CanUsePolicyExpenseChat(snap.session.Betas) {
			continue
		}

		options = append(options, s.buildOption(snap, report.Participants, report, buildOpts))

		if len(report.Participants) == 1 && !roomKind {
			// Later reports overwrite earlier ones; the sort above makes
			// the winner deterministic.
			reportsByLogin[report.Participants[0]] = report
		}
	}

	return options, reportsByLogin
}

// buildDetailCandidates turns every known profile into a contact candidate,
// cross-referencing any direct report indexed for its login. Iteration goes
// in sorted login order so results are stable.
func (s *OptionsService) buildDetailCandidates(
	snap *snapshot, reportsByLogin map[string]*domain.Report, opts domain.ListOptions,
) []domain.Option {
	buildOpts := buildOptions{
		showChatPreviewLine:    opts.ShowChatPreviewLine,
		forcePolicyNamePreview: opts.ForcePolicyNamePreview,
	}

	logins := make([]string, 0, len(snap.details))
	for login := range snap.details {
		logins = append(logins, login)
	}
	sort.Strings(logins)

	candidates := make([]domain.Option, 0, len(logins))
	for _, login := range logins {
		candidates = append(candidates, s.buildOption(snap, []string{login}, reportsByLogin[login], buildOpts))
	}

	if opts.SortPersonalDetailsAlphabetically {
		sort.SliceStable(candidates, func(i, j int) bool {
			return strings.ToLower(candidates[i].Text) < strings.ToLower(candidates[j].Text)
		})
	}

	return candidates
}

// selectRecentReports walks the ordered candidates, applies the cap, the
// exclusion set and the search filter, then recombines the priority buckets
// into [pinned, IOU debts, drafts, plain].
func (s *OptionsService) selectRecentReports(
	reportOptions []domain.Option, opts domain.ListOptions, excluded map[string]bool,
) []domain.Option {
	if !opts.IncludeRecentReports {
		return nil
	}

	var recent, pinned, iouDebts, drafts []domain.Option

	for _, opt := range reportOptions {
		// The cap covers the plain bucket only; prioritised entries ride along.
		if opts.MaxRecentReportsToShow > 0 && len(recent) == opts.MaxRecentReportsToShow {
			break
		}
		if !opts.IncludeMultipleParticipantReports && opt.Login == "" {
			continue
		}
		if opt.Login != "" && excluded[strings.ToLower(opt.Login)] {
			continue
		}
		if opts.SearchValue != "" && !IsSearchStringMatch(
			opts.SearchValue, opt.SearchText, participantNameSet(opt.ParticipantsList),
			opt.IsChatRoom || opt.IsPolicyExpenseChat) {
			continue
		}

		switch {
		case opts.PrioritizePinnedReports && opt.IsPinned && !(opt.IsArchivedRoom && opt.IsDefaultRoom):
			pinned = append(pinned, opt)
		case opts.PrioritizeIOUDebts && opt.HasOutstandingIOU && !opt.IsIOUReportOwner:
			iouDebts = append(iouDebts, opt)
		case opts.PrioritizeReportsWithDraftComments && opt.HasDraftComment:
			drafts = append(drafts, opt)
		default:
			recent = append(recent, opt)
		}

		if opt.Login != "" {
			excluded[strings.ToLower(opt.Login)] = true
		}
	}

	sortByText(drafts)
	recent = append(drafts, recent...)

	sort.SliceStable(iouDebts, func(i, j int) bool {
		return iouDebts[i].IOUReportAmount > iouDebts[j].IOUReportAmount
	})
	recent = append(iouDebts, recent...)

	sortByText(pinned)
	recent = append(pinned, recent...)

	if opts.PrioritizeDefaultRoomsInSearch && opts.SearchValue != "" {
		recent = roomsFirst(recent)
	}

	return recent
}

// buildInvite synthesises a contact for an email or phone number nobody in
// the results owns yet. Returns nil when no invite applies.
func (s *OptionsService) buildInvite(
	snap *snapshot, opts domain.ListOptions,
	recentReports, personalDetails []domain.Option, excluded map[string]bool,
) *domain.Option {
	searchValue := opts.SearchValue
	if searchValue == "" {
		return nil
	}

	searchLower := strings.ToLower(searchValue)

	noResults := len(recentReports)+len(personalDetails) == 0
	exactMatch := false
	for _, opt := range recentReports {
		if strings.ToLower(opt.Login) == searchLower && opt.Login != "" {
			exactMatch = true
			break
		}
	}
	if !exactMatch {
		for _, opt := range personalDetails {
			if strings.ToLower(opt.Login) == searchLower && opt.Login != "" {
				exactMatch = true
				break
			}
		}
	}
	if !noResults && exactMatch {
		return nil
	}

	if snap.session.IsCurrentUser(searchValue) {
		return nil
	}
	for i := range opts.SelectedOptions {
		if strings.EqualFold(opts.SelectedOptions[i].Login, searchValue) {
			return nil
		}
	}
	if !(isValidEmail(searchValue) && !isDomainEmail(searchValue)) &&
		!isValidPhone(searchValue, snap.session.CountryCode) {
		return nil
	}
	normalized := addSMSDomainIfPhoneNumber(searchValue, snap.session.CountryCode)
	if excluded[strings.ToLower(normalized)] {
		return nil
	}
	if searchLower == domain.ConciergeLogin && !domain.CanInviteConcierge(snap.session.Betas) {
		return nil
	}

	login := searchValue
	if isValidPhone(searchValue, snap.session.CountryCode) && !strings.Contains(searchValue, "+") {
		login = "+" + snap.session.CountryCode + searchValue
	}

	invite := s.buildOption(snap, []string{login}, nil, buildOptions{})
	return &invite
}

// sortByMatchRank orders merged search results by match quality: exact login
// match, then partial single-login matches, then multi-participant entries,
// with rooms and archived rooms last.
func sortByMatchRank(options []domain.Option, searchValue string) {
	searchLower := strings.ToLower(searchValue)
	rank := func(opt domain.Option) int {
		switch {
		case opt.IsChatRoom || opt.IsArchivedRoom:
			return 3
		case opt.Login == "":
			return 2
		case strings.ToLower(opt.Login) != searchLower:
			return 1
		default:
			return 0
		}
	}
	sort.SliceStable(options, func(i, j int) bool {
		return rank(options[i]) < rank(options[j])
	})
}

// sortByText orders options alphabetically by display text.
func sortByText(options []domain.Option) {
	sort.SliceStable(options, func(i, j int) bool {
		return strings.ToLower(options[i].Text) < strings.ToLower(options[j].Text)
	})
}

// roomsFirst stably partitions room entries ahead of everything else.
func roomsFirst(options []domain.Option) []domain.Option {
	ordered := make([]domain.Option, 0, len(options))
	var rest []domain.Option
	for _, opt := range options {
		if opt.IsChatRoom {
			ordered = append(ordered, opt)
		} else {
			rest = append(rest, opt)
		}
	}
	return append(ordered, rest...)
}

// policyType looks up the plan of the workspace a report belongs to.
func (s *OptionsService) policyType(snap *snapshot, report *domain.Report) domain.PolicyType {
	if policy, ok := snap.policies[report.PolicyID]; ok {
		return policy.Type
	}
	return ""
}

// hasStaffParticipant reports whether any participant is an internal staff
// account.
func hasStaffParticipant(report *domain.Report) bool {
	for _, login := range report.Participants {
		if domain.IsStaffLogin(login) {
			return true
		}
	}
	return false
}
