package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qispark/chatpick/internal/adapters/driven/storage/memory"
	"github.com/qispark/chatpick/internal/core/domain"
)

// stubLocalizer resolves the two keys the pipeline needs and echoes the key
// for anything else.
type stubLocalizer struct{}

func (stubLocalizer) Translate(_, key string, _ map[string]string) string {
	switch key {
	case localeKeyArchivedPreview:
		return "This chat is no longer active"
	case localeKeyUnknownWorkspace:
		return "Unknown workspace"
	}
	return key
}

// stubIcons returns one avatar descriptor per resolved participant.
type stubIcons struct{}

func (stubIcons) Icons(_ *domain.Report, details []domain.PersonalDetail, _ map[string]domain.Policy) []domain.Icon {
	icons := make([]domain.Icon, 0, len(details))
	for i := range details {
		icons = append(icons, domain.Icon{Type: domain.IconTypeAvatar, Name: details[i].Login})
	}
	return icons
}

type fixture struct {
	t        *testing.T
	service  *OptionsService
	reports  *memory.ReportStore
	actions  *memory.ReportActionStore
	details  *memory.PersonalDetailStore
	policies *memory.PolicyStore
	ious     *memory.IOUReportStore
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		t:        t,
		reports:  memory.NewReportStore(),
		actions:  memory.NewReportActionStore(),
		details:  memory.NewPersonalDetailStore(),
		policies: memory.NewPolicyStore(),
		ious:     memory.NewIOUReportStore(),
	}
	f.service = NewOptionsService(
		f.reports, f.actions, f.details, f.policies, f.ious, stubLocalizer{}, stubIcons{})
	return f
}

func (f *fixture) addReport(report domain.Report) {
	f.t.Helper()
	require.NoError(f.t, f.reports.Save(context.Background(), report))
}

func (f *fixture) addDetail(login, displayName string) {
	f.t.Helper()
	require.NoError(f.t, f.details.Save(context.Background(),
		domain.PersonalDetail{Login: login, DisplayName: displayName}))
}

func testSession() domain.Session {
	return domain.Session{
		CurrentUserLogin: "me@x.com",
		Betas:            []domain.Beta{domain.BetaAll},
		Locale:           "en",
		CountryCode:      "1",
	}
}

func texts(options []domain.Option) []string {
	out := make([]string, 0, len(options))
	for _, opt := range options {
		out = append(out, opt.Text)
	}
	return out
}

func TestOptions_NoSession(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.Options(context.Background(), domain.Session{}, domain.ListOptions{})

	assert.ErrorIs(t, err, domain.ErrNoSession)
}

func TestOptions_SingleParticipantReportUsesDisplayName(t *testing.T) {
	f := newFixture(t)
	f.addReport(domain.Report{
		ReportID:             1,
		Participants:         []string{"a@x.com"},
		LastMessageTimestamp: 100,
	})
	f.addDetail("a@x.com", "Alice")

	list, err := f.service.Options(context.Background(), testSession(), domain.ListOptions{
		IncludeRecentReports: true,
	})

	require.NoError(t, err)
	require.Len(t, list.RecentReports, 1)
	assert.Equal(t, "Alice", list.RecentReports[0].Text)
	assert.Equal(t, "a@x.com", list.RecentReports[0].Login)
	assert.Equal(t, "1", list.RecentReports[0].KeyForList)
}

func TestOptions_UnknownParticipantGetsPlaceholder(t *testing.T) {
	f := newFixture(t)
	f.addReport(domain.Report{
		ReportID:             1,
		Participants:         []string{"ghost@x.com"},
		LastMessageTimestamp: 100,
	})

	list, err := f.service.Options(context.Background(), testSession(), domain.ListOptions{
		IncludeRecentReports: true,
	})

	require.NoError(t, err)
	require.Len(t, list.RecentReports, 1)
	assert.Equal(t, "ghost@x.com", list.RecentReports[0].Text)
}

func TestOptions_DirectReportWithoutParticipantsDropped(t *testing.T) {
	f := newFixture(t)
	// No participants and not a room: unusable.
	f.addReport(domain.Report{ReportID: 2, LastMessageTimestamp: 100})

	list, err := f.service.Options(context.Background(), testSession(), domain.ListOptions{
		IncludeRecentReports: true,
	})

	require.NoError(t, err)
	assert.Empty(t, list.RecentReports)
}

func TestOptions_EmptyReportsHiddenUnlessRequested(t *testing.T) {
	f := newFixture(t)
	f.addReport(domain.Report{ReportID: 1, Participants: []string{"a@x.com"}})
	f.addDetail("a@x.com", "Alice")

	session := testSession()

	list, err := f.service.Options(context.Background(), session, domain.ListOptions{
		IncludeRecentReports: true,
	})
	require.NoError(t, err)
	assert.Empty(t, list.RecentReports)

	list, err = f.service.Options(context.Background(), session, domain.ListOptions{
		IncludeRecentReports:      true,
		ShowReportsWithNoComments: true,
	})
	require.NoError(t, err)
	assert.Len(t, list.RecentReports, 1)
}

func TestOptions_NewlyCreatedDefaultRoomSurvivesEmptyFilter(t *testing.T) {
	f := newFixture(t)
	f.addReport(domain.Report{
		ReportID:       1,
		ReportName:     "#announce",
		ChatType:       domain.ChatTypePolicyAnnounce,
		IsNewlyCreated: true,
	})

	list, err := f.service.Options(context.Background(), testSession(), domain.ListOptions{
		IncludeRecentReports:              true,
		IncludeMultipleParticipantReports: true,
	})

	require.NoError(t, err)
	require.Len(t, list.RecentReports, 1)
	assert.Equal(t, "#announce", list.RecentReports[0].Text)
}

func TestOptions_PinnedDraftAndActiveBypassFilters(t *testing.T) {
	f := newFixture(t)
	f.addReport(domain.Report{ReportID: 1, Participants: []string{"a@x.com"}, IsPinned: true})
	f.addReport(domain.Report{ReportID: 2, Participants: []string{"b@x.com"}, HasDraft: true})
	f.addReport(domain.Report{ReportID: 3, Participants: []string{"c@x.com"}})

	list, err := f.service.Options(context.Background(), testSession(), domain.ListOptions{
		IncludeRecentReports: true,
		ActiveReportID:       3,
	})

	require.NoError(t, err)
	assert.Len(t, list.RecentReports, 3)
}

func TestOptions_HideReadReports(t *testing.T) {
	f := newFixture(t)
	f.addReport(domain.Report{
		ReportID: 1, Participants: []string{"a@x.com"},
		LastMessageTimestamp: 100, IsUnread: true,
	})
	f.addReport(domain.Report{
		ReportID: 2, Participants: []string{"b@x.com"},
		LastMessageTimestamp: 200,
	})
	f.addDetail("a@x.com", "Alice")
	f.addDetail("b@x.com", "Bob")

	list, err := f.service.Options(context.Background(), testSession(), domain.ListOptions{
		IncludeRecentReports: true,
		HideReadReports:      true,
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"Alice"}, texts(list.RecentReports))
}

func TestOptions_RecombinationOrder(t *testing.T) {
	f := newFixture(t)
	f.addDetail("ann@x.com", "Ann")
	f.addDetail("zed@x.com", "Zed")
	f.addDetail("eve@x.com", "Eve")
	f.addDetail("dave@x.com", "Dave")
	f.addDetail("bob@x.com", "Bob")

	f.addReport(domain.Report{
		ReportID: 1, Participants: []string{"bob@x.com"}, LastMessageTimestamp: 500,
	})
	f.addReport(domain.Report{
		ReportID: 2, Participants: []string{"zed@x.com"}, LastMessageTimestamp: 400,
		IsPinned: true,
	})
	f.addReport(domain.Report{
		ReportID: 3, Participants: []string{"dave@x.com"}, LastMessageTimestamp: 300,
		HasDraft: true,
	})
	f.addReport(domain.Report{
		ReportID: 4, Participants: []string{"eve@x.com"}, LastMessageTimestamp: 200,
		HasOutstandingIOU: true, IOUReportID: 40,
	})
	f.addReport(domain.Report{
		ReportID: 5, Participants: []string{"ann@x.com"}, LastMessageTimestamp: 100,
		IsPinned: true,
	})
	require.NoError(t, f.ious.Save(context.Background(), domain.IOUReport{
		ReportID: 40, OwnerLogin: "eve@x.com", Total: 500, Currency: "USD",
	}))

	list, err := f.service.Options(context.Background(), testSession(), domain.ListOptions{
		IncludeRecentReports:               true,
		SortByLastMessageTimestamp:         true,
		PrioritizePinnedReports:            true,
		PrioritizeIOUDebts:                 true,
		PrioritizeReportsWithDraftComments: true,
	})

	require.NoError(t, err)
	// Pinned alphabetically, then IOU debts, then drafts, then the rest.
	assert.Equal(t, []string{"Ann", "Zed", "Eve", "Dave", "Bob"}, texts(list.RecentReports))
}

func TestOptions_IOUDebtsSortedByAmountDescending(t *testing.T) {
	f := newFixture(t)
	f.addDetail("a@x.com", "Alice")
	f.addDetail("b@x.com", "Bob")

	f.addReport(domain.Report{
		ReportID: 1, Participants: []string{"a@x.com"}, LastMessageTimestamp: 200,
		HasOutstandingIOU: true, IOUReportID: 10,
	})
	f.addReport(domain.Report{
		ReportID: 2, Participants: []string{"b@x.com"}, LastMessageTimestamp: 100,
		HasOutstandingIOU: true, IOUReportID: 20,
	})
	require.NoError(t, f.ious.Save(context.Background(), domain.IOUReport{
		ReportID: 10, OwnerLogin: "a@x.com", Total: 100,
	}))
	require.NoError(t, f.ious.Save(context.Background(), domain.IOUReport{
		ReportID: 20, OwnerLogin: "b@x.com", Total: 900,
	}))

	list, err := f.service.Options(context.Background(), testSession(), domain.ListOptions{
		IncludeRecentReports:       true,
		SortByLastMessageTimestamp: true,
		PrioritizeIOUDebts:         true,
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"Bob", "Alice"}, texts(list.RecentReports))
}

func TestOptions_IOUOwnedBySessionUserIsNotPrioritised(t *testing.T) {
	f := newFixture(t)
	f.addDetail("a@x.com", "Alice")
	f.addReport(domain.Report{
		ReportID: 1, Participants: []string{"a@x.com"}, LastMessageTimestamp: 100,
		HasOutstandingIOU: true, IOUReportID: 10,
	})
	require.NoError(t, f.ious.Save(context.Background(), domain.IOUReport{
		ReportID: 10, OwnerLogin: "me@x.com", Total: 100,
	}))

	list, err := f.service.Options(context.Background(), testSession(), domain.ListOptions{
		IncludeRecentReports:      true,
		ShowReportsWithNoComments: true,
		PrioritizeIOUDebts:        true,
	})

	require.NoError(t, err)
	require.Len(t, list.RecentReports, 1)
	assert.True(t, list.RecentReports[0].IsIOUReportOwner)
}

func TestOptions_ArchivedRoomsSortLast(t *testing.T) {
	f := newFixture(t)
	f.addReport(domain.Report{
		ReportID: 1, ReportName: "#old", ChatType: domain.ChatTypePolicyRoom,
		IsArchived: true, LastMessageTimestamp: 900,
	})
	f.addReport(domain.Report{
		ReportID: 2, ReportName: "#new", ChatType: domain.ChatTypePolicyRoom,
		LastMessageTimestamp: 100,
	})

	list, err := f.service.Options(context.Background(), testSession(), domain.ListOptions{
		IncludeRecentReports:              true,
		IncludeMultipleParticipantReports: true,
		SortByLastMessageTimestamp:        true,
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"#new", "#old"}, texts(list.RecentReports))
}

func TestOptions_CapCountsPlainBucketOnly(t *testing.T) {
	f := newFixture(t)
	f.addDetail("a@x.com", "Alice")
	f.addDetail("b@x.com", "Bob")
	f.addDetail("c@x.com", "Carol")
	f.addDetail("p@x.com", "Pinned Pete")

	f.addReport(domain.Report{ReportID: 1, Participants: []string{"a@x.com"}, LastMessageTimestamp: 500})
	f.addReport(domain.Report{ReportID: 2, Participants: []string{"p@x.com"}, LastMessageTimestamp: 400, IsPinned: true})
	f.addReport(domain.Report{ReportID: 3, Participants: []string{"b@x.com"}, LastMessageTimestamp: 300})
	f.addReport(domain.Report{ReportID: 4, Participants: []string{"c@x.com"}, LastMessageTimestamp: 200})

	list, err := f.service.Options(context.Background(), testSession(), domain.ListOptions{
		IncludeRecentReports:       true,
		SortByLastMessageTimestamp: true,
		MaxRecentReportsToShow:     2,
		PrioritizePinnedReports:    true,
	})

	require.NoError(t, err)
	// The pinned entry rides along above the capped plain bucket; Carol falls
	// off the end.
	assert.Equal(t, []string{"Pinned Pete", "Alice", "Bob"}, texts(list.RecentReports))
}

func TestOptions_SearchFiltersRecents(t *testing.T) {
	f := newFixture(t)
	f.addDetail("a@x.com", "Alice")
	f.addDetail("b@x.com", "Bob")
	f.addReport(domain.Report{ReportID: 1, Participants: []string{"a@x.com"}, LastMessageTimestamp: 100})
	f.addReport(domain.Report{ReportID: 2, Participants: []string{"b@x.com"}, LastMessageTimestamp: 200})

	list, err := f.service.Options(context.Background(), testSession(), domain.ListOptions{
		IncludeRecentReports: true,
		SearchValue:          "ali",
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"Alice"}, texts(list.RecentReports))
}

func TestOptions_RoomMatchesByNameNotParticipants(t *testing.T) {
	f := newFixture(t)
	f.addDetail("alice@x.com", "Alice")
	f.addReport(domain.Report{
		ReportID: 1, ReportName: "#general", ChatType: domain.ChatTypePolicyRoom,
		Participants: []string{"alice@x.com"}, LastMessageTimestamp: 100,
	})

	session := testSession()
	base := domain.ListOptions{
		IncludeRecentReports:              true,
		IncludeMultipleParticipantReports: true,
	}

	byMember := base
	byMember.SearchValue = "alice"
	list, err := f.service.Options(context.Background(), session, byMember)
	require.NoError(t, err)
	assert.Empty(t, list.RecentReports)

	byName := base
	byName.SearchValue = "gen"
	list, err = f.service.Options(context.Background(), session, byName)
	require.NoError(t, err)
	assert.Equal(t, []string{"#general"}, texts(list.RecentReports))
}

func TestOptions_PersonalDetailsExcludeRecentAndCurrentUser(t *testing.T) {
	f := newFixture(t)
	f.addDetail("me@x.com", "Me")
	f.addDetail("a@x.com", "Alice")
	f.addDetail("b@x.com", "Bob")
	f.addReport(domain.Report{ReportID: 1, Participants: []string{"a@x.com"}, LastMessageTimestamp: 100})

	list, err := f.service.Options(context.Background(), testSession(), domain.ListOptions{
		IncludeRecentReports:   true,
		IncludePersonalDetails: true,
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"Alice"}, texts(list.RecentReports))
	assert.Equal(t, []string{"Bob"}, texts(list.PersonalDetails))
}

func TestOptions_SelectedAndExcludedLoginsAreSkipped(t *testing.T) {
	f := newFixture(t)
	f.addDetail("a@x.com", "Alice")
	f.addDetail("b@x.com", "Bob")
	f.addDetail("c@x.com", "Carol")

	list, err := f.service.Options(context.Background(), testSession(), domain.ListOptions{
		IncludePersonalDetails: true,
		SelectedOptions:        []domain.Option{{Login: "a@x.com"}},
		ExcludeLogins:          []string{"B@X.COM"},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"Carol"}, texts(list.PersonalDetails))
}

func TestOptions_PersonalDetailsAlphabetical(t *testing.T) {
	f := newFixture(t)
	f.addDetail("z@x.com", "Zed")
	f.addDetail("a@x.com", "alice")
	f.addDetail("m@x.com", "Mona")

	list, err := f.service.Options(context.Background(), testSession(), domain.ListOptions{
		IncludePersonalDetails:            true,
		SortPersonalDetailsAlphabetically: true,
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "Mona", "Zed"}, texts(list.PersonalDetails))
}

func TestOptions_ExcludeChatRooms(t *testing.T) {
	f := newFixture(t)
	f.addReport(domain.Report{
		ReportID: 1, ReportName: "#general", ChatType: domain.ChatTypePolicyRoom,
		LastMessageTimestamp: 100,
	})

	list, err := f.service.Options(context.Background(), testSession(), domain.ListOptions{
		IncludeRecentReports:              true,
		IncludeMultipleParticipantReports: true,
		ExcludeChatRooms:                  true,
	})

	require.NoError(t, err)
	assert.Empty(t, list.RecentReports)
}

func TestOptions_DefaultRoomBetaGating(t *testing.T) {
	f := newFixture(t)
	f.addReport(domain.Report{
		ReportID: 1, ReportName: "#announce", ChatType: domain.ChatTypePolicyAnnounce,
		PolicyID: "p1", LastMessageTimestamp: 100,
	})

	opts := domain.ListOptions{
		IncludeRecentReports:              true,
		IncludeMultipleParticipantReports: true,
	}

	noBetas := testSession()
	noBetas.Betas = nil
	list, err := f.service.Options(context.Background(), noBetas, opts)
	require.NoError(t, err)
	assert.Empty(t, list.RecentReports)

	list, err = f.service.Options(context.Background(), testSession(), opts)
	require.NoError(t, err)
	assert.Len(t, list.RecentReports, 1)
}

func TestOptions_DefaultRoomVisibleOnFreePolicyWithoutBeta(t *testing.T) {
	f := newFixture(t)
	f.addReport(domain.Report{
		ReportID: 1, ReportName: "#announce", ChatType: domain.ChatTypePolicyAnnounce,
		PolicyID: "p1", LastMessageTimestamp: 100,
	})
	require.NoError(t, f.policies.Save(context.Background(), domain.Policy{
		PolicyID: "p1", Name: "Acme", Type: domain.PolicyTypeFree,
	}))

	session := testSession()
	session.Betas = nil

	list, err := f.service.Options(context.Background(), session, domain.ListOptions{
		IncludeRecentReports:              true,
		IncludeMultipleParticipantReports: true,
	})

	require.NoError(t, err)
	assert.Len(t, list.RecentReports, 1)
}

func TestOptions_DefaultRoomVisibleWithStaffParticipant(t *testing.T) {
	f := newFixture(t)
	f.addReport(domain.Report{
		ReportID: 1, ReportName: "#all", ChatType: domain.ChatTypeDomainAll,
		Participants:         []string{"agent@chatpick.com"},
		LastMessageTimestamp: 100,
	})

	session := testSession()
	session.Betas = nil

	list, err := f.service.Options(context.Background(), session, domain.ListOptions{
		IncludeRecentReports:              true,
		IncludeMultipleParticipantReports: true,
	})

	require.NoError(t, err)
	assert.Len(t, list.RecentReports, 1)
}

func TestOptions_PolicyRoomAndExpenseChatBetaGating(t *testing.T) {
	f := newFixture(t)
	f.addReport(domain.Report{
		ReportID: 1, ReportName: "#ops", ChatType: domain.ChatTypePolicyRoom,
		LastMessageTimestamp: 100,
	})
	f.addReport(domain.Report{
		ReportID: 2, ReportName: "Acme", ChatType: domain.ChatTypePolicyExpenseChat,
		LastMessageTimestamp: 200,
	})

	session := testSession()
	session.Betas = nil

	list, err := f.service.Options(context.Background(), session, domain.ListOptions{
		IncludeRecentReports:              true,
		IncludeMultipleParticipantReports: true,
	})

	require.NoError(t, err)
	assert.Empty(t, list.RecentReports)
}

func TestOptions_InviteForUnknownEmail(t *testing.T) {
	f := newFixture(t)

	list, err := f.service.Options(context.Background(), testSession(), domain.ListOptions{
		IncludePersonalDetails: true,
		SearchValue:            "new@x.com",
	})

	require.NoError(t, err)
	require.NotNil(t, list.UserToInvite)
	assert.Equal(t, "new@x.com", list.UserToInvite.Login)
	assert.Equal(t, "new@x.com", list.UserToInvite.Text)
}

func TestOptions_NoInviteForExactExistingLogin(t *testing.T) {
	f := newFixture(t)
	f.addDetail("a@x.com", "Alice")

	list, err := f.service.Options(context.Background(), testSession(), domain.ListOptions{
		IncludePersonalDetails: true,
		SearchValue:            "a@x.com",
	})

	require.NoError(t, err)
	assert.Len(t, list.PersonalDetails, 1)
	assert.Nil(t, list.UserToInvite)
}

func TestOptions_NoInviteForCurrentUser(t *testing.T) {
	f := newFixture(t)

	list, err := f.service.Options(context.Background(), testSession(), domain.ListOptions{
		IncludePersonalDetails: true,
		SearchValue:            "me@x.com",
	})

	require.NoError(t, err)
	assert.Nil(t, list.UserToInvite)
}

func TestOptions_NoInviteForDomainEmailOrGarbage(t *testing.T) {
	f := newFixture(t)
	session := testSession()

	list, err := f.service.Options(context.Background(), session, domain.ListOptions{
		IncludePersonalDetails: true,
		SearchValue:            "+acme.com@x.com",
	})
	require.NoError(t, err)
	assert.Nil(t, list.UserToInvite)

	list, err = f.service.Options(context.Background(), session, domain.ListOptions{
		IncludePersonalDetails: true,
		SearchValue:            "not an email",
	})
	require.NoError(t, err)
	assert.Nil(t, list.UserToInvite)
}

func TestOptions_InviteForPhoneNumberAddsCountryCode(t *testing.T) {
	f := newFixture(t)

	list, err := f.service.Options(context.Background(), testSession(), domain.ListOptions{
		IncludePersonalDetails: true,
		SearchValue:            "6502530000",
	})

	require.NoError(t, err)
	require.NotNil(t, list.UserToInvite)
	assert.Equal(t, "+16502530000", list.UserToInvite.Login)
}

func TestOptions_ConciergeInviteRequiresBeta(t *testing.T) {
	f := newFixture(t)
	opts := domain.ListOptions{
		IncludePersonalDetails: true,
		SearchValue:            domain.ConciergeLogin,
	}

	session := testSession()
	session.Betas = nil
	list, err := f.service.Options(context.Background(), session, opts)
	require.NoError(t, err)
	assert.Nil(t, list.UserToInvite)

	list, err = f.service.Options(context.Background(), testSession(), opts)
	require.NoError(t, err)
	require.NotNil(t, list.UserToInvite)
	assert.Equal(t, domain.ConciergeLogin, list.UserToInvite.Login)
}

func TestOptions_NoInviteForSelectedLogin(t *testing.T) {
	f := newFixture(t)

	list, err := f.service.Options(context.Background(), testSession(), domain.ListOptions{
		IncludePersonalDetails: true,
		SearchValue:            "picked@x.com",
		SelectedOptions:        []domain.Option{{Login: "picked@x.com"}},
	})

	require.NoError(t, err)
	assert.Nil(t, list.UserToInvite)
}

func TestOptions_SortByReportTypeInSearchMergesAndRanks(t *testing.T) {
	f := newFixture(t)
	f.addDetail("a@x.com", "Alice")
	f.addDetail("ab@x.com", "Alice B")
	f.addReport(domain.Report{
		ReportID: 1, ReportName: "#a-room", ChatType: domain.ChatTypePolicyRoom,
		LastMessageTimestamp: 300,
	})
	f.addReport(domain.Report{
		ReportID: 2, Participants: []string{"a@x.com", "ab@x.com"},
		LastMessageTimestamp: 200,
	})
	f.addReport(domain.Report{
		ReportID: 3, Participants: []string{"a@x.com"}, LastMessageTimestamp: 100,
	})

	list, err := f.service.Options(context.Background(), testSession(), domain.ListOptions{
		SearchValue:                       "a@x.com",
		IncludeRecentReports:              true,
		IncludeMultipleParticipantReports: true,
		IncludePersonalDetails:            true,
		ShowReportsWithNoComments:         true,
		SortByLastMessageTimestamp:        true,
		SortByReportTypeInSearch:          true,
	})

	require.NoError(t, err)
	assert.Empty(t, list.PersonalDetails)
	// The room never matches a login query, so only the direct and group
	// chats survive: exact login match ranks above the group chat.
	require.Len(t, list.RecentReports, 2)
	assert.Equal(t, "a@x.com", list.RecentReports[0].Login)
	assert.Equal(t, int64(2), list.RecentReports[1].ReportID)
}

func TestOptions_PrioritizeDefaultRoomsInSearchPutsRoomsFirst(t *testing.T) {
	f := newFixture(t)
	f.addDetail("ga@x.com", "Gabe")
	f.addReport(domain.Report{
		ReportID: 1, Participants: []string{"ga@x.com"}, LastMessageTimestamp: 300,
	})
	f.addReport(domain.Report{
		ReportID: 2, ReportName: "#ga", ChatType: domain.ChatTypePolicyRoom,
		LastMessageTimestamp: 100,
	})

	list, err := f.service.Options(context.Background(), testSession(), domain.ListOptions{
		SearchValue:                       "ga",
		IncludeRecentReports:              true,
		IncludeMultipleParticipantReports: true,
		SortByLastMessageTimestamp:        true,
		PrioritizeDefaultRoomsInSearch:    true,
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"#ga", "Gabe"}, texts(list.RecentReports))
}

func TestOptions_SkipsMultipleParticipantReportsWhenNotIncluded(t *testing.T) {
	f := newFixture(t)
	f.addReport(domain.Report{
		ReportID: 1, Participants: []string{"a@x.com", "b@x.com"},
		LastMessageTimestamp: 100,
	})
	f.addReport(domain.Report{
		ReportID: 2, Participants: []string{"c@x.com"}, LastMessageTimestamp: 200,
	})
	f.addDetail("c@x.com", "Carol")

	list, err := f.service.Options(context.Background(), testSession(), domain.ListOptions{
		IncludeRecentReports: true,
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"Carol"}, texts(list.RecentReports))
}
