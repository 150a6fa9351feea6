package domain

// IconType classifies an icon descriptor.
type IconType string

// Available icon types.
const (
	// IconTypeAvatar is a user avatar image.
	IconTypeAvatar IconType = "avatar"

	// IconTypeRoom is the generic room glyph.
	IconTypeRoom IconType = "room"

	// IconTypeWorkspace is the workspace/policy glyph.
	IconTypeWorkspace IconType = "workspace"
)

// Icon describes one image the presentation layer should render for an option.
// Resolution of actual image data is external; this is only a descriptor.
type Icon struct {
	// Type classifies the icon.
	Type IconType

	// Source is a URL or symbolic name for the image.
	Source string

	// Name is the tooltip/alt text.
	Name string
}

// Option is a single renderable row for a people/report picker. It projects a
// report (or a standalone personal detail) into display fields. Options are
// derived fresh on every pipeline call and never mutated afterwards.
type Option struct {
	// Text is the primary display line.
	Text string

	// AlternateText is the secondary display line (message preview, room
	// subtitle, or counterpart login).
	AlternateText string

	// Subtitle is the room/workspace subtitle, when the option has one.
	Subtitle string

	// Icons are the avatar/glyph descriptors to render.
	Icons []Icon

	// Login identifies the single counterpart. Empty for multi-participant
	// options (group chats, rooms, expense chats).
	Login string

	// ReportID links back to the underlying report. Zero for standalone
	// personal-detail options.
	ReportID int64

	// KeyForList uniquely identifies the row for list rendering: the report ID
	// when a report backs the option, otherwise the login.
	KeyForList string

	// SearchText is the denormalised blob the string matcher runs against.
	SearchText string

	// PhoneNumber is the counterpart's contact number (single-login options only).
	PhoneNumber string

	// PaymentAddress is the counterpart's payment identifier (single-login
	// options only).
	PaymentAddress string

	// ParticipantsList holds the resolved profile of every participant.
	ParticipantsList []PersonalDetail

	// BrickRoadIndicator is true when the report or its actions carry error
	// payloads. It is presentation data, not a control-flow error.
	BrickRoadIndicator bool

	// IsPinned mirrors the report's pinned flag.
	IsPinned bool

	// IsUnread mirrors the report's unread flag.
	IsUnread bool

	// HasDraftComment mirrors the report's draft flag.
	HasDraftComment bool

	// HasOutstandingIOU is true when the report references unsettled debt.
	HasOutstandingIOU bool

	// IsIOUReportOwner is true when the current user is owed the debt.
	IsIOUReportOwner bool

	// IOUReportAmount is the outstanding debt total, in cents.
	IOUReportAmount int64

	// IsChatRoom is true for room-style options.
	IsChatRoom bool

	// IsDefaultRoom is true for system-created rooms.
	IsDefaultRoom bool

	// IsPolicyExpenseChat is true for workspace expense conversations.
	IsPolicyExpenseChat bool

	// IsArchivedRoom is true for archived room-like options.
	IsArchivedRoom bool
}

// OptionList is the categorised result of one pipeline invocation.
type OptionList struct {
	// RecentReports are report-backed options, in display order.
	RecentReports []Option

	// PersonalDetails are standalone contact options, in display order.
	PersonalDetails []Option

	// UserToInvite is a synthesised option for an unknown email or phone
	// number typed into search. Nil when no invite applies.
	UserToInvite *Option
}
