package domain

// ChatType classifies the kind of conversation a report represents.
type ChatType string

// Available chat types. The empty string is a direct (1:1 or group) chat.
const (
	// ChatTypePolicyAnnounce is the system-created announce room of a workspace.
	ChatTypePolicyAnnounce ChatType = "policyAnnounce"

	// ChatTypePolicyAdmins is the system-created admins room of a workspace.
	ChatTypePolicyAdmins ChatType = "policyAdmins"

	// ChatTypeDomainAll is the system-created room for everyone on a domain.
	ChatTypeDomainAll ChatType = "domainAll"

	// ChatTypePolicyRoom is a user-created room inside a workspace.
	ChatTypePolicyRoom ChatType = "policyRoom"

	// ChatTypePolicyExpenseChat is a workspace expense conversation.
	ChatTypePolicyExpenseChat ChatType = "policyExpenseChat"
)

// IsValid returns true if the chat type is recognised.
func (t ChatType) IsValid() bool {
	switch t {
	case "", ChatTypePolicyAnnounce, ChatTypePolicyAdmins, ChatTypeDomainAll,
		ChatTypePolicyRoom, ChatTypePolicyExpenseChat:
		return true
	default:
		return false
	}
}

// Report is a read-only snapshot of a conversation.
// It is owned by an external store; the pipeline never mutates it.
type Report struct {
	// ReportID uniquely identifies the report. Zero means malformed data.
	ReportID int64

	// ReportName is the display name (room name, or joined participant names).
	ReportName string

	// Participants are the login identifiers of everyone in the conversation,
	// excluding the current user.
	Participants []string

	// ChatType classifies the conversation. Empty for direct chats.
	ChatType ChatType

	// PolicyID links room-like reports to their workspace.
	PolicyID string

	// OwnerLogin is the login of the report owner, if any.
	OwnerLogin string

	// LastMessageText is a preview of the most recent message.
	LastMessageText string

	// LastActorLogin is the login of the most recent message's author.
	LastActorLogin string

	// LastMessageTimestamp is the unix time of the most recent message.
	// Zero means the report has no messages yet.
	LastMessageTimestamp int64

	// LastVisitedTimestamp is the unix time the current user last opened the report.
	LastVisitedTimestamp int64

	// IsPinned is true when the current user pinned the report.
	IsPinned bool

	// IsUnread is true when the report has messages the current user has not seen.
	IsUnread bool

	// HasDraft is true when the current user has an unsent draft comment.
	HasDraft bool

	// IsArchived is true when the report has been closed/archived.
	IsArchived bool

	// IsNewlyCreated marks a workspace room that was just created and has no
	// activity yet. Such rooms stay visible even though they have no messages.
	IsNewlyCreated bool

	// HasOutstandingIOU is true when the report references unsettled debt.
	HasOutstandingIOU bool

	// IOUReportID references the IOU aggregate, when HasOutstandingIOU is set.
	IOUReportID int64

	// Errors holds report-level error payloads, keyed by error ID.
	Errors map[string]string

	// ErrorFields holds per-field error payloads, keyed by field name.
	ErrorFields map[string]map[string]string
}

// IsDefaultRoom returns true for system-created workspace/domain rooms.
func (r *Report) IsDefaultRoom() bool {
	switch r.ChatType {
	case ChatTypePolicyAnnounce, ChatTypePolicyAdmins, ChatTypeDomainAll:
		return true
	default:
		return false
	}
}

// IsUserCreatedPolicyRoom returns true for rooms members created themselves.
func (r *Report) IsUserCreatedPolicyRoom() bool {
	return r.ChatType == ChatTypePolicyRoom
}

// IsChatRoom returns true for any room-style report, default or user-created.
func (r *Report) IsChatRoom() bool {
	return r.IsDefaultRoom() || r.IsUserCreatedPolicyRoom()
}

// IsPolicyExpenseChat returns true for workspace expense conversations.
func (r *Report) IsPolicyExpenseChat() bool {
	return r.ChatType == ChatTypePolicyExpenseChat
}

// IsArchivedRoom returns true for archived rooms and expense chats.
// Archived direct chats do not exist; archiving only applies to room-like reports.
func (r *Report) IsArchivedRoom() bool {
	return r.IsArchived && (r.IsChatRoom() || r.IsPolicyExpenseChat())
}

// ReportAction is a single historical action (message, edit, system event)
// attached to a report.
type ReportAction struct {
	// ActionID uniquely identifies the action.
	ActionID string

	// ReportID is the report this action belongs to.
	ReportID int64

	// ActorLogin is the login of the user who performed the action.
	ActorLogin string

	// Message is the rendered text of the action.
	Message string

	// Timestamp is the unix time the action happened.
	Timestamp int64

	// Errors holds error payloads attached to the action, keyed by error ID.
	Errors map[string]string
}
