package file

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/qispark/chatpick/internal/core/domain"
)

// snapshotFile is the on-disk JSON shape of a full data snapshot.
type snapshotFile struct {
	Reports         []reportRecord `json:"reports"`
	ReportActions   []actionRecord `json:"reportActions"`
	PersonalDetails []personRecord `json:"personalDetails"`
	Policies        []policyRecord `json:"policies"`
	IOUReports      []iouRecord    `json:"iouReports"`
}

type reportRecord struct {
	ReportID             int64                        `json:"reportID"`
	ReportName           string                       `json:"reportName"`
	Participants         []string                     `json:"participants"`
	ChatType             string                       `json:"chatType,omitempty"`
	PolicyID             string                       `json:"policyID,omitempty"`
	OwnerLogin           string                       `json:"ownerLogin,omitempty"`
	LastMessageText      string                       `json:"lastMessageText,omitempty"`
	LastActorLogin       string                       `json:"lastActorLogin,omitempty"`
	LastMessageTimestamp int64                        `json:"lastMessageTimestamp,omitempty"`
	LastVisitedTimestamp int64                        `json:"lastVisitedTimestamp,omitempty"`
	IsPinned             bool                         `json:"isPinned,omitempty"`
	IsUnread             bool                         `json:"isUnread,omitempty"`
	HasDraft             bool                         `json:"hasDraft,omitempty"`
	IsArchived           bool                         `json:"isArchived,omitempty"`
	IsNewlyCreated       bool                         `json:"isNewlyCreated,omitempty"`
	HasOutstandingIOU    bool                         `json:"hasOutstandingIOU,omitempty"`
	IOUReportID          int64                        `json:"iouReportID,omitempty"`
	Errors               map[string]string            `json:"errors,omitempty"`
	ErrorFields          map[string]map[string]string `json:"errorFields,omitempty"`
}

type actionRecord struct {
	ActionID   string            `json:"actionID,omitempty"`
	ReportID   int64             `json:"reportID"`
	ActorLogin string            `json:"actorLogin,omitempty"`
	Message    string            `json:"message,omitempty"`
	Timestamp  int64             `json:"timestamp,omitempty"`
	Errors     map[string]string `json:"errors,omitempty"`
}

type personRecord struct {
	Login          string `json:"login"`
	DisplayName    string `json:"displayName,omitempty"`
	FirstName      string `json:"firstName,omitempty"`
	LastName       string `json:"lastName,omitempty"`
	AvatarURL      string `json:"avatarURL,omitempty"`
	PhoneNumber    string `json:"phoneNumber,omitempty"`
	PaymentAddress string `json:"paymentAddress,omitempty"`
}

type policyRecord struct {
	PolicyID string `json:"policyID"`
	Name     string `json:"name"`
	Type     string `json:"type,omitempty"`
}

type iouRecord struct {
	ReportID   int64  `json:"reportID"`
	OwnerLogin string `json:"ownerLogin"`
	Total      int64  `json:"total"`
	Currency   string `json:"currency,omitempty"`
}

// ReadSnapshot parses the snapshot file at path into domain values. Actions
// without an ID get one synthesised so the stores can key them.
func ReadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot file: %w", err)
	}

	var stored snapshotFile
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, fmt.Errorf("parsing snapshot file: %w", err)
	}

	snap := &Snapshot{}
	for _, r := range stored.Reports {
		snap.Reports = append(snap.Reports, domain.Report{
			ReportID:             r.ReportID,
			ReportName:           r.ReportName,
			Participants:         r.Participants,
			ChatType:             domain.ChatType(r.ChatType),
			PolicyID:             r.PolicyID,
			OwnerLogin:           r.OwnerLogin,
			LastMessageText:      r.LastMessageText,
			LastActorLogin:       r.LastActorLogin,
			LastMessageTimestamp: r.LastMessageTimestamp,
			LastVisitedTimestamp: r.LastVisitedTimestamp,
			IsPinned:             r.IsPinned,
			IsUnread:             r.IsUnread,
			HasDraft:             r.HasDraft,
			IsArchived:           r.IsArchived,
			IsNewlyCreated:       r.IsNewlyCreated,
			HasOutstandingIOU:    r.HasOutstandingIOU,
			IOUReportID:          r.IOUReportID,
			Errors:               r.Errors,
			ErrorFields:          r.ErrorFields,
		})
	}
	for _, a := range stored.ReportActions {
		actionID := a.ActionID
		if actionID == "" {
			actionID = uuid.New().String()
		}
		snap.Actions = append(snap.Actions, domain.ReportAction{
			ActionID:   actionID,
			ReportID:   a.ReportID,
			ActorLogin: a.ActorLogin,
			Message:    a.Message,
			Timestamp:  a.Timestamp,
			Errors:     a.Errors,
		})
	}
	for _, p := range stored.PersonalDetails {
		snap.Details = append(snap.Details, domain.PersonalDetail{
			Login:          p.Login,
			DisplayName:    p.DisplayName,
			FirstName:      p.FirstName,
			LastName:       p.LastName,
			AvatarURL:      p.AvatarURL,
			PhoneNumber:    p.PhoneNumber,
			PaymentAddress: p.PaymentAddress,
		})
	}
	for _, p := range stored.Policies {
		snap.Policies = append(snap.Policies, domain.Policy{
			PolicyID: p.PolicyID,
			Name:     p.Name,
			Type:     domain.PolicyType(p.Type),
		})
	}
	for _, i := range stored.IOUReports {
		snap.IOUs = append(snap.IOUs, domain.IOUReport{
			ReportID:   i.ReportID,
			OwnerLogin: i.OwnerLogin,
			Total:      i.Total,
			Currency:   i.Currency,
		})
	}

	return snap, nil
}

// WriteSnapshot persists domain values as a snapshot file at path.
func WriteSnapshot(path string, snap *Snapshot) error {
	stored := snapshotFile{}
	for _, r := range snap.Reports {
		stored.Reports = append(stored.Reports, reportRecord{
			ReportID:             r.ReportID,
			ReportName:           r.ReportName,
			Participants:         r.Participants,
			ChatType:             string(r.ChatType),
			PolicyID:             r.PolicyID,
			OwnerLogin:           r.OwnerLogin,
			LastMessageText:      r.LastMessageText,
			LastActorLogin:       r.LastActorLogin,
			LastMessageTimestamp: r.LastMessageTimestamp,
			LastVisitedTimestamp: r.LastVisitedTimestamp,
			IsPinned:             r.IsPinned,
			IsUnread:             r.IsUnread,
			HasDraft:             r.HasDraft,
			IsArchived:           r.IsArchived,
			IsNewlyCreated:       r.IsNewlyCreated,
			HasOutstandingIOU:    r.HasOutstandingIOU,
			IOUReportID:          r.IOUReportID,
			Errors:               r.Errors,
			ErrorFields:          r.ErrorFields,
		})
	}
	for _, a := range snap.Actions {
		stored.ReportActions = append(stored.ReportActions, actionRecord{
			ActionID:   a.ActionID,
			ReportID:   a.ReportID,
			ActorLogin: a.ActorLogin,
			Message:    a.Message,
			Timestamp:  a.Timestamp,
			Errors:     a.Errors,
		})
	}
	for _, p := range snap.Details {
		stored.PersonalDetails = append(stored.PersonalDetails, personRecord{
			Login:          p.Login,
			DisplayName:    p.DisplayName,
			FirstName:      p.FirstName,
			LastName:       p.LastName,
			AvatarURL:      p.AvatarURL,
			PhoneNumber:    p.PhoneNumber,
			PaymentAddress: p.PaymentAddress,
		})
	}
	for _, p := range snap.Policies {
		stored.Policies = append(stored.Policies, policyRecord{
			PolicyID: p.PolicyID,
			Name:     p.Name,
			Type:     string(p.Type),
		})
	}
	for _, i := range snap.IOUs {
		stored.IOUReports = append(stored.IOUReports, iouRecord{
			ReportID:   i.ReportID,
			OwnerLogin: i.OwnerLogin,
			Total:      i.Total,
			Currency:   i.Currency,
		})
	}

	data, err := json.MarshalIndent(stored, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing snapshot file: %w", err)
	}
	return nil
}
