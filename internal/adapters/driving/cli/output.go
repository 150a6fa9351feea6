package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/qispark/chatpick/internal/core/domain"
)

// outputListJSON prints an option list as indented JSON.
func outputListJSON(cmd *cobra.Command, list domain.OptionList) error {
	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal options: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

// outputListTable prints an option list as readable sections.
func outputListTable(cmd *cobra.Command, list domain.OptionList) error {
	if len(list.RecentReports) == 0 && len(list.PersonalDetails) == 0 && list.UserToInvite == nil {
		cmd.Println("No results found.")
		return nil
	}

	if len(list.RecentReports) > 0 {
		cmd.Println("Recent chats:")
		for i := range list.RecentReports {
			printOption(cmd, &list.RecentReports[i])
		}
		cmd.Println()
	}

	if len(list.PersonalDetails) > 0 {
		cmd.Println("Contacts:")
		for i := range list.PersonalDetails {
			printOption(cmd, &list.PersonalDetails[i])
		}
		cmd.Println()
	}

	if list.UserToInvite != nil {
		cmd.Printf("Invite: %s\n", list.UserToInvite.Text)
	}

	return nil
}

// printOption prints one option row with its status markers.
func printOption(cmd *cobra.Command, opt *domain.Option) {
	var markers []string
	if opt.IsPinned {
		markers = append(markers, "pinned")
	}
	if opt.IsUnread {
		markers = append(markers, "unread")
	}
	if opt.HasDraftComment {
		markers = append(markers, "draft")
	}
	if opt.HasOutstandingIOU {
		markers = append(markers, "owes")
	}
	if opt.IsArchivedRoom {
		markers = append(markers, "archived")
	}
	if opt.BrickRoadIndicator {
		markers = append(markers, "error")
	}

	suffix := ""
	if len(markers) > 0 {
		suffix = " [" + strings.Join(markers, ", ") + "]"
	}

	cmd.Printf("  %s%s\n", opt.Text, suffix)
	if opt.AlternateText != "" && opt.AlternateText != opt.Text {
		cmd.Printf("      %s\n", opt.AlternateText)
	}
}
