package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/qispark/chatpick/internal/core/ports/driving"
)

var (
	sidebarCompact bool
	sidebarActive  int64
	sidebarJSON    bool
)

var sidebarCmd = &cobra.Command{
	Use:   "sidebar",
	Short: "Show the chat sidebar",
	Long: `Derives the chat sidebar list from the snapshot.

The default mode shows every chat most-recent-first with pinned chats,
owed debts and drafts lifted to the top. Compact mode hides read chats
and sorts by name.`,
	Args: cobra.NoArgs,
	RunE: runSidebar,
}

func init() {
	sidebarCmd.Flags().BoolVar(&sidebarCompact, "compact", false, "hide read chats and sort by name")
	sidebarCmd.Flags().Int64Var(&sidebarActive, "active", 0, "report ID of the currently open chat")
	sidebarCmd.Flags().BoolVar(&sidebarJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(sidebarCmd)
}

func runSidebar(cmd *cobra.Command, _ []string) error {
	if optionsService == nil {
		return errors.New("options service not configured")
	}

	session, err := currentSession()
	if err != nil {
		return err
	}

	mode := driving.SidebarModeDefault
	if sidebarCompact {
		mode = driving.SidebarModeCompact
	}

	list, err := optionsService.SidebarOptions(context.Background(), session, mode, sidebarActive)
	if err != nil {
		return fmt.Errorf("sidebar failed: %w", err)
	}

	if sidebarJSON {
		return outputListJSON(cmd, list)
	}
	return outputListTable(cmd, list)
}
