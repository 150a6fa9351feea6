package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	inviteExclude []string
	inviteJSON    bool
)

var inviteCmd = &cobra.Command{
	Use:   "invite [query]",
	Short: "Pick workspace members to invite",
	Long: `Lists contacts for a workspace invite picker, in snapshot order.
Existing members can be excluded by login. An email or phone number
nobody owns yet becomes an invite suggestion.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInvite,
}

func init() {
	inviteCmd.Flags().StringSliceVar(&inviteExclude, "exclude", nil, "logins to exclude (existing members)")
	inviteCmd.Flags().BoolVar(&inviteJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(inviteCmd)
}

func runInvite(cmd *cobra.Command, args []string) error {
	if optionsService == nil {
		return errors.New("options service not configured")
	}

	query := ""
	if len(args) == 1 {
		query = args[0]
	}

	session, err := currentSession()
	if err != nil {
		return err
	}

	list, err := optionsService.MemberInviteOptions(context.Background(), session, query, inviteExclude)
	if err != nil {
		return fmt.Errorf("invite failed: %w", err)
	}

	if inviteJSON {
		return outputListJSON(cmd, list)
	}
	return outputListTable(cmd, list)
}
