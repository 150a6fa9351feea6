package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var searchJSON bool

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search chats and contacts",
	Long: `Searches every chat and contact in the snapshot.
Matches display names, logins (dots ignored) and room names; results are
ordered by match quality, with exact login matches first and rooms last.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
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

	list, err := optionsService.SearchOptions(context.Background(), session, query)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return outputListJSON(cmd, list)
	}
	return outputListTable(cmd, list)
}
