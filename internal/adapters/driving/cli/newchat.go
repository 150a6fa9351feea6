package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var newChatJSON bool

var newChatCmd = &cobra.Command{
	Use:   "new-chat [query]",
	Short: "Pick someone to start a chat with",
	Long: `Lists people to start a new chat with: the five most recent direct
chats, then every other contact. Rooms are excluded. An email or phone
number nobody owns yet becomes an invite suggestion.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNewChat,
}

func init() {
	newChatCmd.Flags().BoolVar(&newChatJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(newChatCmd)
}

func runNewChat(cmd *cobra.Command, args []string) error {
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

	list, err := optionsService.NewChatOptions(context.Background(), session, query)
	if err != nil {
		return fmt.Errorf("new-chat failed: %w", err)
	}

	if newChatJSON {
		return outputListJSON(cmd, list)
	}
	return outputListTable(cmd, list)
}
