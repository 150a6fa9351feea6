package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/qispark/chatpick/internal/adapters/driven/storage/file"
	"github.com/qispark/chatpick/internal/core/domain"
)

var seedForce bool

var seedCmd = &cobra.Command{
	Use:   "seed [path]",
	Short: "Write a demo snapshot file",
	Long: `Writes a small demo snapshot (reports, contacts, a workspace, a room
and an outstanding debt) to the given path, or to the default snapshot
location when no path is given. Useful for trying the picker commands
without real data.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().BoolVar(&seedForce, "force", false, "overwrite an existing file")
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, args []string) error {
	path := ""
	if len(args) == 1 {
		path = args[0]
	}
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("getting home directory: %w", err)
		}
		path = filepath.Join(home, ".chatpick", "snapshot.json")
	}

	if !seedForce {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("creating snapshot directory: %w", err)
	}
	if err := file.WriteSnapshot(path, demoSnapshot()); err != nil {
		return err
	}

	cmd.Printf("Wrote demo snapshot to %s\n", path)
	cmd.Println("Try: chatpick login me@example.com --betas all && chatpick sidebar")
	return nil
}

// demoSnapshot builds a small data set that exercises every picker feature.
func demoSnapshot() *file.Snapshot {
	return &file.Snapshot{
		Reports: []domain.Report{
			{
				ReportID:             1,
				Participants:         []string{"alice@example.com"},
				LastMessageText:      "See you tomorrow!",
				LastActorLogin:       "alice@example.com",
				LastMessageTimestamp: 1724990000,
				IsUnread:             true,
			},
			{
				ReportID:             2,
				Participants:         []string{"bob@example.com"},
				LastMessageText:      "Thanks for lunch",
				LastActorLogin:       "me@example.com",
				LastMessageTimestamp: 1724980000,
				IsPinned:             true,
			},
			{
				ReportID:             3,
				Participants:         []string{"alice@example.com", "bob@example.com"},
				LastMessageText:      "Team dinner on Friday?",
				LastActorLogin:       "bob@example.com",
				LastMessageTimestamp: 1724970000,
				HasDraft:             true,
			},
			{
				ReportID:             4,
				ReportName:           "#announce",
				ChatType:             domain.ChatTypePolicyAnnounce,
				PolicyID:             "workspace-1",
				LastMessageText:      "Welcome aboard!",
				LastActorLogin:       "carol@example.com",
				LastMessageTimestamp: 1724960000,
			},
			{
				ReportID:             5,
				Participants:         []string{"carol@example.com"},
				LastMessageText:      "Owed for the taxi",
				LastActorLogin:       "carol@example.com",
				LastMessageTimestamp: 1724950000,
				HasOutstandingIOU:    true,
				IOUReportID:          50,
			},
		},
		Actions: []domain.ReportAction{
			{
				ActionID:   uuid.New().String(),
				ReportID:   1,
				ActorLogin: "alice@example.com",
				Message:    "See you tomorrow!",
				Timestamp:  1724990000,
			},
			{
				ActionID:   uuid.New().String(),
				ReportID:   5,
				ActorLogin: "carol@example.com",
				Message:    "Owed for the taxi",
				Timestamp:  1724950000,
			},
		},
		Details: []domain.PersonalDetail{
			{Login: "alice@example.com", DisplayName: "Alice Ray", FirstName: "Alice", LastName: "Ray"},
			{Login: "bob@example.com", DisplayName: "Bob River", FirstName: "Bob", LastName: "River"},
			{Login: "carol@example.com", DisplayName: "Carol Stone", FirstName: "Carol", LastName: "Stone"},
			{Login: "dana@example.com", DisplayName: "Dana Wells", FirstName: "Dana", LastName: "Wells"},
		},
		Policies: []domain.Policy{
			{PolicyID: "workspace-1", Name: "Example Workspace", Type: domain.PolicyTypeTeam},
		},
		IOUs: []domain.IOUReport{
			{ReportID: 50, OwnerLogin: "carol@example.com", Total: 2350, Currency: "USD"},
		},
	}
}
