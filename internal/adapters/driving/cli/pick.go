package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/qispark/chatpick/internal/adapters/driving/tui"
)

// pickCmd launches the interactive picker.
var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Launch the interactive chat picker",
	Long: `Launch the interactive terminal picker.

Type to filter recent chats and contacts with live search results.
The chosen chat or contact is printed on exit.

Controls:
  (type)   - Filter options
  ↑/↓      - Navigate options
  Enter    - Select
  Esc      - Quit without selecting`,
	Args: cobra.NoArgs,
	RunE: runPick,
}

func init() {
	rootCmd.AddCommand(pickCmd)
}

func runPick(cmd *cobra.Command, _ []string) error {
	// Recover with a stack trace so terminal corruption is debuggable.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in picker: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	if optionsService == nil {
		return errors.New("options service not configured")
	}

	session, err := currentSession()
	if err != nil {
		return err
	}

	app, err := tui.NewApp(optionsService, session)
	if err != nil {
		return fmt.Errorf("failed to create picker: %w", err)
	}
	app.WithContext(cmd.Context())

	chosen, err := app.Run()
	if err != nil {
		return fmt.Errorf("picker error: %w", err)
	}

	if chosen == nil {
		return nil
	}

	if chosen.Login != "" {
		cmd.Printf("%s <%s>\n", chosen.Text, chosen.Login)
	} else {
		cmd.Printf("%s (report %d)\n", chosen.Text, chosen.ReportID)
	}

	return nil
}
