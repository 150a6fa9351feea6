// Package cli implements the command-line interface.
package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/qispark/chatpick/internal/core/domain"
	"github.com/qispark/chatpick/internal/core/ports/driven"
	"github.com/qispark/chatpick/internal/core/ports/driving"
	"github.com/qispark/chatpick/internal/logger"
)

// version is overridden at build time via -ldflags.
var version = "0.1.0-dev"

var (
	optionsService driving.OptionsService
	sessionStore   driven.SessionStore

	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "chatpick",
	Short: "Derive chat picker option lists from local snapshot data",
	Long: `Chatpick filters, ranks and searches chat reports and contacts the way
a messaging client's sidebar and people pickers do.

Snapshot data (reports, profiles, workspaces, debts) is read from local
storage; commands derive renderable option lists from it.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// SetServices injects the services the commands run against.
func SetServices(options driving.OptionsService, sessions driven.SessionStore) {
	optionsService = options
	sessionStore = sessions
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// currentSession loads the stored session, translating a missing session
// into an actionable error.
func currentSession() (domain.Session, error) {
	if sessionStore == nil {
		return domain.Session{}, errors.New("session store not configured")
	}
	session, err := sessionStore.Load()
	if errors.Is(err, domain.ErrNoSession) {
		return domain.Session{}, errors.New("no user configured: run 'chatpick login <email>' first")
	}
	return session, err
}
