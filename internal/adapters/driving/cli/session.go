package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/qispark/chatpick/internal/core/domain"
)

var (
	loginBetas   []string
	loginLocale  string
	loginCountry string
)

var loginCmd = &cobra.Command{
	Use:   "login [email]",
	Short: "Configure the signed-in user",
	Long: `Stores the signed-in user's login, betas, locale and country code.
All picker commands derive their results relative to this user.`,
	Args: cobra.ExactArgs(1),
	RunE: runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the signed-in user",
	Args:  cobra.NoArgs,
	RunE:  runLogout,
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in user",
	Args:  cobra.NoArgs,
	RunE:  runWhoami,
}

func init() {
	loginCmd.Flags().StringSliceVar(&loginBetas, "betas", nil,
		"betas to grant (all, defaultRooms, policyRooms, policyExpenseChat, conciergeInvite)")
	loginCmd.Flags().StringVar(&loginLocale, "locale", "en", "locale for localised strings")
	loginCmd.Flags().StringVar(&loginCountry, "country", "1", "country calling code for phone numbers")
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
}

func runLogin(cmd *cobra.Command, args []string) error {
	if sessionStore == nil {
		return errors.New("session store not configured")
	}

	session := domain.Session{
		CurrentUserLogin: args[0],
		Locale:           loginLocale,
		CountryCode:      loginCountry,
	}
	for _, beta := range loginBetas {
		session.Betas = append(session.Betas, domain.Beta(beta))
	}

	if err := sessionStore.Save(session); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}

	cmd.Printf("Logged in as %s\n", session.CurrentUserLogin)
	return nil
}

func runLogout(cmd *cobra.Command, _ []string) error {
	if sessionStore == nil {
		return errors.New("session store not configured")
	}

	if _, err := sessionStore.Load(); errors.Is(err, domain.ErrNoSession) {
		cmd.Println("No user configured.")
		return nil
	} else if err != nil {
		return err
	}

	if err := os.Remove(sessionStore.Path()); err != nil {
		return fmt.Errorf("removing session: %w", err)
	}

	cmd.Println("Logged out.")
	return nil
}

func runWhoami(cmd *cobra.Command, _ []string) error {
	session, err := currentSession()
	if err != nil {
		return err
	}

	cmd.Printf("Login:   %s\n", session.CurrentUserLogin)
	cmd.Printf("Locale:  %s\n", session.Locale)
	cmd.Printf("Country: +%s\n", session.CountryCode)
	if len(session.Betas) > 0 {
		betas := make([]string, 0, len(session.Betas))
		for _, beta := range session.Betas {
			betas = append(betas, string(beta))
		}
		cmd.Printf("Betas:   %s\n", strings.Join(betas, ", "))
	}
	return nil
}
