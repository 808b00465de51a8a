// ABOUTME: Login and logout commands for the orincore-admin CLI
// ABOUTME: Obtains a bearer token and persists it for later commands

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/charmbracelet/huh"
	"github.com/orincore/portfolio-admin/internal/api"
	"github.com/orincore/portfolio-admin/internal/tui/styles"
	"github.com/spf13/cobra"
)

var loginEmail string

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in as admin and persist the session token",
	Long: `Authenticate against the backend and store the access token in the
config directory. Later commands and the console reuse it.

Exit codes:
  0 - Logged in
  1 - Authentication rejected or network failure
  2 - Invalid input`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runLogin(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the persisted session token",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := newSession().Clear(); err != nil {
			return fmt.Errorf("failed to clear session: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Admin email (prompted when omitted)")
}

// runLogin prompts for missing credentials, authenticates, and persists
// the token.
func runLogin(ctx context.Context, w io.Writer) int {
	email := loginEmail
	var password string

	var fields []huh.Field
	if email == "" {
		fields = append(fields, huh.NewInput().
			Title("Email").
			Value(&email).
			Validate(requireValue("email")))
	}
	fields = append(fields, huh.NewInput().
		Title("Password").
		EchoMode(huh.EchoModePassword).
		Value(&password).
		Validate(requireValue("password")))

	form := huh.NewForm(huh.NewGroup(fields...).Title("Admin Login")).
		WithTheme(styles.FormTheme())
	if err := form.RunWithContext(ctx); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	sess := newSession()
	client := newClient(sess)

	token, err := client.Login(ctx, email, password)
	if err != nil {
		fmt.Fprintf(w, "Error: %s\n", api.ErrorMessage(err, "Invalid credentials"))
		return 1
	}
	if err := sess.Save(token); err != nil {
		fmt.Fprintf(w, "Error: failed to persist session: %v\n", err)
		return 1
	}

	fmt.Fprintln(w, "Logged in.")
	return 0
}

func requireValue(name string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", name)
		}
		return nil
	}
}
