// ABOUTME: Root command for the orincore-admin CLI
// ABOUTME: Handles global flags, env config, and shared client wiring

package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/orincore/portfolio-admin/internal/api"
	"github.com/orincore/portfolio-admin/internal/session"
	"github.com/spf13/cobra"
)

var (
	apiURL     string
	jsonOutput bool
)

const defaultAPIURL = "https://api.orincore.com"

// rootCmd is the base command
var rootCmd = &cobra.Command{
	Use:   "orincore-admin",
	Short: "Admin console for the Orincore Technologies site",
	Long: `orincore-admin manages the portfolio, reviews, and contact inbox of the
Orincore Technologies site backend.

Run it with no arguments to open the interactive console, or use the
subcommands for scripted one-shot operations.

Environment Variables:
  ORINCORE_ADMIN_API_URL  Backend API URL (default: https://api.orincore.com)`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return consoleCmd.RunE(cmd, args)
	},
}

// Execute runs the root command
func Execute() error {
	// A local .env is optional; absence is not an error.
	_ = godotenv.Load()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Backend API URL (overrides ORINCORE_ADMIN_API_URL)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output JSON instead of human-readable text")
}

// GetAPIURL returns the API URL from flag, env, or default (in priority order)
func GetAPIURL() string {
	if apiURL != "" {
		return apiURL
	}
	if envURL := os.Getenv("ORINCORE_ADMIN_API_URL"); envURL != "" {
		return envURL
	}
	return defaultAPIURL
}

// IsJSONOutput returns whether JSON output is requested
func IsJSONOutput() bool {
	return jsonOutput
}

// newSession returns the persisted session store.
func newSession() *session.Store {
	return session.New(session.DefaultConfigDir())
}

// newClient builds an API client backed by the persisted session token.
func newClient(sess *session.Store) *api.Client {
	return api.New(GetAPIURL(), sess)
}
