// ABOUTME: Console command launching the interactive admin TUI
// ABOUTME: Thin wrapper that wires the client and session into the app

package cmd

import (
	"github.com/orincore/portfolio-admin/internal/tui"
	"github.com/spf13/cobra"
)

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Open the interactive admin console",
	Long: `Open the full-screen admin console.

A persisted session token skips the login screen. Manage projects,
reviews, and contact submissions interactively.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sess := newSession()
		return tui.Run(newClient(sess), sess)
	},
}

func init() {
	rootCmd.AddCommand(consoleCmd)
}
