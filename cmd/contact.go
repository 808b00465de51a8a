// ABOUTME: Contact commands for the orincore-admin CLI
// ABOUTME: Inbox listing and deletion plus public message submission

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/orincore/portfolio-admin/internal/api"
	"github.com/spf13/cobra"
)

var (
	contactName    string
	contactEmail   string
	contactPhone   string
	contactSubject string
	contactBody    string
	contactYes     bool
)

var contactCmd = &cobra.Command{
	Use:   "contact",
	Short: "Manage the contact inbox",
}

var contactListCmd = &cobra.Command{
	Use:   "list",
	Short: "List contact submissions",
	Long: `List the contact inbox. Requires an admin session.

Exit codes:
  0 - Listed
  1 - Unauthorized, backend error, or network failure`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		if code := runContactList(ctx, os.Stdout); code != 0 {
			os.Exit(code)
		}
	},
}

var contactSendCmd = &cobra.Command{
	Use:   "send",
	Short: "Send a contact message as a visitor",
	Long:  `Send a message through the public contact endpoint. No session needed.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		if code := runContactSend(ctx, os.Stdout); code != 0 {
			os.Exit(code)
		}
	},
}

var contactDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a contact submission",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		if code := runContactDelete(ctx, os.Stdout, args[0]); code != 0 {
			os.Exit(code)
		}
	},
}

func init() {
	rootCmd.AddCommand(contactCmd)
	contactCmd.AddCommand(contactListCmd)
	contactCmd.AddCommand(contactSendCmd)
	contactCmd.AddCommand(contactDeleteCmd)

	contactSendCmd.Flags().StringVar(&contactName, "name", "", "Sender name")
	contactSendCmd.Flags().StringVar(&contactEmail, "email", "", "Sender email")
	contactSendCmd.Flags().StringVar(&contactPhone, "phone", "", "Sender phone (optional)")
	contactSendCmd.Flags().StringVar(&contactSubject, "subject", "", "Message subject")
	contactSendCmd.Flags().StringVar(&contactBody, "message", "", "Message body")
	contactDeleteCmd.Flags().BoolVar(&contactYes, "yes", false, "Skip the confirmation prompt")
}

func runContactList(ctx context.Context, w io.Writer) int {
	client := newClient(newSession())
	items, err := client.ListContacts(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %s\n", api.ErrorMessage(err, "Failed to load contact submissions."))
		return 1
	}

	if IsJSONOutput() {
		out, _ := json.MarshalIndent(items, "", "  ")
		fmt.Fprintln(w, string(out))
		return 0
	}

	if len(items) == 0 {
		fmt.Fprintln(w, "No contact submissions.")
		return 0
	}
	for _, c := range items {
		subject := c.Subject
		if subject == "" {
			subject = "(no subject)"
		}
		fmt.Fprintf(w, "%s  %s <%s>  %s\n", c.ID, c.Name, c.Email, subject)
	}
	return 0
}

func runContactSend(ctx context.Context, w io.Writer) int {
	if strings.TrimSpace(contactName) == "" || strings.TrimSpace(contactEmail) == "" ||
		strings.TrimSpace(contactSubject) == "" || strings.TrimSpace(contactBody) == "" {
		fmt.Fprintln(w, "Error: --name, --email, --subject, and --message are required")
		return 2
	}

	msg := api.ContactMessage{
		Name:    contactName,
		Email:   contactEmail,
		Phone:   contactPhone,
		Subject: contactSubject,
		Message: contactBody,
	}

	client := newClient(newSession())
	if err := client.SendContact(ctx, msg); err != nil {
		fmt.Fprintf(w, "Error: %s\n", api.ErrorMessage(err, "Failed to send message."))
		return 1
	}
	fmt.Fprintln(w, "Message sent!")
	return 0
}

func runContactDelete(ctx context.Context, w io.Writer, id string) int {
	if !contactYes {
		fmt.Fprintln(w, "Refusing to delete without --yes")
		return 2
	}
	client := newClient(newSession())
	if err := client.DeleteContact(ctx, id); err != nil {
		fmt.Fprintf(w, "Error: %s\n", api.ErrorMessage(err, "Failed to delete submission."))
		return 1
	}
	fmt.Fprintln(w, "Submission deleted.")
	return 0
}
