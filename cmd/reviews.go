// ABOUTME: Review commands for the orincore-admin CLI
// ABOUTME: Scripted list, submit, update, and delete of client reviews

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
	reviewName     string
	reviewEmail    string
	reviewRating   int
	reviewFeedback string
	reviewProject  string
	reviewYes      bool
)

var reviewsCmd = &cobra.Command{
	Use:   "reviews",
	Short: "Manage client reviews",
}

var reviewsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List client reviews",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		if code := runReviewsList(ctx, os.Stdout); code != 0 {
			os.Exit(code)
		}
	},
}

var reviewsSubmitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Submit a review as a visitor",
	Long: `Submit a new review through the public endpoint. No session needed.

Exit codes:
  0 - Submitted
  1 - Backend rejected the request or network failure
  2 - Invalid input`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		if code := runReviewsSubmit(ctx, os.Stdout); code != 0 {
			os.Exit(code)
		}
	},
}

var reviewsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a review",
	Long:  `Update a review. Unspecified flags keep the current values.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		if code := runReviewsUpdate(ctx, os.Stdout, cmd, args[0]); code != 0 {
			os.Exit(code)
		}
	},
}

var reviewsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a review",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		if code := runReviewsDelete(ctx, os.Stdout, args[0]); code != 0 {
			os.Exit(code)
		}
	},
}

func init() {
	rootCmd.AddCommand(reviewsCmd)
	reviewsCmd.AddCommand(reviewsListCmd)
	reviewsCmd.AddCommand(reviewsSubmitCmd)
	reviewsCmd.AddCommand(reviewsUpdateCmd)
	reviewsCmd.AddCommand(reviewsDeleteCmd)

	for _, c := range []*cobra.Command{reviewsSubmitCmd, reviewsUpdateCmd} {
		c.Flags().StringVar(&reviewName, "name", "", "Reviewer name")
		c.Flags().StringVar(&reviewEmail, "email", "", "Reviewer email")
		c.Flags().IntVar(&reviewRating, "rating", 0, "Rating from 1 to 5")
		c.Flags().StringVar(&reviewFeedback, "feedback", "", "Review text")
		c.Flags().StringVar(&reviewProject, "project", "", "Project the review refers to")
	}
	reviewsDeleteCmd.Flags().BoolVar(&reviewYes, "yes", false, "Skip the confirmation prompt")
}

func runReviewsList(ctx context.Context, w io.Writer) int {
	client := newClient(newSession())
	items, err := client.ListReviews(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %s\n", api.ErrorMessage(err, "Failed to load reviews."))
		return 1
	}

	if IsJSONOutput() {
		out, _ := json.MarshalIndent(items, "", "  ")
		fmt.Fprintln(w, string(out))
		return 0
	}

	if len(items) == 0 {
		fmt.Fprintln(w, "No reviews found.")
		return 0
	}
	for _, r := range items {
		project := r.Project
		if project == "" {
			project = "-"
		}
		fmt.Fprintf(w, "%s  %d/5  %s  %s\n", r.ID, r.Rating, r.Name, project)
	}
	return 0
}

func validReviewInput(w io.Writer, requireAll bool) bool {
	if requireAll {
		if strings.TrimSpace(reviewName) == "" || strings.TrimSpace(reviewEmail) == "" || strings.TrimSpace(reviewFeedback) == "" {
			fmt.Fprintln(w, "Error: --name, --email, and --feedback are required")
			return false
		}
	}
	if reviewRating < 1 || reviewRating > 5 {
		fmt.Fprintln(w, "Error: --rating must be between 1 and 5")
		return false
	}
	return true
}

func runReviewsSubmit(ctx context.Context, w io.Writer) int {
	if !validReviewInput(w, true) {
		return 2
	}

	draft := api.ReviewDraft{
		Name:     reviewName,
		Email:    reviewEmail,
		Rating:   reviewRating,
		Feedback: reviewFeedback,
		Project:  reviewProject,
	}

	client := newClient(newSession())
	if _, err := client.SubmitReview(ctx, draft); err != nil {
		fmt.Fprintf(w, "Error: %s\n", api.ErrorMessage(err, "Failed to submit review."))
		return 1
	}
	fmt.Fprintln(w, "Review submitted!")
	return 0
}

func runReviewsUpdate(ctx context.Context, w io.Writer, cmd *cobra.Command, id string) int {
	client := newClient(newSession())

	existing, err := findReview(ctx, client, id)
	if err != nil {
		fmt.Fprintf(w, "Error: %s\n", api.ErrorMessage(err, "Failed to load reviews."))
		return 1
	}
	if existing == nil {
		fmt.Fprintf(w, "Error: no review with id %s\n", id)
		return 2
	}

	draft := api.ReviewDraft{
		Name:     existing.Name,
		Email:    existing.Email,
		Rating:   existing.Rating,
		Feedback: existing.Feedback,
		Project:  existing.Project,
	}
	if cmd.Flags().Changed("name") {
		draft.Name = reviewName
	}
	if cmd.Flags().Changed("email") {
		draft.Email = reviewEmail
	}
	if cmd.Flags().Changed("rating") {
		draft.Rating = reviewRating
	}
	if cmd.Flags().Changed("feedback") {
		draft.Feedback = reviewFeedback
	}
	if cmd.Flags().Changed("project") {
		draft.Project = reviewProject
	}

	if draft.Rating < 1 || draft.Rating > 5 {
		fmt.Fprintln(w, "Error: rating must be between 1 and 5")
		return 2
	}

	if _, err := client.UpdateReview(ctx, id, draft); err != nil {
		fmt.Fprintf(w, "Error: %s\n", api.ErrorMessage(err, "Failed to update review."))
		return 1
	}
	fmt.Fprintln(w, "Review updated!")
	return 0
}

func findReview(ctx context.Context, client *api.Client, id string) (*api.Review, error) {
	items, err := client.ListReviews(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].Key() == id {
			return &items[i], nil
		}
	}
	return nil, nil
}

func runReviewsDelete(ctx context.Context, w io.Writer, id string) int {
	if !reviewYes {
		fmt.Fprintln(w, "Refusing to delete without --yes")
		return 2
	}
	client := newClient(newSession())
	if err := client.DeleteReview(ctx, id); err != nil {
		fmt.Fprintf(w, "Error: %s\n", api.ErrorMessage(err, "Failed to delete review."))
		return 1
	}
	fmt.Fprintln(w, "Review deleted.")
	return 0
}
