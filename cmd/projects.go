// ABOUTME: Project commands for the orincore-admin CLI
// ABOUTME: Scripted list, create, update, and delete of portfolio projects

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
	projectTitle       string
	projectDescription string
	projectTech        string
	projectRepoURL     string
	projectLiveURL     string
	projectImageFiles  []string
	projectImageURLs   []string
	projectClearImages bool
	projectYes         bool
)

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "Manage portfolio projects",
}

var projectsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List portfolio projects",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		if code := runProjectsList(ctx, os.Stdout); code != 0 {
			os.Exit(code)
		}
	},
}

var projectsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a portfolio project",
	Long: `Create a project. Title and description are required; images are
staged from local files (--image) and already-hosted URLs (--image-url).

Exit codes:
  0 - Created
  1 - Backend rejected the request or network failure
  2 - Invalid input`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		if code := runProjectsCreate(ctx, os.Stdout); code != 0 {
			os.Exit(code)
		}
	},
}

var projectsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a portfolio project",
	Long: `Update a project. Unspecified flags keep the current values; the
existing hosted images are kept unless --clear-images is given. New
--image and --image-url entries are appended.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		if code := runProjectsUpdate(ctx, os.Stdout, cmd, args[0]); code != 0 {
			os.Exit(code)
		}
	},
}

var projectsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a portfolio project",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		if code := runProjectsDelete(ctx, os.Stdout, args[0]); code != 0 {
			os.Exit(code)
		}
	},
}

func init() {
	rootCmd.AddCommand(projectsCmd)
	projectsCmd.AddCommand(projectsListCmd)
	projectsCmd.AddCommand(projectsCreateCmd)
	projectsCmd.AddCommand(projectsUpdateCmd)
	projectsCmd.AddCommand(projectsDeleteCmd)

	for _, c := range []*cobra.Command{projectsCreateCmd, projectsUpdateCmd} {
		c.Flags().StringVar(&projectTitle, "title", "", "Project title")
		c.Flags().StringVar(&projectDescription, "description", "", "Project description")
		c.Flags().StringVar(&projectTech, "tech", "", "Comma-separated tech stack")
		c.Flags().StringVar(&projectRepoURL, "repo-url", "", "Repository URL")
		c.Flags().StringVar(&projectLiveURL, "live-url", "", "Live site URL")
		c.Flags().StringArrayVar(&projectImageFiles, "image", nil, "Local image file to upload (repeatable)")
		c.Flags().StringArrayVar(&projectImageURLs, "image-url", nil, "Already-hosted image URL to keep (repeatable)")
	}
	projectsUpdateCmd.Flags().BoolVar(&projectClearImages, "clear-images", false, "Drop the project's existing hosted images")
	projectsDeleteCmd.Flags().BoolVar(&projectYes, "yes", false, "Skip the confirmation prompt")
}

func runProjectsList(ctx context.Context, w io.Writer) int {
	client := newClient(newSession())
	items, err := client.ListProjects(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %s\n", api.ErrorMessage(err, "Failed to load projects."))
		return 1
	}

	if IsJSONOutput() {
		out, _ := json.MarshalIndent(items, "", "  ")
		fmt.Fprintln(w, string(out))
		return 0
	}

	if len(items) == 0 {
		fmt.Fprintln(w, "No projects found.")
		return 0
	}
	for _, p := range items {
		fmt.Fprintf(w, "%s  %s", p.ID, p.Title)
		if len(p.TechStack) > 0 {
			fmt.Fprintf(w, "  [%s]", strings.Join(p.TechStack, ", "))
		}
		if n := len(p.ImageURLs); n > 0 {
			fmt.Fprintf(w, "  (%d images)", n)
		}
		fmt.Fprintln(w)
	}
	return 0
}

// stagedImages builds the image list from the repeatable flags: hosted
// URLs first, then local files, matching how the console submits them.
func stagedImages() ([]api.ImageRef, error) {
	var images []api.ImageRef
	for _, url := range projectImageURLs {
		images = append(images, api.ExistingImage(url))
	}
	for _, path := range projectImageFiles {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("image %s: %w", path, err)
		}
		images = append(images, api.PendingImage(path))
	}
	return images, nil
}

func runProjectsCreate(ctx context.Context, w io.Writer) int {
	if strings.TrimSpace(projectTitle) == "" || strings.TrimSpace(projectDescription) == "" {
		fmt.Fprintln(w, "Error: --title and --description are required")
		return 2
	}
	images, err := stagedImages()
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	draft := api.ProjectDraft{
		Title:       projectTitle,
		Description: projectDescription,
		TechStack:   api.SplitList(projectTech),
		RepoURL:     projectRepoURL,
		LiveURL:     projectLiveURL,
		Images:      images,
	}

	client := newClient(newSession())
	created, err := client.CreateProject(ctx, draft)
	if err != nil {
		fmt.Fprintf(w, "Error: %s\n", api.ErrorMessage(err, "Failed to create project."))
		return 1
	}
	fmt.Fprintf(w, "Project created! (%s)\n", created.ID)
	return 0
}

func runProjectsUpdate(ctx context.Context, w io.Writer, cmd *cobra.Command, id string) int {
	client := newClient(newSession())

	existing, err := findProject(ctx, client, id)
	if err != nil {
		fmt.Fprintf(w, "Error: %s\n", api.ErrorMessage(err, "Failed to load projects."))
		return 1
	}
	if existing == nil {
		fmt.Fprintf(w, "Error: no project with id %s\n", id)
		return 2
	}

	draft := api.ProjectDraft{
		Title:       existing.Title,
		Description: existing.Description,
		TechStack:   existing.TechStack,
		RepoURL:     existing.RepoURL,
		LiveURL:     existing.LiveURL,
	}
	if cmd.Flags().Changed("title") {
		draft.Title = projectTitle
	}
	if cmd.Flags().Changed("description") {
		draft.Description = projectDescription
	}
	if cmd.Flags().Changed("tech") {
		draft.TechStack = api.SplitList(projectTech)
	}
	if cmd.Flags().Changed("repo-url") {
		draft.RepoURL = projectRepoURL
	}
	if cmd.Flags().Changed("live-url") {
		draft.LiveURL = projectLiveURL
	}

	if !projectClearImages {
		for _, url := range existing.ImageURLs {
			draft.Images = append(draft.Images, api.ExistingImage(url))
		}
	}
	added, err := stagedImages()
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}
	draft.Images = append(draft.Images, added...)

	if strings.TrimSpace(draft.Title) == "" || strings.TrimSpace(draft.Description) == "" {
		fmt.Fprintln(w, "Error: title and description cannot be empty")
		return 2
	}

	if _, err := client.UpdateProject(ctx, id, draft); err != nil {
		fmt.Fprintf(w, "Error: %s\n", api.ErrorMessage(err, "Failed to update project."))
		return 1
	}
	fmt.Fprintln(w, "Project updated!")
	return 0
}

// findProject resolves an id against the full listing. The backend has
// no single-project read, so the listing is the lookup.
func findProject(ctx context.Context, client *api.Client, id string) (*api.Project, error) {
	items, err := client.ListProjects(ctx)
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

func runProjectsDelete(ctx context.Context, w io.Writer, id string) int {
	if !projectYes {
		fmt.Fprintln(w, "Refusing to delete without --yes")
		return 2
	}
	client := newClient(newSession())
	if err := client.DeleteProject(ctx, id); err != nil {
		fmt.Fprintf(w, "Error: %s\n", api.ErrorMessage(err, "Failed to delete project."))
		return 1
	}
	fmt.Fprintln(w, "Project deleted.")
	return 0
}
