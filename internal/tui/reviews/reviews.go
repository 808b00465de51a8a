// ABOUTME: Review management screen as a bubbletea model
// ABOUTME: List, edit with enforced 1-5 rating, and confirm-delete workflows

package reviews

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/orincore/portfolio-admin/internal/api"
	"github.com/orincore/portfolio-admin/internal/store"
	"github.com/orincore/portfolio-admin/internal/tui/flash"
	"github.com/orincore/portfolio-admin/internal/tui/icons"
	"github.com/orincore/portfolio-admin/internal/tui/styles"
)

type mode int

const (
	modeList mode = iota
	modeEdit
	modeConfirmDelete
)

type loadedMsg struct {
	items []api.Review
	err   error
}

type savedMsg struct {
	review *api.Review
	err    error
}

type deletedMsg struct {
	id  string
	err error
}

var ratingOptions = []huh.Option[int]{
	huh.NewOption("★☆☆☆☆  1 - Poor", 1),
	huh.NewOption("★★☆☆☆  2 - Fair", 2),
	huh.NewOption("★★★☆☆  3 - Good", 3),
	huh.NewOption("★★★★☆  4 - Very Good", 4),
	huh.NewOption("★★★★★  5 - Excellent", 5),
}

// Model is the reviews section of the admin console.
type Model struct {
	client *api.Client
	list   store.Collection[api.Review]
	cursor int
	mode   mode
	loaded bool

	// Edit buffer
	editingID string
	name      string
	email     string
	project   string
	feedback  string
	rating    int
	form      *huh.Form

	submitting bool
	deleting   bool
	deleteID   string
	flash      flash.Flash
	width      int
}

// New creates the reviews screen.
func New(client *api.Client) *Model {
	return &Model{client: client}
}

// Load fetches the review collection.
func (m *Model) Load() tea.Cmd {
	return func() tea.Msg {
		items, err := m.client.ListReviews(context.Background())
		return loadedMsg{items: items, err: err}
	}
}

// Count returns the number of cached reviews.
func (m *Model) Count() int { return m.list.Len() }

// Busy reports whether a form or confirmation owns the keyboard.
func (m *Model) Busy() bool { return m.mode != modeList }

// AverageRating returns the mean rating across cached reviews, 0 when
// there are none.
func (m *Model) AverageRating() float64 {
	items := m.list.Items()
	if len(items) == 0 {
		return 0
	}
	sum := 0
	for _, r := range items {
		sum += r.Rating
	}
	return float64(sum) / float64(len(items))
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case flash.ClearMsg:
		m.flash.Clear(msg)
		return m, nil

	case loadedMsg:
		m.loaded = true
		if msg.err != nil {
			return m, m.flash.Error(api.ErrorMessage(msg.err, "Failed to load reviews."))
		}
		m.list.Replace(msg.items)
		if m.cursor >= m.list.Len() {
			m.cursor = 0
		}
		return m, nil

	case savedMsg:
		m.submitting = false
		if msg.err != nil {
			// The completed form would re-fire the request on the next
			// keypress; rebuild it around the kept buffer so the user can
			// revise and resubmit deliberately.
			m.form = m.createForm()
			return m, tea.Batch(
				m.flash.Error(api.ErrorMessage(msg.err, "Failed to update review.")),
				m.form.Init(),
			)
		}
		m.mode = modeList
		m.resetBuffer()
		m.list.Patch(*msg.review)
		return m, m.flash.Set("Review updated!")

	case deletedMsg:
		m.deleting = false
		if msg.err != nil {
			return m, m.flash.Error(api.ErrorMessage(msg.err, "Failed to delete review."))
		}
		m.list.Remove(msg.id)
		m.deleteID = ""
		m.mode = modeList
		if m.cursor >= m.list.Len() && m.cursor > 0 {
			m.cursor--
		}
		return m, m.flash.Set("Review deleted.")

	case tea.KeyMsg:
		switch m.mode {
		case modeList:
			return m.updateList(msg)
		case modeConfirmDelete:
			return m.updateConfirm(msg)
		}
	}

	if m.mode == modeEdit {
		return m.updateForm(msg)
	}
	return m, nil
}

func (m *Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < m.list.Len()-1 {
			m.cursor++
		}
	case "r":
		return m, m.Load()
	case "e":
		if item, ok := m.selected(); ok {
			m.openEdit(item)
			return m, m.form.Init()
		}
	case "d":
		if item, ok := m.selected(); ok {
			m.deleteID = item.Key()
			m.mode = modeConfirmDelete
		}
	}
	return m, nil
}

func (m *Model) selected() (api.Review, bool) {
	items := m.list.Items()
	if m.cursor < 0 || m.cursor >= len(items) {
		return api.Review{}, false
	}
	return items[m.cursor], true
}

// openEdit copies the review into the edit buffer. The feedback field
// already carries the message-alias fallback from the API layer.
func (m *Model) openEdit(r api.Review) {
	m.editingID = r.Key()
	m.name = r.Name
	m.email = r.Email
	m.project = r.Project
	m.feedback = r.Feedback
	m.rating = r.Rating
	m.mode = modeEdit
	m.form = m.createForm()
}

func (m *Model) resetBuffer() {
	m.editingID = ""
	m.name = ""
	m.email = ""
	m.project = ""
	m.feedback = ""
	m.rating = 0
}

func (m *Model) createForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&m.name).
				Validate(requireField("name")),
			huh.NewInput().
				Title("Email").
				Value(&m.email).
				Validate(requireField("email")),
			huh.NewInput().
				Title("Project").
				Value(&m.project),
			huh.NewText().
				Title("Feedback").
				Value(&m.feedback).
				Validate(requireField("feedback")),
			huh.NewSelect[int]().
				Title("Rating").
				Options(ratingOptions...).
				Value(&m.rating).
				Validate(validateRating),
		).Title("Edit Review"),
	).WithTheme(styles.FormTheme())
}

func requireField(name string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", name)
		}
		return nil
	}
}

func validateRating(r int) error {
	if r < 1 || r > 5 {
		return fmt.Errorf("rating must be between 1 and 5")
	}
	return nil
}

func (m *Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok && km.String() == "esc" {
		m.mode = modeList
		m.resetBuffer()
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	if m.form.State == huh.StateCompleted {
		return m, m.submit()
	}
	return m, cmd
}

func (m *Model) submit() tea.Cmd {
	if m.submitting {
		return nil
	}
	// Re-checked outside the form so an unset rating can never reach the
	// network, per the edit contract.
	if m.rating < 1 || m.rating > 5 {
		return m.flash.Error("Rating must be between 1 and 5.")
	}
	m.submitting = true

	draft := api.ReviewDraft{
		Name:     m.name,
		Email:    m.email,
		Rating:   m.rating,
		Feedback: m.feedback,
		Project:  m.project,
	}
	id := m.editingID
	return func() tea.Msg {
		updated, err := m.client.UpdateReview(context.Background(), id, draft)
		return savedMsg{review: updated, err: err}
	}
}

func (m *Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		if m.deleting || m.deleteID == "" {
			return m, nil
		}
		m.deleting = true
		id := m.deleteID
		return m, func() tea.Msg {
			err := m.client.DeleteReview(context.Background(), id)
			return deletedMsg{id: id, err: err}
		}
	case "n", "esc":
		m.deleteID = ""
		m.mode = modeList
	}
	return m, nil
}

// View implements tea.Model
func (m *Model) View() string {
	var sb strings.Builder

	avg := m.AverageRating()
	sb.WriteString(styles.Title.Render(fmt.Sprintf("%s Manage Reviews (%d, avg %.1f)", icons.Review.String(), m.list.Len(), avg)))
	sb.WriteString("\n")

	if text := m.flash.Text(); text != "" {
		style := styles.StatusOK
		if !m.flash.OK() {
			style = styles.StatusError
		}
		sb.WriteString(style.Render(text))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	switch m.mode {
	case modeEdit:
		sb.WriteString(m.form.View())
	case modeConfirmDelete:
		sb.WriteString(m.viewConfirm())
	default:
		sb.WriteString(m.viewList())
	}

	return sb.String()
}

func (m *Model) viewList() string {
	if !m.loaded {
		return styles.Subtitle.Render("Loading reviews...")
	}
	items := m.list.Items()
	if len(items) == 0 {
		return styles.Subtitle.Render("No reviews found.") + "\n" + helpLine("r Refresh")
	}

	var sb strings.Builder
	for i, r := range items {
		marker := "  "
		style := styles.NormalRow
		if i == m.cursor {
			marker = "> "
			style = styles.SelectedRow
		}
		project := r.Project
		if project == "" {
			project = "N/A"
		}
		line := fmt.Sprintf("%s %s  %s", styles.Stars(r.Rating), style.Render(r.Name), styles.Badge.Render(project))
		sb.WriteString(marker + line + "\n")
		if i == m.cursor {
			text := r.Feedback
			if len(text) > 80 {
				text = text[:80] + "…"
			}
			sb.WriteString("    " + styles.Subtitle.Render(text) + "\n")
		}
	}
	sb.WriteString(helpLine("e Edit", "d Delete", "r Refresh"))
	return sb.String()
}

func (m *Model) viewConfirm() string {
	var sb strings.Builder
	sb.WriteString(styles.StatusError.Render("Delete Review?"))
	sb.WriteString("\n\n")
	sb.WriteString("Are you sure you want to delete this review? This action cannot be undone.\n")
	if m.deleting {
		sb.WriteString(styles.Subtitle.Render("Deleting..."))
		sb.WriteString("\n")
	}
	sb.WriteString(helpLine("y Delete", "n Cancel"))
	return sb.String()
}

func helpLine(entries ...string) string {
	var parts []string
	for _, e := range entries {
		kv := strings.SplitN(e, " ", 2)
		if len(kv) == 2 {
			parts = append(parts, styles.KeyStyle.Render(kv[0])+" "+styles.Subtitle.Render(kv[1]))
		} else {
			parts = append(parts, e)
		}
	}
	return "\n" + strings.Join(parts, "  ")
}
