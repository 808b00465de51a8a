// ABOUTME: Portfolio project management screen as a bubbletea model
// ABOUTME: List, create, edit (fields then images), and confirm-delete workflows

package projects

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
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
	modeFields
	modeImages
	modeConfirmDelete
)

type loadedMsg struct {
	items []api.Project
	err   error
}

type savedMsg struct {
	project *api.Project
	created bool
	err     error
}

type deletedMsg struct {
	id  string
	err error
}

// Model is the projects section of the admin console.
type Model struct {
	client *api.Client
	list   store.Collection[api.Project]
	cursor int
	mode   mode
	loaded bool

	// Edit buffer, distinct from the cached entities. editingID is empty
	// when creating.
	editingID   string
	title       string
	description string
	tech        string
	repoURL     string
	liveURL     string
	images      []api.ImageRef
	imgCursor   int
	imgInput    textinput.Model
	imgAdding   bool
	form        *huh.Form

	submitting bool
	deleting   bool
	deleteID   string
	flash      flash.Flash
	width      int
	height     int
}

// New creates the projects screen.
func New(client *api.Client) *Model {
	ti := textinput.New()
	ti.Placeholder = "https://cdn.example.com/shot.png or /path/to/shot.png"
	ti.CharLimit = 256
	ti.Width = 60
	return &Model{client: client, imgInput: ti}
}

// Load fetches the project collection. The response replaces the cached
// list wholesale.
func (m *Model) Load() tea.Cmd {
	return func() tea.Msg {
		items, err := m.client.ListProjects(context.Background())
		return loadedMsg{items: items, err: err}
	}
}

// Count returns the number of cached projects.
func (m *Model) Count() int { return m.list.Len() }

// Busy reports whether a form, image staging, or confirmation owns the
// keyboard.
func (m *Model) Busy() bool { return m.mode != modeList }

// Recent returns up to n most recently listed projects.
func (m *Model) Recent(n int) []api.Project {
	items := m.list.Items()
	if len(items) > n {
		items = items[:n]
	}
	return items
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
		m.height = msg.Height
		return m, nil

	case flash.ClearMsg:
		m.flash.Clear(msg)
		return m, nil

	case loadedMsg:
		m.loaded = true
		if msg.err != nil {
			return m, m.flash.Error(api.ErrorMessage(msg.err, "Failed to load projects."))
		}
		m.list.Replace(msg.items)
		if m.cursor >= m.list.Len() {
			m.cursor = 0
		}
		return m, nil

	case savedMsg:
		m.submitting = false
		if msg.err != nil {
			fallback := "Failed to update project."
			if msg.created {
				fallback = "Failed to create project."
			}
			return m, m.flash.Error(api.ErrorMessage(msg.err, fallback))
		}
		m.mode = modeList
		m.resetBuffer()
		if msg.created {
			m.list.Prepend(*msg.project)
			m.cursor = 0
			return m, m.flash.Set("Project created!")
		}
		m.list.Patch(*msg.project)
		return m, m.flash.Set("Project updated!")

	case deletedMsg:
		m.deleting = false
		if msg.err != nil {
			return m, m.flash.Error(api.ErrorMessage(msg.err, "Failed to delete project."))
		}
		m.list.Remove(msg.id)
		m.deleteID = ""
		m.mode = modeList
		if m.cursor >= m.list.Len() && m.cursor > 0 {
			m.cursor--
		}
		return m, m.flash.Set("Project deleted.")

	case tea.KeyMsg:
		switch m.mode {
		case modeList:
			return m.updateList(msg)
		case modeImages:
			return m.updateImages(msg)
		case modeConfirmDelete:
			return m.updateConfirm(msg)
		}
	}

	if m.mode == modeFields {
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
	case "n":
		m.openCreate()
		return m, m.form.Init()
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

func (m *Model) selected() (api.Project, bool) {
	items := m.list.Items()
	if m.cursor < 0 || m.cursor >= len(items) {
		return api.Project{}, false
	}
	return items[m.cursor], true
}

// openEdit copies the entity into the edit buffer. In-progress edits never
// leak into the cached list until the server confirms the save.
func (m *Model) openEdit(p api.Project) {
	m.editingID = p.Key()
	m.title = p.Title
	m.description = p.Description
	m.tech = strings.Join(p.TechStack, ", ")
	m.repoURL = p.RepoURL
	m.liveURL = p.LiveURL
	m.images = make([]api.ImageRef, 0, len(p.ImageURLs))
	for _, url := range p.ImageURLs {
		m.images = append(m.images, api.ExistingImage(url))
	}
	m.imgCursor = 0
	m.mode = modeFields
	m.form = m.createFieldsForm("Edit Project")
}

func (m *Model) openCreate() {
	m.resetBuffer()
	m.mode = modeFields
	m.form = m.createFieldsForm("Create New Project")
}

func (m *Model) resetBuffer() {
	m.editingID = ""
	m.title = ""
	m.description = ""
	m.tech = ""
	m.repoURL = ""
	m.liveURL = ""
	m.images = nil
	m.imgCursor = 0
	m.imgAdding = false
	m.imgInput.SetValue("")
}

func (m *Model) createFieldsForm(title string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&m.title).
				Validate(requireField("title")),
			huh.NewText().
				Title("Description").
				Value(&m.description).
				Validate(requireField("description")),
			huh.NewInput().
				Title("Tech Stack").
				Description("Comma separated, e.g. React, Node.js, MongoDB").
				Value(&m.tech),
			huh.NewInput().
				Title("Repo URL").
				Value(&m.repoURL),
			huh.NewInput().
				Title("Live URL").
				Value(&m.liveURL),
		).Title(title).
			Description("Step 1 of 2: project fields"),
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
		m.mode = modeImages
		return m, nil
	}
	return m, cmd
}

func (m *Model) updateImages(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.imgAdding {
		switch msg.String() {
		case "esc":
			m.imgAdding = false
			m.imgInput.SetValue("")
			return m, nil
		case "enter":
			entry := strings.TrimSpace(m.imgInput.Value())
			if entry != "" {
				m.images = append(m.images, classifyImageEntry(entry))
			}
			m.imgAdding = false
			m.imgInput.SetValue("")
			return m, nil
		}
		var cmd tea.Cmd
		m.imgInput, cmd = m.imgInput.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "up", "k":
		if m.imgCursor > 0 {
			m.imgCursor--
		}
	case "down", "j":
		if m.imgCursor < len(m.images)-1 {
			m.imgCursor++
		}
	case "a":
		m.imgAdding = true
		return m, m.imgInput.Focus()
	case "x", "backspace":
		if m.imgCursor >= 0 && m.imgCursor < len(m.images) {
			m.images = append(m.images[:m.imgCursor], m.images[m.imgCursor+1:]...)
			if m.imgCursor >= len(m.images) && m.imgCursor > 0 {
				m.imgCursor--
			}
		}
	case "b":
		m.mode = modeFields
		title := "Edit Project"
		if m.editingID == "" {
			title = "Create New Project"
		}
		m.form = m.createFieldsForm(title)
		return m, m.form.Init()
	case "enter":
		return m, m.submit()
	case "esc":
		m.mode = modeList
		m.resetBuffer()
	}
	return m, nil
}

// classifyImageEntry tags the entry: URLs stay remote references the
// backend keeps unchanged, anything else is a local file to upload.
func classifyImageEntry(entry string) api.ImageRef {
	if strings.HasPrefix(entry, "http://") || strings.HasPrefix(entry, "https://") {
		return api.ExistingImage(entry)
	}
	return api.PendingImage(entry)
}

func (m *Model) submit() tea.Cmd {
	if m.submitting {
		return nil
	}
	if strings.TrimSpace(m.title) == "" || strings.TrimSpace(m.description) == "" {
		return m.flash.Error("Title and description are required.")
	}
	m.submitting = true

	draft := api.ProjectDraft{
		Title:       m.title,
		Description: m.description,
		TechStack:   api.SplitList(m.tech),
		RepoURL:     m.repoURL,
		LiveURL:     m.liveURL,
		Images:      m.images,
	}
	id := m.editingID
	return func() tea.Msg {
		if id == "" {
			created, err := m.client.CreateProject(context.Background(), draft)
			return savedMsg{project: created, created: true, err: err}
		}
		updated, err := m.client.UpdateProject(context.Background(), id, draft)
		return savedMsg{project: updated, err: err}
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
			err := m.client.DeleteProject(context.Background(), id)
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

	sb.WriteString(styles.Title.Render(fmt.Sprintf("%s Manage Projects (%d)", icons.Project.String(), m.list.Len())))
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
	case modeFields:
		sb.WriteString(m.form.View())
	case modeImages:
		sb.WriteString(m.viewImages())
	case modeConfirmDelete:
		sb.WriteString(m.viewConfirm())
	default:
		sb.WriteString(m.viewList())
	}

	return sb.String()
}

func (m *Model) viewList() string {
	if !m.loaded {
		return styles.Subtitle.Render("Loading projects...")
	}
	items := m.list.Items()
	if len(items) == 0 {
		return styles.Subtitle.Render("No projects found.") + "\n" + m.helpLine("n New", "r Refresh")
	}

	var sb strings.Builder
	for i, p := range items {
		marker := "  "
		style := styles.NormalRow
		if i == m.cursor {
			marker = "> "
			style = styles.SelectedRow
		}
		line := p.Title
		if len(p.TechStack) > 0 {
			line += "  " + styles.Badge.Render(strings.Join(p.TechStack, " · "))
		}
		if n := len(p.ImageURLs); n > 0 {
			line += fmt.Sprintf("  %s %d", icons.Image.String(), n)
		}
		sb.WriteString(marker + style.Render(line) + "\n")
		if i == m.cursor {
			desc := p.Description
			if len(desc) > 80 {
				desc = desc[:80] + "…"
			}
			sb.WriteString("    " + styles.Subtitle.Render(desc) + "\n")
		}
	}
	sb.WriteString(m.helpLine("n New", "e Edit", "d Delete", "r Refresh"))
	return sb.String()
}

func (m *Model) viewImages() string {
	var sb strings.Builder
	sb.WriteString(styles.Subtitle.Render("Step 2 of 2: project images (order is preserved)"))
	sb.WriteString("\n\n")

	if len(m.images) == 0 {
		sb.WriteString(styles.Subtitle.Render("No images staged.") + "\n")
	}
	for i, img := range m.images {
		marker := "  "
		style := styles.NormalRow
		if i == m.imgCursor && !m.imgAdding {
			marker = "> "
			style = styles.SelectedRow
		}
		sb.WriteString(marker + style.Render(img.Display()) + "\n")
	}

	if m.imgAdding {
		sb.WriteString("\nAdd image (URL keeps an existing upload, path stages a new file):\n")
		sb.WriteString(m.imgInput.View())
		sb.WriteString("\n")
		sb.WriteString(m.helpLine("Enter Add", "Esc Cancel"))
	} else {
		sb.WriteString(m.helpLine("a Add", "x Remove", "b Back to fields", "Enter Save", "Esc Discard"))
	}
	return sb.String()
}

func (m *Model) viewConfirm() string {
	var sb strings.Builder
	sb.WriteString(styles.StatusError.Render("Delete Project?"))
	sb.WriteString("\n\n")
	sb.WriteString("Are you sure you want to delete this project? This action cannot be undone.\n")
	if m.deleting {
		sb.WriteString(styles.Subtitle.Render("Deleting..."))
		sb.WriteString("\n")
	}
	sb.WriteString(m.helpLine("y Delete", "n Cancel"))
	return sb.String()
}

func (m *Model) helpLine(entries ...string) string {
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
