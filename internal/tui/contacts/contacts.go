// ABOUTME: Contact submissions screen as a bubbletea model
// ABOUTME: Lazy-loaded inbox with a typed confirmation before delete

package contacts

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/orincore/portfolio-admin/internal/api"
	"github.com/orincore/portfolio-admin/internal/store"
	"github.com/orincore/portfolio-admin/internal/tui/flash"
	"github.com/orincore/portfolio-admin/internal/tui/icons"
	"github.com/orincore/portfolio-admin/internal/tui/styles"
)

type mode int

const (
	modeList mode = iota
	modeConfirmDelete
)

type loadedMsg struct {
	items []api.ContactSubmission
	err   error
}

type deletedMsg struct {
	id  string
	err error
}

// Model is the contact submissions section of the admin console.
// Unlike projects and reviews, the inbox is not fetched at login; the
// first Activate call loads it.
type Model struct {
	client  *api.Client
	list    store.Collection[api.ContactSubmission]
	cursor  int
	mode    mode
	loaded  bool
	loading bool

	// A 401 on the inbox does not invalidate the session elsewhere, so it
	// is shown as a persistent notice rather than an auto-clearing flash.
	authErr string

	deleting     bool
	deleteID     string
	confirmInput textinput.Model
	flash        flash.Flash
	width        int
}

// New creates the contacts screen.
func New(client *api.Client) *Model {
	ti := textinput.New()
	ti.Placeholder = "delete"
	ti.CharLimit = 16
	return &Model{client: client, confirmInput: ti}
}

// Activate is called when the user switches to this screen. The first
// activation fetches the inbox; later ones are no-ops.
func (m *Model) Activate() tea.Cmd {
	if m.loaded || m.loading {
		return nil
	}
	return m.Load()
}

// Load fetches the contact inbox.
func (m *Model) Load() tea.Cmd {
	m.loading = true
	return func() tea.Msg {
		items, err := m.client.ListContacts(context.Background())
		return loadedMsg{items: items, err: err}
	}
}

// Count returns the number of cached submissions.
func (m *Model) Count() int { return m.list.Len() }

// Busy reports whether the delete confirmation owns the keyboard.
func (m *Model) Busy() bool { return m.mode != modeList }

// Loaded reports whether the inbox has been fetched at least once.
func (m *Model) Loaded() bool { return m.loaded }

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
		m.loading = false
		if msg.err != nil {
			if errors.Is(msg.err, api.ErrUnauthorized) {
				m.authErr = "Unauthorized. Please log in as admin."
				return m, nil
			}
			return m, m.flash.Error(api.ErrorMessage(msg.err, "Failed to load contact submissions."))
		}
		m.loaded = true
		m.authErr = ""
		m.list.Replace(msg.items)
		if m.cursor >= m.list.Len() {
			m.cursor = 0
		}
		return m, nil

	case deletedMsg:
		m.deleting = false
		if msg.err != nil {
			return m, m.flash.Error(api.ErrorMessage(msg.err, "Failed to delete submission."))
		}
		m.list.Remove(msg.id)
		m.deleteID = ""
		m.mode = modeList
		if m.cursor >= m.list.Len() && m.cursor > 0 {
			m.cursor--
		}
		return m, m.flash.Set("Submission deleted.")

	case tea.KeyMsg:
		switch m.mode {
		case modeList:
			return m.updateList(msg)
		case modeConfirmDelete:
			return m.updateConfirm(msg)
		}
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
	case "d":
		if item, ok := m.selected(); ok {
			m.deleteID = item.Key()
			m.mode = modeConfirmDelete
			m.confirmInput.SetValue("")
			m.confirmInput.Focus()
			return m, textinput.Blink
		}
	}
	return m, nil
}

func (m *Model) selected() (api.ContactSubmission, bool) {
	items := m.list.Items()
	if m.cursor < 0 || m.cursor >= len(items) {
		return api.ContactSubmission{}, false
	}
	return items[m.cursor], true
}

// updateConfirm requires the user to type "delete" before the request is
// sent. Contact submissions have no undo on the backend.
func (m *Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.deleteID = ""
		m.mode = modeList
		return m, nil
	case "enter":
		if strings.TrimSpace(m.confirmInput.Value()) != "delete" {
			return m, nil
		}
		if m.deleting || m.deleteID == "" {
			return m, nil
		}
		m.deleting = true
		id := m.deleteID
		return m, func() tea.Msg {
			err := m.client.DeleteContact(context.Background(), id)
			return deletedMsg{id: id, err: err}
		}
	}

	var cmd tea.Cmd
	m.confirmInput, cmd = m.confirmInput.Update(msg)
	return m, cmd
}

// View implements tea.Model
func (m *Model) View() string {
	var sb strings.Builder

	sb.WriteString(styles.Title.Render(fmt.Sprintf("%s Contact Submissions (%d)", icons.Contact.String(), m.list.Len())))
	sb.WriteString("\n")

	if m.authErr != "" {
		sb.WriteString(styles.StatusError.Render(m.authErr))
		sb.WriteString("\n")
	}
	if text := m.flash.Text(); text != "" {
		style := styles.StatusOK
		if !m.flash.OK() {
			style = styles.StatusError
		}
		sb.WriteString(style.Render(text))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	if m.mode == modeConfirmDelete {
		sb.WriteString(m.viewConfirm())
	} else {
		sb.WriteString(m.viewList())
	}

	return sb.String()
}

func (m *Model) viewList() string {
	if m.authErr != "" {
		return helpLine("r Retry")
	}
	if m.loading || !m.loaded {
		return styles.Subtitle.Render("Loading submissions...")
	}
	items := m.list.Items()
	if len(items) == 0 {
		return styles.Subtitle.Render("No contact submissions.") + "\n" + helpLine("r Refresh")
	}

	var sb strings.Builder
	for i, c := range items {
		marker := "  "
		style := styles.NormalRow
		if i == m.cursor {
			marker = "> "
			style = styles.SelectedRow
		}
		subject := c.Subject
		if subject == "" {
			subject = "(no subject)"
		}
		line := fmt.Sprintf("%s  %s  %s", style.Render(c.Name), styles.Subtitle.Render(c.Email), styles.Badge.Render(subject))
		sb.WriteString(marker + line + "\n")
		if i == m.cursor {
			text := c.Message
			if len(text) > 100 {
				text = text[:100] + "…"
			}
			sb.WriteString("    " + styles.Subtitle.Render(text) + "\n")
		}
	}
	sb.WriteString(helpLine("d Delete", "r Refresh"))
	return sb.String()
}

func (m *Model) viewConfirm() string {
	var sb strings.Builder
	sb.WriteString(styles.StatusError.Render("Delete Submission?"))
	sb.WriteString("\n\n")
	sb.WriteString("This permanently removes the submission. Type \"delete\" to confirm.\n\n")
	sb.WriteString(m.confirmInput.View())
	sb.WriteString("\n")
	if m.deleting {
		sb.WriteString(styles.Subtitle.Render("Deleting..."))
		sb.WriteString("\n")
	}
	sb.WriteString(helpLine("enter Confirm", "esc Cancel"))
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
