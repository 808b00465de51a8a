// ABOUTME: Admin login screen as a bubbletea model
// ABOUTME: Collects credentials with a huh form and emits a submit message

package login

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/orincore/portfolio-admin/internal/tui/icons"
	"github.com/orincore/portfolio-admin/internal/tui/styles"
)

// SubmitMsg is sent when the user submits credentials. The app performs
// the login call; the screen only collects input.
type SubmitMsg struct {
	Email    string
	Password string
}

// Model is the login screen.
type Model struct {
	form       *huh.Form
	email      string
	password   string
	errMsg     string
	submitting bool
	width      int
}

// New creates a fresh login screen.
func New() *Model {
	m := &Model{}
	m.form = m.createForm()
	return m
}

func (m *Model) createForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Email").
				Placeholder("admin@example.com").
				Value(&m.email).
				Validate(requireField("email")),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&m.password).
				Validate(requireField("password")),
		).Title("Admin Login").
			Description("Orincore Technologies"),
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

// SetError surfaces a login failure and re-arms the form so the user can
// retry. The email is kept; the password is cleared.
func (m *Model) SetError(msg string) {
	m.errMsg = msg
	m.submitting = false
	m.password = ""
	m.form = m.createForm()
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return m.form.Init()
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wm.Width
	}
	if m.submitting {
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		m.submitting = true
		m.errMsg = ""
		email, password := m.email, m.password
		return m, func() tea.Msg {
			return SubmitMsg{Email: email, Password: password}
		}
	}

	return m, cmd
}

// View implements tea.Model
func (m *Model) View() string {
	var sb strings.Builder

	sb.WriteString(styles.Title.Render(icons.Lock.String() + " Orincore Admin"))
	sb.WriteString("\n\n")

	if m.errMsg != "" {
		sb.WriteString(styles.StatusError.Render(m.errMsg))
		sb.WriteString("\n\n")
	}

	if m.submitting {
		sb.WriteString(styles.Subtitle.Render("Logging in..."))
	} else {
		sb.WriteString(m.form.View())
	}

	return sb.String()
}
