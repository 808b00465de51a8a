// ABOUTME: Root bubbletea application for the admin console
// ABOUTME: Routes between login, dashboard, and the resource screens

package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/orincore/portfolio-admin/internal/api"
	"github.com/orincore/portfolio-admin/internal/session"
	"github.com/orincore/portfolio-admin/internal/tui/contacts"
	"github.com/orincore/portfolio-admin/internal/tui/icons"
	"github.com/orincore/portfolio-admin/internal/tui/login"
	"github.com/orincore/portfolio-admin/internal/tui/projects"
	"github.com/orincore/portfolio-admin/internal/tui/reviews"
	"github.com/orincore/portfolio-admin/internal/tui/styles"
)

// Screen identifies which view is active.
type Screen int

const (
	ScreenLogin Screen = iota
	ScreenDashboard
	ScreenProjects
	ScreenReviews
	ScreenContacts
)

type loginResultMsg struct {
	token string
	err   error
}

// App is the root model. It owns the session and the section models and
// routes messages to whichever screen is active.
type App struct {
	client *api.Client
	sess   *session.Store

	screen   Screen
	login    *login.Model
	projects *projects.Model
	reviews  *reviews.Model
	contacts *contacts.Model

	// notice is a persistent warning shown on the dashboard, currently
	// only for a session that could not be written to disk.
	notice string

	width  int
	height int
}

// NewApp creates the root model. A persisted token skips the login
// screen; the backend still decides whether it is accepted.
func NewApp(client *api.Client, sess *session.Store) *App {
	a := &App{
		client: client,
		sess:   sess,
		screen: ScreenLogin,
	}
	a.resetSections()
	if sess.Present() {
		a.screen = ScreenDashboard
	}
	return a
}

func (a *App) resetSections() {
	a.login = login.New()
	a.projects = projects.New(a.client)
	a.reviews = reviews.New(a.client)
	a.contacts = contacts.New(a.client)
}

// Init implements tea.Model
func (a *App) Init() tea.Cmd {
	if a.screen == ScreenDashboard {
		return tea.Batch(a.projects.Load(), a.reviews.Load())
	}
	return a.login.Init()
}

// Update implements tea.Model
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// Sections track their own size.
		a.routeToSections(msg)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		return a.updateKeys(msg)

	case login.SubmitMsg:
		return a, a.doLogin(msg.Email, msg.Password)

	case loginResultMsg:
		if msg.err != nil {
			a.login.SetError(api.ErrorMessage(msg.err, "Invalid credentials"))
			return a, a.login.Init()
		}
		// Login still succeeded if the save fails; the session just will
		// not survive a restart. The user should know that.
		if err := a.sess.Save(msg.token); err != nil {
			a.notice = "Session not saved; you will need to log in again after restart."
		}
		a.screen = ScreenDashboard
		return a, tea.Batch(a.projects.Load(), a.reviews.Load())
	}

	return a.routeActive(msg)
}

func (a *App) doLogin(email, password string) tea.Cmd {
	return func() tea.Msg {
		token, err := a.client.Login(context.Background(), email, password)
		return loginResultMsg{token: token, err: err}
	}
}

// updateKeys handles navigation; anything else goes to the active screen.
func (a *App) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.screen == ScreenLogin {
		if msg.String() == "esc" {
			return a, tea.Quit
		}
		return a.routeActive(msg)
	}

	if a.screen == ScreenDashboard {
		switch msg.String() {
		case "q":
			return a, tea.Quit
		case "1", "p":
			a.screen = ScreenProjects
			return a, nil
		case "2", "v":
			a.screen = ScreenReviews
			return a, nil
		case "3", "c":
			a.screen = ScreenContacts
			return a, a.contacts.Activate()
		case "L":
			return a.logout()
		case "r":
			return a, tea.Batch(a.projects.Load(), a.reviews.Load())
		}
		return a, nil
	}

	// Resource screens: tab switching and dashboard return are global,
	// except while a form or confirmation owns the keyboard.
	if !a.sectionCaptures() {
		switch msg.String() {
		case "tab":
			return a.nextSection()
		case "esc":
			a.screen = ScreenDashboard
			return a, nil
		case "L":
			return a.logout()
		case "q":
			return a, tea.Quit
		}
	}
	return a.routeActive(msg)
}

// sectionCaptures reports whether the active section is in a sub-mode
// (form, image staging, delete confirmation) that should see every key.
func (a *App) sectionCaptures() bool {
	switch a.screen {
	case ScreenProjects:
		return a.projects.Busy()
	case ScreenReviews:
		return a.reviews.Busy()
	case ScreenContacts:
		return a.contacts.Busy()
	}
	return false
}

func (a *App) nextSection() (tea.Model, tea.Cmd) {
	switch a.screen {
	case ScreenProjects:
		a.screen = ScreenReviews
	case ScreenReviews:
		a.screen = ScreenContacts
		return a, a.contacts.Activate()
	case ScreenContacts:
		a.screen = ScreenProjects
	}
	return a, nil
}

// logout clears the persisted token and rebuilds every section so no
// fetched data survives into the next session.
func (a *App) logout() (tea.Model, tea.Cmd) {
	_ = a.sess.Clear()
	a.resetSections()
	a.notice = ""
	a.screen = ScreenLogin
	return a, a.login.Init()
}

func (a *App) routeActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.screen {
	case ScreenLogin:
		var m tea.Model
		m, cmd = a.login.Update(msg)
		a.login = m.(*login.Model)
	case ScreenProjects:
		var m tea.Model
		m, cmd = a.projects.Update(msg)
		a.projects = m.(*projects.Model)
	case ScreenReviews:
		var m tea.Model
		m, cmd = a.reviews.Update(msg)
		a.reviews = m.(*reviews.Model)
	case ScreenContacts:
		var m tea.Model
		m, cmd = a.contacts.Update(msg)
		a.contacts = m.(*contacts.Model)
	}
	return a, cmd
}

// routeToSections forwards a message to every section regardless of
// which is active. Used for window sizing.
func (a *App) routeToSections(msg tea.Msg) {
	if m, _ := a.login.Update(msg); m != nil {
		a.login = m.(*login.Model)
	}
	if m, _ := a.projects.Update(msg); m != nil {
		a.projects = m.(*projects.Model)
	}
	if m, _ := a.reviews.Update(msg); m != nil {
		a.reviews = m.(*reviews.Model)
	}
	if m, _ := a.contacts.Update(msg); m != nil {
		a.contacts = m.(*contacts.Model)
	}
}

// View implements tea.Model
func (a *App) View() string {
	if a.screen == ScreenLogin {
		return a.login.View()
	}

	var body string
	switch a.screen {
	case ScreenDashboard:
		body = a.viewDashboard()
	case ScreenProjects:
		body = a.projects.View()
	case ScreenReviews:
		body = a.reviews.View()
	case ScreenContacts:
		body = a.contacts.View()
	}

	return a.renderHeader() + "\n" + body + "\n" + a.renderFooter()
}

func (a *App) renderHeader() string {
	title := styles.Title.Render(icons.App.String() + " Orincore Admin Console")
	tabs := []struct {
		screen Screen
		label  string
	}{
		{ScreenDashboard, "Dashboard"},
		{ScreenProjects, "Projects"},
		{ScreenReviews, "Reviews"},
		{ScreenContacts, "Contacts"},
	}
	var parts []string
	for _, t := range tabs {
		if t.screen == a.screen {
			parts = append(parts, styles.SelectedRow.Render("["+t.label+"]"))
		} else {
			parts = append(parts, styles.Subtitle.Render(" "+t.label+" "))
		}
	}
	return title + "\n" + lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (a *App) renderFooter() string {
	if a.screen == ScreenDashboard {
		return styles.Help.Render("1 Projects  2 Reviews  3 Contacts  r Refresh  L Logout  q Quit")
	}
	return styles.Help.Render("tab Next section  esc Dashboard  L Logout  q Quit")
}

func (a *App) viewDashboard() string {
	var sb strings.Builder

	if a.notice != "" {
		sb.WriteString(styles.StatusError.Render(a.notice))
		sb.WriteString("\n\n")
	}

	stats := []string{
		styles.Panel.Render(fmt.Sprintf("%s Projects\n%s", icons.Project.String(), styles.ValueStyle.Render(fmt.Sprintf("%d", a.projects.Count())))),
		styles.Panel.Render(fmt.Sprintf("%s Reviews\n%s", icons.Review.String(), styles.ValueStyle.Render(fmt.Sprintf("%d", a.reviews.Count())))),
		styles.Panel.Render(fmt.Sprintf("%s Avg Rating\n%s", icons.Star.String(), styles.ValueStyle.Render(fmt.Sprintf("%.1f", a.reviews.AverageRating())))),
	}
	if a.contacts.Loaded() {
		stats = append(stats, styles.Panel.Render(fmt.Sprintf("%s Contacts\n%s", icons.Contact.String(), styles.ValueStyle.Render(fmt.Sprintf("%d", a.contacts.Count())))))
	}
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, stats...))
	sb.WriteString("\n\n")

	recent := a.projects.Recent(5)
	if len(recent) > 0 {
		sb.WriteString(styles.Subtitle.Render("Recent projects"))
		sb.WriteString("\n")
		for _, p := range recent {
			sb.WriteString("  " + styles.NormalRow.Render(p.Title) + "\n")
		}
	}

	return sb.String()
}

// Run starts the console in the alternate screen.
func Run(client *api.Client, sess *session.Store) error {
	p := tea.NewProgram(NewApp(client, sess), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
