// ABOUTME: Shared lipgloss styles for consistent TUI appearance
// ABOUTME: Defines colors, borders, and text styles used across components

package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors - Core palette, matching the site's purple/indigo theme
	Primary   = lipgloss.Color("#7C3AED") // Purple-600
	Secondary = lipgloss.Color("#6366F1") // Indigo-500
	Success   = lipgloss.Color("#10B981") // Green
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Danger    = lipgloss.Color("#EF4444") // Red
	Muted     = lipgloss.Color("#6B7280") // Gray
	Text      = lipgloss.Color("#F9FAFB") // Light
	Surface   = lipgloss.Color("#374151") // Elevated surface background
	Accent    = lipgloss.Color("#8B5CF6") // Lighter purple for highlights

	// Base styles
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			MarginBottom(1)

	// Status indicators
	StatusOK = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	StatusError = lipgloss.NewStyle().
			Foreground(Danger).
			Bold(true)

	// Panels
	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Muted).
		Padding(1, 2)

	ActivePanel = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(1, 2)

	// Help text
	Help = lipgloss.NewStyle().
		Foreground(Muted).
		MarginTop(1)

	// Key style for keyboard shortcuts
	KeyStyle = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	// Value style for emphasized data
	ValueStyle = lipgloss.NewStyle().
			Foreground(Text).
			Bold(true)

	// List rows
	SelectedRow = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	NormalRow = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	// Tag badge for tech stack and categories
	Badge = lipgloss.NewStyle().
		Foreground(Text).
		Background(Surface).
		Padding(0, 1)
)

// Stars renders a 1-5 rating as filled and hollow stars.
func Stars(rating int) string {
	if rating < 0 {
		rating = 0
	}
	if rating > 5 {
		rating = 5
	}
	out := ""
	for i := 0; i < 5; i++ {
		if i < rating {
			out += "★"
		} else {
			out += "☆"
		}
	}
	return lipgloss.NewStyle().Foreground(Warning).Render(out)
}
