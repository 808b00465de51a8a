// ABOUTME: Custom huh form theme matching the site's purple/indigo palette
// ABOUTME: Shared by the login screen and all edit-buffer forms

package styles

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// FormTheme returns the huh theme used by every form in the console.
func FormTheme() *huh.Theme {
	t := huh.ThemeBase()

	purple := lipgloss.Color("#7C3AED")      // Purple-600 - primary
	purpleLight := lipgloss.Color("#A78BFA") // Purple-400 - accents
	indigo := lipgloss.Color("#6366F1")      // Indigo-500 - buttons
	gray := lipgloss.Color("#9CA3AF")        // Gray-400 - muted
	grayLight := lipgloss.Color("#E5E7EB")   // Gray-200 - text
	red := lipgloss.Color("#F87171")         // Red-400 - errors
	slate := lipgloss.Color("#334155")       // Slate-700 - borders

	t.Group.Title = lipgloss.NewStyle().
		Foreground(purple).
		Bold(true).
		MarginBottom(1)
	t.Group.Description = lipgloss.NewStyle().
		Foreground(gray).
		MarginBottom(1)

	t.Focused.Base = lipgloss.NewStyle().
		PaddingLeft(1).
		BorderStyle(lipgloss.ThickBorder()).
		BorderLeft(true).
		BorderForeground(purple)
	t.Focused.Title = lipgloss.NewStyle().
		Foreground(purpleLight).
		Bold(true)
	t.Focused.Description = lipgloss.NewStyle().
		Foreground(gray)
	t.Focused.ErrorIndicator = lipgloss.NewStyle().
		Foreground(red).
		SetString(" *")
	t.Focused.ErrorMessage = lipgloss.NewStyle().
		Foreground(red)

	t.Focused.SelectSelector = lipgloss.NewStyle().
		Foreground(purple).
		SetString("> ")
	t.Focused.Option = lipgloss.NewStyle().
		Foreground(grayLight)
	t.Focused.SelectedOption = lipgloss.NewStyle().
		Foreground(purple).
		Bold(true)

	t.Focused.TextInput.Cursor = lipgloss.NewStyle().
		Foreground(purple)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().
		Foreground(gray)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().
		Foreground(purple)
	t.Focused.TextInput.Text = lipgloss.NewStyle().
		Foreground(grayLight)

	t.Focused.FocusedButton = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(indigo).
		Padding(0, 2).
		MarginRight(1)
	t.Focused.BlurredButton = lipgloss.NewStyle().
		Foreground(gray).
		Background(slate).
		Padding(0, 2).
		MarginRight(1)

	t.Blurred = t.Focused
	t.Blurred.Base = lipgloss.NewStyle().
		PaddingLeft(1).
		BorderStyle(lipgloss.HiddenBorder()).
		BorderLeft(true)
	t.Blurred.Title = lipgloss.NewStyle().
		Foreground(gray)
	t.Blurred.SelectSelector = lipgloss.NewStyle().
		Foreground(gray).
		SetString("  ")
	t.Blurred.Option = lipgloss.NewStyle().
		Foreground(gray)

	return t
}
