// Package styles holds the shared lipgloss styles of the terminal views.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Accent is the highlight color, the same green the website uses.
	Accent = lipgloss.Color("#1db954")

	panelBorderColor = lipgloss.Color("240")

	panelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(panelBorderColor)

	// Header renders bucket headers.
	Header = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))

	// Primary renders artist names and other main text.
	Primary = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))

	// Secondary renders album titles.
	Secondary = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))

	// Dim renders hints and empty states.
	Dim = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	// Cursor highlights the selected line.
	Cursor = lipgloss.NewStyle().Background(lipgloss.Color("236"))

	// Error renders failure messages.
	Error = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))

	// ActiveTab and Tab render the page navigation.
	ActiveTab = lipgloss.NewStyle().Bold(true).Foreground(Accent)
	Tab       = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

// Panel returns the bordered panel style sized to the inner width and height.
func Panel(innerWidth, innerHeight int) lipgloss.Style {
	return panelStyle.Width(innerWidth).Height(innerHeight)
}
