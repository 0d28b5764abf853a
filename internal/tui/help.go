package tui

import (
	"strings"

	"notifeed/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// HelpBind is a single key and what it does
type HelpBind struct {
	Key  string
	Desc string
}

// HelpSection groups related binds
type HelpSection struct {
	Title string
	Binds []HelpBind
}

var previewHelp = []HelpSection{
	{
		Title: "Navigation",
		Binds: []HelpBind{
			{"j / down", "next entry"},
			{"k / up", "previous entry"},
			{"g / G", "first / last entry"},
		},
	},
	{
		Title: "Filtering",
		Binds: []HelpBind{
			{"/", "fuzzy search"},
			{"tab", "cycle language"},
			{"esc", "clear search"},
		},
	},
	{
		Title: "General",
		Binds: []HelpBind{
			{"?", "toggle this help"},
			{"q", "quit"},
		},
	},
}

var (
	helpKeyStyle  = lipgloss.NewStyle().Bold(true).Foreground(theme.Secondary)
	helpDescStyle = lipgloss.NewStyle().Foreground(theme.Text)
	helpBoxStyle  = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Primary).
			Padding(1, 2)
)

// RenderHelpPopup renders the sections in a box centered in width x height
func RenderHelpPopup(sections []HelpSection, width, height int) string {
	var b strings.Builder
	for i, section := range sections {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(theme.Title.Render(section.Title) + "\n")
		for _, bind := range section.Binds {
			b.WriteString("  " + helpKeyStyle.Width(12).Render(bind.Key) + helpDescStyle.Render(bind.Desc) + "\n")
		}
	}
	b.WriteString("\n" + theme.Muted.Render("Press any key to close"))

	box := helpBoxStyle.Render(b.String())
	if width <= 0 || height <= 0 {
		return box
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
