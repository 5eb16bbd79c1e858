package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HelpRenderer handles help content rendering
type HelpRenderer struct{}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{}
}

// RenderHelpContent generates help content with colors for the pager
func (r *HelpRenderer) RenderHelpContent() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	line := func(key, desc string) string {
		return fmt.Sprintf("  %s  %s\n", keyStyle.Render(fmt.Sprintf("%-11s", key)), descStyle.Render(desc))
	}

	var help strings.Builder

	help.WriteString(titleStyle.Render("userdeck help"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Result list"))
	help.WriteString("\n")
	help.WriteString(line("↑/↓, j/k", "Move up/down"))
	help.WriteString(line("PgUp/PgDn", "Page up/down"))
	help.WriteString(line("gg/G", "Go to top/bottom"))
	help.WriteString(line("Enter", "Show user details"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Filters"))
	help.WriteString("\n")
	help.WriteString(line("/", "Search name, username or email"))
	help.WriteString(line("n", "Choose nationality"))
	help.WriteString(line("f / t", "Born from / born to (YYYY-MM-DD)"))
	help.WriteString(line("Tab", "Next field (Shift+Tab: previous)"))
	help.WriteString(line("←/→", "Change nationality"))
	help.WriteString(line("Backspace", "All nationalities"))
	help.WriteString(line("Esc", "Back to the list"))
	help.WriteString("\n")

	help.WriteString(lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")).Render(
		"  Results refresh one second after you stop typing."))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Other"))
	help.WriteString("\n")
	help.WriteString(line("?", "Show this help"))
	help.WriteString(line("q", "Quit"))

	return help.String()
}
