package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"userdeck/internal/domain"
)

// RenderDetails renders one record for the pager
func (r *UserRenderer) RenderDetails(u domain.UserRecord) string {
	keyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))

	var b strings.Builder
	b.WriteString(r.styles.Title.Render(u.DisplayName))
	b.WriteString("\n")

	rows := []struct{ key, value string }{
		{"Username", u.Username},
		{"Email", u.Email},
		{"Date of birth", r.FormatDate(u)},
		{"Nationality", u.NationalityCode},
		{"Thumbnail", u.ThumbnailURL},
		{"ID", u.ID},
	}
	for _, row := range rows {
		value := row.value
		if value == "" {
			value = "-"
		}
		b.WriteString(fmt.Sprintf("  %s %s\n", keyStyle.Render(fmt.Sprintf("%-14s", row.key)), valueStyle.Render(value)))
	}
	return b.String()
}
