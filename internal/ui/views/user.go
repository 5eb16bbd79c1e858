package views

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"

	"userdeck/internal/domain"
)

// UserRenderer handles rendering of result rows
type UserRenderer struct {
	styles     *Styles
	dateLayout string
}

// NewUserRenderer creates a new user renderer
func NewUserRenderer(styles *Styles, dateLayout string) *UserRenderer {
	if dateLayout == "" {
		dateLayout = domain.DateLayout
	}
	return &UserRenderer{
		styles:     styles,
		dateLayout: dateLayout,
	}
}

// FormatDate renders a date of birth, or a dash when unknown
func (r *UserRenderer) FormatDate(u domain.UserRecord) string {
	if !u.HasDateOfBirth() {
		return "-"
	}
	return u.DateOfBirth.Format(r.dateLayout)
}

// RenderUser renders one result row, highlighting query matches in the name
func (r *UserRenderer) RenderUser(u domain.UserRecord, isSelected bool, query string, width int) string {
	nat := u.NationalityCode
	if nat == "" {
		nat = "--"
	}

	nameStyle := lipgloss.NewStyle()
	natStyle := r.styles.Nationality
	emailStyle := r.styles.Email
	if isSelected {
		nameStyle = nameStyle.Inherit(r.styles.SelectionBg)
		natStyle = natStyle.Inherit(r.styles.SelectionBg)
		emailStyle = emailStyle.Inherit(r.styles.SelectionBg)
	}

	name := r.highlight(u.DisplayName, query, nameStyle)
	parts := []string{
		natStyle.Render(fmt.Sprintf("[%s]", nat)),
		name,
		nameStyle.Render(r.FormatDate(u)),
		emailStyle.Render(u.Email),
	}
	line := strings.Join(parts, nameStyle.Render("  "))

	if width > 0 && lipgloss.Width(line) > width-4 {
		// Drop the email column on narrow terminals
		line = strings.Join(parts[:3], nameStyle.Render("  "))
	}
	if isSelected {
		return r.styles.Highlight.Render("> ") + line
	}
	return "  " + line
}

// highlight marks the first case-insensitive match of query in text.
// Matching is done per rune so offsets stay valid in the original text.
func (r *UserRenderer) highlight(text, query string, base lipgloss.Style) string {
	query = strings.TrimSpace(query)
	if query == "" {
		return base.Render(text)
	}
	runes := []rune(text)
	start, end := indexFold(runes, []rune(query))
	if start < 0 {
		return base.Render(text)
	}
	return base.Render(string(runes[:start])) +
		r.styles.Highlight.Inherit(base).Render(string(runes[start:end])) +
		base.Render(string(runes[end:]))
}

// indexFold returns the rune range of the first case-insensitive match of
// needle in haystack, or -1, -1.
func indexFold(haystack, needle []rune) (int, int) {
	for i := 0; i+len(needle) <= len(haystack); i++ {
		matched := true
		for j, c := range needle {
			if !equalFoldRune(haystack[i+j], c) {
				matched = false
				break
			}
		}
		if matched {
			return i, i + len(needle)
		}
	}
	return -1, -1
}

func equalFoldRune(a, b rune) bool {
	return a == b || unicode.ToLower(a) == unicode.ToLower(b) || unicode.ToUpper(a) == unicode.ToUpper(b)
}
