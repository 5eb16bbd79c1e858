package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"userdeck/internal/ui/logic"
)

// Placeholder texts for the list area
const (
	TextLoading   = "Loading users..."
	TextComputing = "Getting users..."
	TextNoResults = "No users found."
	TextLoadError = "Failed to load users"
	TextFault     = "Filtering failed, showing the previous results"
)

// FilterField is one line of the filter bar
type FilterField struct {
	Label   string
	Value   string
	Focused bool
}

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width          int
	Height         int
	Surface        Surface
	Filters        []FilterField
	Query          string // highlighted in names
	Hints          []string
	SelectedIndex  int
	ViewportOffset int
	ViewportHeight int
	Spinner        string
	LoadError      string
	Fault          string
	StatusMessage  string
	HelpView       string
}

// Renderer handles all view rendering
type Renderer struct {
	styles     *Styles
	userRender *UserRenderer
}

// NewRenderer creates a new renderer
func NewRenderer(dateLayout string) *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:     styles,
		userRender: NewUserRenderer(styles, dateLayout),
	}
}

// Users returns the row renderer
func (r *Renderer) Users() *UserRenderer {
	return r.userRender
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.renderTitle(state))
	content.WriteString("\n")

	for _, f := range state.Filters {
		content.WriteString(r.renderFilter(f))
		content.WriteString("\n")
	}
	for _, hint := range state.Hints {
		content.WriteString(r.styles.StatusWarning.Render(hint))
		content.WriteString("\n")
	}

	content.WriteString(r.styles.Count.Render(fmt.Sprintf("Number of users: %d", state.Surface.Count())))
	content.WriteString("\n")

	content.WriteString(r.RenderList(state))

	if state.Fault != "" {
		content.WriteString("\n\n")
		content.WriteString(r.styles.StatusError.Render(fmt.Sprintf("%s (%s)", TextFault, state.Fault)))
	}
	if state.StatusMessage != "" {
		content.WriteString("\n\n")
		content.WriteString(r.styles.Dim.Render(state.StatusMessage))
	}

	// Push the help line to the bottom
	if state.HelpView != "" {
		currentLines := strings.Count(content.String(), "\n") + 1

		// Account for container padding (1 top, 1 bottom from Padding(1, 2))
		availableLines := state.Height - 2
		if availableLines <= 0 {
			availableLines = 22 // Default terminal height minus padding
		}
		paddingNeeded := availableLines - currentLines - 1
		if paddingNeeded > 0 {
			content.WriteString(strings.Repeat("\n", paddingNeeded))
		}
		content.WriteString("\n")
		content.WriteString(r.styles.Help.Render(state.HelpView))
	}

	mainStyle := r.styles.Main
	if state.Height > 0 {
		mainStyle = mainStyle.MaxHeight(state.Height)
	}
	return mainStyle.Render(content.String())
}

func (r *Renderer) renderTitle(state ViewState) string {
	logo := r.styles.Title.Render("userdeck")
	if !state.Surface.Pending || state.Spinner == "" {
		return logo
	}

	indicator := r.styles.Dim.Render(state.Spinner + " Filtering")
	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80 // Default terminal width
	}
	paddingWidth := termWidth - 4 - lipgloss.Width(logo) - lipgloss.Width(indicator)
	if paddingWidth < 2 {
		paddingWidth = 2
	}
	return logo + strings.Repeat(" ", paddingWidth) + indicator
}

func (r *Renderer) renderFilter(f FilterField) string {
	label := r.styles.Label.Render(f.Label)
	if f.Focused {
		label = r.styles.FocusedLabel.Render(f.Label)
	}
	return label + r.styles.Value.Render(f.Value)
}

// RenderList renders the list area: a placeholder or the visible rows
func (r *Renderer) RenderList(state ViewState) string {
	switch state.Surface.Placeholder() {
	case PlaceholderLoading:
		return r.styles.StatusLoading.Render(TextLoading)
	case PlaceholderError:
		msg := TextLoadError
		if state.LoadError != "" {
			msg = fmt.Sprintf("%s: %s", TextLoadError, state.LoadError)
		}
		return r.styles.StatusError.Render(msg)
	case PlaceholderComputing:
		text := TextComputing
		if state.Spinner != "" {
			text = state.Spinner + " " + text
		}
		return r.styles.StatusLoading.Render(text)
	case PlaceholderNoResults:
		return r.styles.Dim.Render(TextNoResults)
	}

	results := state.Surface.Results
	height := state.ViewportHeight
	if height <= 0 {
		height = len(results)
	}
	win := logic.VisibleWindow(state.ViewportOffset, height, len(results))

	var lines []string
	if win.Above > 0 {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↑ %d more above ↑", win.Above)))
	}
	for i := win.Start; i < win.End; i++ {
		lines = append(lines, r.userRender.RenderUser(results[i], i == state.SelectedIndex, state.Query, state.Width))
	}
	if win.Below > 0 {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↓ %d more below ↓", win.Below)))
	}
	return strings.Join(lines, "\n")
}
