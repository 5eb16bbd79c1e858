package views

import (
	"testing"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"

	"userdeck/internal/domain"
)

func TestRenderPlaceholders(t *testing.T) {
	r := NewRenderer("")

	tests := []struct {
		name  string
		state ViewState
		want  string
	}{
		{"loading", ViewState{Surface: Surface{Status: domain.StatusLoading}}, TextLoading},
		{"error", ViewState{Surface: Surface{Status: domain.StatusError}, LoadError: "status 503"}, TextLoadError + ": status 503"},
		{"computing", ViewState{Surface: Surface{Status: domain.StatusReady, Pending: true}}, TextComputing},
		{"no results", ViewState{Surface: Surface{Status: domain.StatusReady}}, TextNoResults},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := r.Render(tt.state)
			assert.Contains(t, out, tt.want)
			assert.Contains(t, out, "Number of users: 0")
		})
	}
}

func TestRenderResults(t *testing.T) {
	r := NewRenderer("")
	users := sampleUsers()
	users[0].DateOfBirth = time.Date(1985, 4, 12, 0, 0, 0, 0, time.UTC)

	out := r.Render(ViewState{
		Width:          120,
		Surface:        Surface{Status: domain.StatusReady, Results: users},
		ViewportHeight: 10,
		Filters:        []FilterField{{Label: "Search: ", Value: "jo", Focused: true}},
	})

	assert.Contains(t, out, "Number of users: 2")
	assert.Contains(t, out, "Search: jo")
	assert.Contains(t, out, "[US]")
	assert.Contains(t, out, "1985-04-12")
	assert.Contains(t, out, "> ")
	assert.NotContains(t, out, TextNoResults)
}

func TestRenderListScrollIndicators(t *testing.T) {
	r := NewRenderer("")
	var users []domain.UserRecord
	for i := 0; i < 10; i++ {
		users = append(users, domain.UserRecord{DisplayName: "User", Email: "u@example.com"})
	}

	out := r.RenderList(ViewState{
		Surface:        Surface{Status: domain.StatusReady, Results: users},
		ViewportOffset: 3,
		ViewportHeight: 5,
	})
	assert.Contains(t, out, "↑ 3 more above ↑")
	assert.Contains(t, out, "↓ 4 more below ↓")
}

func TestRenderFault(t *testing.T) {
	r := NewRenderer("")
	out := r.Render(ViewState{
		Surface: Surface{Status: domain.StatusReady, Results: sampleUsers()},
		Fault:   "boom",
	})
	assert.Contains(t, out, TextFault)
	assert.Contains(t, out, "Number of users: 2")
}

func TestFormatDate(t *testing.T) {
	ur := NewUserRenderer(NewStyles(), "02/01/2006")
	assert.Equal(t, "-", ur.FormatDate(domain.UserRecord{}))
	assert.Equal(t, "12/04/1985", ur.FormatDate(domain.UserRecord{DateOfBirth: time.Date(1985, 4, 12, 0, 0, 0, 0, time.UTC)}))
}

func TestRenderUserDropsEmailWhenNarrow(t *testing.T) {
	ur := NewUserRenderer(NewStyles(), "")
	u := sampleUsers()[0]

	assert.Contains(t, ur.RenderUser(u, false, "", 120), u.Email)
	assert.NotContains(t, ur.RenderUser(u, false, "", 30), u.Email)
}

func TestHighlightLongerQueryThanName(t *testing.T) {
	ur := NewUserRenderer(NewStyles(), "")
	u := domain.UserRecord{DisplayName: "Al", Email: "al@example.com"}
	assert.NotPanics(t, func() { ur.RenderUser(u, false, "alexander", 120) })
}

// withColor renders styles as ANSI escapes for the rest of the test
func withColor(t *testing.T) {
	t.Helper()
	prev := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.ANSI256)
	t.Cleanup(func() { lipgloss.SetColorProfile(prev) })
}

func TestHighlightKeepsMultibyteNamesIntact(t *testing.T) {
	withColor(t)
	styles := NewStyles()
	ur := NewUserRenderer(styles, "")
	base := lipgloss.NewStyle()

	tests := []struct {
		text, query, match string
	}{
		{"İlker Öztürk", "ztü", "ztü"},
		{"İlker Öztürk", "ÖZT", "Özt"},
		{"İÖa", "ö", "Ö"},
		{"Ağca Çelik", "çel", "Çel"},
	}
	for _, tt := range tests {
		t.Run(tt.text+"/"+tt.query, func(t *testing.T) {
			out := ur.highlight(tt.text, tt.query, base)
			assert.True(t, utf8.ValidString(out), "%q", out)
			assert.Contains(t, out, styles.Highlight.Inherit(base).Render(tt.match))
		})
	}
}

func TestSelectedRowUsesSelectionBackground(t *testing.T) {
	withColor(t)
	styles := NewStyles()
	ur := NewUserRenderer(styles, "")
	u := sampleUsers()[0]

	selected := ur.RenderUser(u, true, "", 120)
	assert.Contains(t, selected, lipgloss.NewStyle().Inherit(styles.SelectionBg).Render(u.DisplayName))
	assert.NotContains(t, ur.RenderUser(u, false, "", 120), styles.SelectionBg.Render(u.DisplayName))
}
