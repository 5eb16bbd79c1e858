package modes

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"userdeck/internal/ui/input/types"
)

// ggWindow is how long a first 'g' waits for the second
const ggWindow = 500 * time.Millisecond

// ListMode drives the result list
type ListMode struct {
	lastKeyWasG bool
	lastGTime   time.Time
	now         func() time.Time
}

func NewListMode() *ListMode {
	return &ListMode{now: time.Now}
}

func (m *ListMode) Name() string {
	return "list"
}

func (m *ListMode) Enter(ctx types.Context) []types.Action {
	m.lastKeyWasG = false
	return nil
}

func (m *ListMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *ListMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	key := msg.String()
	if key != "g" {
		m.lastKeyWasG = false
	}

	switch key {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "q":
		return []types.Action{types.QuitAction{}}, true
	case "?":
		return []types.Action{types.ShowHelpAction{}}, true

	case "up", "k":
		return []types.Action{types.NavigateAction{Direction: "up"}}, true
	case "down", "j":
		return []types.Action{types.NavigateAction{Direction: "down"}}, true
	case "pgup":
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true
	case "pgdown":
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true
	case "home":
		return []types.Action{types.NavigateAction{Direction: "home"}}, true
	case "end", "G":
		return []types.Action{types.NavigateAction{Direction: "end"}}, true
	case "g":
		now := m.now()
		if m.lastKeyWasG && now.Sub(m.lastGTime) < ggWindow {
			m.lastKeyWasG = false
			return []types.Action{types.NavigateAction{Direction: "home"}}, true
		}
		m.lastKeyWasG = true
		m.lastGTime = now
		return nil, true

	case "enter":
		if ctx.TotalItems() == 0 {
			return nil, false
		}
		return []types.Action{types.ShowDetailsAction{}}, true
	}

	// Focus changes need a loaded dataset
	if !ctx.Ready() {
		return nil, false
	}
	switch key {
	case "/":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch}}, true
	case "n":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNationality}}, true
	case "f":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeFromDate}}, true
	case "t":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeToDate}}, true
	case "tab":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeList.Next()}}, true
	case "shift+tab":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeList.Prev()}}, true
	}
	return nil, false
}
