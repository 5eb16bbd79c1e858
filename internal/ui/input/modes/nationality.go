package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"userdeck/internal/pipeline"
	"userdeck/internal/ui/input/types"
)

// NationalityMode cycles the nationality selector over "" (all) and the
// codes present in the dataset.
type NationalityMode struct{}

func NewNationalityMode() *NationalityMode {
	return &NationalityMode{}
}

func (m *NationalityMode) Name() string {
	return "nationality"
}

func (m *NationalityMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NationalityMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NationalityMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	current := ctx.CurrentNationality()
	next := current

	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "esc", "enter":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeList}}, true
	case "tab":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNationality.Next()}}, true
	case "shift+tab":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNationality.Prev()}}, true
	case "left", "h", "up", "k":
		next = CycleNationality(current, ctx.NationalityOptions(), -1)
	case "right", "l", "down", "j", " ":
		next = CycleNationality(current, ctx.NationalityOptions(), 1)
	case "backspace", "delete":
		next = ""
	default:
		return nil, true
	}

	if next == current {
		return nil, true
	}
	return []types.Action{types.SetFieldAction{Field: pipeline.FieldNationality, Value: next}}, true
}

// CycleNationality steps through "" followed by options, wrapping at both
// ends. An unknown current value restarts from "".
func CycleNationality(current string, options []string, step int) string {
	choices := append([]string{""}, options...)
	idx := 0
	for i, c := range choices {
		if c == current {
			idx = i
			break
		}
	}
	n := len(choices)
	return choices[((idx+step)%n+n)%n]
}
