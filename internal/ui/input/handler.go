package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"userdeck/internal/pipeline"
	"userdeck/internal/ui/input/modes"
	"userdeck/internal/ui/input/types"
)

// Handler routes key presses to the focused mode and turns text edits
// into criteria field changes.
type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	textInputs  map[types.Mode]*textinput.Model // one per text field
	emitted     map[pipeline.Field]string       // last value sent for each field
}

func New() *Handler {
	h := &Handler{
		currentMode: types.ModeList,
		modes:       make(map[types.Mode]types.ModeHandler),
		textInputs:  make(map[types.Mode]*textinput.Model),
		emitted:     make(map[pipeline.Field]string),
	}

	for _, mode := range []types.Mode{types.ModeSearch, types.ModeFromDate, types.ModeToDate} {
		ti := textinput.New()
		ti.Prompt = ""
		h.textInputs[mode] = &ti
	}
	h.textInputs[types.ModeSearch].Placeholder = "name, username or email"
	h.textInputs[types.ModeSearch].CharLimit = 64
	h.textInputs[types.ModeFromDate].Placeholder = "YYYY-MM-DD"
	h.textInputs[types.ModeFromDate].CharLimit = 10
	h.textInputs[types.ModeToDate].Placeholder = "YYYY-MM-DD"
	h.textInputs[types.ModeToDate].CharLimit = 10

	// Register all mode handlers
	h.modes[types.ModeList] = modes.NewListMode()
	h.modes[types.ModeSearch] = modes.NewSearchMode(h.textInputs[types.ModeSearch])
	h.modes[types.ModeNationality] = modes.NewNationalityMode()
	h.modes[types.ModeFromDate] = modes.NewFromDateMode(h.textInputs[types.ModeFromDate])
	h.modes[types.ModeToDate] = modes.NewToDateMode(h.textInputs[types.ModeToDate])

	return h
}

func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)

	var cmd tea.Cmd
	var allActions []types.Action

	for _, action := range actions {
		switch a := action.(type) {
		case types.ChangeModeAction:
			if a.Mode != types.ModeList && !ctx.Ready() {
				continue
			}
			allActions = append(allActions, h.switchMode(a.Mode, ctx)...)
			if a.Mode.IsText() {
				cmd = textinput.Blink
			}
		case types.SetFieldAction:
			h.emitted[a.Field] = a.Value
			allActions = append(allActions, a)
		default:
			allActions = append(allActions, action)
		}
	}

	// Unhandled keys in a text mode edit the focused input
	if !consumed && h.currentMode.IsText() {
		ti := h.textInputs[h.currentMode]
		var textCmd tea.Cmd
		*ti, textCmd = ti.Update(msg)
		cmd = textCmd

		field, _ := h.currentMode.Field()
		if value := ti.Value(); value != h.emitted[field] {
			h.emitted[field] = value
			allActions = append(allActions, types.SetFieldAction{Field: field, Value: value})
		}
	}

	return allActions, cmd
}

func (h *Handler) switchMode(mode types.Mode, ctx types.Context) []types.Action {
	var actions []types.Action
	if current := h.modes[h.currentMode]; current != nil {
		actions = append(actions, current.Exit(ctx)...)
	}
	h.currentMode = mode
	if next := h.modes[h.currentMode]; next != nil {
		actions = append(actions, next.Enter(ctx)...)
	}
	return actions
}

// CurrentMode returns the focused mode
func (h *Handler) CurrentMode() types.Mode {
	if h == nil {
		return types.ModeList
	}
	return h.currentMode
}

// TextInput returns the input backing mode, or nil for non-text modes
func (h *Handler) TextInput(mode types.Mode) *textinput.Model {
	return h.textInputs[mode]
}

// Prompt returns the label for a text mode
func (h *Handler) Prompt(mode types.Mode) string {
	if tm, ok := h.modes[mode].(interface{ Prompt() string }); ok {
		return tm.Prompt()
	}
	return ""
}

// Value returns the current text of a text mode's input
func (h *Handler) Value(mode types.Mode) string {
	if ti := h.textInputs[mode]; ti != nil {
		return ti.Value()
	}
	return ""
}

// Update handles non-keyboard messages (cursor blink) for the focused input
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	if ti := h.textInputs[h.currentMode]; ti != nil {
		var cmd tea.Cmd
		*ti, cmd = ti.Update(msg)
		return cmd
	}
	return nil
}
