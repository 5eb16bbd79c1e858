package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"userdeck/internal/ui/input/types"
)

// keyMap describes the bindings shown in the help bar. Input handling
// itself lives in the input package.
type keyMap struct {
	Up          key.Binding
	Down        key.Binding
	Search      key.Binding
	Nationality key.Binding
	Dates       key.Binding
	NextField   key.Binding
	Details     key.Binding
	Help        key.Binding
	Quit        key.Binding

	Cycle key.Binding
	Clear key.Binding
	Back  key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Search:      key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Nationality: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "nationality")),
		Dates:       key.NewBinding(key.WithKeys("f", "t"), key.WithHelp("f/t", "born from/to")),
		NextField:   key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "next field")),
		Details:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Cycle:       key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "change")),
		Clear:       key.NewBinding(key.WithKeys("backspace"), key.WithHelp("bksp", "all")),
		Back:        key.NewBinding(key.WithKeys("esc", "enter"), key.WithHelp("esc", "back to list")),
	}
}

// ShortHelpFor returns the bindings relevant to the focused mode
func (k keyMap) ShortHelpFor(mode types.Mode) []key.Binding {
	switch {
	case mode == types.ModeNationality:
		return []key.Binding{k.Cycle, k.Clear, k.NextField, k.Back}
	case mode.IsText():
		return []key.Binding{k.NextField, k.Back}
	default:
		return []key.Binding{k.Up, k.Down, k.Search, k.Nationality, k.Dates, k.Details, k.Help, k.Quit}
	}
}
