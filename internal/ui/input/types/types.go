package types

import (
	tea "github.com/charmbracelet/bubbletea"

	"userdeck/internal/pipeline"
)

// Mode represents an input mode (which widget has focus)
type Mode int

const (
	ModeList Mode = iota
	ModeSearch
	ModeNationality
	ModeFromDate
	ModeToDate
)

// focusOrder is the tab cycle
var focusOrder = []Mode{ModeSearch, ModeNationality, ModeFromDate, ModeToDate, ModeList}

func (m Mode) String() string {
	switch m {
	case ModeList:
		return "list"
	case ModeSearch:
		return "search"
	case ModeNationality:
		return "nationality"
	case ModeFromDate:
		return "from"
	case ModeToDate:
		return "to"
	default:
		return "unknown"
	}
}

// Next returns the mode after m in the tab cycle
func (m Mode) Next() Mode {
	return m.step(1)
}

// Prev returns the mode before m in the tab cycle
func (m Mode) Prev() Mode {
	return m.step(-1)
}

func (m Mode) step(delta int) Mode {
	for i, mode := range focusOrder {
		if mode == m {
			n := len(focusOrder)
			return focusOrder[((i+delta)%n+n)%n]
		}
	}
	return ModeList
}

// Field returns the criteria field edited in mode m
func (m Mode) Field() (pipeline.Field, bool) {
	switch m {
	case ModeSearch:
		return pipeline.FieldText, true
	case ModeNationality:
		return pipeline.FieldNationality, true
	case ModeFromDate:
		return pipeline.FieldFromDate, true
	case ModeToDate:
		return pipeline.FieldToDate, true
	default:
		return 0, false
	}
}

// IsText reports whether mode m is backed by a text input
func (m Mode) IsText() bool {
	switch m {
	case ModeSearch, ModeFromDate, ModeToDate:
		return true
	default:
		return false
	}
}

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Context provides read-only access to model state needed for input handling
type Context interface {
	CurrentIndex() int
	TotalItems() int
	// Ready reports whether the dataset has loaded and filters may be edited
	Ready() bool
	NationalityOptions() []string
	CurrentNationality() string
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether to consume the event
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// Enter is called when entering this mode
	Enter(ctx Context) []Action

	// Exit is called when leaving this mode
	Exit(ctx Context) []Action

	// Name returns the mode name for display
	Name() string
}
