package types

import "userdeck/internal/pipeline"

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// SetFieldAction edits one search criteria field
type SetFieldAction struct {
	Field pipeline.Field
	Value string
}

func (a SetFieldAction) Type() string { return "set_field" }

type ShowHelpAction struct{}

func (a ShowHelpAction) Type() string { return "show_help" }

// ShowDetailsAction opens the record under the cursor
type ShowDetailsAction struct{}

func (a ShowDetailsAction) Type() string { return "show_details" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
