package modes

import (
	"github.com/charmbracelet/bubbles/textinput"

	"userdeck/internal/ui/input/types"
)

// DateMode edits one bound of the date-of-birth range
type DateMode struct {
	TextInputMode
}

func NewFromDateMode(ti *textinput.Model) *DateMode {
	return &DateMode{
		TextInputMode: NewTextInputMode(types.ModeFromDate, "from", "Born from: ", ti),
	}
}

func NewToDateMode(ti *textinput.Model) *DateMode {
	return &DateMode{
		TextInputMode: NewTextInputMode(types.ModeToDate, "to", "Born to: ", ti),
	}
}
