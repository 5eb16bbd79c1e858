package viewmodels

import (
	"errors"
	"fmt"

	apperrors "userdeck/internal/errors"
	"userdeck/internal/pipeline"
	"userdeck/internal/ui/input"
	"userdeck/internal/ui/input/types"
	"userdeck/internal/ui/views"
)

// AllNationalities labels the empty nationality selection
const AllNationalities = "All Nationalities"

// InputTransformer turns the input handler's widgets into filter bar lines
type InputTransformer struct {
	handler *input.Handler
}

// NewInputTransformer creates a new input transformer
func NewInputTransformer(handler *input.Handler) *InputTransformer {
	return &InputTransformer{handler: handler}
}

// Fields returns the filter bar in focus order
func (it *InputTransformer) Fields(c pipeline.SearchCriteria) []views.FilterField {
	focused := it.handler.CurrentMode()
	fields := make([]views.FilterField, 0, 4)
	for _, mode := range []types.Mode{types.ModeSearch, types.ModeNationality, types.ModeFromDate, types.ModeToDate} {
		f := views.FilterField{Focused: mode == focused}
		if mode == types.ModeNationality {
			f.Label = "Nationality: "
			f.Value = nationalityLabel(c.NationalityCode, f.Focused)
		} else {
			f.Label = it.handler.Prompt(mode)
			f.Value = it.textValue(mode)
		}
		fields = append(fields, f)
	}
	return fields
}

func (it *InputTransformer) textValue(mode types.Mode) string {
	ti := it.handler.TextInput(mode)
	if ti == nil {
		return ""
	}
	return ti.View()
}

func nationalityLabel(code string, focused bool) string {
	label := code
	if label == "" {
		label = AllNationalities
	}
	if focused {
		return fmt.Sprintf("< %s >", label)
	}
	return label
}

// Hints returns one line per criteria value that cannot be applied
func (it *InputTransformer) Hints(c pipeline.SearchCriteria) []string {
	var hints []string
	for _, err := range c.Problems() {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			hints = append(hints, appErr.Message)
			continue
		}
		hints = append(hints, err.Error())
	}
	return hints
}
