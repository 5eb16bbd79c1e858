package viewmodels

import (
	"userdeck/internal/config"
	"userdeck/internal/domain"
	"userdeck/internal/ui/input"
	"userdeck/internal/ui/state"
	"userdeck/internal/ui/views"
)

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state            *state.AppState
	config           *config.Config
	width            int
	height           int
	helpView         string
	spinner          string
	inputTransformer *InputTransformer
}

// NewViewModel creates a new view model
func NewViewModel(appState *state.AppState, cfg *config.Config, handler *input.Handler) *ViewModel {
	return &ViewModel{
		state:            appState,
		config:           cfg,
		inputTransformer: NewInputTransformer(handler),
	}
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
}

// SetHelpView sets the rendered key help line
func (vm *ViewModel) SetHelpView(helpView string) {
	vm.helpView = helpView
}

// SetSpinner sets the current spinner frame
func (vm *ViewModel) SetSpinner(frame string) {
	vm.spinner = frame
}

// Surface projects the state onto the render contract
func (vm *ViewModel) Surface() views.Surface {
	return Project(vm.state)
}

// Project builds the render surface from application state
func Project(s *state.AppState) views.Surface {
	surface := views.Surface{
		Status:             s.Status,
		Pending:            s.Pending,
		NationalityOptions: s.NationalityOptions,
	}
	if s.Status == domain.StatusReady && !s.Pending {
		surface.Results = s.Results
	}
	return surface
}

// DistinctNationalities returns each nationality code in the dataset once,
// in order of first appearance. Records without a code are skipped.
func DistinctNationalities(dataset []domain.UserRecord) []string {
	seen := make(map[string]bool)
	var options []string
	for _, u := range dataset {
		if u.NationalityCode == "" || seen[u.NationalityCode] {
			continue
		}
		seen[u.NationalityCode] = true
		options = append(options, u.NationalityCode)
	}
	return options
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState() views.ViewState {
	vs := views.ViewState{
		Width:          vm.width,
		Height:         vm.height,
		Surface:        vm.Surface(),
		Query:          vm.state.Criteria.Text,
		SelectedIndex:  vm.state.SelectedIndex,
		ViewportOffset: vm.state.ViewportOffset,
		ViewportHeight: vm.state.ViewportHeight,
		Spinner:        vm.spinner,
		StatusMessage:  vm.state.StatusMessage,
	}
	if vm.state.Status == domain.StatusReady {
		vs.Filters = vm.inputTransformer.Fields(vm.state.Criteria)
		vs.Hints = vm.inputTransformer.Hints(vm.state.Criteria)
	}
	if vm.state.LoadError != nil {
		vs.LoadError = vm.state.LoadError.Error()
	}
	if vm.state.Fault != nil {
		vs.Fault = vm.state.Fault.Error()
	}
	if vm.config == nil || vm.config.UISettings.ShowHelpBar {
		vs.HelpView = vm.helpView
	}
	return vs
}
