package state

import (
	"userdeck/internal/domain"
	"userdeck/internal/pipeline"
)

// AppState contains all the application state
type AppState struct {
	// Dataset
	Status             domain.LoadStatus
	Dataset            []domain.UserRecord
	NationalityOptions []string // derived once when the dataset arrives
	LoadError          error

	// Latest scheduler snapshot
	Criteria pipeline.SearchCriteria
	Pending  bool
	Results  []domain.UserRecord
	Fault    error // set when the last filter pass failed

	// Selection state
	SelectedIndex int

	// UI state
	ViewportOffset int // offset for scrolling
	ViewportHeight int // available height for the result list
	StatusMessage  string
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{
		Status:         domain.StatusLoading,
		ViewportHeight: 20, // Default
	}
}

// SetDataset records a loaded dataset and its selector options
func (s *AppState) SetDataset(users []domain.UserRecord, options []string) {
	s.Status = domain.StatusReady
	s.Dataset = users
	s.NationalityOptions = options
	s.Results = users
	s.LoadError = nil
}

// SetLoadError records a failed load
func (s *AppState) SetLoadError(err error) {
	s.Status = domain.StatusError
	s.LoadError = err
}

// ApplySnapshot copies a scheduler snapshot into the state and keeps the
// cursor inside the new result list.
func (s *AppState) ApplySnapshot(snap pipeline.Snapshot) {
	s.Criteria = snap.Criteria
	s.Pending = snap.Pending()
	s.Results = snap.Results
	s.Fault = snap.Fault

	if s.Pending {
		s.SelectedIndex = 0
		s.ViewportOffset = 0
		return
	}
	if s.SelectedIndex >= len(s.Results) {
		s.SelectedIndex = len(s.Results) - 1
	}
	if s.SelectedIndex < 0 {
		s.SelectedIndex = 0
	}
}

// SelectedUser returns the record under the cursor
func (s *AppState) SelectedUser() (domain.UserRecord, bool) {
	if s.Pending || s.SelectedIndex < 0 || s.SelectedIndex >= len(s.Results) {
		return domain.UserRecord{}, false
	}
	return s.Results[s.SelectedIndex], true
}
