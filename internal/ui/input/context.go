package input

import (
	"userdeck/internal/domain"
	"userdeck/internal/ui/state"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State *state.AppState
}

// CurrentIndex returns the cursor position in the result list
func (c *ModelContext) CurrentIndex() int {
	return c.State.SelectedIndex
}

// TotalItems returns the number of rows currently rendered
func (c *ModelContext) TotalItems() int {
	if c.State.Pending {
		return 0
	}
	return len(c.State.Results)
}

// Ready reports whether the dataset has loaded
func (c *ModelContext) Ready() bool {
	return c.State.Status == domain.StatusReady
}

// NationalityOptions returns the selector choices derived at load
func (c *ModelContext) NationalityOptions() []string {
	return c.State.NationalityOptions
}

// CurrentNationality returns the selected nationality code, "" for all
func (c *ModelContext) CurrentNationality() string {
	return c.State.Criteria.NationalityCode
}
