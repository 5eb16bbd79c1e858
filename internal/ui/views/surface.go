package views

import "userdeck/internal/domain"

// Surface is what the list area is rendered from
type Surface struct {
	Status             domain.LoadStatus
	Pending            bool
	Results            []domain.UserRecord
	NationalityOptions []string
}

// Placeholder names what the list area shows instead of rows
type Placeholder int

const (
	PlaceholderNone Placeholder = iota // render the result list
	PlaceholderLoading
	PlaceholderError
	PlaceholderComputing
	PlaceholderNoResults
)

// Placeholder picks the list area content: loading, then error, then
// computing, then the list itself, then "no results".
func (s Surface) Placeholder() Placeholder {
	switch {
	case s.Status == domain.StatusLoading:
		return PlaceholderLoading
	case s.Status == domain.StatusError:
		return PlaceholderError
	case s.Pending:
		return PlaceholderComputing
	case len(s.Results) > 0:
		return PlaceholderNone
	default:
		return PlaceholderNoResults
	}
}

// Count is the number shown next to the list; rows are cleared while a
// filter pass is pending.
func (s Surface) Count() int {
	if s.Status != domain.StatusReady || s.Pending {
		return 0
	}
	return len(s.Results)
}
