package pipeline

import (
	"strings"
	"time"

	"userdeck/internal/domain"
)

// EvaluateFunc maps criteria and a dataset to the matching records
type EvaluateFunc func(SearchCriteria, []domain.UserRecord) []domain.UserRecord

// Evaluate returns the records matching every non-empty criteria field,
// in dataset order. Unparsable criteria dates do not constrain the result;
// records without a date of birth never satisfy an active date bound.
func Evaluate(c SearchCriteria, dataset []domain.UserRecord) []domain.UserRecord {
	query := strings.ToLower(strings.TrimSpace(c.Text))
	from, hasFrom := domain.ParseDate(c.FromDate)
	to, hasTo := domain.ParseDate(c.ToDate)

	result := make([]domain.UserRecord, 0, len(dataset))
	for _, user := range dataset {
		if query != "" && !matchesText(user, query) {
			continue
		}
		if c.NationalityCode != "" && user.NationalityCode != c.NationalityCode {
			continue
		}
		if hasFrom && !onOrAfter(user, from) {
			continue
		}
		if hasTo && !onOrBefore(user, to) {
			continue
		}
		result = append(result, user)
	}
	return result
}

func matchesText(user domain.UserRecord, query string) bool {
	return strings.Contains(strings.ToLower(user.Username), query) ||
		strings.Contains(strings.ToLower(user.DisplayName), query) ||
		strings.Contains(strings.ToLower(user.Email), query)
}

func onOrAfter(user domain.UserRecord, bound time.Time) bool {
	if !user.HasDateOfBirth() {
		return false
	}
	return !domain.CalendarDate(user.DateOfBirth).Before(bound)
}

func onOrBefore(user domain.UserRecord, bound time.Time) bool {
	if !user.HasDateOfBirth() {
		return false
	}
	return !domain.CalendarDate(user.DateOfBirth).After(bound)
}
