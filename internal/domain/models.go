package domain

import (
	"strings"
	"time"
)

// DateLayout is the calendar date format used for criteria input and display
const DateLayout = "2006-01-02"

// UserRecord represents one person in the directory
type UserRecord struct {
	ID              string    `validate:"required"`
	DisplayName     string    `validate:"required"`
	Username        string    // login name, may be empty
	DateOfBirth     time.Time // calendar date in UTC, zero when unknown
	NationalityCode string    `validate:"omitempty,alpha,len=2"`
	Email           string    `validate:"required,email"`
	ThumbnailURL    string    `validate:"omitempty,url"`
}

// HasDateOfBirth reports whether the record carries a usable date of birth
func (u UserRecord) HasDateOfBirth() bool {
	return !u.DateOfBirth.IsZero()
}

// CalendarDate truncates t to midnight UTC of its UTC calendar day
func CalendarDate(t time.Time) time.Time {
	if t.IsZero() {
		return time.Time{}
	}
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate accepts either a plain calendar date or an RFC 3339 timestamp
// and returns the calendar date it falls on.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return CalendarDate(t), true
	}
	return time.Time{}, false
}

// LoadStatus is the state of the one-shot dataset load
type LoadStatus int

const (
	StatusLoading LoadStatus = iota
	StatusError
	StatusReady
)

func (s LoadStatus) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusError:
		return "error"
	case StatusReady:
		return "ready"
	default:
		return "unknown"
	}
}
