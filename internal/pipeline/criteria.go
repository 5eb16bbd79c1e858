package pipeline

import (
	"fmt"
	"sync"

	"userdeck/internal/domain"
	apperrors "userdeck/internal/errors"
)

// Field names one dimension of SearchCriteria
type Field int

const (
	FieldText Field = iota
	FieldNationality
	FieldFromDate
	FieldToDate
)

var fieldNames = map[Field]string{
	FieldText:        "text",
	FieldNationality: "nationalityCode",
	FieldFromDate:    "fromDate",
	FieldToDate:      "toDate",
}

func (f Field) String() string {
	if name, ok := fieldNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Field(%d)", int(f))
}

// ParseField maps a field name to its Field
func ParseField(name string) (Field, error) {
	for f, n := range fieldNames {
		if n == name {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown criteria field %q", name)
}

// SearchCriteria holds the operator's current filter inputs.
// Empty fields do not constrain the result. Dates are kept as typed.
type SearchCriteria struct {
	Text            string
	NationalityCode string
	FromDate        string
	ToDate          string
}

// Get returns the raw value of one field
func (c SearchCriteria) Get(f Field) string {
	switch f {
	case FieldText:
		return c.Text
	case FieldNationality:
		return c.NationalityCode
	case FieldFromDate:
		return c.FromDate
	case FieldToDate:
		return c.ToDate
	}
	return ""
}

// With returns a copy of c with exactly one field replaced
func (c SearchCriteria) With(f Field, value string) SearchCriteria {
	switch f {
	case FieldText:
		c.Text = value
	case FieldNationality:
		c.NationalityCode = value
	case FieldFromDate:
		c.FromDate = value
	case FieldToDate:
		c.ToDate = value
	}
	return c
}

// IsEmpty reports whether no field constrains the result
func (c SearchCriteria) IsEmpty() bool {
	return c == SearchCriteria{}
}

// Problems lists the criteria values the evaluator will ignore
func (c SearchCriteria) Problems() []error {
	var problems []error
	for _, f := range []Field{FieldFromDate, FieldToDate} {
		raw := c.Get(f)
		if raw == "" {
			continue
		}
		if _, ok := domain.ParseDate(raw); !ok {
			problems = append(problems, apperrors.NewMalformedCriteriaError(f.String(), raw, "not a calendar date, ignored"))
		}
	}
	return problems
}

type criteriaSubscriber struct {
	id uint64
	fn func(SearchCriteria)
}

// Store holds the current criteria snapshot and notifies subscribers
// synchronously on every edit.
type Store struct {
	mu          sync.Mutex
	current     SearchCriteria
	subscribers []criteriaSubscriber
	nextID      uint64
}

// NewStore creates an empty criteria store
func NewStore() *Store {
	return &Store{}
}

// Snapshot returns the current criteria
func (s *Store) Snapshot() SearchCriteria {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// SetField replaces one field and emits the new snapshot
func (s *Store) SetField(f Field, value string) SearchCriteria {
	s.mu.Lock()
	s.current = s.current.With(f, value)
	snapshot := s.current
	subs := make([]criteriaSubscriber, len(s.subscribers))
	copy(subs, s.subscribers)
	s.mu.Unlock()

	for _, sub := range subs {
		sub.fn(snapshot)
	}
	return snapshot
}

// Subscribe registers fn for every new snapshot
// Returns an unsubscribe function
func (s *Store) Subscribe(fn func(SearchCriteria)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := s.nextID
	s.subscribers = append(s.subscribers, criteriaSubscriber{id: id, fn: fn})

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.subscribers {
			if sub.id == id {
				s.subscribers = append(s.subscribers[:i:i], s.subscribers[i+1:]...)
				break
			}
		}
	}
}
