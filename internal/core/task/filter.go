package task

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidStatus is returned by ParseStatus for unknown status names.
var ErrInvalidStatus = errors.New("invalid status")

// Status selects tasks by completion state.
type Status string

const (
	StatusAll       Status = "all"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)

// Statuses returns the status filters in display order.
func Statuses() []Status {
	return []Status{StatusAll, StatusActive, StatusCompleted}
}

// IsValid reports whether s is a known status. The empty status is valid and
// behaves like StatusAll.
func (s Status) IsValid() bool {
	switch s {
	case "", StatusAll, StatusActive, StatusCompleted:
		return true
	}
	return false
}

// Next returns the status after s in display order, wrapping around.
func (s Status) Next() Status {
	switch s {
	case StatusActive:
		return StatusCompleted
	case StatusCompleted:
		return StatusAll
	default:
		return StatusActive
	}
}

// ParseStatus parses a status name case-insensitively. An empty string
// parses as StatusAll.
func ParseStatus(v string) (Status, error) {
	s := Status(strings.ToLower(strings.TrimSpace(v)))
	if s == "" {
		return StatusAll, nil
	}
	if !s.IsValid() {
		return "", fmt.Errorf("%w %q: must be one of all, active, completed", ErrInvalidStatus, v)
	}
	return s, nil
}

// Criteria describes which tasks are visible.
type Criteria struct {
	Status Status `json:"status"`
	Search string `json:"search"`
}

// Matches reports whether t satisfies both the status and the search
// predicate. Search is a case-insensitive literal substring match.
func (c Criteria) Matches(t Task) bool {
	return c.matchStatus(t) && matchSearch(t.Text, strings.ToLower(c.Search))
}

func (c Criteria) matchStatus(t Task) bool {
	switch c.Status {
	case StatusActive:
		return !t.Completed
	case StatusCompleted:
		return t.Completed
	default:
		return true
	}
}

func matchSearch(text, lowerTerm string) bool {
	if lowerTerm == "" {
		return true
	}
	return strings.Contains(strings.ToLower(text), lowerTerm)
}

// Visible returns the tasks matching c, in their original order. The result
// is never nil.
func Visible(tasks []Task, c Criteria) []Task {
	term := strings.ToLower(c.Search)

	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if c.matchStatus(t) && matchSearch(t.Text, term) {
			out = append(out, t)
		}
	}
	return out
}
