// Package task defines the task domain model: the ordered task store, the
// filter compositor that derives the visible subset, and the single-slot
// inline edit session.
package task

import "time"

// Task is a single to-do entry.
type Task struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
}

// Counts holds the derived counters for a task collection.
type Counts struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Active    int `json:"active"`
}

// CountOf computes counters for tasks. Active is always Total - Completed.
func CountOf(tasks []Task) Counts {
	c := Counts{Total: len(tasks)}
	for _, t := range tasks {
		if t.Completed {
			c.Completed++
		}
	}
	c.Active = c.Total - c.Completed
	return c
}

// ChangeKind identifies which store mutation produced a Change.
type ChangeKind string

const (
	ChangeAdded   ChangeKind = "added"
	ChangeToggled ChangeKind = "toggled"
	ChangeUpdated ChangeKind = "updated"
	ChangeRemoved ChangeKind = "removed"
	ChangeCleared ChangeKind = "cleared"
)

// Change describes an effective mutation of the store. ID is empty for
// ChangeCleared, which may remove several tasks at once.
type Change struct {
	Kind ChangeKind
	ID   string
}
