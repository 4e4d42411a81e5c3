// Package tracker bundles a task store, its edit session, and the active
// filter criteria into the single object a view drives.
package tracker

import (
	"github.com/rs/zerolog"

	"github.com/colonyops/tasks/internal/core/task"
)

// Tracker is the view-facing facade over the task domain. Like the store it
// wraps, it is meant to be driven by one actor.
type Tracker struct {
	store    *task.Store
	edit     *task.EditSession
	criteria task.Criteria
	log      zerolog.Logger
}

// New creates a Tracker over store with all tasks visible.
func New(store *task.Store, log zerolog.Logger) *Tracker {
	return &Tracker{
		store:    store,
		edit:     task.NewEditSession(store),
		criteria: task.Criteria{Status: task.StatusAll},
		log:      log,
	}
}

// Store returns the underlying store.
func (t *Tracker) Store() *task.Store {
	return t.store
}

// List returns every task in insertion order.
func (t *Tracker) List() []task.Task {
	return t.store.List()
}

// Visible returns the tasks matching the current criteria.
func (t *Tracker) Visible() []task.Task {
	return task.Visible(t.store.List(), t.criteria)
}

// Counts returns the counters over all tasks, ignoring the criteria.
func (t *Tracker) Counts() task.Counts {
	return t.store.Counts()
}

// Found returns the number of visible tasks and whether a search term is
// active. The count is only shown to users while searching.
func (t *Tracker) Found() (int, bool) {
	return len(t.Visible()), t.criteria.Search != ""
}

// Criteria returns the current filter criteria.
func (t *Tracker) Criteria() task.Criteria {
	return t.criteria
}

// SetStatus changes the status filter.
func (t *Tracker) SetStatus(s task.Status) {
	if s == "" {
		s = task.StatusAll
	}
	t.criteria.Status = s
}

// SetSearch changes the search term.
func (t *Tracker) SetSearch(term string) {
	t.criteria.Search = term
}

// EditState returns the edit session state.
func (t *Tracker) EditState() task.EditState {
	return t.edit.State()
}

// IsEditing reports whether the task with id is under edit.
func (t *Tracker) IsEditing(id string) bool {
	return t.edit.IsEditing(id)
}

// Add creates a task from raw text.
func (t *Tracker) Add(raw string) (string, bool) {
	return t.store.Add(raw)
}

// Toggle flips completion of a task.
func (t *Tracker) Toggle(id string) bool {
	return t.store.Toggle(id)
}

// Update replaces the text of a task.
func (t *Tracker) Update(id, raw string) bool {
	return t.store.Update(id, raw)
}

// Remove deletes a task. Removing the task under edit also ends the edit,
// since its draft has nowhere left to go.
func (t *Tracker) Remove(id string) bool {
	ok := t.store.Remove(id)
	if ok && t.edit.IsEditing(id) {
		t.edit.Cancel()
	}
	return ok
}

// ClearCompleted removes all completed tasks.
func (t *Tracker) ClearCompleted() int {
	n := t.store.ClearCompleted()
	if ed, ok := t.edit.Editing(); ok {
		if _, exists := t.store.Get(ed.ID); !exists {
			t.edit.Cancel()
		}
	}
	return n
}

// StartEdit begins editing id with its current text as the draft. Unknown
// ids leave the session unchanged.
func (t *Tracker) StartEdit(id string) bool {
	tk, ok := t.store.Get(id)
	if !ok {
		return false
	}
	t.edit.StartEdit(tk.ID, tk.Text)
	return true
}

// SetDraft replaces the draft of the active edit.
func (t *Tracker) SetDraft(text string) {
	t.edit.SetDraft(text)
}

// Commit writes the active draft and ends the edit.
func (t *Tracker) Commit() bool {
	return t.edit.Commit()
}

// Cancel abandons the active edit.
func (t *Tracker) Cancel() {
	t.edit.Cancel()
}

// Snapshot is a point-in-time view of a tracker, used for JSON output.
type Snapshot struct {
	Tasks    []task.Task   `json:"tasks"`
	Visible  []task.Task   `json:"visible"`
	Counts   task.Counts   `json:"counts"`
	Found    *int          `json:"found,omitempty"`
	Criteria task.Criteria `json:"criteria"`
	Editing  *task.Editing `json:"editing,omitempty"`
}

// Snapshot captures the current state.
func (t *Tracker) Snapshot() Snapshot {
	snap := Snapshot{
		Tasks:    t.List(),
		Visible:  t.Visible(),
		Counts:   t.Counts(),
		Criteria: t.criteria,
	}
	if n, searching := t.Found(); searching {
		snap.Found = &n
	}
	if ed, ok := t.edit.Editing(); ok {
		snap.Editing = &ed
	}
	return snap
}
