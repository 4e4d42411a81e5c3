package task

// EditState is the state of an EditSession: either Idle or Editing.
type EditState interface {
	editState()
}

// Idle means no task is being edited.
type Idle struct{}

// Editing holds the one task under edit and its scratch draft.
type Editing struct {
	ID    string `json:"id"`
	Draft string `json:"draft"`
}

func (Idle) editState()    {}
func (Editing) editState() {}

// Updater is the write side of the store an EditSession commits to.
type Updater interface {
	Update(id, raw string) bool
}

// EditSession tracks at most one in-progress inline edit.
//
// Operations that are invalid for the current state (SetDraft, Commit, or
// Cancel while Idle) are no-ops.
type EditSession struct {
	store Updater
	state EditState
}

// NewEditSession returns an idle session committing to store.
func NewEditSession(store Updater) *EditSession {
	return &EditSession{store: store, state: Idle{}}
}

// State returns the current state.
func (e *EditSession) State() EditState {
	return e.state
}

// Editing returns the active edit, if any.
func (e *EditSession) Editing() (Editing, bool) {
	ed, ok := e.state.(Editing)
	return ed, ok
}

// IsEditing reports whether the task with id is the one under edit.
func (e *EditSession) IsEditing(id string) bool {
	ed, ok := e.Editing()
	return ok && ed.ID == id
}

// StartEdit begins editing id with currentText as the draft. Any edit already
// in progress is discarded.
func (e *EditSession) StartEdit(id, currentText string) {
	e.state = Editing{ID: id, Draft: currentText}
}

// SetDraft replaces the draft text. No validation happens until Commit.
func (e *EditSession) SetDraft(text string) {
	ed, ok := e.Editing()
	if !ok {
		return
	}
	ed.Draft = text
	e.state = ed
}

// Commit writes the draft through the store and returns to Idle, whether or
// not the store accepted the draft. It reports whether the text changed.
func (e *EditSession) Commit() bool {
	ed, ok := e.Editing()
	if !ok {
		return false
	}
	e.state = Idle{}
	return e.store.Update(ed.ID, ed.Draft)
}

// Cancel discards the draft and returns to Idle.
func (e *EditSession) Cancel() {
	e.state = Idle{}
}
