package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hay-kot/criterio"
	"github.com/rs/zerolog"

	"github.com/colonyops/tasks/internal/core/config"
	"github.com/colonyops/tasks/internal/core/task"
	"github.com/colonyops/tasks/internal/core/validate"
	"github.com/colonyops/tasks/internal/tracker"
	"github.com/colonyops/tasks/internal/tui/components"
)

// focus identifies which part of the screen receives key presses.
type focus int

const (
	focusList focus = iota
	focusAdd
	focusSearch
	focusEdit
)

// Options configures the TUI behavior.
type Options struct {
	Config config.TUIConfig
	Keys   KeyMap
	Logger zerolog.Logger

	// Search pre-fills the search field.
	Search string
}

// Model is the Bubble Tea model for the task list. It renders a Tracker and
// translates key presses into tracker calls; all task state lives in the
// Tracker.
type Model struct {
	tracker *tracker.Tracker
	cfg     config.TUIConfig
	keys    KeyMap
	help    help.Model
	log     zerolog.Logger

	focus       focus
	addInput    textinput.Model
	searchInput textinput.Model
	editInput   textinput.Model

	confirm *components.ConfirmModal

	cursor    int
	status    string
	statusErr bool
	width     int
	height    int
	quitting  bool
}

// New creates a TUI model over tr.
func New(tr *tracker.Tracker, opts Options) *Model {
	keys := opts.Keys
	if len(keys.Quit.Keys()) == 0 {
		keys = DefaultKeyMap()
	}

	add := textinput.New()
	add.Placeholder = "Add a new task..."
	add.Prompt = "+ "
	add.CharLimit = opts.Config.MaxTextLength

	search := textinput.New()
	search.Placeholder = "Search tasks..."
	search.Prompt = "/ "
	search.SetValue(opts.Search)

	edit := textinput.New()
	edit.Prompt = ""
	edit.CharLimit = opts.Config.MaxTextLength

	m := &Model{
		tracker:     tr,
		cfg:         opts.Config,
		keys:        keys,
		help:        help.New(),
		log:         opts.Logger,
		addInput:    add,
		searchInput: search,
		editInput:   edit,
	}

	tr.SetStatus(opts.Config.DefaultFilter)
	tr.SetSearch(opts.Search)
	tr.Store().Subscribe(m.onChange)

	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		var cmd tea.Cmd
		switch {
		case m.confirm != nil:
			m.updateConfirm(msg)
		case m.focus == focusAdd:
			cmd = m.updateAdd(msg)
		case m.focus == focusSearch:
			cmd = m.updateSearch(msg)
		case m.focus == focusEdit:
			cmd = m.updateEdit(msg)
		default:
			cmd = m.updateList(msg)
		}
		m.clampCursor()
		return m, cmd
	}
	return m, nil
}

func (m *Model) updateList(msg tea.KeyMsg) tea.Cmd {
	m.status = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		m.cursor++
	case key.Matches(msg, m.keys.Add):
		m.focus = focusAdd
		return m.addInput.Focus()
	case key.Matches(msg, m.keys.Search):
		m.focus = focusSearch
		return m.searchInput.Focus()
	case key.Matches(msg, m.keys.Toggle):
		if t, ok := m.selected(); ok {
			m.tracker.Toggle(t.ID)
		}
	case key.Matches(msg, m.keys.Edit):
		if t, ok := m.selected(); ok && m.tracker.StartEdit(t.ID) {
			m.editInput.SetValue(t.Text)
			m.editInput.CursorEnd()
			m.focus = focusEdit
			return m.editInput.Focus()
		}
	case key.Matches(msg, m.keys.Remove):
		if t, ok := m.selected(); ok {
			m.tracker.Remove(t.ID)
		}
	case key.Matches(msg, m.keys.ClearCompleted):
		n := m.tracker.Counts().Completed
		if n == 0 {
			m.setStatus("no completed tasks to clear", false)
			break
		}
		noun := "tasks"
		if n == 1 {
			noun = "task"
		}
		modal := components.NewConfirmModal(fmt.Sprintf("Clear %d completed %s?", n, noun))
		m.confirm = &modal
	case key.Matches(msg, m.keys.NextFilter):
		m.setFilter(m.tracker.Criteria().Status.Next())
	case key.Matches(msg, m.keys.FilterAll):
		m.setFilter(task.StatusAll)
	case key.Matches(msg, m.keys.FilterActive):
		m.setFilter(task.StatusActive)
	case key.Matches(msg, m.keys.FilterDone):
		m.setFilter(task.StatusCompleted)
	case key.Matches(msg, m.keys.ClearSearch):
		m.searchInput.Reset()
		m.tracker.SetSearch("")
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return nil
}

func (m *Model) updateConfirm(msg tea.KeyMsg) {
	modal, _ := m.confirm.Update(msg)
	if !modal.Done() {
		m.confirm = &modal
		return
	}

	m.confirm = nil
	if modal.Confirmed() {
		m.tracker.ClearCompleted()
		return
	}
	m.setStatus("clear cancelled", false)
}

func (m *Model) updateAdd(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Submit):
		value := m.addInput.Value()
		if err := validate.TaskTextField("task", value, m.cfg.MaxTextLength); err != nil {
			m.setStatus(fieldMessage(err), true)
			return nil
		}
		if _, ok := m.tracker.Add(value); ok {
			m.addInput.Reset()
			m.cursor = len(m.tracker.Visible()) - 1
		}
		return nil
	case key.Matches(msg, m.keys.Cancel):
		m.addInput.Blur()
		m.focus = focusList
		return nil
	}

	var cmd tea.Cmd
	m.addInput, cmd = m.addInput.Update(msg)
	return cmd
}

func (m *Model) updateSearch(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.Submit) || key.Matches(msg, m.keys.Cancel) {
		m.searchInput.Blur()
		m.focus = focusList
		return nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.tracker.SetSearch(m.searchInput.Value())
	m.cursor = 0
	return cmd
}

func (m *Model) updateEdit(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Submit):
		if !m.tracker.Commit() {
			if err := validate.TaskText(m.editInput.Value()); err != nil {
				m.setStatus("edit discarded: "+err.Error(), true)
			}
		}
		m.endEdit()
		return nil
	case key.Matches(msg, m.keys.Cancel):
		m.tracker.Cancel()
		m.endEdit()
		return nil
	}

	var cmd tea.Cmd
	m.editInput, cmd = m.editInput.Update(msg)
	m.tracker.SetDraft(m.editInput.Value())
	return cmd
}

func (m *Model) endEdit() {
	m.editInput.Blur()
	m.editInput.Reset()
	m.focus = focusList
}

func (m *Model) setFilter(s task.Status) {
	m.tracker.SetStatus(s)
	m.cursor = 0
}

func (m *Model) setStatus(msg string, isErr bool) {
	m.status = msg
	m.statusErr = isErr
}

// selected returns the visible task under the cursor.
func (m *Model) selected() (task.Task, bool) {
	visible := m.tracker.Visible()
	if m.cursor < 0 || m.cursor >= len(visible) {
		return task.Task{}, false
	}
	return visible[m.cursor], true
}

func (m *Model) clampCursor() {
	n := len(m.tracker.Visible())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// onChange reports store mutations on the status line. The edit session may
// end as a side effect (the edited task was removed), in which case the edit
// field is closed too.
func (m *Model) onChange(c task.Change) {
	m.log.Debug().Str("kind", string(c.Kind)).Str("id", c.ID).Msg("store changed")

	switch c.Kind {
	case task.ChangeAdded:
		m.setStatus("task added", false)
	case task.ChangeRemoved:
		m.setStatus("task deleted", false)
	case task.ChangeCleared:
		m.setStatus(fmt.Sprintf("cleared completed tasks, %d remaining", m.tracker.Counts().Total), false)
	case task.ChangeUpdated:
		m.setStatus("task updated", false)
	}

	if m.focus == focusEdit {
		if _, editing := m.tracker.EditState().(task.Editing); !editing {
			m.endEdit()
		}
	}
}

// fieldMessage returns the first field error's message, or err's text.
func fieldMessage(err error) string {
	var fieldErrs criterio.FieldErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return fieldErrs[0].Err.Error()
	}
	return err.Error()
}

// Quitting reports whether the user asked to quit.
func (m *Model) Quitting() bool {
	return m.quitting
}
