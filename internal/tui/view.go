package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/tasks/internal/core/styles"
	"github.com/colonyops/tasks/internal/core/task"
)

const createdAtLayout = "Jan 2 15:04"

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{
		styles.TitleStyle.Render("Tasks"),
		styles.SubtitleStyle.Render("Stay organized and get things done"),
		"",
		m.renderInput(m.addInput.View(), m.focus == focusAdd),
		m.renderInput(m.searchInput.View(), m.focus == focusSearch),
		m.renderTabs(),
		"",
		m.renderList(),
		"",
		m.renderCounters(),
	}

	if m.confirm != nil {
		sections = append(sections, m.confirm.View())
	} else if m.status != "" {
		style := styles.StatusInfoStyle
		if m.statusErr {
			style = styles.StatusErrorStyle
		}
		sections = append(sections, style.Render(m.status))
	}

	sections = append(sections, styles.HelpStyle.Render(m.renderHelp()))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) renderInput(view string, focused bool) string {
	if focused {
		return styles.InputFocusedStyle.Render(view)
	}
	return styles.InputStyle.Render(view)
}

func (m *Model) renderTabs() string {
	counts := m.tracker.Counts()
	current := m.tracker.Criteria().Status

	tabs := make([]string, 0, 3)
	for _, s := range task.Statuses() {
		var n int
		switch s {
		case task.StatusAll:
			n = counts.Total
		case task.StatusActive:
			n = counts.Active
		case task.StatusCompleted:
			n = counts.Completed
		}

		label := fmt.Sprintf("%s (%d)", statusLabel(s), n)
		if s == current || (current == "" && s == task.StatusAll) {
			tabs = append(tabs, styles.TabSelectedStyle.Render(label))
		} else {
			tabs = append(tabs, styles.TabStyle.Render(label))
		}
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m *Model) renderList() string {
	visible := m.tracker.Visible()

	if len(visible) == 0 {
		msg := "No tasks match the current filter"
		if m.tracker.Counts().Total == 0 {
			msg = "No tasks yet. Press a to add one."
		}
		return styles.EmptyStyle.Render(msg)
	}

	rows := make([]string, 0, len(visible))
	for i, t := range visible {
		rows = append(rows, m.renderRow(t, i == m.cursor))
	}
	return strings.Join(rows, "\n")
}

func (m *Model) renderRow(t task.Task, selected bool) string {
	var b strings.Builder

	if selected {
		b.WriteString(styles.CursorStyle.Render("┃ "))
	} else {
		b.WriteString("  ")
	}

	if t.Completed {
		b.WriteString(styles.CheckStyle.Render("[x]"))
	} else {
		b.WriteString("[ ]")
	}
	b.WriteString(" ")

	if m.tracker.IsEditing(t.ID) {
		b.WriteString(styles.EditFieldStyle.Render(m.editInput.View()))
		return b.String()
	}

	if t.Completed {
		b.WriteString(styles.TaskCompletedStyle.Render(t.Text))
	} else {
		b.WriteString(styles.TaskTextStyle.Render(t.Text))
	}

	if m.cfg.ShowCreatedAt && !t.CreatedAt.IsZero() {
		b.WriteString(styles.TaskMetaStyle.Render("  " + t.CreatedAt.Format(createdAtLayout)))
	}

	return b.String()
}

func (m *Model) renderCounters() string {
	counts := m.tracker.Counts()

	parts := []string{
		counter("Total", counts.Total),
		counter("Active", counts.Active),
		counter("Completed", counts.Completed),
	}
	if found, searching := m.tracker.Found(); searching {
		parts = append(parts, counter("Found", found))
	}

	return strings.Join(parts, styles.CounterStyle.Render(" · "))
}

func (m *Model) renderHelp() string {
	if m.focus == focusList {
		return m.help.View(m.keys)
	}
	return m.help.View(inputKeyMap{submit: m.keys.Submit, cancel: m.keys.Cancel})
}

func counter(label string, n int) string {
	return styles.CounterStyle.Render(label+": ") + styles.CounterValueStyle.Render(fmt.Sprint(n))
}

func statusLabel(s task.Status) string {
	switch s {
	case task.StatusActive:
		return "Active"
	case task.StatusCompleted:
		return "Completed"
	default:
		return "All"
	}
}
