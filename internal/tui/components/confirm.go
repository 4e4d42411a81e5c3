// Package components provides reusable TUI components.
package components

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/colonyops/tasks/internal/core/styles"
)

// ConfirmModal is a simple yes/no confirmation dialog.
type ConfirmModal struct {
	message   string
	confirmed bool
	cancelled bool
}

// NewConfirmModal creates a new confirmation modal.
func NewConfirmModal(message string) ConfirmModal {
	return ConfirmModal{message: message}
}

// Update handles input for the confirmation modal. Keys other than y/n,
// enter and esc are ignored.
func (m ConfirmModal) Update(msg tea.Msg) (ConfirmModal, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "y", "Y", "enter":
		m.confirmed = true
	case "n", "N", "esc":
		m.cancelled = true
	}

	return m, nil
}

// View renders the confirmation modal.
func (m ConfirmModal) View() string {
	message := styles.ConfirmMessageStyle.Render(m.message)
	prompt := styles.ConfirmPromptStyle.Render("Continue? (y/n)")

	return styles.PanelStyle.Render(message + "\n" + prompt)
}

// Confirmed returns true if user confirmed.
func (m ConfirmModal) Confirmed() bool {
	return m.confirmed
}

// Cancelled returns true if user cancelled.
func (m ConfirmModal) Cancelled() bool {
	return m.cancelled
}

// Done reports whether the user answered either way.
func (m ConfirmModal) Done() bool {
	return m.confirmed || m.cancelled
}
