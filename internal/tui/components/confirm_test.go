package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/colonyops/tasks/pkg/tuitest"
)

func TestConfirmModal(t *testing.T) {
	tests := []struct {
		name          string
		msg           tea.Msg
		wantConfirmed bool
		wantCancelled bool
	}{
		{name: "y", msg: tuitest.KeyPress('y'), wantConfirmed: true},
		{name: "Y", msg: tuitest.KeyPress('Y'), wantConfirmed: true},
		{name: "enter", msg: tuitest.KeyEnter(), wantConfirmed: true},
		{name: "n", msg: tuitest.KeyPress('n'), wantCancelled: true},
		{name: "esc", msg: tuitest.KeyEsc(), wantCancelled: true},
		{name: "other key", msg: tuitest.KeyPress('q')},
		{name: "not a key", msg: tuitest.WindowSize(80, 24)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewConfirmModal("Clear 2 completed tasks?")
			m, cmd := m.Update(tt.msg)

			assert.Nil(t, cmd)
			assert.Equal(t, tt.wantConfirmed, m.Confirmed())
			assert.Equal(t, tt.wantCancelled, m.Cancelled())
			assert.Equal(t, tt.wantConfirmed || tt.wantCancelled, m.Done())
		})
	}
}

func TestConfirmModal_View(t *testing.T) {
	view := tuitest.StripANSI(NewConfirmModal("Clear 2 completed tasks?").View())
	assert.Contains(t, view, "Clear 2 completed tasks?")
	assert.Contains(t, view, "Continue? (y/n)")
}
