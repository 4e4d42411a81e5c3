package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/colonyops/tasks/pkg/tuitest"
)

func TestDefaultKeyMap(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name    string
		msg     tea.KeyMsg
		binding key.Binding
	}{
		{name: "space toggles", msg: tuitest.KeyPress(' '), binding: keys.Toggle},
		{name: "x toggles", msg: tuitest.KeyPress('x'), binding: keys.Toggle},
		{name: "enter edits", msg: tuitest.KeyEnter(), binding: keys.Edit},
		{name: "tab cycles filters", msg: tuitest.KeyTab(), binding: keys.NextFilter},
		{name: "ctrl+c quits", msg: tuitest.KeyCtrl('c'), binding: keys.Quit},
		{name: "shift C clears completed", msg: tuitest.KeyPress('C'), binding: keys.ClearCompleted},
		{name: "j moves down", msg: tuitest.KeyPress('j'), binding: keys.Down},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, key.Matches(tt.msg, tt.binding))
		})
	}

	assert.False(t, key.Matches(tuitest.KeyPress('c'), keys.ClearCompleted), "lowercase c is unbound")
}

func TestKeyMap_Help(t *testing.T) {
	keys := DefaultKeyMap()

	assert.NotEmpty(t, keys.ShortHelp())

	var n int
	for _, col := range keys.FullHelp() {
		n += len(col)
	}
	assert.Equal(t, 15, n, "every list binding appears in full help")

	input := inputKeyMap{submit: keys.Submit, cancel: keys.Cancel}
	assert.Len(t, input.ShortHelp(), 2)
}
