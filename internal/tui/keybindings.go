package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the list-mode key bindings. Input modes (add, search, edit)
// only react to enter and esc; every other key goes to the focused field.
type KeyMap struct {
	Up             key.Binding
	Down           key.Binding
	Add            key.Binding
	Search         key.Binding
	Toggle         key.Binding
	Edit           key.Binding
	Remove         key.Binding
	ClearCompleted key.Binding
	NextFilter     key.Binding
	FilterAll      key.Binding
	FilterActive   key.Binding
	FilterDone     key.Binding
	ClearSearch    key.Binding
	Help           key.Binding
	Quit           key.Binding

	Submit key.Binding
	Cancel key.Binding
}

// DefaultKeyMap returns the built-in key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:             key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:           key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Add:            key.NewBinding(key.WithKeys("a", "n"), key.WithHelp("a", "add")),
		Search:         key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Toggle:         key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "toggle")),
		Edit:           key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e", "edit")),
		Remove:         key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete")),
		ClearCompleted: key.NewBinding(key.WithKeys("C"), key.WithHelp("C", "clear completed")),
		NextFilter:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next filter")),
		FilterAll:      key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "all")),
		FilterActive:   key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "active")),
		FilterDone:     key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "completed")),
		ClearSearch:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear search")),
		Help:           key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:           key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),

		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Toggle, k.Edit, k.Remove, k.Search, k.NextFilter, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle, k.Edit, k.Remove},
		{k.Add, k.Search, k.ClearSearch, k.ClearCompleted},
		{k.NextFilter, k.FilterAll, k.FilterActive, k.FilterDone},
		{k.Help, k.Quit},
	}
}

// inputKeyMap is shown while a text field has focus.
type inputKeyMap struct {
	submit key.Binding
	cancel key.Binding
}

func (k inputKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.submit, k.cancel}
}

func (k inputKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
