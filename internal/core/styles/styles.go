// Package styles provides shared lipgloss styles for the task list TUI.
package styles

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Palette defines a minimal semantic theme palette.
type Palette struct {
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Background lipgloss.Color
	Surface    lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
}

// DefaultTheme is the name of the default theme.
const DefaultTheme = "tokyo-night"

// themes holds the built-in named palettes.
var themes = map[string]Palette{
	"tokyo-night": {
		Primary:    lipgloss.Color("#7aa2f7"),
		Secondary:  lipgloss.Color("#7dcfff"),
		Foreground: lipgloss.Color("#c0caf5"),
		Muted:      lipgloss.Color("#565f89"),
		Background: lipgloss.Color("#1a1b26"),
		Surface:    lipgloss.Color("#3b4261"),
		Success:    lipgloss.Color("#9ece6a"),
		Warning:    lipgloss.Color("#e0af68"),
		Error:      lipgloss.Color("#f7768e"),
	},
	"gruvbox": {
		Primary:    lipgloss.Color("#83a598"),
		Secondary:  lipgloss.Color("#8ec07c"),
		Foreground: lipgloss.Color("#ebdbb2"),
		Muted:      lipgloss.Color("#665c54"),
		Background: lipgloss.Color("#282828"),
		Surface:    lipgloss.Color("#3c3836"),
		Success:    lipgloss.Color("#b8bb26"),
		Warning:    lipgloss.Color("#fabd2f"),
		Error:      lipgloss.Color("#fb4934"),
	},
	"paper": {
		Primary:    lipgloss.Color("#4f46e5"),
		Secondary:  lipgloss.Color("#7c3aed"),
		Foreground: lipgloss.Color("#111827"),
		Muted:      lipgloss.Color("#6b7280"),
		Background: lipgloss.Color("#f8fafc"),
		Surface:    lipgloss.Color("#e5e7eb"),
		Success:    lipgloss.Color("#16a34a"),
		Warning:    lipgloss.Color("#ca8a04"),
		Error:      lipgloss.Color("#dc2626"),
	},
}

// ThemeNames returns sorted names of all built-in themes.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetPalette returns the palette for the given theme name.
func GetPalette(name string) (Palette, bool) {
	p, ok := themes[name]
	return p, ok
}

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// Style exports.
var (
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	PanelStyle    lipgloss.Style
	HelpStyle     lipgloss.Style

	InputStyle        lipgloss.Style
	InputFocusedStyle lipgloss.Style

	// Filter tabs.
	TabStyle         lipgloss.Style
	TabSelectedStyle lipgloss.Style

	// Task rows.
	CursorStyle        lipgloss.Style
	TaskTextStyle      lipgloss.Style
	TaskCompletedStyle lipgloss.Style
	TaskMetaStyle      lipgloss.Style
	CheckStyle         lipgloss.Style
	EditFieldStyle     lipgloss.Style

	// Counters and status line.
	CounterStyle      lipgloss.Style
	CounterValueStyle lipgloss.Style
	StatusInfoStyle   lipgloss.Style
	StatusErrorStyle  lipgloss.Style
	EmptyStyle        lipgloss.Style

	// Confirmation dialog.
	ConfirmMessageStyle lipgloss.Style
	ConfirmPromptStyle  lipgloss.Style
)

// SetTheme sets the active palette and rebuilds all global styles.
func SetTheme(p Palette) {
	CurrentPalette = p

	TitleStyle = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true)
	SubtitleStyle = lipgloss.NewStyle().
		Foreground(p.Muted)
	PanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Surface).
		Padding(0, 1)
	HelpStyle = lipgloss.NewStyle().
		Foreground(p.Muted).
		MarginTop(1)

	InputStyle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(p.Muted).
		PaddingLeft(1)
	InputFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(p.Primary).
		PaddingLeft(1)

	TabStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(p.Muted)
	TabSelectedStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Background(p.Primary).
		Foreground(p.Background).
		Bold(true)

	CursorStyle = lipgloss.NewStyle().
		Foreground(p.Primary)
	TaskTextStyle = lipgloss.NewStyle().
		Foreground(p.Foreground)
	TaskCompletedStyle = lipgloss.NewStyle().
		Foreground(p.Muted).
		Strikethrough(true)
	TaskMetaStyle = lipgloss.NewStyle().
		Foreground(p.Muted)
	CheckStyle = lipgloss.NewStyle().
		Foreground(p.Success)
	EditFieldStyle = lipgloss.NewStyle().
		Foreground(p.Warning)

	CounterStyle = lipgloss.NewStyle().
		Foreground(p.Muted)
	CounterValueStyle = lipgloss.NewStyle().
		Foreground(p.Secondary).
		Bold(true)
	StatusInfoStyle = lipgloss.NewStyle().
		Foreground(p.Success)
	StatusErrorStyle = lipgloss.NewStyle().
		Foreground(p.Error)
	EmptyStyle = lipgloss.NewStyle().
		Foreground(p.Muted).
		Italic(true)

	ConfirmMessageStyle = lipgloss.NewStyle().
		Foreground(p.Warning)
	ConfirmPromptStyle = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true)
}

func init() {
	p, _ := GetPalette(DefaultTheme)
	SetTheme(p)
}
