package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"
)

const markdownWidth = 80

// glamourStyle picks a glamour standard style for the configured theme, or
// the plain "notty" style when w is not a terminal.
func glamourStyle(theme string, w io.Writer) string {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return "notty"
	}

	switch theme {
	case "tokyo-night":
		return "tokyo-night"
	case "paper":
		return "light"
	default:
		return "dark"
	}
}

func renderMarkdown(md, style string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(markdownWidth),
	)
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}
	return r.Render(md)
}
