package tracker

import (
	"fmt"
	"strings"

	"github.com/colonyops/tasks/internal/core/task"
)

// Markdown renders the visible tasks as a GitHub-style checklist followed by
// the counters.
func (s Snapshot) Markdown() string {
	var b strings.Builder

	b.WriteString("# Tasks\n\n")

	if s.Criteria.Status != "" && s.Criteria.Status != task.StatusAll {
		fmt.Fprintf(&b, "Showing **%s** tasks.\n\n", s.Criteria.Status)
	}
	if s.Criteria.Search != "" {
		found := len(s.Visible)
		if s.Found != nil {
			found = *s.Found
		}
		fmt.Fprintf(&b, "Search `%s`: %d found.\n\n", s.Criteria.Search, found)
	}

	if len(s.Visible) == 0 {
		if len(s.Tasks) == 0 {
			b.WriteString("_No tasks yet._\n\n")
		} else {
			b.WriteString("_No tasks match the current filter._\n\n")
		}
	}

	for _, t := range s.Visible {
		mark := " "
		if t.Completed {
			mark = "x"
		}
		text := t.Text
		if s.Editing != nil && s.Editing.ID == t.ID {
			text += fmt.Sprintf(" _(editing: %s)_", s.Editing.Draft)
		}
		fmt.Fprintf(&b, "- [%s] %s\n", mark, text)
	}
	if len(s.Visible) > 0 {
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "**Total:** %d · **Active:** %d · **Completed:** %d\n",
		s.Counts.Total, s.Counts.Active, s.Counts.Completed)

	return b.String()
}
