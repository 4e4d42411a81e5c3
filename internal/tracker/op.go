package tracker

import (
	"errors"
	"fmt"

	"github.com/colonyops/tasks/internal/core/task"
)

var (
	// ErrUnknownOp is returned by Apply for an unrecognized op name.
	ErrUnknownOp = errors.New("unknown op")
	// ErrBadRef is returned by Apply when an op's target cannot be resolved.
	ErrBadRef = errors.New("bad task reference")
)

// OpName identifies a scripted operation.
type OpName string

const (
	OpAdd            OpName = "add"
	OpToggle         OpName = "toggle"
	OpUpdate         OpName = "update"
	OpRemove         OpName = "remove"
	OpClearCompleted OpName = "clear_completed"
	OpStartEdit      OpName = "start_edit"
	OpSetDraft       OpName = "set_draft"
	OpCommit         OpName = "commit"
	OpCancel         OpName = "cancel"
	OpFilter         OpName = "filter"
	OpSearch         OpName = "search"
)

// Op is one scripted operation. Ops that target a task name it either by ID
// or by Ref, its 1-based position in List() when the op runs.
type Op struct {
	Op     OpName `json:"op"`
	ID     string `json:"id,omitempty"`
	Ref    int    `json:"ref,omitempty"`
	Text   string `json:"text,omitempty"`
	Status string `json:"status,omitempty"`
	Search string `json:"search,omitempty"`
}

// Apply runs a single op. Domain no-ops (blank text, unknown id) are not
// errors; only malformed ops are.
func (t *Tracker) Apply(op Op) error {
	switch op.Op {
	case OpAdd:
		t.Add(op.Text)
	case OpToggle, OpUpdate, OpRemove, OpStartEdit:
		id, err := t.resolve(op)
		if err != nil {
			return err
		}
		switch op.Op {
		case OpToggle:
			t.Toggle(id)
		case OpUpdate:
			t.Update(id, op.Text)
		case OpRemove:
			t.Remove(id)
		case OpStartEdit:
			t.StartEdit(id)
		}
	case OpClearCompleted:
		t.ClearCompleted()
	case OpSetDraft:
		t.SetDraft(op.Text)
	case OpCommit:
		t.Commit()
	case OpCancel:
		t.Cancel()
	case OpFilter:
		status, err := task.ParseStatus(op.Status)
		if err != nil {
			return fmt.Errorf("filter: %w", err)
		}
		t.SetStatus(status)
	case OpSearch:
		t.SetSearch(op.Search)
	default:
		return fmt.Errorf("%w %q", ErrUnknownOp, op.Op)
	}

	t.log.Debug().Str("op", string(op.Op)).Msg("op applied")
	return nil
}

func (t *Tracker) resolve(op Op) (string, error) {
	if op.ID != "" {
		return op.ID, nil
	}

	tasks := t.store.List()
	if op.Ref < 1 || op.Ref > len(tasks) {
		return "", fmt.Errorf("%s: %w: ref %d with %d tasks", op.Op, ErrBadRef, op.Ref, len(tasks))
	}
	return tasks[op.Ref-1].ID, nil
}
