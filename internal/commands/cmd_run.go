package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/tasks/internal/tracker"
	"github.com/colonyops/tasks/pkg/iojson"
)

// ErrUnknownFormat is returned for an unsupported --format value.
var ErrUnknownFormat = errors.New("unknown output format")

type RunCmd struct {
	flags *Flags
	sr    *iojson.StreamReader[tracker.Op]

	adds   []string
	format string
}

// NewRunCmd creates a new run command
func NewRunCmd(flags *Flags) *RunCmd {
	return &RunCmd{
		flags: flags,
		sr:    &iojson.StreamReader[tracker.Op]{},
	}
}

// Register adds the run command to the application
func (cmd *RunCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "run",
		Usage: "Apply a stream of task operations and print the result as JSON",
		UsageText: `tasks run [options]

Read from stdin:
  echo '{"op":"add","text":"Buy milk"}' | tasks run

Read from file:
  tasks run -f ops.jsonl

Only add tasks:
  tasks run --add "Buy milk" --add "Walk dog"`,
		Description: `Applies operations to a fresh, in-memory task list and prints a snapshot.

Nothing is persisted between runs. --add values are applied first, then the
JSON stream from --file or stdin. Stdin is skipped when it is a terminal and
--add was given.

Each input line is one operation:
  {"op": "add", "text": "Buy milk"}
  {"op": "toggle", "ref": 1}
  {"op": "update", "id": "<task id>", "text": "Buy oat milk"}
  {"op": "remove", "ref": 2}
  {"op": "clear_completed"}
  {"op": "start_edit", "ref": 1}
  {"op": "set_draft", "text": "new text"}
  {"op": "commit"}
  {"op": "cancel"}
  {"op": "filter", "status": "active"}
  {"op": "search", "search": "milk"}

Tasks are addressed by "id" or by "ref", the 1-based position in the full
list when the operation runs.

Output is JSON with all tasks, the visible tasks, counters, the active
criteria and the edit state. Use --format markdown for a rendered checklist
of the visible tasks instead.`,
		Flags: []cli.Flag{
			cmd.sr.Flag(),
			&cli.StringSliceFlag{
				Name:        "add",
				Usage:       "add a task before reading operations (repeatable)",
				Destination: &cmd.adds,
			},
			&cli.StringFlag{
				Name:        "format",
				Usage:       "output format (json, markdown)",
				Value:       "json",
				Destination: &cmd.format,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *RunCmd) run(ctx context.Context, c *cli.Command) error {
	stdout, stderr := c.Root().Writer, c.Root().ErrWriter

	if cmd.format != "json" && cmd.format != "markdown" {
		err := fmt.Errorf("%w %q", ErrUnknownFormat, cmd.format)
		return cmd.fail(stderr, err.Error(), nil, err)
	}

	tr, err := cmd.flags.NewTracker()
	if err != nil {
		return cmd.fail(stderr, fmt.Sprintf("setup: %s", err), nil, err)
	}

	for _, text := range cmd.adds {
		if _, ok := tr.Add(text); !ok {
			log.Debug().Str("text", text).Msg("skipping blank --add")
		}
	}

	err = cmd.sr.Each(ctx, func(i int, op tracker.Op) error {
		if err := tr.Apply(op); err != nil {
			return &opError{index: i + 1, op: op, err: err}
		}
		return nil
	})

	switch {
	case errors.Is(err, iojson.ErrNoInput) && len(cmd.adds) > 0:
		// --add only
	case err != nil:
		var opErr *opError
		if errors.As(err, &opErr) {
			return cmd.fail(stderr, opErr.Error(), map[string]any{
				"line": opErr.index,
				"op":   string(opErr.op.Op),
			}, err)
		}
		return cmd.fail(stderr, fmt.Sprintf("read operations: %s", err), nil, err)
	}

	counts := tr.Counts()
	log.Info().
		Int("total", counts.Total).
		Int("active", counts.Active).
		Msg("run complete")

	snap := tr.Snapshot()
	if cmd.format == "markdown" {
		return cmd.writeMarkdown(stdout, snap)
	}
	return iojson.WriteWith(stdout, stderr, snap)
}

func (cmd *RunCmd) writeMarkdown(w io.Writer, snap tracker.Snapshot) error {
	theme := ""
	if cmd.flags.Config != nil {
		theme = cmd.flags.Config.TUI.Theme
	}

	out, err := renderMarkdown(snap.Markdown(), glamourStyle(theme, w))
	if err != nil {
		return err
	}

	_, err = io.WriteString(w, out)
	return err
}

// fail writes a JSON error document to w and returns err marked as reported.
func (cmd *RunCmd) fail(w io.Writer, msg string, data map[string]any, err error) error {
	log.Error().Err(err).Msg(msg)
	if werr := iojson.WriteErrorTo(w, msg, data); werr != nil {
		return errors.Join(err, werr)
	}
	return fmt.Errorf("%w: %w", ErrReported, err)
}

type opError struct {
	index int
	op    tracker.Op
	err   error
}

func (e *opError) Error() string {
	return fmt.Sprintf("line %d: %s", e.index, e.err)
}

func (e *opError) Unwrap() error {
	return e.err
}
