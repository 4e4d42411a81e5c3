package commands

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/colonyops/tasks/internal/core/config"
	"github.com/colonyops/tasks/internal/core/logging"
	"github.com/colonyops/tasks/internal/core/task"
	"github.com/colonyops/tasks/internal/tui"
)

// ErrNotTerminal is returned when the TUI is started without a terminal.
var ErrNotTerminal = errors.New("the task list needs an interactive terminal; use 'tasks run' for scripted input")

type TuiCmd struct {
	flags *Flags

	filter string
	search string
}

// NewTuiCmd creates a new tui command
func NewTuiCmd(flags *Flags) *TuiCmd {
	return &TuiCmd{flags: flags}
}

// Flags returns the TUI-specific flags for registration on the root command
func (cmd *TuiCmd) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "filter",
			Usage:       "initial status filter (all, active, completed); overrides tui.default_filter",
			Destination: &cmd.filter,
		},
		&cli.StringFlag{
			Name:        "search",
			Usage:       "initial search term",
			Destination: &cmd.search,
		},
	}
}

// Register adds the tui command to the application. Its flags live on the
// root command and are inherited.
func (cmd *TuiCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "tui",
		Usage:     "Open the interactive task list",
		UsageText: "tasks tui [--filter all|active|completed] [--search TERM]",
		Action:    cmd.run,
	})

	return app
}

// Run executes the TUI. Exported for use as default command.
func (cmd *TuiCmd) Run(ctx context.Context, c *cli.Command) error {
	return cmd.run(ctx, c)
}

// options resolves the model options from config and flags.
func (cmd *TuiCmd) options() (tui.Options, error) {
	cfg := config.DefaultConfig().TUI
	if cmd.flags.Config != nil {
		cfg = cmd.flags.Config.TUI
	}

	if cmd.filter != "" {
		status, err := task.ParseStatus(cmd.filter)
		if err != nil {
			return tui.Options{}, fmt.Errorf("--filter: %w", err)
		}
		cfg.DefaultFilter = status
	}

	return tui.Options{
		Config: cfg,
		Keys:   tui.DefaultKeyMap(),
		Logger: logging.Component("tui"),
		Search: cmd.search,
	}, nil
}

func (cmd *TuiCmd) run(ctx context.Context, _ *cli.Command) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) || !term.IsTerminal(int(os.Stdin.Fd())) {
		return ErrNotTerminal
	}

	opts, err := cmd.options()
	if err != nil {
		return err
	}

	tr, err := cmd.flags.NewTracker()
	if err != nil {
		return err
	}

	m := tui.New(tr, opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}

	counts := tr.Counts()
	log.Info().
		Int("total", counts.Total).
		Int("completed", counts.Completed).
		Msg("tui exited")

	return nil
}
