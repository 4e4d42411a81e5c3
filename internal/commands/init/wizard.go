package initcmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/tasks/internal/core/config"
	"github.com/colonyops/tasks/internal/core/styles"
	"github.com/colonyops/tasks/internal/core/task"
)

// ErrConfigExists is returned when a config file is present and neither
// --force nor an interactive overwrite confirmed replacing it.
var ErrConfigExists = errors.New("config file already exists")

// WizardOptions configures the wizard behavior.
type WizardOptions struct {
	ConfigPath string
	Yes        bool // skip prompts, use defaults
	Force      bool // overwrite existing config
	Out        io.Writer
}

// Wizard orchestrates the init process.
type Wizard struct {
	opts WizardOptions
}

// NewWizard creates a new init wizard.
func NewWizard(opts WizardOptions) *Wizard {
	if opts.Out == nil {
		opts.Out = io.Discard
	}
	return &Wizard{opts: opts}
}

// Run executes the wizard.
func (w *Wizard) Run(ctx context.Context) error {
	if ConfigExists(w.opts.ConfigPath) && !w.opts.Force {
		if w.opts.Yes {
			return fmt.Errorf("%w at %s; use --force to overwrite", ErrConfigExists, w.opts.ConfigPath)
		}

		var overwrite bool
		err := huh.NewConfirm().
			Title("Config file already exists").
			Description(w.opts.ConfigPath + "\nOverwrite? (a backup will be created)").
			Value(&overwrite).
			Run()
		if err != nil {
			return err
		}
		if !overwrite {
			w.printf(styles.StatusInfoStyle, "Init cancelled")
			return nil
		}
	}

	cfg := config.DefaultConfig()
	if !w.opts.Yes {
		if err := w.promptUser(ctx, &cfg); err != nil {
			return err
		}
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid answers: %w", err)
	}

	backupPath, err := BackupConfig(w.opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("backup config: %w", err)
	}
	if backupPath != "" {
		w.printf(styles.StatusInfoStyle, "Backed up config to: %s", backupPath)
	}

	if err := WriteConfig(cfg, w.opts.ConfigPath); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	w.printf(styles.StatusInfoStyle, "Wrote config to: %s", w.opts.ConfigPath)
	w.printf(styles.HelpStyle, "Run 'tasks' to open your task list")
	return nil
}

func (w *Wizard) promptUser(ctx context.Context, cfg *config.Config) error {
	var (
		theme       = cfg.TUI.Theme
		filter      = string(cfg.TUI.DefaultFilter)
		ids         = string(cfg.IDs)
		showCreated = cfg.TUI.ShowCreatedAt
		maxLen      = strconv.Itoa(cfg.TUI.MaxTextLength)
	)

	filters := make([]string, 0, len(task.Statuses()))
	for _, s := range task.Statuses() {
		filters = append(filters, string(s))
	}

	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Theme").
			Options(huh.NewOptions(styles.ThemeNames()...)...).
			Value(&theme),
		huh.NewSelect[string]().
			Title("Default filter").
			Description("Which tasks are listed when the TUI opens").
			Options(huh.NewOptions(filters...)...).
			Value(&filter),
		huh.NewSelect[string]().
			Title("Task ids").
			Options(
				huh.NewOption("Random UUIDs", string(task.IDStrategyUUID)),
				huh.NewOption("Sequential numbers", string(task.IDStrategySequence)),
			).
			Value(&ids),
		huh.NewConfirm().
			Title("Show when each task was created?").
			Value(&showCreated),
		huh.NewInput().
			Title("Maximum task length").
			Description("Characters; 0 for no limit").
			Value(&maxLen).
			Validate(validateMaxLength),
	))

	if err := form.RunWithContext(ctx); err != nil {
		return err
	}

	n, err := parseMaxLength(maxLen)
	if err != nil {
		return err
	}

	cfg.TUI.Theme = theme
	cfg.TUI.DefaultFilter = task.Status(filter)
	cfg.TUI.ShowCreatedAt = showCreated
	cfg.TUI.MaxTextLength = n
	cfg.IDs = task.IDStrategy(ids)
	return nil
}

func (w *Wizard) printf(style lipgloss.Style, format string, args ...any) {
	_, _ = fmt.Fprintln(w.opts.Out, style.Render(fmt.Sprintf(format, args...)))
}

func parseMaxLength(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("maximum length must be a number")
	}
	if n < 0 {
		return 0, fmt.Errorf("maximum length must not be negative")
	}
	return n, nil
}

func validateMaxLength(s string) error {
	_, err := parseMaxLength(s)
	return err
}
