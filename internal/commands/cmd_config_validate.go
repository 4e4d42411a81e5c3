package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/hay-kot/criterio"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/tasks/internal/core/config"
	"github.com/colonyops/tasks/internal/core/styles"
	"github.com/colonyops/tasks/pkg/iojson"
)

type ConfigValidateCmd struct {
	flags  *Flags
	format string
}

// NewConfigValidateCmd creates a new config validate command.
func NewConfigValidateCmd(flags *Flags) *ConfigValidateCmd {
	return &ConfigValidateCmd{flags: flags}
}

// Register adds the config validate command to the application.
func (cmd *ConfigValidateCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Configuration management commands",
		Commands: []*cli.Command{
			{
				Name:        "validate",
				Usage:       "Validate configuration file",
				UsageText:   "tasks config validate [options]",
				Description: "Validates the configuration file: id strategy, theme, default filter and text length limit.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "format",
						Usage:       "output format (text, json)",
						Value:       "text",
						Destination: &cmd.format,
					},
				},
				Action: cmd.run,
			},
		},
	})

	return app
}

type validationIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type validationResult struct {
	Path   string            `json:"path"`
	Valid  bool              `json:"valid"`
	Errors []validationIssue `json:"errors,omitempty"`
}

func (cmd *ConfigValidateCmd) run(_ context.Context, c *cli.Command) error {
	result := cmd.validate()

	w := c.Root().Writer
	if cmd.format == "json" {
		if err := iojson.WriteWith(w, c.Root().ErrWriter, result); err != nil {
			return err
		}
	} else {
		cmd.outputText(w, result)
	}

	if !result.Valid {
		return fmt.Errorf("%w: %d error(s) in %s", ErrReported, len(result.Errors), result.Path)
	}
	return nil
}

// validate re-reads the config file so that it can report on files the
// Before hook failed to load.
func (cmd *ConfigValidateCmd) validate() validationResult {
	result := validationResult{Path: cmd.flags.ConfigPath, Valid: true}

	cfg, err := config.Read(cmd.flags.ConfigPath)
	if err == nil {
		err = cfg.ValidateDeep(cmd.flags.ConfigPath)
	}
	if err == nil {
		return result
	}

	result.Valid = false

	var fieldErrs criterio.FieldErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			result.Errors = append(result.Errors, validationIssue{Field: fe.Field, Message: fe.Err.Error()})
		}
		return result
	}

	result.Errors = append(result.Errors, validationIssue{Field: "config_file", Message: err.Error()})
	return result
}

func (cmd *ConfigValidateCmd) outputText(w io.Writer, result validationResult) {
	for _, issue := range result.Errors {
		_, _ = fmt.Fprintln(w, styles.StatusErrorStyle.Render(fmt.Sprintf("✗ %s: %s", issue.Field, issue.Message)))
	}

	if result.Valid {
		_, _ = fmt.Fprintln(w, styles.StatusInfoStyle.Render("✓ Configuration is valid"))
		return
	}

	_, _ = fmt.Fprintln(w, "")
	_, _ = fmt.Fprintln(w, styles.StatusErrorStyle.Render(fmt.Sprintf("%d error(s) found", len(result.Errors))))
}
