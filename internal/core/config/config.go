// Package config handles configuration loading and validation for tasks.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/hay-kot/criterio"
	"gopkg.in/yaml.v3"

	"github.com/colonyops/tasks/internal/core/styles"
	"github.com/colonyops/tasks/internal/core/task"
)

// Config holds the application configuration.
type Config struct {
	IDs task.IDStrategy `yaml:"ids"`
	TUI TUIConfig       `yaml:"tui"`
}

// TUIConfig holds settings for the interactive task list.
type TUIConfig struct {
	Theme         string      `yaml:"theme"`
	DefaultFilter task.Status `yaml:"default_filter"`
	ShowCreatedAt bool        `yaml:"show_created_at"`
	MaxTextLength int         `yaml:"max_text_length"` // 0 = unlimited
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		IDs: task.IDStrategyUUID,
		TUI: TUIConfig{
			Theme:         styles.DefaultTheme,
			DefaultFilter: task.StatusAll,
			ShowCreatedAt: true,
			MaxTextLength: 280,
		},
	}
}

// Load reads configuration from the given path and validates it.
// If configPath is empty or doesn't exist, returns defaults.
func Load(configPath string) (*Config, error) {
	cfg, err := Read(configPath)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Read parses the config file at configPath over the defaults without
// validating the result.
func Read(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.IDs == "" {
		c.IDs = defaults.IDs
	}
	if c.TUI.Theme == "" {
		c.TUI.Theme = defaults.TUI.Theme
	}
	if c.TUI.DefaultFilter == "" {
		c.TUI.DefaultFilter = defaults.TUI.DefaultFilter
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("ids", c.IDs, validIDStrategy),
		criterio.Run("tui.theme", c.TUI.Theme, validTheme),
		criterio.Run("tui.default_filter", c.TUI.DefaultFilter, validFilter),
		criterio.Run("tui.max_text_length", c.TUI.MaxTextLength, nonNegative),
	)
}

// ValidateDeep runs Validate and additionally checks that the config file at
// configPath (if any) is readable.
func (c *Config) ValidateDeep(configPath string) error {
	if err := c.Validate(); err != nil {
		return err
	}
	return validateConfigFile(configPath)
}

// IDFunc returns the id generator selected by the configuration.
func (c *Config) IDFunc() (task.IDFunc, error) {
	return task.IDFuncFor(c.IDs)
}

func validIDStrategy(s task.IDStrategy) error {
	if s.IsValid() {
		return nil
	}
	names := make([]string, 0, len(task.IDStrategies()))
	for _, v := range task.IDStrategies() {
		names = append(names, string(v))
	}
	return fmt.Errorf("unknown id strategy %q (valid: %s)", s, strings.Join(names, ", "))
}

func validTheme(name string) error {
	if _, ok := styles.GetPalette(name); ok {
		return nil
	}
	return fmt.Errorf("unknown theme %q (valid: %s)", name, strings.Join(styles.ThemeNames(), ", "))
}

func validFilter(s task.Status) error {
	if s.IsValid() {
		return nil
	}
	return fmt.Errorf("unknown filter %q (valid: all, active, completed)", s)
}

func nonNegative(n int) error {
	if n < 0 {
		return fmt.Errorf("must not be negative")
	}
	return nil
}

func validateConfigFile(configPath string) error {
	if configPath == "" {
		return nil
	}

	info, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		return nil // not found is fine, using defaults
	}
	if err != nil {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("cannot access: %w", err))
	}
	if info.IsDir() {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("%s is a directory, not a file", configPath))
	}
	return nil
}
