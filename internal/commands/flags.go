package commands

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"

	"github.com/colonyops/tasks/internal/core/config"
	"github.com/colonyops/tasks/internal/core/logging"
	"github.com/colonyops/tasks/internal/core/task"
	"github.com/colonyops/tasks/internal/tracker"
)

// ErrReported marks an error whose details were already written to stderr
// as JSON. main exits non-zero without printing it again.
var ErrReported = errors.New("error reported")

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string

	// Config is loaded in the Before hook and available to all commands.
	Config *config.Config
	// ConfigErr holds the load error, if any. Only `config validate` can run
	// with an invalid config.
	ConfigErr error
}

// NewTracker builds an empty tracker using the configured id strategy.
func (f *Flags) NewTracker() (*tracker.Tracker, error) {
	if f.ConfigErr != nil {
		return nil, f.ConfigErr
	}

	cfg := f.Config
	if cfg == nil {
		d := config.DefaultConfig()
		cfg = &d
	}

	ids, err := cfg.IDFunc()
	if err != nil {
		return nil, err
	}

	store := task.NewStore(
		task.WithIDFunc(ids),
		task.WithLogger(logging.Component("store")),
	)
	return tracker.New(store, logging.Component("tracker")), nil
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "tasks", "config.yaml")
}

// DefaultLogFile returns the default log file path using the system's state directory.
// On macOS: ~/Library/Logs/tasks/tasks.log
// On Linux: $XDG_STATE_HOME/tasks/tasks.log (defaults to ~/.local/state/tasks/tasks.log)
func DefaultLogFile() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome != "" {
		return filepath.Join(stateHome, "tasks", "tasks.log")
	}

	home, _ := os.UserHomeDir()

	if runtime.GOOS == "darwin" {
		return filepath.Join(home, "Library", "Logs", "tasks", "tasks.log")
	}

	return filepath.Join(home, ".local", "state", "tasks", "tasks.log")
}
