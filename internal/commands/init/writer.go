package initcmd

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/colonyops/tasks/internal/core/config"
)

const configHeader = "# tasks configuration\n# Run 'tasks config validate' after editing.\n\n"

// WriteConfig writes cfg as YAML to configPath, creating parent directories.
func WriteConfig(cfg config.Config, configPath string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	return os.WriteFile(configPath, append([]byte(configHeader), data...), 0o644)
}
