// Package config reads and writes the project-level ctxkit configuration
// kept at .context/config.yaml. Loading is tolerant: a missing or invalid
// file degrades to defaults so no command is blocked by a broken config.
package config

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/ctxkit/ctxkit/internal/defs"
	"github.com/ctxkit/ctxkit/internal/fsio"
)

// ProjectConfig describes the scaffolded project.
type ProjectConfig struct {
	Name string `yaml:"name"`
	ID   string `yaml:"id"`
	Mode string `yaml:"mode"`
}

// Config is the root of the project configuration file.
type Config struct {
	Project ProjectConfig `yaml:"project"`
}

// New returns a Config for a freshly scaffolded project. The project ID
// is generated once here and then pinned by the idempotent write.
func New(name, mode string) *Config {
	return &Config{
		Project: ProjectConfig{
			Name: name,
			ID:   uuid.NewString(),
			Mode: mode,
		},
	}
}

// Path returns the config file path under the given project root.
func Path(root string) string {
	return filepath.Join(root, defs.ContextDir, defs.ConfigYAML)
}

// Load reads the config under root. Missing file or invalid YAML degrade
// to defaults derived from the root directory name.
func Load(root string, logger *slog.Logger) *Config {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	fallback := &Config{Project: ProjectConfig{Name: filepath.Base(root), Mode: "lite"}}

	data, err := os.ReadFile(Path(root))
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("failed to read config, using defaults", "error", err)
		}
		return fallback
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		logger.Warn("invalid config YAML, using defaults", "error", err)
		return fallback
	}
	if cfg.Project.Name == "" {
		cfg.Project.Name = fallback.Project.Name
	}
	return &cfg
}

// Write persists the config under root if no config file exists yet.
// Re-running init never regenerates the project ID.
func Write(root string, cfg *Config) (fsio.Result, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fsio.Skipped, err
	}
	return fsio.WriteIfAbsent(Path(root), data)
}
