package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where the CLI looks for a config file when --config is not given.
const DefaultPath = ".rdms/config.yaml"

// Config holds all rdms configuration.
type Config struct {
	Data    DataConfig    `yaml:"data"`
	UI      UIConfig      `yaml:"ui"`
	Logging LoggingConfig `yaml:"logging"`
}

// DataConfig configures where entries are imported from and exported to.
type DataConfig struct {
	// Dir is the directory entries.csv is read from and snapshots are written to.
	// Empty means the process working directory.
	Dir          string `yaml:"dir"`
	ImportFile   string `yaml:"import_file"`
	ExportPrefix string `yaml:"export_prefix"`
}

// LoggingConfig configures the category file logger.
type LoggingConfig struct {
	DebugMode  bool            `yaml:"debug_mode"`
	Level      string          `yaml:"level"` // debug, info, warn, error
	JSONFormat bool            `yaml:"json_format"`
	Categories map[string]bool `yaml:"categories,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Data: DataConfig{
			Dir:          "",
			ImportFile:   "entries.csv",
			ExportPrefix: "research_data",
		},
		UI: *DefaultUIConfig(),
		Logging: LoggingConfig{
			DebugMode: false,
			Level:     "info",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if dir := os.Getenv("RDMS_DATA_DIR"); dir != "" {
		c.Data.Dir = dir
	}
	if theme := os.Getenv("RDMS_THEME"); theme != "" {
		c.UI.Theme = theme
	}
	if os.Getenv("RDMS_DEBUG") == "1" {
		c.Logging.DebugMode = true
		c.Logging.Level = "debug"
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	switch c.UI.Theme {
	case ThemeLight, ThemeDark, ThemeAuto:
	default:
		return fmt.Errorf("invalid ui theme: %q (valid: %s, %s, %s)", c.UI.Theme, ThemeLight, ThemeDark, ThemeAuto)
	}
	if c.Data.ImportFile == "" {
		return fmt.Errorf("data.import_file must not be empty")
	}
	if c.Data.ExportPrefix == "" {
		return fmt.Errorf("data.export_prefix must not be empty")
	}
	if c.UI.FadeSteps <= 0 {
		return fmt.Errorf("ui.fade_steps must be positive, got %d", c.UI.FadeSteps)
	}
	return nil
}

// DataDir resolves the data directory, falling back to the working directory.
func (c *Config) DataDir() (string, error) {
	if c.Data.Dir != "" {
		return c.Data.Dir, nil
	}
	return os.Getwd()
}

// ImportPath returns the full path of the startup import file.
func (c *Config) ImportPath() (string, error) {
	dir, err := c.DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, c.Data.ImportFile), nil
}

// GetTickInterval returns the animation tick interval as a duration.
func (c *Config) GetTickInterval() time.Duration {
	d, err := time.ParseDuration(c.UI.TickInterval)
	if err != nil || d <= 0 {
		return 20 * time.Millisecond
	}
	return d
}
