// Package config loads indexwiz settings from YAML and the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	wizerrors "github.com/Aman-CERP/indexwiz/internal/errors"
)

const (
	// DefaultPromptWidth is the column width questions are padded to.
	DefaultPromptWidth = 40

	// MaxPromptWidth bounds ui.prompt_width.
	MaxPromptWidth = 200

	// DefaultDirMode is the permission of a newly created index directory.
	DefaultDirMode = "0755"
)

// Config represents the complete indexwiz configuration.
type Config struct {
	UI      UIConfig      `yaml:"ui" json:"ui"`
	Logging LoggingConfig `yaml:"logging" json:"logging"`
	Index   IndexConfig   `yaml:"index" json:"index"`
}

// UIConfig configures terminal output.
type UIConfig struct {
	// NoColor disables ANSI styling even on a terminal.
	NoColor bool `yaml:"no_color" json:"no_color"`
	// PromptWidth is the width prompt text is padded to (1-200).
	PromptWidth int `yaml:"prompt_width" json:"prompt_width"`
}

// LoggingConfig configures the slog handlers.
type LoggingConfig struct {
	Level string `yaml:"level" json:"level"`
	// File is the debug log file. Empty means ~/.indexwiz/logs/indexwiz.log.
	File      string `yaml:"file" json:"file"`
	MaxSizeMB int    `yaml:"max_size_mb" json:"max_size_mb"`
	MaxFiles  int    `yaml:"max_files" json:"max_files"`
}

// IndexConfig configures index creation.
type IndexConfig struct {
	// DirMode is the octal permission of the index directory, e.g. "0755".
	DirMode string `yaml:"dir_mode" json:"dir_mode"`
}

// NewConfig returns a configuration with defaults applied.
func NewConfig() *Config {
	return &Config{
		UI: UIConfig{
			NoColor:     false,
			PromptWidth: DefaultPromptWidth,
		},
		Logging: LoggingConfig{
			Level:     "warn",
			MaxSizeMB: 10,
			MaxFiles:  5,
		},
		Index: IndexConfig{
			DirMode: DefaultDirMode,
		},
	}
}

// GetUserConfigPath returns the path of the user configuration file.
// Respects XDG_CONFIG_HOME, falling back to ~/.config/indexwiz/config.yaml.
func GetUserConfigPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "indexwiz", "config.yaml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), ".config", "indexwiz", "config.yaml")
	}
	return filepath.Join(home, ".config", "indexwiz", "config.yaml")
}

// Load builds the configuration in order of increasing precedence:
//  1. Hardcoded defaults
//  2. The file at path, or the user config file when path is empty
//  3. Environment variables (NO_COLOR, INDEXWIZ_*)
//
// An explicit path must exist; a missing user config file is fine.
func Load(path string) (*Config, error) {
	cfg := NewConfig()

	if path != "" {
		if !fileExists(path) {
			return nil, wizerrors.New(wizerrors.ErrCodeConfigNotFound,
				"config file not found: "+path, nil).
				WithSuggestion("Check the --config path or omit it to use defaults")
		}
		if err := cfg.loadYAML(path); err != nil {
			return nil, err
		}
	} else if userPath := GetUserConfigPath(); fileExists(userPath) {
		if err := cfg.loadYAML(userPath); err != nil {
			return nil, err
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadYAML loads and merges configuration from a YAML file.
func (c *Config) loadYAML(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return wizerrors.ConfigError(fmt.Sprintf("failed to read config file %s", path), err)
	}

	var parsed Config
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return wizerrors.ConfigError(fmt.Sprintf("failed to parse config file %s", path), err).
			WithSuggestion("Fix the YAML syntax in " + path)
	}

	c.mergeWith(&parsed)
	return nil
}

// mergeWith merges non-zero values from other into c.
func (c *Config) mergeWith(other *Config) {
	if other.UI.NoColor {
		c.UI.NoColor = true
	}
	if other.UI.PromptWidth != 0 {
		c.UI.PromptWidth = other.UI.PromptWidth
	}

	if other.Logging.Level != "" {
		c.Logging.Level = other.Logging.Level
	}
	if other.Logging.File != "" {
		c.Logging.File = other.Logging.File
	}
	if other.Logging.MaxSizeMB != 0 {
		c.Logging.MaxSizeMB = other.Logging.MaxSizeMB
	}
	if other.Logging.MaxFiles != 0 {
		c.Logging.MaxFiles = other.Logging.MaxFiles
	}

	if other.Index.DirMode != "" {
		c.Index.DirMode = other.Index.DirMode
	}
}

func (c *Config) applyEnvOverrides() {
	// https://no-color.org: any non-empty value disables color
	if os.Getenv("NO_COLOR") != "" {
		c.UI.NoColor = true
	}
	if v := os.Getenv("INDEXWIZ_NO_COLOR"); v != "" {
		c.UI.NoColor = strings.ToLower(v) == "true" || v == "1"
	}
	if v := os.Getenv("INDEXWIZ_PROMPT_WIDTH"); v != "" {
		if w, err := strconv.Atoi(v); err == nil {
			c.UI.PromptWidth = w
		}
	}
	if v := os.Getenv("INDEXWIZ_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.UI.PromptWidth < 1 || c.UI.PromptWidth > MaxPromptWidth {
		return wizerrors.ConfigError(
			fmt.Sprintf("ui.prompt_width must be between 1 and %d, got %d", MaxPromptWidth, c.UI.PromptWidth), nil)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Logging.Level)] {
		return wizerrors.ConfigError(
			fmt.Sprintf("logging.level must be 'debug', 'info', 'warn', or 'error', got %s", c.Logging.Level), nil)
	}
	if c.Logging.MaxSizeMB < 0 {
		return wizerrors.ConfigError(
			fmt.Sprintf("logging.max_size_mb must be non-negative, got %d", c.Logging.MaxSizeMB), nil)
	}
	if c.Logging.MaxFiles < 0 {
		return wizerrors.ConfigError(
			fmt.Sprintf("logging.max_files must be non-negative, got %d", c.Logging.MaxFiles), nil)
	}

	if _, err := c.DirMode(); err != nil {
		return err
	}
	return nil
}

// DirMode parses index.dir_mode as an octal permission.
func (c *Config) DirMode() (os.FileMode, error) {
	mode, err := strconv.ParseUint(c.Index.DirMode, 8, 32)
	if err != nil || mode > 0o777 {
		return 0, wizerrors.ConfigError(
			fmt.Sprintf("index.dir_mode must be an octal permission like \"0755\", got %q", c.Index.DirMode), err)
	}
	return os.FileMode(mode), nil
}

// WriteYAML writes the configuration to a YAML file, creating its directory.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return wizerrors.InternalError("failed to marshal config", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return wizerrors.IOError("failed to create config directory", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return wizerrors.IOError("failed to write config file", err)
	}

	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
