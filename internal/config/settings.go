package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Aman-CERP/minigrep/internal/errors"
)

// Color modes for terminal output.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Settings holds optional behaviour that does not change search results.
type Settings struct {
	Version int             `yaml:"version"`
	Logging LoggingSettings `yaml:"logging"`
	Output  OutputSettings  `yaml:"output"`
}

// LoggingSettings configures the debug log written with --debug.
type LoggingSettings struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string `yaml:"level"`
	// File is the log file path. Empty means the default under ~/.minigrep/logs.
	File string `yaml:"file"`
	// MaxSizeMB is the size at which the log file is rotated.
	MaxSizeMB int `yaml:"max_size_mb"`
	// MaxFiles is the number of rotated files kept.
	MaxFiles int `yaml:"max_files"`
}

// OutputSettings configures console output.
type OutputSettings struct {
	// Color is one of auto, always, never.
	Color string `yaml:"color"`
}

// NewSettings returns Settings with defaults applied.
func NewSettings() *Settings {
	return &Settings{
		Version: 1,
		Logging: LoggingSettings{
			Level:     "debug",
			MaxSizeMB: 10,
			MaxFiles:  5,
		},
		Output: OutputSettings{
			Color: ColorAuto,
		},
	}
}

// GetUserSettingsPath returns the path to the user settings file:
//   - $XDG_CONFIG_HOME/minigrep/config.yaml (if XDG_CONFIG_HOME is set)
//   - ~/.config/minigrep/config.yaml (default)
func GetUserSettingsPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "minigrep", "config.yaml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), ".config", "minigrep", "config.yaml")
	}
	return filepath.Join(home, ".config", "minigrep", "config.yaml")
}

// LoadSettings loads settings in order of increasing precedence:
//  1. Hardcoded defaults
//  2. User settings (~/.config/minigrep/config.yaml)
//  3. Project settings (.minigrep.yaml or .minigrep.yml in dir)
//  4. Environment variables (MINIGREP_*)
func LoadSettings(dir string) (*Settings, error) {
	s := NewSettings()

	userPath := GetUserSettingsPath()
	if fileExists(userPath) {
		if err := s.loadYAML(userPath); err != nil {
			return nil, err
		}
	}

	if err := s.loadFromDir(dir); err != nil {
		return nil, err
	}

	s.applyEnvOverrides()

	if err := s.Validate(); err != nil {
		return nil, errors.SettingsError(fmt.Sprintf("invalid settings: %v", err), err)
	}

	return s, nil
}

// loadFromDir loads .minigrep.yaml, falling back to .minigrep.yml.
func (s *Settings) loadFromDir(dir string) error {
	for _, name := range []string{".minigrep.yaml", ".minigrep.yml"} {
		path := filepath.Join(dir, name)
		if fileExists(path) {
			return s.loadYAML(path)
		}
	}
	return nil
}

// loadYAML merges non-zero values from the file at path.
func (s *Settings) loadYAML(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.SettingsError(fmt.Sprintf("failed to read settings file %s: %v", path, err), err).
			WithDetail("path", path)
	}

	var parsed Settings
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return errors.SettingsError(fmt.Sprintf("failed to parse settings file %s: %v", path, err), err).
			WithDetail("path", path)
	}

	s.mergeWith(&parsed)
	return nil
}

// mergeWith merges non-zero values from other into s.
func (s *Settings) mergeWith(other *Settings) {
	if other.Version != 0 {
		s.Version = other.Version
	}
	if other.Logging.Level != "" {
		s.Logging.Level = other.Logging.Level
	}
	if other.Logging.File != "" {
		s.Logging.File = other.Logging.File
	}
	if other.Logging.MaxSizeMB != 0 {
		s.Logging.MaxSizeMB = other.Logging.MaxSizeMB
	}
	if other.Logging.MaxFiles != 0 {
		s.Logging.MaxFiles = other.Logging.MaxFiles
	}
	if other.Output.Color != "" {
		s.Output.Color = other.Output.Color
	}
}

// applyEnvOverrides applies MINIGREP_* environment variable overrides.
func (s *Settings) applyEnvOverrides() {
	if v := os.Getenv("MINIGREP_LOG_LEVEL"); v != "" {
		s.Logging.Level = v
	}
	if v := os.Getenv("MINIGREP_LOG_FILE"); v != "" {
		s.Logging.File = v
	}
	if v := os.Getenv("MINIGREP_COLOR"); v != "" {
		s.Output.Color = strings.ToLower(v)
	}
	// NO_COLOR wins over everything but an explicit MINIGREP_COLOR.
	if _, ok := os.LookupEnv("NO_COLOR"); ok && os.Getenv("MINIGREP_COLOR") == "" {
		s.Output.Color = ColorNever
	}
}

// Validate returns an error describing the first invalid field.
func (s *Settings) Validate() error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "warning": true, "error": true}
	if !validLevels[strings.ToLower(s.Logging.Level)] {
		return fmt.Errorf("logging.level must be 'debug', 'info', 'warn', or 'error', got %s", s.Logging.Level)
	}
	if s.Logging.MaxSizeMB < 0 {
		return fmt.Errorf("logging.max_size_mb must be non-negative, got %d", s.Logging.MaxSizeMB)
	}
	if s.Logging.MaxFiles < 0 {
		return fmt.Errorf("logging.max_files must be non-negative, got %d", s.Logging.MaxFiles)
	}

	switch s.Output.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("output.color must be 'auto', 'always', or 'never', got %s", s.Output.Color)
	}

	return nil
}

// YAML returns the settings encoded as YAML.
func (s *Settings) YAML() ([]byte, error) {
	data, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal settings: %w", err)
	}
	return data, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
