package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/visionchat/internal/validate"
)

// Config is the VisionChat configuration file.
type Config struct {
	Theme   ThemeConfig   `toml:"theme"`
	Session SessionConfig `toml:"session"`
	Log     LogConfig     `toml:"log"`
}

// ThemeConfig selects the starting mode and optional palette overrides.
type ThemeConfig struct {
	Mode        string `toml:"mode" validate:"oneof=dark light"`
	PaletteFile string `toml:"palette_file"`
}

// SessionConfig describes the demo session the auth page signs in.
type SessionConfig struct {
	SignedIn bool   `toml:"signed_in"`
	Name     string `toml:"name"`
	Avatar   string `toml:"avatar"`
	Type     string `toml:"type" validate:"oneof=google pro email"`
}

// LogConfig controls the diagnostic log file.
type LogConfig struct {
	Level string `toml:"level" validate:"oneof=trace debug info warn error disabled"`
	File  string `toml:"file"`
}

const (
	defaultConfigPath = "~/.config/visionchat/config.toml"
	defaultLogFile    = "~/.local/state/visionchat/visionchat.log"
	defaultMode       = "dark"
	defaultLogLevel   = "info"
	defaultName       = "Ada"
	defaultType       = "google"
)

// ValidationError reports one config field with an unacceptable value.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config %s: %s", e.Field, e.Message)
}

// DefaultPath returns the default config file path.
func DefaultPath() string {
	return defaultConfigPath
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Theme:   ThemeConfig{Mode: defaultMode},
		Session: SessionConfig{Name: defaultName, Type: defaultType},
		Log:     LogConfig{Level: defaultLogLevel, File: mustExpand(defaultLogFile)},
	}
}

// Load locates and parses the config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(bytes, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every enumerated field. The first failure is returned as
// a *ValidationError.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verr *validate.Error
	if !errors.As(err, &verr) || len(verr.Fields) == 0 {
		return fmt.Errorf("validate config: %w", err)
	}
	f := verr.Fields[0]
	return &ValidationError{Field: f.Field, Message: message(f)}
}

func message(f validate.FieldError) string {
	if f.Rule == "oneof" {
		return fmt.Sprintf("must be one of [%s], got %q", f.Param, f.Value)
	}
	return fmt.Sprintf("failed %q validation", f.Rule)
}

func (c *Config) normalize() {
	c.Theme.Mode = strings.ToLower(strings.TrimSpace(c.Theme.Mode))
	if c.Theme.Mode == "" {
		c.Theme.Mode = defaultMode
	}
	c.Theme.PaletteFile = strings.TrimSpace(c.Theme.PaletteFile)
	if c.Theme.PaletteFile != "" {
		c.Theme.PaletteFile = mustExpand(c.Theme.PaletteFile)
	}

	c.Session.Name = strings.TrimSpace(c.Session.Name)
	c.Session.Avatar = strings.TrimSpace(c.Session.Avatar)
	c.Session.Type = strings.ToLower(strings.TrimSpace(c.Session.Type))
	if c.Session.Type == "" {
		c.Session.Type = defaultType
	}

	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	if c.Log.Level == "" {
		c.Log.Level = defaultLogLevel
	}
	c.Log.File = strings.TrimSpace(c.Log.File)
	if c.Log.File == "" {
		c.Log.File = defaultLogFile
	}
	c.Log.File = mustExpand(c.Log.File)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
