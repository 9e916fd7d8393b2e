// Package config handles configuration file loading and parsing.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Default configuration values.
const (
	DefaultThemeName     = "default"
	DefaultVarPrefix     = "--"
	DefaultLabel         = "Toggle Light or Dark Mode"
	DefaultStorageKey    = "preferred-color-scheme"
	DefaultRootAttribute = "data-theme"
)

// ColorScheme represents the color scheme preference.
type ColorScheme string

const (
	ColorSchemeSystem ColorScheme = "system"
	ColorSchemeLight  ColorScheme = "light"
	ColorSchemeDark   ColorScheme = "dark"
)

// ValidColorSchemes returns all valid color scheme values.
func ValidColorSchemes() []ColorScheme {
	return []ColorScheme{ColorSchemeSystem, ColorSchemeLight, ColorSchemeDark}
}

// Config represents the schemeswitch configuration.
type Config struct {
	Theme  ThemeConfig  `toml:"theme" yaml:"theme"`
	Switch SwitchConfig `toml:"switch" yaml:"switch"`
}

// ThemeConfig contains theme settings.
type ThemeConfig struct {
	Name        string `toml:"name" yaml:"name"`                 // Theme name without .css extension
	ColorScheme string `toml:"color_scheme" yaml:"color_scheme"` // "system", "light", or "dark"; the document default
	VarPrefix   string `toml:"var_prefix" yaml:"var_prefix"`     // Prefix of the icon style variables
	HotReload   bool   `toml:"hot_reload" yaml:"hot_reload"`
}

// SwitchConfig contains settings of the color scheme switch.
type SwitchConfig struct {
	Scheme        string `toml:"scheme" yaml:"scheme"` // Explicit scheme attribute; empty = auto
	Label         string `toml:"label" yaml:"label"`
	StorageKey    string `toml:"storage_key" yaml:"storage_key"`
	RootAttribute string `toml:"root_attribute" yaml:"root_attribute"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Theme: ThemeConfig{
			Name:        DefaultThemeName,
			ColorScheme: string(ColorSchemeSystem),
			VarPrefix:   DefaultVarPrefix,
			HotReload:   true,
		},
		Switch: SwitchConfig{
			Label:         DefaultLabel,
			StorageKey:    DefaultStorageKey,
			RootAttribute: DefaultRootAttribute,
		},
	}
}

// ConfigDir returns the schemeswitch configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise ~/.config.
func ConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "schemeswitch")
}

// ConfigPath returns the path to the config file.
func ConfigPath() string {
	dir := ConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.toml")
}

// LoadConfig loads configuration from the specified path.
// If path is empty, uses the default config path.
// Files ending in .yaml or .yml are parsed as YAML, anything else as TOML.
// Returns default config if file doesn't exist.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = ConfigPath()
	}

	// Start with defaults
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}

	if isYAML(path) {
		err = yaml.Unmarshal(data, cfg)
	} else {
		err = toml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to the specified path.
// Creates parent directories if needed.
func (c *Config) Save(path string) error {
	if path == "" {
		path = ConfigPath()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(c)
	} else {
		data, err = toml.Marshal(c)
	}
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Validate checks enumerated values.
func (c *Config) Validate() error {
	valid := false
	for _, s := range ValidColorSchemes() {
		if ColorScheme(c.Theme.ColorScheme) == s {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("invalid theme.color_scheme %q: must be system, light or dark", c.Theme.ColorScheme)
	}

	switch c.Switch.Scheme {
	case "", string(ColorSchemeLight), string(ColorSchemeDark):
	default:
		return fmt.Errorf("invalid switch.scheme %q: must be light, dark or empty", c.Switch.Scheme)
	}
	return nil
}

// RootScheme returns the scheme the document root starts with, or "" when
// the system preference should decide.
func (c *Config) RootScheme() string {
	if ColorScheme(c.Theme.ColorScheme) == ColorSchemeSystem {
		return ""
	}
	return c.Theme.ColorScheme
}

// ThemesDir returns the path to the user's themes directory.
func ThemesDir() string {
	dir := ConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "themes")
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
