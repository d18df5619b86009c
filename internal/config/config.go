// Package config handles global maple configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/aidanlsb/maple/internal/matcher"
)

// Config represents the global maple configuration.
type Config struct {
	// Filter holds defaults for the filter and blines commands.
	Filter FilterConfig `toml:"filter"`

	// UI controls optional CLI theming preferences.
	UI UIConfig `toml:"ui"`
}

// FilterConfig holds defaults that command-line flags override.
type FilterConfig struct {
	// Algo is the fuzzy match algorithm: "fzy" (default) or "skim".
	Algo string `toml:"algo"`

	// WinWidth is the display budget for truncated lines (default 62).
	WinWidth int `toml:"winwidth"`

	// Number limits output to the top N lines. 0 streams every match.
	Number int `toml:"number"`

	// Icon prepends a file-type glyph to each line.
	Icon bool `toml:"icon"`
}

// UIConfig represents optional CLI theming preferences.
type UIConfig struct {
	// Accent is the colour used to highlight matched characters.
	// Supported values are ANSI color codes ("0" to "255") or hex colors ("#RRGGBB").
	Accent string `toml:"accent"`
}

// GetAlgo returns the configured algorithm, defaulting to Fzy.
func (c *Config) GetAlgo() (matcher.Algo, error) {
	if strings.TrimSpace(c.Filter.Algo) == "" {
		return matcher.Fzy, nil
	}
	return matcher.ParseAlgo(c.Filter.Algo)
}

// Validate reports values that can never be used.
func (c *Config) Validate() error {
	if _, err := c.GetAlgo(); err != nil {
		return fmt.Errorf("filter.algo: %w", err)
	}
	if c.Filter.WinWidth < 0 {
		return fmt.Errorf("filter.winwidth must not be negative, got %d", c.Filter.WinWidth)
	}
	if c.Filter.Number < 0 {
		return fmt.Errorf("filter.number must not be negative, got %d", c.Filter.Number)
	}
	return nil
}

// Load loads the configuration from the default location.
// Returns a default config if the file doesn't exist.
func Load() (*Config, error) {
	configPath := DefaultPath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return &Config{}, nil
	}

	return LoadFrom(configPath)
}

// LoadFrom loads the configuration from a specific path.
func LoadFrom(path string) (*Config, error) {
	var config Config
	meta, err := toml.DecodeFile(path, &config)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("unknown keys in config %s: %s", path, strings.Join(keys, ", "))
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &config, nil
}

// ResolveConfigPath returns the explicit path when set, else the default.
func ResolveConfigPath(explicitConfigPath string) string {
	if strings.TrimSpace(explicitConfigPath) != "" {
		return explicitConfigPath
	}
	return DefaultPath()
}

// DefaultPath returns the default config file path.
// Checks ~/.config/maple/config.toml first (XDG style),
// then falls back to OS-specific location.
func DefaultPath() string {
	if home, err := os.UserHomeDir(); err == nil {
		xdgPath := filepath.Join(home, ".config", "maple", "config.toml")
		if _, err := os.Stat(xdgPath); err == nil {
			return xdgPath
		}
	}

	if configDir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(configDir, "maple", "config.toml")
	}

	// Last resort fallback
	return filepath.Join(".", "config.toml")
}

const defaultConfig = `# maple configuration

[filter]
# Fuzzy match algorithm: "fzy" or "skim".
# algo = "fzy"
#
# Display budget for long matched lines, in characters.
# winwidth = 62
#
# Show only the top N matches (0 streams every match).
# number = 0
#
# Prepend a file-type icon to each line.
# icon = false

# [ui]
# Colour for matched characters: ANSI code (0-255) or hex (#RRGGBB).
# accent = "#A78BFA"
`

// CreateDefaultAt writes a commented default config to path unless a file
// already exists there. It reports whether a file was written.
func CreateDefaultAt(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := writeFileAtomic(path, []byte(defaultConfig), 0o644); err != nil {
		return false, fmt.Errorf("failed to write config file: %w", err)
	}
	return true, nil
}
