package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

type persistedConfig struct {
	Filter *persistedFilter `toml:"filter,omitempty"`
	UI     *persistedUI     `toml:"ui,omitempty"`
}

type persistedFilter struct {
	Algo     *string `toml:"algo,omitempty"`
	WinWidth *int    `toml:"winwidth,omitempty"`
	Number   *int    `toml:"number,omitempty"`
	Icon     *bool   `toml:"icon,omitempty"`
}

type persistedUI struct {
	Accent *string `toml:"accent,omitempty"`
}

func nonEmptyPtr(value string) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func nonZeroPtr(value int) *int {
	if value == 0 {
		return nil
	}
	return &value
}

// SaveTo writes cfg to path atomically, leaving out unset values.
func SaveTo(path string, cfg *Config) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("config path is required")
	}
	if cfg == nil {
		cfg = &Config{}
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	var out persistedConfig
	filter := persistedFilter{
		Algo:     nonEmptyPtr(strings.ToLower(cfg.Filter.Algo)),
		WinWidth: nonZeroPtr(cfg.Filter.WinWidth),
		Number:   nonZeroPtr(cfg.Filter.Number),
	}
	if cfg.Filter.Icon {
		icon := true
		filter.Icon = &icon
	}
	if filter != (persistedFilter{}) {
		out.Filter = &filter
	}
	if accent := nonEmptyPtr(cfg.UI.Accent); accent != nil {
		out.UI = &persistedUI{Accent: accent}
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(out); err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := writeFileAtomic(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}
	return nil
}

// writeFileAtomic writes data to a temp file next to path and renames it
// into place.
func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	committed := false
	defer func() {
		_ = tmp.Close()
		if !committed {
			_ = os.Remove(tmpPath)
		}
	}()

	_ = tmp.Chmod(perm)
	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	committed = true
	return nil
}
