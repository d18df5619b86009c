package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aidanlsb/maple/internal/matcher"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoadFrom(t *testing.T) {
	path := writeConfig(t, `
[filter]
algo = "Skim"
winwidth = 80
number = 20
icon = true

[ui]
accent = "39"
`)

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	algo, err := cfg.GetAlgo()
	if err != nil {
		t.Fatalf("GetAlgo: %v", err)
	}
	if algo != matcher.Skim {
		t.Errorf("algo = %v, want skim", algo)
	}
	if cfg.Filter.WinWidth != 80 || cfg.Filter.Number != 20 || !cfg.Filter.Icon {
		t.Errorf("filter = %+v", cfg.Filter)
	}
	if cfg.UI.Accent != "39" {
		t.Errorf("accent = %q, want 39", cfg.UI.Accent)
	}
}

func TestLoadFromRejectsBadValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"unknown algo", "[filter]\nalgo = \"grep\"\n", "filter.algo"},
		{"negative width", "[filter]\nwinwidth = -1\n", "filter.winwidth"},
		{"negative number", "[filter]\nnumber = -3\n", "filter.number"},
		{"unknown key", "[filter]\nwidth = 10\n", "unknown keys"},
		{"syntax", "[filter\n", "failed to parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFrom(writeConfig(t, tt.content))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error = %v, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestGetAlgoDefaultsToFzy(t *testing.T) {
	cfg := &Config{}
	algo, err := cfg.GetAlgo()
	if err != nil {
		t.Fatalf("GetAlgo: %v", err)
	}
	if algo != matcher.Fzy {
		t.Fatalf("algo = %v, want fzy", algo)
	}
}

func TestResolveConfigPath(t *testing.T) {
	if got := ResolveConfigPath("/tmp/custom.toml"); got != "/tmp/custom.toml" {
		t.Fatalf("ResolveConfigPath = %q", got)
	}
	if got := ResolveConfigPath("  "); got != DefaultPath() {
		t.Fatalf("ResolveConfigPath(blank) = %q, want default %q", got, DefaultPath())
	}
}

func TestCreateDefaultAt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	created, err := CreateDefaultAt(path)
	if err != nil {
		t.Fatalf("CreateDefaultAt: %v", err)
	}
	if !created {
		t.Fatal("expected file to be created")
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("default config should load: %v", err)
	}
	if cfg.Filter != (FilterConfig{}) {
		t.Fatalf("default config should leave everything commented out, got %+v", cfg.Filter)
	}

	created, err = CreateDefaultAt(path)
	if err != nil {
		t.Fatalf("CreateDefaultAt again: %v", err)
	}
	if created {
		t.Fatal("existing config must not be overwritten")
	}
}
