package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
[routes]
directed = true
default_weight = 2.5

[render]
format = "png"
cache_dir = "off"
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if !cfg.Routes.Directed {
		t.Error("Routes.Directed = false, want true")
	}
	if cfg.Routes.DefaultWeight != 2.5 {
		t.Errorf("Routes.DefaultWeight = %v, want 2.5", cfg.Routes.DefaultWeight)
	}
	if cfg.Render.Format != "png" {
		t.Errorf("Render.Format = %q, want %q", cfg.Render.Format, "png")
	}
	if cfg.Render.CacheDir != "off" {
		t.Errorf("Render.CacheDir = %q, want %q", cfg.Render.CacheDir, "off")
	}
}

func TestLoadConfigMissingKeysKeepDefaults(t *testing.T) {
	path := writeConfig(t, `
[routes]
directed = true
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	def := DefaultConfig()
	if cfg.Routes.DefaultWeight != def.Routes.DefaultWeight {
		t.Errorf("Routes.DefaultWeight = %v, want default %v", cfg.Routes.DefaultWeight, def.Routes.DefaultWeight)
	}
	if cfg.Render.Format != def.Render.Format {
		t.Errorf("Render.Format = %q, want default %q", cfg.Render.Format, def.Render.Format)
	}
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"negative weight", "[routes]\ndefault_weight = -1.0\n", "default_weight"},
		{"unknown format", "[render]\nformat = \"gif\"\n", "render format"},
		{"malformed toml", "routes = [", "parse config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.body))
			if err == nil {
				t.Fatal("LoadConfig() error = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("LoadConfig() error = %q, want substring %q", err, tt.want)
			}
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Fatal("LoadConfig() error = nil, want error")
	}
}
