package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_CreatesDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Database == "" {
		t.Error("default database path is empty")
	}
	if cfg.ExportFile == "" {
		t.Error("default export path is empty")
	}
	if len(cfg.KeyMap) == 0 {
		t.Error("default keymap is empty")
	}
	if cfg.Styles.AccentColor == "" {
		t.Error("default styles missing")
	}

	// First run writes the defaults back out
	if _, err := os.Stat(path); err != nil {
		t.Errorf("config file was not created: %v", err)
	}
}

func TestLoad_ReadsExistingConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{
		"database": "/tmp/custom.db",
		"weather_api_key": "secret",
		"styles": {"accent_color": "33"}
	}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Database != "/tmp/custom.db" {
		t.Errorf("database = %q, want /tmp/custom.db", cfg.Database)
	}
	if cfg.WeatherAPIKey != "secret" {
		t.Errorf("weather_api_key = %q, want secret", cfg.WeatherAPIKey)
	}
	if cfg.Styles.AccentColor != "33" {
		t.Errorf("accent_color = %q, want 33", cfg.Styles.AccentColor)
	}
	// Unset fields keep their defaults
	if cfg.ExportFile == "" {
		t.Error("export path should fall back to the default")
	}
}

func TestLoad_BadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected an error for malformed config")
	}
}
