package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.UI.Theme != "mocha" {
		t.Errorf("expected theme mocha, got %s", cfg.UI.Theme)
	}
	if cfg.Format.Date != "2006-01-02" {
		t.Errorf("expected ISO date format, got %s", cfg.Format.Date)
	}
	if cfg.History.Disabled {
		t.Error("history should be enabled by default")
	}
	if cfg.History.DBPath == "" {
		t.Error("expected a default db path")
	}
}

func TestLoadFrom_FileNotExists(t *testing.T) {
	cfg, err := LoadFrom("/nonexistent/path/config.toml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Should return defaults
	if cfg.UI.Theme != "mocha" {
		t.Errorf("expected default theme, got %s", cfg.UI.Theme)
	}
}

func TestLoadFrom_ValidFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	content := `
[ui]
theme = "latte"

[format]
date = "02/01/2006"

[range]
min = "2023-01-01"
max = "2023-12-31"

[history]
db_path = "/tmp/test.db"
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.UI.Theme != "latte" {
		t.Errorf("expected theme latte, got %s", cfg.UI.Theme)
	}
	if cfg.Format.Date != "02/01/2006" {
		t.Errorf("expected custom date format, got %s", cfg.Format.Date)
	}
	if cfg.History.DBPath != "/tmp/test.db" {
		t.Errorf("expected db_path /tmp/test.db, got %s", cfg.History.DBPath)
	}

	rng, err := cfg.DateRange()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rng.Min == nil || rng.Min.String() != "2023-01-01" {
		t.Errorf("expected min 2023-01-01, got %v", rng.Min)
	}
	if rng.Max == nil || rng.Max.String() != "2023-12-31" {
		t.Errorf("expected max 2023-12-31, got %v", rng.Max)
	}
}

func TestLoadFrom_EnvOverrides(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	content := `
[ui]
theme = "latte"
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	t.Setenv("FECHA_UI_THEME", "frappe")
	t.Setenv("FECHA_DB_PATH", "/tmp/env.db")

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.UI.Theme != "frappe" {
		t.Errorf("env override lost, theme = %s", cfg.UI.Theme)
	}
	if cfg.History.DBPath != "/tmp/env.db" {
		t.Errorf("env override lost, db_path = %s", cfg.History.DBPath)
	}
}

func TestLoadFrom_InvertedRange(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	content := `
[range]
min = "2024-01-01"
max = "2023-01-01"
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if _, err := LoadFrom(configPath); err == nil {
		t.Fatal("expected error for min > max")
	}
}

func TestLoadFrom_MalformedRange(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	content := `
[range]
min = "January 1st"
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if _, err := LoadFrom(configPath); err == nil {
		t.Fatal("expected error for malformed range date")
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home dir")
	}

	got := expandPath("~/data/fecha.db")
	want := filepath.Join(home, "data", "fecha.db")
	if got != want {
		t.Errorf("expandPath = %s, want %s", got, want)
	}

	// Absolute paths pass through
	if got := expandPath("/tmp/x.db"); got != "/tmp/x.db" {
		t.Errorf("expandPath mangled absolute path: %s", got)
	}
}
