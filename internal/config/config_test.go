package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig without a file must fall back to defaults: %v", err)
	}
	if cfg.Server.Port != "8080" {
		t.Errorf("default port = %q", cfg.Server.Port)
	}
	if cfg.Export.SheetName != "Students" {
		t.Errorf("default sheet name = %q", cfg.Export.SheetName)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("default log level = %q", cfg.Logging.Level)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte("server:\n  port: \"9090\"\nexport:\n  sheet_name: \"Roster\"\n")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Server.Port != "9090" {
		t.Errorf("port = %q, want 9090", cfg.Server.Port)
	}
	if cfg.Export.SheetName != "Roster" {
		t.Errorf("sheet name = %q, want Roster", cfg.Export.SheetName)
	}
	// Untouched sections keep their defaults.
	if cfg.Store.SeedPath != "data/sample-students.json" {
		t.Errorf("seed path = %q", cfg.Store.SeedPath)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("EXPORT_SHEET_NAME", "EnvSheet")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Server.Port != "7070" {
		t.Errorf("port = %q, want env override 7070", cfg.Server.Port)
	}
	if cfg.Export.SheetName != "EnvSheet" {
		t.Errorf("sheet name = %q, want EnvSheet", cfg.Export.SheetName)
	}
}

func TestValidateConfigRejectsBadPort(t *testing.T) {
	t.Setenv("SERVER_PORT", "not-a-port")

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("non-numeric port must fail validation")
	}
}

func TestValidateConfigRejectsUnknownLogLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "verbose")

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("unknown log level must fail validation")
	}
}
