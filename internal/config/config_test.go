package config

import (
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	want := DefaultConfig()
	if cfg.Extraction.Mode != want.Extraction.Mode {
		t.Fatalf("Mode = %q, want %q", cfg.Extraction.Mode, want.Extraction.Mode)
	}
}

func TestSaveThenLoadRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.Input = "/data/series"
	cfg.Extraction.Mode = "exact_value"
	cfg.Extraction.Value = 42
	cfg.Extraction.MinSize = 10

	if err := SaveConfig(cfg, path); err != nil {
		t.Fatalf("SaveConfig returned error: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}

	if loaded.Input != cfg.Input {
		t.Fatalf("Input = %q, want %q", loaded.Input, cfg.Input)
	}
	if loaded.Extraction.Mode != cfg.Extraction.Mode {
		t.Fatalf("Mode = %q, want %q", loaded.Extraction.Mode, cfg.Extraction.Mode)
	}
	if loaded.Extraction.Value != cfg.Extraction.Value {
		t.Fatalf("Value = %v, want %v", loaded.Extraction.Value, cfg.Extraction.Value)
	}
	if loaded.Extraction.MinSize != cfg.Extraction.MinSize {
		t.Fatalf("MinSize = %v, want %v", loaded.Extraction.MinSize, cfg.Extraction.MinSize)
	}
}

func TestCreateDefaultConfigFileDoesNotOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := DefaultConfig()
	cfg.Input = "custom"
	if err := SaveConfig(cfg, path); err != nil {
		t.Fatalf("SaveConfig returned error: %v", err)
	}

	if err := CreateDefaultConfigFile(path); err != nil {
		t.Fatalf("CreateDefaultConfigFile returned error: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if loaded.Input != "custom" {
		t.Fatalf("Input = %q, want %q (file should not have been overwritten)", loaded.Input, "custom")
	}
}
