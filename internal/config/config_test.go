package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.X != 2.0 {
		t.Errorf("expected x 2.0, got %g", cfg.X)
	}
	if cfg.Degree != 2 {
		t.Errorf("expected degree 2, got %d", cfg.Degree)
	}
	if cfg.Steps <= 0 {
		t.Error("steps should be positive")
	}
	if len(cfg.Methods) == 0 {
		t.Error("expected default methods")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("cbrt2")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Degree != 3 {
		t.Errorf("expected degree 3, got %d", cfg.Degree)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets()
	if len(presets) == 0 {
		t.Error("expected presets")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")

	orig := &Config{
		X:       3.5,
		Degree:  3,
		Steps:   25,
		Methods: []string{"dual"},
	}
	if err := Save(path, orig); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if loaded.X != orig.X || loaded.Degree != orig.Degree || loaded.Steps != orig.Steps {
		t.Errorf("round trip mismatch: got %+v, expected %+v", loaded, orig)
	}
	if len(loaded.Methods) != 1 || loaded.Methods[0] != "dual" {
		t.Errorf("methods mismatch: got %v", loaded.Methods)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
