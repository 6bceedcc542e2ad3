package config

import (
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.General.AuthTab != "signup" {
		t.Errorf("AuthTab = %q, want %q", cfg.General.AuthTab, "signup")
	}
	if cfg.Appearance.Theme != "flexoki-dark" {
		t.Errorf("Theme = %q, want %q", cfg.Appearance.Theme, "flexoki-dark")
	}
	if Exists() {
		t.Error("Exists() = true before any save")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	cfg := DefaultConfig()
	cfg.General.AuthTab = "login"
	cfg.Appearance.Theme = "campus-night"

	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists() = false after save")
	}
	if want := filepath.Join(dir, "expensetracker", "config.toml"); Path() != want {
		t.Errorf("Path() = %q, want %q", Path(), want)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.General.AuthTab != "login" {
		t.Errorf("AuthTab = %q, want %q", loaded.General.AuthTab, "login")
	}
	if loaded.Appearance.Theme != "campus-night" {
		t.Errorf("Theme = %q, want %q", loaded.Appearance.Theme, "campus-night")
	}
}
