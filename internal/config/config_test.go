package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromMissingFile(t *testing.T) {
	cfg, err := loadFrom(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("loadFrom: %v", err)
	}
	if cfg.DataFile != DefaultDataFile {
		t.Errorf("DataFile = %q, want %q", cfg.DataFile, DefaultDataFile)
	}
	if cfg.PomodoroMinutes != 25 {
		t.Errorf("PomodoroMinutes = %d, want 25", cfg.PomodoroMinutes)
	}
	if cfg.ChartWidth != 40 {
		t.Errorf("ChartWidth = %d, want 40", cfg.ChartWidth)
	}
}

func TestLoadFromPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("data_file = \"/tmp/work.yaml\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadFrom(path)
	if err != nil {
		t.Fatalf("loadFrom: %v", err)
	}
	if cfg.DataFile != "/tmp/work.yaml" {
		t.Errorf("DataFile = %q", cfg.DataFile)
	}
	// Unset values fall back to defaults.
	if cfg.PomodoroMinutes != 25 || cfg.ChartWidth != 40 {
		t.Errorf("defaults not filled: %+v", cfg)
	}
}

func TestLoadFromInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("data_file = [broken"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadFrom(path); err == nil {
		t.Error("expected error for invalid TOML")
	}
}

func TestResolveDataFile(t *testing.T) {
	cfg := &Config{DataFile: "from-config.yaml"}

	t.Run("flag wins", func(t *testing.T) {
		t.Setenv(EnvDataFile, "from-env.yaml")
		if got := cfg.ResolveDataFile("from-flag.yaml"); got != "from-flag.yaml" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("env beats config", func(t *testing.T) {
		t.Setenv(EnvDataFile, "from-env.yaml")
		if got := cfg.ResolveDataFile(""); got != "from-env.yaml" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("config as fallback", func(t *testing.T) {
		t.Setenv(EnvDataFile, "")
		if got := cfg.ResolveDataFile(""); got != "from-config.yaml" {
			t.Errorf("got %q", got)
		}
	})
}
