package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.KeypadName() != "square" {
		t.Fatalf("unexpected keypad: %q", cfg.KeypadName())
	}
	if cfg.LogLevel() != "warn" {
		t.Fatalf("unexpected log level: %q", cfg.LogLevel())
	}
	if cfg.StepInterval() != 150*time.Millisecond {
		t.Fatalf("unexpected step interval: %v", cfg.StepInterval())
	}
	if cfg.Mute() {
		t.Fatal("muted by default")
	}
}

func TestLoadFromTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := []byte(`keypad = " Diamond "

[logging]
level = "debug"

[replay]
step_ms = 40

[sound]
mute = true
volume = -2.5
`)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.KeypadName() != "diamond" {
		t.Fatalf("unexpected keypad: %q", cfg.KeypadName())
	}
	if cfg.LogLevel() != "debug" {
		t.Fatalf("unexpected log level: %q", cfg.LogLevel())
	}
	if cfg.StepInterval() != 40*time.Millisecond {
		t.Fatalf("unexpected step interval: %v", cfg.StepInterval())
	}
	if !cfg.Mute() || cfg.Volume() != -2.5 {
		t.Fatalf("unexpected sound config: %+v", cfg.Sound)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[sound]\nmute = true\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.KeypadName() != "square" || cfg.StepInterval() != 150*time.Millisecond {
		t.Fatalf("defaults lost: %+v", cfg)
	}
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("keypad = [\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestStepIntervalBounds(t *testing.T) {
	cfg := Config{Replay: ReplayConfig{StepMS: 1}}
	if cfg.StepInterval() != 10*time.Millisecond {
		t.Fatalf("unexpected clamp: %v", cfg.StepInterval())
	}
	cfg.Replay.StepMS = -5
	if cfg.StepInterval() != 150*time.Millisecond {
		t.Fatalf("unexpected default: %v", cfg.StepInterval())
	}
}

func TestDefaultPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	path, err := DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath: %v", err)
	}
	if filepath.Base(path) != "config.toml" || filepath.Base(filepath.Dir(path)) != "keywalk" {
		t.Fatalf("unexpected path: %q", path)
	}
}
