package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadKeybindingsMissingFile(t *testing.T) {
	cfg, err := LoadKeybindingsFromPath(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file is not an error, got %v", err)
	}
	if cfg != nil {
		t.Fatalf("missing file should yield nil config")
	}
}

func TestLoadKeybindings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keybindings.yaml")
	data := `
up:
  keys: ["w"]
  help: "move up"
quit:
  keys: ["x", "ctrl+d"]
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	cfg, err := LoadKeybindingsFromPath(path)
	if err != nil {
		t.Fatalf("LoadKeybindingsFromPath failed: %v", err)
	}
	if cfg == nil {
		t.Fatalf("expected config, got nil")
	}
	if len(cfg.Up.Keys) != 1 || cfg.Up.Keys[0] != "w" || cfg.Up.Help != "move up" {
		t.Errorf("up binding = %+v", cfg.Up)
	}
	if len(cfg.Quit.Keys) != 2 {
		t.Errorf("quit binding = %+v", cfg.Quit)
	}
	if cfg.Down != nil {
		t.Errorf("unset binding should stay nil")
	}
}

func TestLoadKeybindingsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keybindings.yaml")
	if err := os.WriteFile(path, []byte("up: ["), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := LoadKeybindingsFromPath(path); err == nil {
		t.Fatalf("malformed yaml should error")
	}
}
