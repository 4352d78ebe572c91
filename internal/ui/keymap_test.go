package ui

import (
	"testing"

	"github.com/datelens/datelens/internal/config"
)

func TestApplyKeybindings(t *testing.T) {
	keys := DefaultKeyMap().ApplyKeybindings(&config.KeybindingsConfig{
		Up:   &config.KeybindingConfig{Keys: []string{"w"}, Help: "move up"},
		Quit: &config.KeybindingConfig{Keys: []string{"x", "ctrl+d"}},
	})

	if got := keys.Up.Keys(); len(got) != 1 || got[0] != "w" {
		t.Errorf("up keys = %v", got)
	}
	if keys.Up.Help().Desc != "move up" {
		t.Errorf("up help = %q", keys.Up.Help().Desc)
	}
	// Help text falls back to the default when unset.
	if keys.Quit.Help().Desc != "quit" {
		t.Errorf("quit help = %q", keys.Quit.Help().Desc)
	}
	// Untouched bindings keep their defaults.
	if got := keys.Down.Keys(); len(got) != 2 {
		t.Errorf("down keys = %v", got)
	}
}

func TestApplyKeybindingsNil(t *testing.T) {
	def := DefaultKeyMap()
	got := def.ApplyKeybindings(nil)
	if len(got.Up.Keys()) != len(def.Up.Keys()) {
		t.Fatalf("nil config should change nothing")
	}
}
