package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// KeybindingConfig represents a single keybinding configuration.
type KeybindingConfig struct {
	Keys []string `yaml:"keys"` // Key(s) that trigger the action
	Help string   `yaml:"help"` // Help text displayed in the UI
}

// KeybindingsConfig holds all customizable viewer keybindings.
type KeybindingsConfig struct {
	Up       *KeybindingConfig `yaml:"up,omitempty"`
	Down     *KeybindingConfig `yaml:"down,omitempty"`
	Left     *KeybindingConfig `yaml:"left,omitempty"`
	Right    *KeybindingConfig `yaml:"right,omitempty"`
	Top      *KeybindingConfig `yaml:"top,omitempty"`
	Bottom   *KeybindingConfig `yaml:"bottom,omitempty"`
	NextDate *KeybindingConfig `yaml:"next_date,omitempty"`
	PrevDate *KeybindingConfig `yaml:"prev_date,omitempty"`
	Reload   *KeybindingConfig `yaml:"reload,omitempty"`
	Settings *KeybindingConfig `yaml:"settings,omitempty"`
	Help     *KeybindingConfig `yaml:"help,omitempty"`
	Quit     *KeybindingConfig `yaml:"quit,omitempty"`
}

// DefaultKeybindingsConfigPath returns the default path for the keybindings config file.
func DefaultKeybindingsConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "datelens", "keybindings.yaml")
}

// LoadKeybindings loads keybindings from the default config path.
// Returns nil if the file doesn't exist (not an error - just use defaults).
func LoadKeybindings() (*KeybindingsConfig, error) {
	return LoadKeybindingsFromPath(DefaultKeybindingsConfigPath())
}

// LoadKeybindingsFromPath loads keybindings from a specific path.
// Returns nil if the file doesn't exist (not an error - just use defaults).
func LoadKeybindingsFromPath(path string) (*KeybindingsConfig, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil // File doesn't exist, use defaults
		}
		return nil, err
	}

	var config KeybindingsConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	return &config, nil
}
