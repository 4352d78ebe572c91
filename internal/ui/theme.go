// Package ui provides the terminal viewer interface.
package ui

import (
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines all colors used in the viewer.
type Theme struct {
	Name string `json:"name"`

	// Core colors
	Primary   string `json:"primary"`   // Main accent color (phrases, highlights)
	Secondary string `json:"secondary"` // Secondary accent (bracketed phrases)
	Muted     string `json:"muted"`     // Dimmed text, borders

	// Semantic colors
	Success string `json:"success"` // Success states
	Warning string `json:"warning"` // Warning states
	Error   string `json:"error"`   // Error states

	// Phrase colors
	PhraseBg  string `json:"phrase_bg"`  // Overlay phrase background
	PhraseFg  string `json:"phrase_fg"`  // Overlay phrase foreground
	RevealBg  string `json:"reveal_bg"`  // Background of a revealed original
	StatusBg  string `json:"status_bg"`  // Status bar background
	StatusFg  string `json:"status_fg"`  // Status bar foreground
	CursorBg  string `json:"cursor_bg"`  // Cursor cell background
	CursorFg  string `json:"cursor_fg"`  // Cursor cell foreground
}

// BuiltinThemes contains all built-in themes.
var BuiltinThemes = map[string]Theme{
	"onedark": OneDarkTheme,
	"nord":    NordTheme,
}

// OneDarkTheme is inspired by Atom's One Dark theme - subtle and easy on the eyes.
var OneDarkTheme = Theme{
	Name: "onedark",

	Primary:   "#61AFEF", // Soft blue
	Secondary: "#56B6C2", // Cyan
	Muted:     "#5C6370", // Comment gray

	Success: "#98C379", // Green
	Warning: "#E5C07B", // Yellow
	Error:   "#E06C75", // Red

	PhraseBg: "#3E4451",
	PhraseFg: "#61AFEF",
	RevealBg: "#2C313C",
	StatusBg: "#3E4451",
	StatusFg: "#ABB2BF",
	CursorBg: "#528BFF",
	CursorFg: "#FFFFFF",
}

// NordTheme uses the Nord palette.
var NordTheme = Theme{
	Name: "nord",

	Primary:   "#88C0D0",
	Secondary: "#81A1C1",
	Muted:     "#4C566A",

	Success: "#A3BE8C",
	Warning: "#EBCB8B",
	Error:   "#BF616A",

	PhraseBg: "#3B4252",
	PhraseFg: "#88C0D0",
	RevealBg: "#434C5E",
	StatusBg: "#3B4252",
	StatusFg: "#D8DEE9",
	CursorBg: "#81A1C1",
	CursorFg: "#2E3440",
}

// currentTheme is the active theme (defaults to OneDark).
var currentTheme = OneDarkTheme

// CurrentTheme returns the current theme.
func CurrentTheme() Theme {
	return currentTheme
}

// SetTheme sets the current theme by name.
func SetTheme(name string) error {
	theme, ok := BuiltinThemes[name]
	if !ok {
		return fmt.Errorf("unknown theme: %s", name)
	}
	currentTheme = theme
	refreshStyles()
	return nil
}

// SetThemeFromJSON sets a custom theme from JSON.
func SetThemeFromJSON(data string) error {
	var theme Theme
	if err := json.Unmarshal([]byte(data), &theme); err != nil {
		return fmt.Errorf("parse theme: %w", err)
	}
	if theme.Name == "" {
		theme.Name = "custom"
	}
	currentTheme = theme
	refreshStyles()
	return nil
}

// ListThemes returns the names of all built-in themes.
func ListThemes() []string {
	names := make([]string, 0, len(BuiltinThemes))
	for name := range BuiltinThemes {
		names = append(names, name)
	}
	return names
}

// LoadThemeFromStore applies the persisted theme setting, if any. getSetting
// is the settings lookup so this package needs no store import.
func LoadThemeFromStore(getSetting func(string) (string, error)) {
	name, err := getSetting("theme")
	if err != nil || name == "" {
		return
	}
	if _, ok := BuiltinThemes[name]; ok {
		SetTheme(name)
		return
	}
	// Allow a custom theme stored as JSON
	SetThemeFromJSON(name)
}

// refreshStyles updates all lipgloss styles after a theme change.
func refreshStyles() {
	t := currentTheme

	ColorPrimary = lipgloss.Color(t.Primary)
	ColorSecondary = lipgloss.Color(t.Secondary)
	ColorSuccess = lipgloss.Color(t.Success)
	ColorWarning = lipgloss.Color(t.Warning)
	ColorError = lipgloss.Color(t.Error)
	ColorMuted = lipgloss.Color(t.Muted)

	PhraseStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(t.PhraseBg)).
		Foreground(lipgloss.Color(t.PhraseFg))
	BracketedPhraseStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(t.PhraseBg)).
		Foreground(lipgloss.Color(t.Secondary)).
		Bold(true)
	RevealStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(t.RevealBg)).
		Foreground(lipgloss.Color(t.Warning))
	StatusBarStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(t.StatusBg)).
		Foreground(lipgloss.Color(t.StatusFg))
	CursorStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(t.CursorBg)).
		Foreground(lipgloss.Color(t.CursorFg))
	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)
	MutedStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	ErrorStyle = lipgloss.NewStyle().Foreground(ColorError)
}
