package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Color variables updated on theme change.
var (
	ColorPrimary   = lipgloss.Color("#61AFEF") // Soft blue (OneDark default)
	ColorSecondary = lipgloss.Color("#56B6C2")
	ColorSuccess   = lipgloss.Color("#98C379")
	ColorWarning   = lipgloss.Color("#E5C07B")
	ColorError     = lipgloss.Color("#E06C75")
	ColorMuted     = lipgloss.Color("#5C6370")
)

// Styles derived from the active theme.
var (
	PhraseStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#3E4451")).
			Foreground(ColorPrimary)

	BracketedPhraseStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("#3E4451")).
				Foreground(ColorSecondary).
				Bold(true)

	RevealStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#2C313C")).
			Foreground(ColorWarning)

	StatusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#3E4451")).
			Foreground(lipgloss.Color("#ABB2BF"))

	CursorStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#528BFF")).
			Foreground(lipgloss.Color("#FFFFFF"))

	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)
	MutedStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	ErrorStyle = lipgloss.NewStyle().Foreground(ColorError)
)
