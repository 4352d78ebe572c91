package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/datelens/datelens/internal/config"
)

// KeyMap holds the viewer key bindings.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Top      key.Binding
	Bottom   key.Binding
	NextDate key.Binding
	PrevDate key.Binding
	Reload   key.Binding
	Settings key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings to show in the mini help.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextDate, k.Settings, k.Help, k.Quit}
}

// FullHelp returns all key bindings for the expanded help.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Top, k.Bottom, k.NextDate, k.PrevDate},
		{k.Reload, k.Settings, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "bottom"),
		),
		NextDate: key.NewBinding(
			key.WithKeys("tab", "n"),
			key.WithHelp("tab", "next date"),
		),
		PrevDate: key.NewBinding(
			key.WithKeys("shift+tab", "N"),
			key.WithHelp("shift+tab", "prev date"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		Settings: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "settings"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ApplyKeybindings overlays user-configured bindings onto the map.
func (k KeyMap) ApplyKeybindings(cfg *config.KeybindingsConfig) KeyMap {
	if cfg == nil {
		return k
	}
	apply := func(b *key.Binding, c *config.KeybindingConfig) {
		if c == nil || len(c.Keys) == 0 {
			return
		}
		help := c.Help
		if help == "" {
			help = b.Help().Desc
		}
		*b = key.NewBinding(key.WithKeys(c.Keys...), key.WithHelp(c.Keys[0], help))
	}
	apply(&k.Up, cfg.Up)
	apply(&k.Down, cfg.Down)
	apply(&k.Left, cfg.Left)
	apply(&k.Right, cfg.Right)
	apply(&k.Top, cfg.Top)
	apply(&k.Bottom, cfg.Bottom)
	apply(&k.NextDate, cfg.NextDate)
	apply(&k.PrevDate, cfg.PrevDate)
	apply(&k.Reload, cfg.Reload)
	apply(&k.Settings, cfg.Settings)
	apply(&k.Help, cfg.Help)
	apply(&k.Quit, cfg.Quit)
	return k
}
