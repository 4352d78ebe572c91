package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/datelens/datelens/internal/config"
	"github.com/datelens/datelens/internal/datefmt"
	"github.com/datelens/datelens/internal/store"
)

// SettingsModel edits the date format and theme through a huh form.
type SettingsModel struct {
	cfg   *config.Config
	store *store.Store

	form   *huh.Form
	format string
	theme  string
	err    error
}

// NewSettingsModel creates the settings form seeded with current values.
func NewSettingsModel(cfg *config.Config, st *store.Store) *SettingsModel {
	m := &SettingsModel{
		cfg:    cfg,
		store:  st,
		format: cfg.DateFormat,
		theme:  CurrentTheme().Name,
	}

	themeOptions := make([]huh.Option[string], 0, len(BuiltinThemes))
	for _, name := range ListThemes() {
		themeOptions = append(themeOptions, huh.NewOption(name, name))
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Date format").
				Description("Tokens: ddd MMM DD YYYY HH:mm").
				Value(&m.format).
				Validate(func(s string) error {
					_, err := datefmt.Compile(s)
					return err
				}),
			huh.NewSelect[string]().
				Title("Theme").
				Options(themeOptions...).
				Value(&m.theme),
		),
	).WithTheme(huh.ThemeDracula())

	return m
}

// Init initializes the form.
func (m *SettingsModel) Init() tea.Cmd {
	return m.form.Init()
}

// Update advances the form. It reports done once the form completes or
// aborts; completed values are persisted before returning.
func (m *SettingsModel) Update(msg tea.Msg) (bool, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		m.err = m.apply()
		return true, nil
	case huh.StateAborted:
		return true, nil
	}
	return false, cmd
}

func (m *SettingsModel) apply() error {
	if m.format != m.cfg.DateFormat {
		if err := m.cfg.SetDateFormat(m.format); err != nil {
			return err
		}
	}
	if m.theme != CurrentTheme().Name {
		if err := SetTheme(m.theme); err != nil {
			return err
		}
		if err := m.store.SetSetting(config.SettingTheme, m.theme); err != nil {
			return err
		}
	}
	return nil
}

// Err reports a failure persisting completed form values, if any.
func (m *SettingsModel) Err() error {
	return m.err
}

// View renders the form.
func (m *SettingsModel) View() string {
	return TitleStyle.Render("Settings") + "\n\n" + m.form.View()
}
