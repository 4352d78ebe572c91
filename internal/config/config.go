// Package config provides application configuration from the settings store.
package config

import (
	"fmt"

	"github.com/datelens/datelens/internal/datefmt"
	"github.com/datelens/datelens/internal/store"
)

// Setting keys
const (
	SettingDateFormat = "date_format"
	SettingTheme      = "theme"
)

// Config holds resolved application configuration.
type Config struct {
	store      *store.Store
	DateFormat string
}

// New creates a config backed by the settings store.
func New(s *store.Store) *Config {
	cfg := &Config{store: s}
	cfg.load()
	return cfg
}

func (c *Config) load() {
	if f, err := c.store.GetSetting(SettingDateFormat); err == nil && f != "" {
		c.DateFormat = f
	} else {
		c.DateFormat = datefmt.DefaultFormat
	}
}

// Pattern compiles the configured date format. A stored format that no
// longer compiles falls back to the default so the viewer always starts.
func (c *Config) Pattern() *datefmt.Pattern {
	if p, err := datefmt.Compile(c.DateFormat); err == nil {
		return p
	}
	p, _ := datefmt.Compile(datefmt.DefaultFormat)
	return p
}

// SetDateFormat validates, persists and applies a new date format.
func (c *Config) SetDateFormat(format string) error {
	if _, err := datefmt.Compile(format); err != nil {
		return fmt.Errorf("invalid date format: %w", err)
	}
	if err := c.store.SetSetting(SettingDateFormat, format); err != nil {
		return err
	}
	c.DateFormat = format
	return nil
}
