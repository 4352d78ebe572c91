package ui

import (
	"path/filepath"
	"testing"

	"github.com/datelens/datelens/internal/config"
	"github.com/datelens/datelens/internal/store"
)

func testSettings(t *testing.T) (*SettingsModel, *store.Store, *config.Config) {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "datelens.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	cfg := config.New(s)
	return NewSettingsModel(cfg, s), s, cfg
}

func TestSettingsApplyPersists(t *testing.T) {
	m, s, cfg := testSettings(t)
	t.Cleanup(func() { s.Close() })

	m.format = "DD MMM YYYY"
	if err := m.apply(); err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if cfg.DateFormat != "DD MMM YYYY" {
		t.Fatalf("format not applied: %q", cfg.DateFormat)
	}
	if v, _ := s.GetSetting(config.SettingDateFormat); v != "DD MMM YYYY" {
		t.Fatalf("format not persisted: %q", v)
	}
}

func TestSettingsApplyReportsStoreError(t *testing.T) {
	m, s, _ := testSettings(t)
	m.format = "DD MMM YYYY"
	s.Close()

	err := m.apply()
	if err == nil {
		t.Fatalf("store write failure should surface")
	}

	// The error reaches the viewer header through Err.
	m.err = err
	if m.Err() == nil {
		t.Fatalf("Err should report the apply failure")
	}
}
