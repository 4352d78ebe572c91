package store

import (
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "datelens.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSettingsRoundTrip(t *testing.T) {
	s := testStore(t)

	if v, err := s.GetSetting("date_format"); err != nil || v != "" {
		t.Fatalf("unset setting = (%q, %v), want empty", v, err)
	}

	if err := s.SetSetting("date_format", "DD MMM YYYY"); err != nil {
		t.Fatalf("SetSetting failed: %v", err)
	}
	if v, _ := s.GetSetting("date_format"); v != "DD MMM YYYY" {
		t.Fatalf("GetSetting = %q", v)
	}

	// Overwrite
	if err := s.SetSetting("date_format", "MMM DD YYYY"); err != nil {
		t.Fatalf("SetSetting overwrite failed: %v", err)
	}
	if v, _ := s.GetSetting("date_format"); v != "MMM DD YYYY" {
		t.Fatalf("GetSetting after overwrite = %q", v)
	}

	all, err := s.GetAllSettings()
	if err != nil {
		t.Fatalf("GetAllSettings failed: %v", err)
	}
	if all["date_format"] != "MMM DD YYYY" {
		t.Fatalf("GetAllSettings = %v", all)
	}
}

func TestRecentDocuments(t *testing.T) {
	s := testStore(t)

	touch := func(path string) {
		t.Helper()
		if err := s.TouchDocument(path); err != nil {
			t.Fatalf("TouchDocument failed: %v", err)
		}
		// Past the millisecond resolution of the stored timestamps.
		time.Sleep(5 * time.Millisecond)
	}

	touch("/tmp/a.md")
	touch("/tmp/b.md")
	// Re-open a: it moves back to the front.
	touch("/tmp/a.md")

	paths, err := s.RecentDocuments(10)
	if err != nil {
		t.Fatalf("RecentDocuments failed: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("got %d documents, want 2: %v", len(paths), paths)
	}
	if !strings.HasSuffix(paths[0], "a.md") || !strings.HasSuffix(paths[1], "b.md") {
		t.Fatalf("wrong recency order: %v", paths)
	}

	limited, err := s.RecentDocuments(1)
	if err != nil {
		t.Fatalf("RecentDocuments failed: %v", err)
	}
	if len(limited) != 1 {
		t.Fatalf("limit ignored: %v", limited)
	}
	if !strings.HasSuffix(limited[0], "a.md") {
		t.Fatalf("limit kept the wrong document: %v", limited)
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "datelens.db")

	s1, err := Open(path)
	if err != nil {
		t.Fatalf("first Open failed: %v", err)
	}
	if err := s1.SetSetting("theme", "nord"); err != nil {
		t.Fatalf("SetSetting failed: %v", err)
	}
	s1.Close()

	s2, err := Open(path)
	if err != nil {
		t.Fatalf("second Open failed: %v", err)
	}
	defer s2.Close()
	if v, _ := s2.GetSetting("theme"); v != "nord" {
		t.Fatalf("setting lost across reopen: %q", v)
	}
}
