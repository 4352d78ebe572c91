package store

import (
	"fmt"
	"path/filepath"
)

// TouchDocument records that a document was opened, updating its timestamp
// when it is already known. Paths are stored absolute so the recent list
// survives directory changes. Timestamps carry milliseconds so opens in
// quick succession still order correctly.
func (s *Store) TouchDocument(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}
	_, err = s.Exec(`
		INSERT INTO documents (path) VALUES (?)
		ON CONFLICT(path) DO UPDATE SET opened_at = strftime('%Y-%m-%dT%H:%M:%f','now')
	`, abs)
	if err != nil {
		return fmt.Errorf("touch document: %w", err)
	}
	return nil
}

// RecentDocuments returns up to limit document paths, most recent first.
func (s *Store) RecentDocuments(limit int) ([]string, error) {
	rows, err := s.Query(`
		SELECT path FROM documents ORDER BY opened_at DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	var paths []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		paths = append(paths, p)
	}
	return paths, rows.Err()
}
