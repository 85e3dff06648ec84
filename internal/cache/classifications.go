package cache

import (
	"fmt"
	"time"

	"github.com/syntaxpresso/core/internal/jpa"
	"github.com/syntaxpresso/core/internal/scan"
)

// Get retrieves the cached classification for a file, matching only
// when the stored content hash equals the given one. It implements
// scan.Store.
func (c *Cache) Get(path, hash string) (scan.Descriptor, bool) {
	var (
		d        scan.Descriptor
		kind     string
		typeKind string
	)
	err := c.db.QueryRow(`
		SELECT package, name, kind, type_kind, superclass
		FROM classifications
		WHERE file_path = ? AND content_hash = ?`,
		path, hash,
	).Scan(&d.Package, &d.Name, &kind, &typeKind, &d.Superclass)
	if err != nil {
		return scan.Descriptor{}, false
	}
	d.Path = path
	d.Kind = scan.Kind(kind)
	d.TypeKind = jpa.FileType(typeKind)
	return d, true
}

// Put stores the classification for a file, replacing any previous
// row for the path. It implements scan.Store.
func (c *Cache) Put(path, hash string, d scan.Descriptor) error {
	_, err := c.db.Exec(`
		INSERT OR REPLACE INTO classifications
			(file_path, content_hash, package, name, kind, type_kind, superclass, classified_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		path, hash, d.Package, d.Name, string(d.Kind), string(d.TypeKind), d.Superclass,
		time.Now().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("cache classification %s: %w", path, err)
	}
	return nil
}

// Delete removes the cached classification for a file.
func (c *Cache) Delete(path string) error {
	_, err := c.db.Exec("DELETE FROM classifications WHERE file_path = ?", path)
	if err != nil {
		return fmt.Errorf("delete classification %s: %w", path, err)
	}
	return nil
}

// Prune removes rows for files no longer in the provided set and
// returns the number removed.
func (c *Cache) Prune(validPaths map[string]bool) (int, error) {
	rows, err := c.db.Query("SELECT file_path FROM classifications")
	if err != nil {
		return 0, fmt.Errorf("query classifications: %w", err)
	}
	defer rows.Close()

	var stale []string
	for rows.Next() {
		var path string
		if err := rows.Scan(&path); err != nil {
			return 0, fmt.Errorf("scan row: %w", err)
		}
		if !validPaths[path] {
			stale = append(stale, path)
		}
	}
	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("iterate rows: %w", err)
	}

	for i, path := range stale {
		if err := c.Delete(path); err != nil {
			return i, err
		}
	}
	return len(stale), nil
}
