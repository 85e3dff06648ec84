// Package cache provides SQLite-backed caching of file classification
// results. The cache is stored in .syntaxpresso/cache.db and lets
// repeated project scans skip files whose content has not changed.
package cache

import (
	"database/sql"
	"fmt"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Cache manages the .syntaxpresso/cache.db SQLite database.
type Cache struct {
	db     *sql.DB
	dbPath string
}

// Open opens or creates the cache database in the given config
// directory. It initializes the schema if the database is new.
func Open(configDir string) (*Cache, error) {
	dbPath := filepath.Join(configDir, "cache.db")

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open cache db: %w", err)
	}

	// Enable WAL mode for better concurrent access
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	cache := &Cache{db: db, dbPath: dbPath}

	if err := cache.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return cache, nil
}

// Close closes the database connection.
func (c *Cache) Close() error {
	if c.db == nil {
		return nil
	}
	return c.db.Close()
}

// Clear removes all cached classifications.
func (c *Cache) Clear() error {
	_, err := c.db.Exec("DELETE FROM classifications")
	if err != nil {
		return fmt.Errorf("clear cache: %w", err)
	}
	return nil
}

// Path returns the database file path.
func (c *Cache) Path() string {
	return c.dbPath
}

// Count returns the number of cached classifications.
func (c *Cache) Count() (int64, error) {
	var n int64
	if err := c.db.QueryRow("SELECT COUNT(*) FROM classifications").Scan(&n); err != nil {
		return 0, fmt.Errorf("count classifications: %w", err)
	}
	return n, nil
}
