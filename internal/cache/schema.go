package cache

// schemaSQL defines the SQLite schema for the cache database. One row
// per scanned file; the content hash invalidates rows when the file
// changes.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS classifications (
    file_path TEXT PRIMARY KEY,
    content_hash TEXT NOT NULL,
    package TEXT NOT NULL DEFAULT '',
    name TEXT NOT NULL DEFAULT '',
    kind TEXT NOT NULL,
    type_kind TEXT NOT NULL DEFAULT '',
    superclass TEXT NOT NULL DEFAULT '',
    classified_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_classifications_kind ON classifications(kind);
CREATE INDEX IF NOT EXISTS idx_classifications_package ON classifications(package);
`

// initSchema creates the database tables and indexes if they don't exist.
func (c *Cache) initSchema() error {
	_, err := c.db.Exec(schemaSQL)
	return err
}
