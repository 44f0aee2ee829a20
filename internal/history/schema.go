// # internal/history/schema.go
package history

import (
	"database/sql"
	"time"
)

const SchemaVersion = 1

// Run is one persisted extraction run.
type Run struct {
	ID            string
	ProjectKey    string
	SchemaVersion int
	Timestamp     time.Time
	FileCount     int
	ModuleCount   int
	EdgeCount     int
	UnresolvedCount int
	DurationMs    int64
}

func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(`
CREATE TABLE IF NOT EXISTS runs (
  id               TEXT PRIMARY KEY,
  project_key      TEXT NOT NULL,
  schema_version   INTEGER NOT NULL,
  ts_utc           TEXT NOT NULL,
  file_count       INTEGER NOT NULL,
  module_count     INTEGER NOT NULL,
  edge_count       INTEGER NOT NULL,
  unresolved_count INTEGER NOT NULL,
  duration_ms      INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_runs_project_ts ON runs(project_key, ts_utc);
`)
	return err
}
