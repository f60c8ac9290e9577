package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Statements are idempotent so the
// full list can be re-applied on every startup.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS notes (
		id         TEXT PRIMARY KEY,
		title      TEXT NOT NULL,
		content    TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS tags (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL UNIQUE,
		created_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS note_tags (
		note_id TEXT NOT NULL REFERENCES notes(id) ON DELETE CASCADE,
		tag_id  TEXT NOT NULL REFERENCES tags(id) ON DELETE CASCADE,
		PRIMARY KEY (note_id, tag_id)
	)`,

	`CREATE TABLE IF NOT EXISTS action_items (
		id             TEXT PRIMARY KEY,
		description    TEXT NOT NULL,
		completed      INTEGER NOT NULL DEFAULT 0,
		source_note_id TEXT REFERENCES notes(id) ON DELETE SET NULL,
		created_at     TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_notes_created ON notes(created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_note_tags_tag ON note_tags(tag_id)`,
	`CREATE INDEX IF NOT EXISTS idx_action_items_source ON action_items(source_note_id)`,
	`CREATE INDEX IF NOT EXISTS idx_action_items_completed ON action_items(completed)`,
}
