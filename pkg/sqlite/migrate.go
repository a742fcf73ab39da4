package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// SchemaVersion is the latest schema version supported by the migrator.
const SchemaVersion = 2

// migrations[i] upgrades the schema from version i to i+1.
var migrations = []string{
	`
	CREATE TABLE IF NOT EXISTS households (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		timezone TEXT NOT NULL DEFAULT 'UTC',
		created_at TEXT NOT NULL
	);
	CREATE TABLE IF NOT EXISTS members (
		id TEXT PRIMARY KEY,
		household_id TEXT NOT NULL REFERENCES households(id) ON DELETE CASCADE,
		user_id TEXT NOT NULL,
		name TEXT NOT NULL,
		created_at TEXT NOT NULL,
		UNIQUE (household_id, user_id)
	);
	CREATE TABLE IF NOT EXISTS rooms (
		id TEXT PRIMARY KEY,
		household_id TEXT NOT NULL REFERENCES households(id) ON DELETE CASCADE,
		name TEXT NOT NULL COLLATE NOCASE,
		created_at TEXT NOT NULL,
		UNIQUE (household_id, name)
	);
	CREATE TABLE IF NOT EXISTS chores (
		id TEXT PRIMARY KEY,
		household_id TEXT NOT NULL REFERENCES households(id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		room_id TEXT NOT NULL DEFAULT '',
		assignee_id TEXT NOT NULL DEFAULT '',
		recurrence TEXT NOT NULL DEFAULT 'none',
		due_date TEXT NULL,
		time_of_day TEXT NOT NULL DEFAULT 'any',
		exact_time TEXT NOT NULL DEFAULT '',
		points INTEGER NOT NULL DEFAULT 10,
		completed_instances INTEGER NOT NULL DEFAULT 0,
		target_instances INTEGER NOT NULL DEFAULT 1,
		status TEXT NOT NULL DEFAULT 'pending',
		subtasks TEXT NOT NULL DEFAULT '[]',
		tags TEXT NOT NULL DEFAULT '[]',
		created_by TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_chores_household_status ON chores(household_id, status);
	CREATE INDEX IF NOT EXISTS idx_chores_status_due ON chores(status, due_date);
	CREATE TABLE IF NOT EXISTS completions (
		id TEXT PRIMARY KEY,
		chore_id TEXT NOT NULL,
		household_id TEXT NOT NULL REFERENCES households(id) ON DELETE CASCADE,
		member_id TEXT NOT NULL,
		points INTEGER NOT NULL,
		completed_at TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_completions_household ON completions(household_id, completed_at);
	`,
	`
	ALTER TABLE chores ADD COLUMN is_shopping_list INTEGER NOT NULL DEFAULT 0;
	`,
}

// Migrate ensures the schema exists and is upgraded to SchemaVersion.
func Migrate(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return fmt.Errorf("migrate: db is nil")
	}

	_, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (version INTEGER PRIMARY KEY);`)
	if err != nil {
		return fmt.Errorf("migrate: create schema_migrations: %w", err)
	}

	var current int
	err = db.QueryRowContext(ctx, `SELECT COALESCE(MAX(version), 0) FROM schema_migrations;`).Scan(&current)
	if err != nil {
		return fmt.Errorf("migrate: read current version: %w", err)
	}

	for version := current; version < SchemaVersion; version++ {
		if err := apply(ctx, db, version+1, migrations[version]); err != nil {
			return err
		}
	}
	return nil
}

func apply(ctx context.Context, db *sql.DB, version int, ddl string) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("migrate: v%d: begin transaction: %w", version, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, stmt := range strings.Split(ddl, ";") {
		if strings.TrimSpace(stmt) == "" {
			continue
		}
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: v%d: %w", version, err)
		}
	}
	if _, err := tx.ExecContext(ctx, `INSERT INTO schema_migrations (version) VALUES (?);`, version); err != nil {
		return fmt.Errorf("migrate: v%d: record version: %w", version, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("migrate: v%d: commit: %w", version, err)
	}
	return nil
}
