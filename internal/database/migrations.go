package database

import (
	"context"
	"database/sql"
	"strings"

	"github.com/thenoetrevino/daykan/internal/models"
)

// runMigrations creates the database schema and seeds default data if needed
func runMigrations(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)
	`)
	if err != nil {
		return err
	}

	// task_date is YYYY-MM-DD, timestamps are RFC 3339 in UTC
	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS tasks (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			column_index INTEGER NOT NULL DEFAULT 0,
			task_date TEXT NOT NULL,
			created_at TEXT NOT NULL,
			archived INTEGER NOT NULL DEFAULT 0,
			archived_at TEXT
		)
	`)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		CREATE INDEX IF NOT EXISTS idx_tasks_date_archived
		ON tasks(task_date, archived)
	`)
	if err != nil {
		return err
	}

	return seedDefaultColumns(ctx, db)
}

// seedDefaultColumns stores the default column names if none are configured
func seedDefaultColumns(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx,
		`INSERT OR IGNORE INTO settings (key, value) VALUES (?, ?)`,
		SettingColumns, strings.Join(models.DefaultColumnNames, ","),
	)
	return err
}
