package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Setting keys
const (
	SettingColumns        = "columns"
	SettingLastActiveDate = "last_active_date"
)

// SettingsRepo handles the string-keyed settings table.
type SettingsRepo struct {
	db *sql.DB
}

// GetSetting returns the value stored under key. ok is false when the key is absent.
func (r *SettingsRepo) GetSetting(ctx context.Context, key string) (value string, ok bool, err error) {
	err = r.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read setting %s: %w", key, err)
	}
	return value, true, nil
}

// SetSetting inserts or replaces the value stored under key
func (r *SettingsRepo) SetSetting(ctx context.Context, key, value string) error {
	if err := setSetting(ctx, r.db, key, value); err != nil {
		return fmt.Errorf("failed to write setting %s: %w", key, err)
	}
	return nil
}

// execer is satisfied by both *sql.DB and *sql.Tx
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func setSetting(ctx context.Context, ex execer, key, value string) error {
	_, err := ex.ExecContext(ctx,
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	return err
}

// advanceSetting is setSetting for values that only grow. An existing value
// that already compares greater or equal is kept.
func advanceSetting(ctx context.Context, ex execer, key, value string) error {
	_, err := ex.ExecContext(ctx,
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value
		 WHERE settings.value < excluded.value`,
		key, value,
	)
	return err
}
