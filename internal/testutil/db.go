// Package testutil holds helpers shared by daykan's tests
package testutil

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/thenoetrevino/daykan/internal/clock"
	"github.com/thenoetrevino/daykan/internal/database"
	"github.com/thenoetrevino/daykan/internal/models"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

// TestAppKey carries an *app.App into CLI commands under test
const TestAppKey ContextKey = "testApp"

// SetupTestDB creates an in-memory database with migrations applied
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// Date parses YYYY-MM-DD or fails the test
func Date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := clock.ParseDate(s)
	if err != nil {
		t.Fatalf("invalid test date %q: %v", s, err)
	}
	return d
}

// CreateTestTask inserts a task directly, bypassing the services, so tests
// can seed tasks on past days
func CreateTestTask(t *testing.T, db *sql.DB, title string, column int, date time.Time) *models.Task {
	t.Helper()
	task, err := database.NewRepository(db).CreateTask(context.Background(), title, "", column, date, date)
	if err != nil {
		t.Fatalf("Failed to create test task: %v", err)
	}
	return task
}

// SetLastActiveDate overwrites the rollover watermark
func SetLastActiveDate(t *testing.T, db *sql.DB, value string) {
	t.Helper()
	if err := database.NewRepository(db).SetSetting(context.Background(), database.SettingLastActiveDate, value); err != nil {
		t.Fatalf("Failed to set last_active_date: %v", err)
	}
}
