package database

import (
	"context"
	"time"

	"github.com/thenoetrevino/daykan/internal/models"
)

// SettingsRepository is the key/value store behind column names and the watermark
type SettingsRepository interface {
	GetSetting(ctx context.Context, key string) (string, bool, error)
	SetSetting(ctx context.Context, key, value string) error
}

// TaskRepository is the record store for tasks
type TaskRepository interface {
	CreateTask(ctx context.Context, title, description string, columnIndex int, taskDate, createdAt time.Time) (*models.Task, error)
	CreateCurrentTask(ctx context.Context, title, description string, columnIndex int, taskDate, createdAt time.Time) (*models.Task, error)
	GetTask(ctx context.Context, id int) (*models.Task, error)
	GetTasksByDate(ctx context.Context, date time.Time) ([]*models.Task, error)
	GetArchivedTasksBetween(ctx context.Context, from, to time.Time) ([]*models.Task, error)
	GetArchivedDates(ctx context.Context) ([]time.Time, error)
	UpdateTaskColumn(ctx context.Context, id, columnIndex int) error
	UpdateTask(ctx context.Context, id int, title, description string) error
	DeleteTask(ctx context.Context, id int) error
	ArchiveDay(ctx context.Context, day, archivedAt time.Time) (int, error)
}

// DataStore defines the unified interface for all data operations.
// Consumers can depend on the smaller interfaces for clearer dependencies.
type DataStore interface {
	SettingsRepository
	TaskRepository
}

// Compile-time verification that *Repository implements DataStore
var _ DataStore = (*Repository)(nil)
