package database

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/daykan/internal/models"
)

func TestMigrationsSeedDefaultColumns(t *testing.T) {
	repo := NewRepository(setupTestDB(t))

	value, ok, err := repo.GetSetting(context.Background(), SettingColumns)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, strings.Join(models.DefaultColumnNames, ","), value)

	_, ok, err = repo.GetSetting(context.Background(), SettingLastActiveDate)
	require.NoError(t, err)
	assert.False(t, ok, "watermark is initialized by the rollover engine, not migrations")
}

func TestSettingsUpsert(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(setupTestDB(t))

	require.NoError(t, repo.SetSetting(ctx, "k", "one"))
	require.NoError(t, repo.SetSetting(ctx, "k", "two"))

	value, ok, err := repo.GetSetting(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "two", value)
}

func TestTaskCRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(setupTestDB(t))
	created := time.Date(2024, 1, 10, 9, 30, 0, 0, time.UTC)

	task, err := repo.CreateTask(ctx, "Write report", "quarterly", 2, day("2024-01-10"), created)
	require.NoError(t, err)
	assert.Equal(t, "Write report", task.Title)
	assert.Equal(t, "quarterly", task.Description)
	assert.Equal(t, 2, task.ColumnIndex)
	assert.True(t, task.TaskDate.Equal(day("2024-01-10")))
	assert.True(t, task.CreatedAt.Equal(created))
	assert.False(t, task.Archived)
	assert.Nil(t, task.ArchivedAt)

	require.NoError(t, repo.UpdateTaskColumn(ctx, task.ID, 4))
	require.NoError(t, repo.UpdateTask(ctx, task.ID, "Write final report", ""))

	got, err := repo.GetTask(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, got.ColumnIndex)
	assert.Equal(t, "Write final report", got.Title)
	assert.Equal(t, "", got.Description)

	require.NoError(t, repo.DeleteTask(ctx, task.ID))
	_, err = repo.GetTask(ctx, task.ID)
	assert.True(t, errors.Is(err, models.ErrNotFound))
}

func TestMissingTaskIsNotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(setupTestDB(t))

	assert.ErrorIs(t, repo.DeleteTask(ctx, 99), models.ErrNotFound)
	assert.ErrorIs(t, repo.UpdateTaskColumn(ctx, 99, 1), models.ErrNotFound)
	assert.ErrorIs(t, repo.UpdateTask(ctx, 99, "x", ""), models.ErrNotFound)
}

func TestArchiveDayAdvancesWatermark(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(setupTestDB(t))
	now := time.Date(2024, 1, 11, 8, 0, 0, 0, time.UTC)

	a, err := repo.CreateTask(ctx, "a", "", 0, day("2024-01-10"), now)
	require.NoError(t, err)
	b, err := repo.CreateTask(ctx, "b", "", 0, day("2024-01-11"), now)
	require.NoError(t, err)

	n, err := repo.ArchiveDay(ctx, day("2024-01-10"), now)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, err := repo.GetTask(ctx, a.ID)
	require.NoError(t, err)
	assert.True(t, got.Archived)
	require.NotNil(t, got.ArchivedAt)
	assert.True(t, got.ArchivedAt.Equal(now))

	got, err = repo.GetTask(ctx, b.ID)
	require.NoError(t, err)
	assert.False(t, got.Archived)

	watermark, _, err := repo.GetSetting(ctx, SettingLastActiveDate)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-11", watermark)

	// Re-archiving the same day touches nothing
	n, err = repo.ArchiveDay(ctx, day("2024-01-10"), now.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	got, err = repo.GetTask(ctx, a.ID)
	require.NoError(t, err)
	assert.True(t, got.ArchivedAt.Equal(now), "archived_at is set once")
}

func TestArchivedQueries(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(setupTestDB(t))
	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	for _, d := range []string{"2024-01-05", "2024-01-05", "2024-02-10", "2024-02-29"} {
		_, err := repo.CreateTask(ctx, "t "+d, "", 0, day(d), now)
		require.NoError(t, err)
	}
	_, err := repo.ArchiveDay(ctx, day("2024-01-05"), now)
	require.NoError(t, err)
	_, err = repo.ArchiveDay(ctx, day("2024-02-10"), now)
	require.NoError(t, err)

	dates, err := repo.GetArchivedDates(ctx)
	require.NoError(t, err)
	require.Len(t, dates, 2)
	assert.True(t, dates[0].Equal(day("2024-02-10")))
	assert.True(t, dates[1].Equal(day("2024-01-05")))

	tasks, err := repo.GetArchivedTasksBetween(ctx, day("2024-01-01"), day("2024-03-01"))
	require.NoError(t, err)
	assert.Len(t, tasks, 3, "2024-02-29 is not archived")

	tasks, err = repo.GetArchivedTasksBetween(ctx, day("2024-01-06"), day("2024-02-10"))
	require.NoError(t, err)
	assert.Empty(t, tasks, "upper bound is exclusive")

	all, err := repo.GetTasksByDate(ctx, day("2024-01-05"))
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Less(t, all[0].ID, all[1].ID)
}

func TestPersistenceAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "board.db")

	db, err := InitDB(ctx, path)
	require.NoError(t, err)
	repo := NewRepository(db)
	task, err := repo.CreateTask(ctx, "persist me", "", 1, day("2024-01-10"), time.Now())
	require.NoError(t, err)
	require.NoError(t, repo.SetSetting(ctx, SettingLastActiveDate, "2024-01-10"))
	require.NoError(t, db.Close())

	db, err = InitDB(ctx, path)
	require.NoError(t, err)
	defer db.Close()
	repo = NewRepository(db)

	got, err := repo.GetTask(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "persist me", got.Title)

	watermark, ok, err := repo.GetSetting(ctx, SettingLastActiveDate)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "2024-01-10", watermark)
}

func TestCreateCurrentTaskRespectsWatermark(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(setupTestDB(t))
	now := time.Date(2024, 1, 11, 0, 0, 5, 0, time.UTC)

	task, err := repo.CreateCurrentTask(ctx, "no watermark yet", "", 0, day("2024-01-10"), now)
	require.NoError(t, err)
	assert.Equal(t, "no watermark yet", task.Title)

	require.NoError(t, repo.SetSetting(ctx, SettingLastActiveDate, "2024-01-11"))

	_, err = repo.CreateCurrentTask(ctx, "late", "", 0, day("2024-01-10"), now)
	assert.ErrorIs(t, err, models.ErrNotEditable)

	tasks, err := repo.GetTasksByDate(ctx, day("2024-01-10"))
	require.NoError(t, err)
	assert.Len(t, tasks, 1, "rejected insert leaves no row behind")

	task, err = repo.CreateCurrentTask(ctx, "today", "", 2, day("2024-01-11"), now)
	require.NoError(t, err)
	assert.Equal(t, 2, task.ColumnIndex)
	assert.True(t, task.TaskDate.Equal(day("2024-01-11")))
}

func TestWritesSkipArchivedTasks(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(setupTestDB(t))
	now := time.Date(2024, 1, 11, 8, 0, 0, 0, time.UTC)

	task, err := repo.CreateTask(ctx, "archived", "", 1, day("2024-01-10"), now)
	require.NoError(t, err)
	_, err = repo.ArchiveDay(ctx, day("2024-01-10"), now)
	require.NoError(t, err)

	assert.ErrorIs(t, repo.UpdateTaskColumn(ctx, task.ID, 3), models.ErrNotEditable)
	assert.ErrorIs(t, repo.UpdateTask(ctx, task.ID, "changed", "x"), models.ErrNotEditable)
	assert.ErrorIs(t, repo.DeleteTask(ctx, task.ID), models.ErrNotEditable)

	got, err := repo.GetTask(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.ColumnIndex)
	assert.Equal(t, "archived", got.Title)
	assert.Empty(t, got.Description)
}

func TestArchiveDayNeverMovesWatermarkBack(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(setupTestDB(t))
	now := time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)

	_, err := repo.ArchiveDay(ctx, day("2024-01-15"), now)
	require.NoError(t, err)

	stale, err := repo.CreateTask(ctx, "stale", "", 0, day("2024-01-10"), now)
	require.NoError(t, err)
	n, err := repo.ArchiveDay(ctx, day("2024-01-10"), now)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	watermark, _, err := repo.GetSetting(ctx, SettingLastActiveDate)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-16", watermark)

	got, err := repo.GetTask(ctx, stale.ID)
	require.NoError(t, err)
	assert.True(t, got.Archived)
}

func TestArchivedTasksInLastSupportedYear(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(setupTestDB(t))
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	_, err := repo.CreateTask(ctx, "end of time", "", 0, day("9999-12-31"), now)
	require.NoError(t, err)
	_, err = repo.ArchiveDay(ctx, day("9999-12-31"), now)
	require.NoError(t, err)

	end := time.Date(10000, 1, 1, 0, 0, 0, 0, time.UTC)
	tasks, err := repo.GetArchivedTasksBetween(ctx, day("9999-01-01"), end)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "end of time", tasks[0].Title)

	tasks, err = repo.GetArchivedTasksBetween(ctx, day("9999-12-01"), end)
	require.NoError(t, err)
	assert.Len(t, tasks, 1)
}
