package task

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/daykan/internal/database"
	"github.com/thenoetrevino/daykan/internal/models"
	"github.com/thenoetrevino/daykan/internal/services/rollover"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

type fixture struct {
	svc   Service
	repo  *database.Repository
	clock *clockwork.FakeClock
}

func setup(t *testing.T) *fixture {
	t.Helper()
	db, err := database.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := database.NewRepository(db)
	fake := clockwork.NewFakeClockAt(time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC))
	engine := rollover.NewEngine(repo, fake)
	return &fixture{
		svc:   NewService(repo, engine, fake),
		repo:  repo,
		clock: fake,
	}
}

func (f *fixture) nextDay() {
	f.clock.Advance(24 * time.Hour)
}

func (f *fixture) create(t *testing.T, title string, col int) *models.Task {
	t.Helper()
	task, err := f.svc.CreateTask(context.Background(), CreateTaskRequest{Title: title, ColumnIndex: col})
	require.NoError(t, err)
	return task
}

func ptr(s string) *string { return &s }

// ============================================================================
// CREATE
// ============================================================================

func TestCreateTask(t *testing.T) {
	f := setup(t)

	task, err := f.svc.CreateTask(context.Background(), CreateTaskRequest{
		Title:       "  Plan sprint ",
		Description: "with the team",
		ColumnIndex: 1,
	})
	require.NoError(t, err)

	assert.Equal(t, "Plan sprint", task.Title)
	assert.Equal(t, "with the team", task.Description)
	assert.Equal(t, 1, task.ColumnIndex)
	assert.Equal(t, "2024-01-10", task.TaskDate.Format("2006-01-02"))
	assert.True(t, task.CreatedAt.Equal(f.clock.Now()))
	assert.False(t, task.Archived)
	assert.Nil(t, task.ArchivedAt)
}

func TestCreateTask_Validation(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	for _, title := range []string{"", "   "} {
		_, err := f.svc.CreateTask(ctx, CreateTaskRequest{Title: title})
		assert.ErrorIs(t, err, ErrEmptyTitle)
		assert.ErrorIs(t, err, models.ErrValidation)
	}

	_, err := f.svc.CreateTask(ctx, CreateTaskRequest{Title: strings.Repeat("x", 256)})
	assert.ErrorIs(t, err, ErrTitleTooLong)
}

func TestCreateTask_DayAlreadyRolledOverElsewhere(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	f.create(t, "first", 0)

	// A daemon whose clock is already past midnight has moved the watermark
	require.NoError(t, f.repo.SetSetting(ctx, database.SettingLastActiveDate, "2024-01-11"))

	_, err := f.svc.CreateTask(ctx, CreateTaskRequest{Title: "too late"})
	assert.ErrorIs(t, err, ErrTaskNotEditable)

	board, err := f.svc.ListToday(ctx)
	require.NoError(t, err)
	require.Len(t, board.Tasks[0], 1)
	assert.Equal(t, "first", board.Tasks[0][0].Title)
}

func TestCreateTask_ClampsColumn(t *testing.T) {
	f := setup(t)

	assert.Equal(t, 0, f.create(t, "low", -3).ColumnIndex)
	assert.Equal(t, 4, f.create(t, "high", 42).ColumnIndex)
	assert.Equal(t, 2, f.create(t, "mid", 2).ColumnIndex)
}

// ============================================================================
// EDITABILITY
// ============================================================================

func TestEditableLifecycle(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	task := f.create(t, "draft", 0)

	updated, err := f.svc.UpdateTask(ctx, UpdateTaskRequest{TaskID: task.ID, Title: ptr("final")})
	require.NoError(t, err)
	assert.Equal(t, "final", updated.Title)

	f.nextDay()

	_, err = f.svc.UpdateTask(ctx, UpdateTaskRequest{TaskID: task.ID, Title: ptr("too late")})
	assert.ErrorIs(t, err, ErrTaskNotEditable)
	assert.ErrorIs(t, err, models.ErrNotEditable)

	got, err := f.svc.GetTask(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "final", got.Title)
	assert.True(t, got.Archived, "rollover archived yesterday's task")
}

func TestMoveTask(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	task := f.create(t, "move me", 0)

	require.NoError(t, f.svc.MoveTask(ctx, task.ID, 3))
	got, err := f.svc.GetTask(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.ColumnIndex)
}

func TestMoveTask_OutOfRangeIndexAccepted(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	task := f.create(t, "wanderer", 0)

	require.NoError(t, f.svc.MoveTask(ctx, task.ID, 9))
	got, err := f.svc.GetTask(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, 9, got.ColumnIndex)

	board, err := f.svc.ListToday(ctx)
	require.NoError(t, err)
	require.Len(t, board.Tasks[9], 1, "out-of-range tasks stay visible under their index")
}

func TestMoveTask_YesterdayNotEditable(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	task := f.create(t, "yesterday", 2)

	f.nextDay()

	err := f.svc.MoveTask(ctx, task.ID, 4)
	assert.ErrorIs(t, err, ErrTaskNotEditable)

	got, err := f.svc.GetTask(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.ColumnIndex, "column unchanged")
	assert.True(t, got.Archived)
}

func TestArchivedTodayIsNotEditable(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	task := f.create(t, "odd", 0)

	// Force the abnormal state of an archived task dated today
	_, err := f.repo.ArchiveDay(ctx, task.TaskDate, f.clock.Now())
	require.NoError(t, err)
	require.NoError(t, f.repo.SetSetting(ctx, database.SettingLastActiveDate, "2024-01-10"))

	assert.ErrorIs(t, f.svc.MoveTask(ctx, task.ID, 1), ErrTaskNotEditable)
	assert.ErrorIs(t, f.svc.DeleteTask(ctx, task.ID), ErrTaskNotEditable)
	_, err = f.svc.UpdateTask(ctx, UpdateTaskRequest{TaskID: task.ID, Description: ptr("x")})
	assert.ErrorIs(t, err, ErrTaskNotEditable)
}

// ============================================================================
// UPDATE
// ============================================================================

func TestUpdateTask_PartialFields(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	task, err := f.svc.CreateTask(ctx, CreateTaskRequest{Title: "title", Description: "desc"})
	require.NoError(t, err)

	updated, err := f.svc.UpdateTask(ctx, UpdateTaskRequest{TaskID: task.ID, Description: ptr("new desc")})
	require.NoError(t, err)
	assert.Equal(t, "title", updated.Title)
	assert.Equal(t, "new desc", updated.Description)

	updated, err = f.svc.UpdateTask(ctx, UpdateTaskRequest{TaskID: task.ID, Title: ptr("new title")})
	require.NoError(t, err)
	assert.Equal(t, "new title", updated.Title)
	assert.Equal(t, "new desc", updated.Description)

	updated, err = f.svc.UpdateTask(ctx, UpdateTaskRequest{TaskID: task.ID, Description: ptr("")})
	require.NoError(t, err)
	assert.Equal(t, "", updated.Description, "explicit empty description clears it")

	got, err := f.svc.GetTask(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "new title", got.Title)
	assert.Equal(t, "", got.Description)
}

func TestUpdateTask_EmptyTitleRejected(t *testing.T) {
	f := setup(t)
	task := f.create(t, "keep", 0)

	_, err := f.svc.UpdateTask(context.Background(), UpdateTaskRequest{TaskID: task.ID, Title: ptr(" ")})
	assert.ErrorIs(t, err, ErrEmptyTitle)
}

// ============================================================================
// DELETE / NOT FOUND
// ============================================================================

func TestDeleteTask(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	task := f.create(t, "doomed", 0)

	require.NoError(t, f.svc.DeleteTask(ctx, task.ID))

	_, err := f.svc.GetTask(ctx, task.ID)
	assert.ErrorIs(t, err, ErrTaskNotFound)

	assert.ErrorIs(t, f.svc.DeleteTask(ctx, task.ID), ErrTaskNotFound, "already deleted")
}

func TestNonexistentTaskIsNotFound(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	for _, id := range []int{0, -1, 12345} {
		assert.ErrorIs(t, f.svc.MoveTask(ctx, id, 1), models.ErrNotFound)
		assert.ErrorIs(t, f.svc.DeleteTask(ctx, id), models.ErrNotFound)
		_, err := f.svc.UpdateTask(ctx, UpdateTaskRequest{TaskID: id, Title: ptr("x")})
		assert.ErrorIs(t, err, models.ErrNotFound)
	}
}

// ============================================================================
// LIST TODAY
// ============================================================================

func TestListToday(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	old := f.create(t, "old", 0)
	f.nextDay()
	a := f.create(t, "a", 0)
	b := f.create(t, "b", 2)
	c := f.create(t, "c", 0)

	board, err := f.svc.ListToday(ctx)
	require.NoError(t, err)

	assert.Equal(t, models.DefaultColumnNames, board.Columns)
	require.Len(t, board.Tasks[0], 2)
	assert.Equal(t, a.ID, board.Tasks[0][0].ID)
	assert.Equal(t, c.ID, board.Tasks[0][1].ID)
	require.Len(t, board.Tasks[2], 1)
	assert.Equal(t, b.ID, board.Tasks[2][0].ID)
	assert.Empty(t, board.Tasks[4])

	for _, tasks := range board.Tasks {
		for _, task := range tasks {
			assert.NotEqual(t, old.ID, task.ID, "yesterday's task is not on today's board")
		}
	}
}
