package app

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/daykan/internal/database"
	taskservice "github.com/thenoetrevino/daykan/internal/services/task"
)

func TestNew_WiresSharedEngine(t *testing.T) {
	ctx := context.Background()
	db, err := database.Open(ctx, ":memory:")
	require.NoError(t, err)

	fake := clockwork.NewFakeClockAt(time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC))
	a := New(db, WithClock(fake))
	defer func() { assert.NoError(t, a.Close()) }()

	require.NotNil(t, a.TaskService)
	require.NotNil(t, a.ColumnService)
	require.NotNil(t, a.ArchiveService)
	assert.Equal(t, fake, a.Clock())

	task, err := a.TaskService.CreateTask(ctx, taskservice.CreateTaskRequest{Title: "end to end"})
	require.NoError(t, err)

	fake.Advance(72 * time.Hour)

	listing, err := a.ArchiveService.Day(ctx, "2024-01-10")
	require.NoError(t, err)
	require.Len(t, listing.Tasks, 1)
	assert.Equal(t, task.ID, listing.Tasks[0].ID)
	assert.True(t, listing.Tasks[0].Archived)

	columns, err := a.ColumnService.GetColumns(ctx)
	require.NoError(t, err)
	assert.Len(t, columns, 5)
}
