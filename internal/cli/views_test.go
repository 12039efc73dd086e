package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/daykan/internal/models"
	archiveservice "github.com/thenoetrevino/daykan/internal/services/archive"
)

var today = time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)

func TestNewBoardView_OrdersColumnsAndKeepsStrays(t *testing.T) {
	board := &models.Board{
		Columns: []string{"A", "B", "C", "D", "E"},
		Tasks: map[int][]*models.Task{
			0: {{ID: 1, Title: "one", TaskDate: today}},
			1: {},
			2: {},
			3: {},
			4: {},
			7: {{ID: 2, Title: "stray", ColumnIndex: 7, TaskDate: today}},
		},
	}

	view := NewBoardView(board, today)
	assert.Equal(t, "2025-03-14", view.Date)
	require.Len(t, view.Columns, 6)
	for i := 0; i < 5; i++ {
		assert.Equal(t, i, view.Columns[i].Index)
		assert.Equal(t, board.Columns[i], view.Columns[i].Name)
	}
	assert.Equal(t, "Column 8", view.Columns[5].Name)
	assert.Equal(t, "stray", view.Columns[5].Tasks[0].Title)
	assert.NotNil(t, view.Columns[1].Tasks, "empty columns encode as []")
}

func TestNewTaskView(t *testing.T) {
	archivedAt := today.Add(26 * time.Hour)
	task := &models.Task{
		ID: 5, Title: "t", ColumnIndex: 2, TaskDate: today,
		Archived: true, ArchivedAt: &archivedAt,
	}

	v := NewTaskView(task, []string{"A", "B", "C"})
	assert.Equal(t, 5, v.GetID())
	assert.Equal(t, "C", v.ColumnName)
	assert.Equal(t, "2025-03-14", v.Date)
	assert.True(t, v.Archived)
	assert.Equal(t, &archivedAt, v.ArchivedAt)

	assert.Empty(t, NewTaskView(task, nil).ColumnName)
}

func TestNewArchiveView(t *testing.T) {
	listing := &archiveservice.Listing{
		Title: "3/2025",
		From:  time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		To:    time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		Tasks: []*models.Task{{ID: 1, Title: "a", TaskDate: today, Archived: true}},
	}

	v := NewArchiveView(listing)
	assert.Equal(t, "2025-03-01", v.From)
	assert.Equal(t, "2025-04-01", v.To)
	assert.Equal(t, 1, v.Count)
	assert.Contains(t, RenderArchive(v), "2025-03-14")
}

func TestRenderBoard_ContainsTitles(t *testing.T) {
	board := &models.Board{
		Columns: []string{"Todo", "Done"},
		Tasks: map[int][]*models.Task{
			0: {{ID: 1, Title: "write tests", TaskDate: today}},
			1: {},
		},
	}

	out := RenderBoard(NewBoardView(board, today))
	assert.Contains(t, out, "write tests")
	assert.Contains(t, out, "Todo")
	assert.Contains(t, out, "(empty)")
}
