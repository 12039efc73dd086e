package cli

import (
	"sort"
	"time"

	"github.com/thenoetrevino/daykan/internal/clock"
	"github.com/thenoetrevino/daykan/internal/models"
	archiveservice "github.com/thenoetrevino/daykan/internal/services/archive"
)

// TaskView is the JSON shape of a task
type TaskView struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Column      int        `json:"column"`
	ColumnName  string     `json:"column_name,omitempty"`
	Date        string     `json:"date"`
	CreatedAt   time.Time  `json:"created_at"`
	Archived    bool       `json:"archived"`
	ArchivedAt  *time.Time `json:"archived_at,omitempty"`
}

// GetID lets quiet mode print the task ID
func (v TaskView) GetID() int {
	return v.ID
}

// NewTaskView converts a task, resolving its column name when columns is set
func NewTaskView(task *models.Task, columns []string) TaskView {
	return TaskView{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Column:      task.ColumnIndex,
		ColumnName:  ColumnName(columns, task.ColumnIndex),
		Date:        clock.FormatDate(task.TaskDate),
		CreatedAt:   task.CreatedAt,
		Archived:    task.Archived,
		ArchivedAt:  task.ArchivedAt,
	}
}

// ColumnName returns the configured name for index, or a placeholder
func ColumnName(columns []string, index int) string {
	if columns == nil {
		return ""
	}
	if index >= 0 && index < len(columns) {
		return columns[index]
	}
	return models.PlaceholderColumnName(index)
}

// ColumnView is one lane of today's board
type ColumnView struct {
	Index int        `json:"index"`
	Name  string     `json:"name"`
	Tasks []TaskView `json:"tasks"`
}

// BoardView is the JSON shape of `task list`
type BoardView struct {
	Date    string       `json:"date"`
	Columns []ColumnView `json:"columns"`
}

// NewBoardView lays out the board in column order. Tasks moved past the
// configured lanes get a lane of their own after the configured ones.
func NewBoardView(board *models.Board, today time.Time) BoardView {
	indexes := make([]int, 0, len(board.Tasks))
	for i := range board.Tasks {
		indexes = append(indexes, i)
	}
	for i := range board.Columns {
		if _, ok := board.Tasks[i]; !ok {
			indexes = append(indexes, i)
		}
	}
	sort.Ints(indexes)

	view := BoardView{Date: clock.FormatDate(today), Columns: make([]ColumnView, 0, len(indexes))}
	for _, i := range indexes {
		col := ColumnView{Index: i, Name: ColumnName(board.Columns, i), Tasks: []TaskView{}}
		for _, task := range board.Tasks[i] {
			col.Tasks = append(col.Tasks, NewTaskView(task, board.Columns))
		}
		view.Columns = append(view.Columns, col)
	}
	return view
}

// ArchiveView is the JSON shape of an archive listing
type ArchiveView struct {
	Title string     `json:"title"`
	From  string     `json:"from"`
	To    string     `json:"to"` // exclusive
	Count int        `json:"count"`
	Tasks []TaskView `json:"tasks"`
}

// NewArchiveView converts an archive listing
func NewArchiveView(listing *archiveservice.Listing) ArchiveView {
	view := ArchiveView{
		Title: listing.Title,
		From:  clock.FormatDate(listing.From),
		To:    clock.FormatDate(listing.To),
		Count: len(listing.Tasks),
		Tasks: make([]TaskView, 0, len(listing.Tasks)),
	}
	for _, task := range listing.Tasks {
		view.Tasks = append(view.Tasks, NewTaskView(task, nil))
	}
	return view
}
