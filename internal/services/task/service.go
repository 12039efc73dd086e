// Package task implements the lifecycle of tasks on today's board.
package task

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/thenoetrevino/daykan/internal/clock"
	"github.com/thenoetrevino/daykan/internal/database"
	"github.com/thenoetrevino/daykan/internal/models"
	"github.com/thenoetrevino/daykan/internal/services/column"
	"github.com/thenoetrevino/daykan/internal/services/rollover"
)

const maxTitleLength = 255

// Service defines all task-related business operations
type Service interface {
	// Read operations
	GetTask(ctx context.Context, taskID int) (*models.Task, error)
	ListToday(ctx context.Context) (*models.Board, error)

	// Write operations, allowed only on tasks dated today and not archived
	CreateTask(ctx context.Context, req CreateTaskRequest) (*models.Task, error)
	MoveTask(ctx context.Context, taskID, columnIndex int) error
	UpdateTask(ctx context.Context, req UpdateTaskRequest) (*models.Task, error)
	DeleteTask(ctx context.Context, taskID int) error
}

// CreateTaskRequest encapsulates all data needed to create a task
type CreateTaskRequest struct {
	Title       string
	Description string
	ColumnIndex int // clamped to the board's columns
}

// UpdateTaskRequest encapsulates all data needed to update a task
// Fields with pointers are optional - nil means don't update
type UpdateTaskRequest struct {
	TaskID      int
	Title       *string
	Description *string
}

// service implements Service interface
type service struct {
	repo   database.DataStore
	engine *rollover.Engine
	clock  clock.Clock
}

// NewService creates a new task service
func NewService(repo database.DataStore, engine *rollover.Engine, clk clock.Clock) Service {
	return &service{
		repo:   repo,
		engine: engine,
		clock:  clk,
	}
}

// CreateTask adds a task to today's board
func (s *service) CreateTask(ctx context.Context, req CreateTaskRequest) (*models.Task, error) {
	title, err := validateTitle(req.Title)
	if err != nil {
		return nil, err
	}

	var task *models.Task
	err = s.engine.Run(ctx, func(ctx context.Context, today time.Time) error {
		var err error
		task, err = s.repo.CreateCurrentTask(ctx, title, req.Description, clampColumn(req.ColumnIndex), today, s.clock.Now())
		if errors.Is(err, models.ErrNotEditable) {
			return fmt.Errorf("%w: %w", ErrTaskNotEditable, err)
		}
		if err != nil {
			return fmt.Errorf("failed to create task: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Debug("task created", "task_id", task.ID, "column", task.ColumnIndex)
	return task, nil
}

// MoveTask sets the task's column. The index is not checked against the
// configured columns.
func (s *service) MoveTask(ctx context.Context, taskID, columnIndex int) error {
	return s.engine.Run(ctx, func(ctx context.Context, today time.Time) error {
		if _, err := s.editableTask(ctx, taskID, today); err != nil {
			return err
		}
		if err := s.repo.UpdateTaskColumn(ctx, taskID, columnIndex); err != nil {
			return translate(taskID, err, "failed to move task")
		}
		return nil
	})
}

// UpdateTask changes the title and/or description of an editable task
func (s *service) UpdateTask(ctx context.Context, req UpdateTaskRequest) (*models.Task, error) {
	var title string
	if req.Title != nil {
		var err error
		if title, err = validateTitle(*req.Title); err != nil {
			return nil, err
		}
	}

	var updated *models.Task
	err := s.engine.Run(ctx, func(ctx context.Context, today time.Time) error {
		existing, err := s.editableTask(ctx, req.TaskID, today)
		if err != nil {
			return err
		}

		if req.Title == nil {
			title = existing.Title
		}
		description := existing.Description
		if req.Description != nil {
			description = *req.Description
		}

		if err := s.repo.UpdateTask(ctx, req.TaskID, title, description); err != nil {
			return translate(req.TaskID, err, "failed to update task")
		}

		existing.Title = title
		existing.Description = description
		updated = existing
		return nil
	})
	return updated, err
}

// DeleteTask permanently removes an editable task
func (s *service) DeleteTask(ctx context.Context, taskID int) error {
	return s.engine.Run(ctx, func(ctx context.Context, today time.Time) error {
		if _, err := s.editableTask(ctx, taskID, today); err != nil {
			return err
		}
		if err := s.repo.DeleteTask(ctx, taskID); err != nil {
			return translate(taskID, err, "failed to delete task")
		}
		slog.Debug("task deleted", "task_id", taskID)
		return nil
	})
}

// GetTask returns a task in any state
func (s *service) GetTask(ctx context.Context, taskID int) (*models.Task, error) {
	var task *models.Task
	err := s.engine.Run(ctx, func(ctx context.Context, _ time.Time) error {
		var err error
		task, err = s.repo.GetTask(ctx, taskID)
		if err != nil {
			return translate(taskID, err, "failed to get task")
		}
		return nil
	})
	return task, err
}

// ListToday returns today's tasks grouped by column index.
// Every configured column has an entry, possibly empty.
func (s *service) ListToday(ctx context.Context) (*models.Board, error) {
	var board *models.Board
	err := s.engine.Run(ctx, func(ctx context.Context, today time.Time) error {
		names, err := column.Load(ctx, s.repo)
		if err != nil {
			return err
		}

		tasks, err := s.repo.GetTasksByDate(ctx, today)
		if err != nil {
			return err
		}

		board = &models.Board{
			Columns: names,
			Tasks:   make(map[int][]*models.Task, len(names)),
		}
		for i := range names {
			board.Tasks[i] = []*models.Task{}
		}
		for _, task := range tasks {
			board.Tasks[task.ColumnIndex] = append(board.Tasks[task.ColumnIndex], task)
		}
		return nil
	})
	return board, err
}

// editableTask loads a task and checks it may still change today
func (s *service) editableTask(ctx context.Context, taskID int, today time.Time) (*models.Task, error) {
	task, err := s.repo.GetTask(ctx, taskID)
	if err != nil {
		return nil, translate(taskID, err, "failed to get task")
	}
	if !task.EditableOn(today) {
		return nil, fmt.Errorf("%w (id %d, dated %s)", ErrTaskNotEditable, taskID, clock.FormatDate(task.TaskDate))
	}
	return task, nil
}

// translate maps storage errors onto the service's error values
func translate(taskID int, err error, msg string) error {
	if errors.Is(err, models.ErrNotFound) {
		return fmt.Errorf("%w (id %d)", ErrTaskNotFound, taskID)
	}
	// Another process archived the row after the editable check
	if errors.Is(err, models.ErrNotEditable) {
		return fmt.Errorf("%w (id %d)", ErrTaskNotEditable, taskID)
	}
	return fmt.Errorf("%s: %w", msg, err)
}

func validateTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", ErrEmptyTitle
	}
	if len(title) > maxTitleLength {
		return "", ErrTitleTooLong
	}
	return title, nil
}

func clampColumn(index int) int {
	if index < 0 {
		return 0
	}
	if index > models.MaxColumns-1 {
		return models.MaxColumns - 1
	}
	return index
}
