package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/thenoetrevino/daykan/internal/clock"
	"github.com/thenoetrevino/daykan/internal/models"
)

const taskColumns = `id, title, description, column_index, task_date, created_at, archived, archived_at`

// TaskRepo handles all task-related database operations.
type TaskRepo struct {
	db *sql.DB
}

// rowScanner is satisfied by *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (*models.Task, error) {
	var (
		task       models.Task
		taskDate   string
		createdAt  string
		archivedAt sql.NullString
	)
	if err := row.Scan(
		&task.ID, &task.Title, &task.Description, &task.ColumnIndex,
		&taskDate, &createdAt, &task.Archived, &archivedAt,
	); err != nil {
		return nil, err
	}

	var err error
	if task.TaskDate, err = clock.ParseDate(taskDate); err != nil {
		return nil, fmt.Errorf("task %d: %w", task.ID, err)
	}
	if task.CreatedAt, err = parseTimestamp(createdAt); err != nil {
		return nil, fmt.Errorf("task %d: invalid created_at: %w", task.ID, err)
	}
	if task.ArchivedAt, err = nullStringToTimePtr(archivedAt); err != nil {
		return nil, fmt.Errorf("task %d: invalid archived_at: %w", task.ID, err)
	}
	return &task, nil
}

func (r *TaskRepo) queryTasks(ctx context.Context, query string, args ...any) ([]*models.Task, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []*models.Task{}
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}

// CreateTask inserts an unarchived task dated taskDate
func (r *TaskRepo) CreateTask(ctx context.Context, title, description string, columnIndex int, taskDate, createdAt time.Time) (*models.Task, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO tasks (title, description, column_index, task_date, created_at, archived)
		 VALUES (?, ?, ?, ?, ?, 0)`,
		title, description, columnIndex, clock.FormatDate(taskDate), formatTimestamp(createdAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert task: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	return r.GetTask(ctx, int(id))
}

// CreateCurrentTask inserts a task like CreateTask, but only while taskDate
// is not below the last_active_date watermark. The check runs inside the
// INSERT, so a rollover committed by another process between catch-up and
// insert is reported as models.ErrNotEditable instead of leaving a live task
// on an already archived day.
func (r *TaskRepo) CreateCurrentTask(ctx context.Context, title, description string, columnIndex int, taskDate, createdAt time.Time) (*models.Task, error) {
	date := clock.FormatDate(taskDate)
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO tasks (title, description, column_index, task_date, created_at, archived)
		 SELECT ?, ?, ?, ?, ?, 0
		 WHERE NOT EXISTS (SELECT 1 FROM settings WHERE key = ? AND value > ?)`,
		title, description, columnIndex, date, formatTimestamp(createdAt),
		SettingLastActiveDate, date,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert task: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, fmt.Errorf("day %s already rolled over: %w", date, models.ErrNotEditable)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	return r.GetTask(ctx, int(id))
}

// GetTask retrieves a task by ID. A missing row is reported as models.ErrNotFound.
func (r *TaskRepo) GetTask(ctx context.Context, id int) (*models.Task, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id)
	task, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("task %d: %w", id, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get task %d: %w", id, err)
	}
	return task, nil
}

// GetTasksByDate returns every task dated date, archived or not, in ID order
func (r *TaskRepo) GetTasksByDate(ctx context.Context, date time.Time) ([]*models.Task, error) {
	tasks, err := r.queryTasks(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE task_date = ? ORDER BY id`,
		clock.FormatDate(date),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks for %s: %w", clock.FormatDate(date), err)
	}
	return tasks, nil
}

// GetArchivedTasksBetween returns archived tasks with from <= task_date < to,
// ordered by date then ID. YYYY-MM-DD strings compare in calendar order only
// while the year has four digits, so the bound is compared as the inclusive
// last day: "10000-01-01" would sort before "9999-12-31".
func (r *TaskRepo) GetArchivedTasksBetween(ctx context.Context, from, to time.Time) ([]*models.Task, error) {
	tasks, err := r.queryTasks(ctx,
		`SELECT `+taskColumns+` FROM tasks
		 WHERE archived = 1 AND task_date >= ? AND task_date <= ?
		 ORDER BY task_date, id`,
		clock.FormatDate(from), clock.FormatDate(clock.AddDays(to, -1)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list archived tasks: %w", err)
	}
	return tasks, nil
}

// GetArchivedDates returns the distinct dates that have archived tasks, newest first
func (r *TaskRepo) GetArchivedDates(ctx context.Context) ([]time.Time, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT DISTINCT task_date FROM tasks WHERE archived = 1 ORDER BY task_date DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list archived dates: %w", err)
	}
	defer rows.Close()

	dates := []time.Time{}
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		d, err := clock.ParseDate(s)
		if err != nil {
			return nil, err
		}
		dates = append(dates, d)
	}
	return dates, rows.Err()
}

// UpdateTaskColumn moves a live task to another column index.
// Archived tasks are left untouched and reported as models.ErrNotEditable.
func (r *TaskRepo) UpdateTaskColumn(ctx context.Context, id, columnIndex int) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE tasks SET column_index = ? WHERE id = ? AND archived = 0`, columnIndex, id)
	if err != nil {
		return fmt.Errorf("failed to move task %d: %w", id, err)
	}
	return r.requireLiveRow(ctx, result, id)
}

// UpdateTask replaces a live task's title and description
func (r *TaskRepo) UpdateTask(ctx context.Context, id int, title, description string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE tasks SET title = ?, description = ? WHERE id = ? AND archived = 0`, title, description, id)
	if err != nil {
		return fmt.Errorf("failed to update task %d: %w", id, err)
	}
	return r.requireLiveRow(ctx, result, id)
}

// DeleteTask removes a live task permanently
func (r *TaskRepo) DeleteTask(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ? AND archived = 0`, id)
	if err != nil {
		return fmt.Errorf("failed to delete task %d: %w", id, err)
	}
	return r.requireLiveRow(ctx, result, id)
}

// ArchiveDay archives every live task dated day and moves the
// last_active_date watermark to the following day in the same transaction,
// so a crash never leaves the two out of step. The watermark only moves
// forward: a process that catches up late cannot pull it back below what
// another process already committed. Returns the number archived.
func (r *TaskRepo) ArchiveDay(ctx context.Context, day, archivedAt time.Time) (int, error) {
	var archived int
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx,
			`UPDATE tasks SET archived = 1, archived_at = ?
			 WHERE task_date = ? AND archived = 0`,
			formatTimestamp(archivedAt), clock.FormatDate(day),
		)
		if err != nil {
			return err
		}
		n, err := result.RowsAffected()
		if err != nil {
			return err
		}
		archived = int(n)

		return advanceSetting(ctx, tx, SettingLastActiveDate, clock.FormatDate(clock.AddDays(day, 1)))
	})
	if err != nil {
		return 0, fmt.Errorf("failed to archive %s: %w", clock.FormatDate(day), err)
	}
	return archived, nil
}

// requireLiveRow tells a missing task apart from an archived one when a
// guarded write touched no rows.
func (r *TaskRepo) requireLiveRow(ctx context.Context, result sql.Result, id int) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	var archived bool
	err = r.db.QueryRowContext(ctx, `SELECT archived FROM tasks WHERE id = ?`, id).Scan(&archived)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return fmt.Errorf("task %d: %w", id, models.ErrNotFound)
	case err != nil:
		return fmt.Errorf("failed to check task %d: %w", id, err)
	case archived:
		return fmt.Errorf("task %d is archived: %w", id, models.ErrNotEditable)
	}
	return fmt.Errorf("task %d: %w", id, models.ErrNotFound)
}
