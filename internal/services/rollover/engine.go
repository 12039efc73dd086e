// Package rollover archives each day's tasks once the calendar moves past it.
//
// There is no timer: every entry point calls CatchUp (through Run) before
// doing its own work, so the first operation of a new day pays for the
// rollover of every day that was missed.
package rollover

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/thenoetrevino/daykan/internal/clock"
	"github.com/thenoetrevino/daykan/internal/database"
	"github.com/thenoetrevino/daykan/internal/metrics"
)

// Store is what the engine needs from persistence
type Store interface {
	database.SettingsRepository
	ArchiveDay(ctx context.Context, day, archivedAt time.Time) (int, error)
}

// Result describes what a CatchUp call did
type Result struct {
	Outcome       metrics.ResultLabel
	DaysProcessed int
	TasksArchived int
	Watermark     time.Time
}

// Engine owns the last_active_date watermark and the lock that serializes
// catch-up with every mutation of the board.
type Engine struct {
	mu       sync.Mutex
	store    Store
	clock    clock.Clock
	recorder metrics.Recorder
	logger   *slog.Logger
}

// Option configures an Engine
type Option func(*Engine)

// WithRecorder reports catch-up activity to rec
func WithRecorder(rec metrics.Recorder) Option {
	return func(e *Engine) {
		e.recorder = rec
	}
}

// WithLogger sets the logger for the engine
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// NewEngine creates an engine over store using clk as the source of "today"
func NewEngine(store Store, clk clock.Clock, opts ...Option) *Engine {
	e := &Engine{
		store:    store,
		clock:    clk,
		recorder: metrics.NoopRecorder{},
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Today returns the engine's current calendar date
func (e *Engine) Today() time.Time {
	return clock.Today(e.clock)
}

// CatchUp archives every day in [watermark, now) and leaves the watermark at now.
// It is idempotent and safe to call concurrently.
func (e *Engine) CatchUp(ctx context.Context, now time.Time) (Result, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.catchUp(ctx, clock.DateOf(now))
}

// Run takes the board lock, catches up to today and then calls fn with today.
// Every read and write of the board goes through Run.
func (e *Engine) Run(ctx context.Context, fn func(ctx context.Context, today time.Time) error) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	today := e.Today()
	if _, err := e.catchUp(ctx, today); err != nil {
		return err
	}
	return fn(ctx, today)
}

func (e *Engine) catchUp(ctx context.Context, now time.Time) (Result, error) {
	result, err := e.advance(ctx, now)
	if err != nil {
		e.recorder.IncRolloverRun(metrics.ResultError)
		return result, err
	}
	e.recorder.IncRolloverRun(result.Outcome)
	if !result.Watermark.IsZero() {
		e.recorder.SetWatermark(result.Watermark)
	}
	return result, nil
}

func (e *Engine) advance(ctx context.Context, now time.Time) (Result, error) {
	raw, ok, err := e.store.GetSetting(ctx, database.SettingLastActiveDate)
	if err != nil {
		return Result{}, fmt.Errorf("failed to read watermark: %w", err)
	}

	if !ok {
		if err := e.reset(ctx, now); err != nil {
			return Result{}, err
		}
		e.logger.Info("initialized rollover watermark", "date", clock.FormatDate(now))
		return Result{Outcome: metrics.ResultInit, Watermark: now}, nil
	}

	watermark, err := clock.ParseDate(raw)
	if err != nil {
		if err := e.reset(ctx, now); err != nil {
			return Result{}, err
		}
		e.logger.Warn("corrupt rollover watermark reset", "value", raw, "date", clock.FormatDate(now))
		return Result{Outcome: metrics.ResultRepaired, Watermark: now}, nil
	}

	// A clock that moved backward is left alone: nothing is archived into
	// the future and nothing is ever unarchived.
	if !watermark.Before(now) {
		return Result{Outcome: metrics.ResultNoop, Watermark: watermark}, nil
	}

	start := e.clock.Now()
	result := Result{Outcome: metrics.ResultArchived}
	for day := watermark; day.Before(now); day = clock.AddDays(day, 1) {
		// Each day commits its archive batch together with watermark = day+1.
		n, err := e.store.ArchiveDay(ctx, day, e.clock.Now())
		if err != nil {
			return result, err
		}
		result.DaysProcessed++
		result.TasksArchived += n
		result.Watermark = clock.AddDays(day, 1)
		e.recorder.AddDaysProcessed(1)
		e.recorder.AddTasksArchived(n)
		if n > 0 {
			e.logger.Debug("archived day", "date", clock.FormatDate(day), "tasks", n)
		}
	}
	e.recorder.ObserveRolloverDuration(e.clock.Since(start))

	e.logger.Info("rollover complete",
		"from", clock.FormatDate(watermark),
		"to", clock.FormatDate(now),
		"days", result.DaysProcessed,
		"archived", result.TasksArchived)

	return result, nil
}

func (e *Engine) reset(ctx context.Context, now time.Time) error {
	if err := e.store.SetSetting(ctx, database.SettingLastActiveDate, clock.FormatDate(now)); err != nil {
		return fmt.Errorf("failed to reset watermark: %w", err)
	}
	return nil
}
