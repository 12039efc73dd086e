// Package scheduler runs the rollover catch-up once a day.
//
// Catch-up is already demand driven; the daily job only makes sure the
// archive is current for processes that stay idle across midnight.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/thenoetrevino/daykan/internal/clock"
	"github.com/thenoetrevino/daykan/internal/services/rollover"
)

// Scheduler wraps gocron scheduler for the daily rollover job.
type Scheduler struct {
	scheduler gocron.Scheduler
	job       gocron.Job
	engine    *rollover.Engine
	clock     clock.Clock
}

// NewScheduler creates a scheduler that catches up every day at `at` (HH:MM[:SS]).
func NewScheduler(engine *rollover.Engine, clk clock.Clock, at string) (*Scheduler, error) {
	h, m, sec, err := ParseAtTime(at)
	if err != nil {
		return nil, err
	}

	gs, err := gocron.NewScheduler(gocron.WithClock(clk))
	if err != nil {
		return nil, fmt.Errorf("failed to create gocron scheduler: %w", err)
	}

	s := &Scheduler{
		scheduler: gs,
		engine:    engine,
		clock:     clk,
	}

	job, err := gs.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(h, m, sec))),
		gocron.NewTask(s.catchUp),
		gocron.WithName("daily-rollover"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create rollover job: %w", err)
	}
	s.job = job

	return s, nil
}

// Start runs one catch-up immediately and then begins the schedule.
func (s *Scheduler) Start(ctx context.Context) {
	slog.Info("Starting scheduler")
	s.run(ctx)
	s.scheduler.Start()
}

// Stop gracefully shuts down the scheduler.
func (s *Scheduler) Stop() error {
	slog.Info("Stopping scheduler")
	return s.scheduler.Shutdown()
}

// RunNow triggers the job outside its schedule. The run is asynchronous.
func (s *Scheduler) RunNow() error {
	return s.job.RunNow()
}

// NextRun reports when the job fires next
func (s *Scheduler) NextRun() (time.Time, error) {
	return s.job.NextRun()
}

func (s *Scheduler) catchUp() {
	s.run(context.Background())
}

func (s *Scheduler) run(ctx context.Context) {
	result, err := s.engine.CatchUp(ctx, s.clock.Now())
	if err != nil {
		slog.Error("Scheduled rollover failed", "error", err)
		return
	}
	slog.Info("Scheduled rollover",
		"outcome", string(result.Outcome),
		"days", result.DaysProcessed,
		"archived", result.TasksArchived)
}

// ParseAtTime parses HH:MM or HH:MM:SS
func ParseAtTime(at string) (hours, minutes, seconds uint, err error) {
	parts := strings.Split(strings.TrimSpace(at), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, 0, 0, fmt.Errorf("invalid rollover time %q: want HH:MM[:SS]", at)
	}

	limits := []uint64{23, 59, 59}
	values := make([]uint, 3)
	for i, part := range parts {
		v, convErr := strconv.ParseUint(part, 10, 8)
		if convErr != nil || v > limits[i] {
			return 0, 0, 0, fmt.Errorf("invalid rollover time %q: want HH:MM[:SS]", at)
		}
		values[i] = uint(v)
	}
	return values[0], values[1], values[2], nil
}
