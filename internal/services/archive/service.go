// Package archive answers read-only queries over archived tasks.
//
// Every query runs through the rollover engine first, so tasks that rolled
// over a moment ago are already visible.
package archive

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/thenoetrevino/daykan/internal/clock"
	"github.com/thenoetrevino/daykan/internal/database"
	"github.com/thenoetrevino/daykan/internal/models"
	"github.com/thenoetrevino/daykan/internal/services/rollover"
)

// Service defines the archive views
type Service interface {
	// Dates lists the days that have archived tasks, newest first
	Dates(ctx context.Context) ([]time.Time, error)

	Day(ctx context.Context, day string) (*Listing, error)
	Week(ctx context.Context, year, week string) (*Listing, error)
	Month(ctx context.Context, year, month string) (*Listing, error)
	Year(ctx context.Context, year string) (*Listing, error)
}

// Listing is the result of an archive query over [From, To)
type Listing struct {
	Title string
	From  time.Time
	To    time.Time
	Tasks []*models.Task
}

type service struct {
	repo   database.TaskRepository
	engine *rollover.Engine
}

// NewService creates a new archive service
func NewService(repo database.TaskRepository, engine *rollover.Engine) Service {
	return &service{
		repo:   repo,
		engine: engine,
	}
}

func (s *service) Dates(ctx context.Context) ([]time.Time, error) {
	var dates []time.Time
	err := s.engine.Run(ctx, func(ctx context.Context, _ time.Time) error {
		var err error
		dates, err = s.repo.GetArchivedDates(ctx)
		return err
	})
	return dates, err
}

func (s *service) Day(ctx context.Context, day string) (*Listing, error) {
	d, err := clock.ParseDate(strings.TrimSpace(day))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, day)
	}
	return s.between(ctx, clock.FormatDate(d), d, clock.AddDays(d, 1))
}

// Week uses ISO-8601 week numbering, so late-December dates can belong to
// week 1 of the following year and early-January dates to the previous year.
func (s *service) Week(ctx context.Context, year, week string) (*Listing, error) {
	y, err := parseYear(year)
	if err != nil {
		return nil, err
	}
	w, err := strconv.Atoi(strings.TrimSpace(week))
	if err != nil || w < 1 || w > clock.ISOWeeksInYear(y) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidWeek, week)
	}

	start := clock.ISOWeekStart(y, w)
	return s.between(ctx, fmt.Sprintf("Week %d, %d", w, y), start, clock.AddDays(start, 7))
}

func (s *service) Month(ctx context.Context, year, month string) (*Listing, error) {
	y, err := parseYear(year)
	if err != nil {
		return nil, err
	}
	m, err := strconv.Atoi(strings.TrimSpace(month))
	if err != nil || m < 1 || m > 12 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMonth, month)
	}

	start := time.Date(y, time.Month(m), 1, 0, 0, 0, 0, time.UTC)
	return s.between(ctx, fmt.Sprintf("%d/%d", m, y), start, start.AddDate(0, 1, 0))
}

func (s *service) Year(ctx context.Context, year string) (*Listing, error) {
	y, err := parseYear(year)
	if err != nil {
		return nil, err
	}

	start := time.Date(y, time.January, 1, 0, 0, 0, 0, time.UTC)
	return s.between(ctx, strconv.Itoa(y), start, start.AddDate(1, 0, 0))
}

func (s *service) between(ctx context.Context, title string, from, to time.Time) (*Listing, error) {
	listing := &Listing{Title: title, From: from, To: to}
	err := s.engine.Run(ctx, func(ctx context.Context, _ time.Time) error {
		var err error
		listing.Tasks, err = s.repo.GetArchivedTasksBetween(ctx, from, to)
		return err
	})
	if err != nil {
		return nil, err
	}
	return listing, nil
}

func parseYear(year string) (int, error) {
	y, err := strconv.Atoi(strings.TrimSpace(year))
	if err != nil || y < 1 || y > 9999 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidYear, year)
	}
	return y, nil
}
