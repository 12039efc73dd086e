package app

import (
	"database/sql"
	"log/slog"

	"github.com/thenoetrevino/daykan/internal/clock"
	"github.com/thenoetrevino/daykan/internal/database"
	"github.com/thenoetrevino/daykan/internal/metrics"
	archiveservice "github.com/thenoetrevino/daykan/internal/services/archive"
	columnservice "github.com/thenoetrevino/daykan/internal/services/column"
	"github.com/thenoetrevino/daykan/internal/services/rollover"
	taskservice "github.com/thenoetrevino/daykan/internal/services/task"
)

// App holds all application services and provides dependency injection.
// Every service shares one rollover engine, and with it one lock.
type App struct {
	db    *sql.DB
	repo  *database.Repository
	clock clock.Clock

	Engine         *rollover.Engine
	TaskService    taskservice.Service
	ColumnService  columnservice.Service
	ArchiveService archiveservice.Service
}

// New creates a new App with all services initialized.
// This is the single entry point for creating the application container.
func New(db *sql.DB, opts ...Option) *App {
	cfg := &appConfig{
		clock:    clock.Real(),
		recorder: metrics.NoopRecorder{},
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	repo := database.NewRepository(db)
	engine := rollover.NewEngine(repo, cfg.clock,
		rollover.WithRecorder(cfg.recorder),
		rollover.WithLogger(cfg.logger),
	)

	return &App{
		db:             db,
		repo:           repo,
		clock:          cfg.clock,
		Engine:         engine,
		TaskService:    taskservice.NewService(repo, engine, cfg.clock),
		ColumnService:  columnservice.NewService(repo, engine),
		ArchiveService: archiveservice.NewService(repo, engine),
	}
}

// Clock returns the time source shared by the services
func (a *App) Clock() clock.Clock {
	return a.clock
}

// Close releases the database connection.
func (a *App) Close() error {
	return a.db.Close()
}
