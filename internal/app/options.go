package app

import (
	"log/slog"

	"github.com/thenoetrevino/daykan/internal/clock"
	"github.com/thenoetrevino/daykan/internal/metrics"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	clock    clock.Clock
	recorder metrics.Recorder
	logger   *slog.Logger
}

// WithClock replaces the wall clock, mainly for tests
func WithClock(c clock.Clock) Option {
	return func(cfg *appConfig) {
		cfg.clock = c
	}
}

// WithRecorder sets the metrics recorder for rollover activity
func WithRecorder(rec metrics.Recorder) Option {
	return func(cfg *appConfig) {
		cfg.recorder = rec
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}
