// Package daemon runs daykan as a long-lived process: the daily rollover
// schedule plus an optional Prometheus endpoint.
package daemon

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	promcollect "github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/thenoetrevino/daykan/internal/clock"
	"github.com/thenoetrevino/daykan/internal/metrics"
	"github.com/thenoetrevino/daykan/internal/scheduler"
	"github.com/thenoetrevino/daykan/internal/services/rollover"
)

const shutdownTimeout = 5 * time.Second

// Config holds the daemon's listen address and schedule
type Config struct {
	MetricsAddr string // empty disables the HTTP server
	RolloverAt  string // HH:MM[:SS] local time
}

// Server owns the scheduler and the metrics HTTP server
type Server struct {
	engine    *rollover.Engine
	clock     clock.Clock
	scheduler *scheduler.Scheduler
	registry  *prom.Registry

	listener   net.Listener
	httpServer *http.Server
}

// NewServer prepares a daemon. reg should be the registry the engine's
// PrometheusRecorder was registered on. Go and process collectors are added
// only when metrics are served.
func NewServer(engine *rollover.Engine, clk clock.Clock, cfg Config, reg *prom.Registry) (*Server, error) {
	sched, err := scheduler.NewScheduler(engine, clk, cfg.RolloverAt)
	if err != nil {
		return nil, err
	}

	if reg == nil {
		reg = prom.NewRegistry()
	}

	s := &Server{
		engine:    engine,
		clock:     clk,
		scheduler: sched,
		registry:  reg,
	}

	if cfg.MetricsAddr != "" {
		ln, err := net.Listen("tcp", cfg.MetricsAddr)
		if err != nil {
			_ = sched.Stop()
			return nil, fmt.Errorf("failed to listen on %s: %w", cfg.MetricsAddr, err)
		}
		s.listener = ln
		reg.MustRegister(promcollect.NewGoCollector(), promcollect.NewProcessCollector(promcollect.ProcessCollectorOpts{}))

		mux := http.NewServeMux()
		mux.Handle("/metrics", metrics.HTTPHandler(reg))
		mux.HandleFunc("/healthz", s.handleHealth)
		s.httpServer = &http.Server{Handler: mux, ReadTimeout: 30 * time.Second, WriteTimeout: 30 * time.Second, IdleTimeout: 120 * time.Second}
	}

	return s, nil
}

// Addr is the bound metrics address, or "" when metrics are disabled
func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Start runs until ctx is cancelled or the HTTP server fails
func (s *Server) Start(ctx context.Context) error {
	slog.Info("daykan daemon starting", "metrics_addr", s.Addr())

	s.scheduler.Start(ctx)

	serveErr := make(chan error, 1)
	if s.httpServer != nil {
		go func() {
			if err := s.httpServer.Serve(s.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
				serveErr <- err
			}
			close(serveErr)
		}()
	}

	var runErr error
	select {
	case <-ctx.Done():
		slog.Info("Daemon context cancelled, shutting down")
	case err, ok := <-serveErr:
		if ok {
			slog.Error("metrics server error", "error", err)
			runErr = fmt.Errorf("metrics server: %w", err)
		}
	}

	if err := s.Shutdown(); err != nil && runErr == nil {
		runErr = err
	}
	return runErr
}

// Shutdown stops the scheduler and the HTTP server
func (s *Server) Shutdown() error {
	var errs []error
	if err := s.scheduler.Stop(); err != nil {
		errs = append(errs, fmt.Errorf("scheduler shutdown: %w", err))
	}
	if s.httpServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.httpServer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("metrics server shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

type health struct {
	Status  string `json:"status"`
	Today   string `json:"today"`
	NextRun string `json:"next_run,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	h := health{Status: "ok", Today: clock.FormatDate(s.engine.Today())}
	if next, err := s.scheduler.NextRun(); err == nil && !next.IsZero() {
		h.NextRun = next.Format(time.RFC3339)
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(h); err != nil {
		slog.Error("failed to write health response", "error", err)
	}
}
