// Package cli holds the pieces shared by every daykan subcommand: the
// application handle, output formatting and exit codes.
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/daykan/internal/app"
	"github.com/thenoetrevino/daykan/internal/cli/styles"
	"github.com/thenoetrevino/daykan/internal/config"
	"github.com/thenoetrevino/daykan/internal/database"
	"github.com/thenoetrevino/daykan/internal/logging"
	"github.com/thenoetrevino/daykan/internal/testutil"
)

// CLI represents the CLI application context
type CLI struct {
	App    *app.App // Application container with services
	Config *config.Config

	// borrowed apps belong to the caller and are not closed by Close
	borrowed bool
}

// NewCLI loads configuration, opens the database and builds the services
func NewCLI(ctx context.Context, opts ...app.Option) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logging.Init(config.DataDir(), cfg.LogLevel); err != nil {
		// Logging is best effort; the board still works without a log file.
		slog.Warn("failed to initialize log file", "error", err)
	}
	styles.Init(cfg.ColorScheme)

	db, err := database.InitDB(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &CLI{
		App:    app.New(db, opts...),
		Config: cfg,
	}, nil
}

// GetCLIFromContext returns the app injected by tests, or a fresh CLI built
// with opts. opts do not apply to an injected app.
func GetCLIFromContext(ctx context.Context, opts ...app.Option) (*CLI, error) {
	if a, ok := ctx.Value(testutil.TestAppKey).(*app.App); ok && a != nil {
		cfg := config.Default()
		styles.Init(cfg.ColorScheme)
		return &CLI{App: a, Config: cfg, borrowed: true}, nil
	}
	return NewCLI(ctx, opts...)
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if c.borrowed {
		return nil
	}
	return c.App.Close()
}
