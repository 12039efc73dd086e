// Package daemon implements `daykan daemon`
package daemon

import (
	"os"
	"os/signal"
	"syscall"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/daykan/internal/app"
	"github.com/thenoetrevino/daykan/internal/cli"
	daemonserver "github.com/thenoetrevino/daykan/internal/daemon"
	"github.com/thenoetrevino/daykan/internal/metrics"
)

// DaemonCmd returns the daemon command
func DaemonCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "daemon",
		Short: "Run the daily rollover in the background",
		Long: `Run daykan as a long-lived process. Missed days are archived on start
and again every day at the configured time. With a metrics address,
Prometheus metrics are served on /metrics and a health check on /healthz.

Examples:
  daykan daemon
  daykan daemon --metrics-addr=127.0.0.1:9464 --at=00:00:05
`,
		Args: cobra.NoArgs,
		RunE: runDaemon,
	}

	cmd.Flags().String("metrics-addr", "", "Listen address for /metrics (overrides config)")
	cmd.Flags().String("at", "", "Daily rollover time HH:MM[:SS] (overrides config)")

	return cmd
}

func runDaemon(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(cli.Context(cmd), os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer cancel()

	formatter := &cli.OutputFormatter{}
	reg := prom.NewRegistry()
	recorder := metrics.NewPrometheusRecorder(reg)

	cmd.SetContext(ctx)
	cliInstance, closeCLI, err := cli.Open(cmd, formatter, app.WithRecorder(recorder))
	if err != nil {
		return err
	}
	defer closeCLI()

	cfg := daemonserver.Config{
		MetricsAddr: cliInstance.Config.Daemon.MetricsAddr,
		RolloverAt:  cliInstance.Config.Daemon.RolloverAt,
	}
	if cmd.Flags().Changed("metrics-addr") {
		cfg.MetricsAddr, _ = cmd.Flags().GetString("metrics-addr")
	}
	if cmd.Flags().Changed("at") {
		cfg.RolloverAt, _ = cmd.Flags().GetString("at")
	}

	a := cliInstance.App
	server, err := daemonserver.NewServer(a.Engine, a.Clock(), cfg, reg)
	if err != nil {
		return formatter.Fail(err)
	}
	return server.Start(ctx)
}
