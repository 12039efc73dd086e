// Command daykan-daemon runs only the rollover daemon, for service managers
// that prefer a dedicated binary.
package main

import (
	"fmt"
	"os"

	"github.com/thenoetrevino/daykan/internal/cli"
	"github.com/thenoetrevino/daykan/internal/cli/daemon"
)

func main() {
	cmd := daemon.DaemonCmd()
	cmd.Use = "daykan-daemon"
	cmd.SilenceUsage = true

	if err := cmd.Execute(); err != nil {
		if !cli.IsReported(err) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(cli.ExitCodeFor(err))
	}
}
