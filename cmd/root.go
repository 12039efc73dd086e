// Package cmd assembles the daykan command tree
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/daykan/internal/cli"
	"github.com/thenoetrevino/daykan/internal/cli/archive"
	"github.com/thenoetrevino/daykan/internal/cli/column"
	"github.com/thenoetrevino/daykan/internal/cli/daemon"
	"github.com/thenoetrevino/daykan/internal/cli/rollover"
	"github.com/thenoetrevino/daykan/internal/cli/task"
)

// NewRootCmd builds the full command tree
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "daykan",
		Short: "daykan - a kanban board that starts fresh every day",
		Long: `daykan is a single-user kanban board for today's work. Tasks belong to
the day they were created on; when a new day starts, yesterday's tasks
are archived and stay browsable by day, week, month and year.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &cli.UsageError{Msg: err.Error()}
	})

	rootCmd.AddCommand(task.TaskCmd())
	rootCmd.AddCommand(column.ColumnCmd())
	rootCmd.AddCommand(archive.ArchiveCmd())
	rootCmd.AddCommand(rollover.RolloverCmd())
	rootCmd.AddCommand(daemon.DaemonCmd())

	return rootCmd
}

// Execute runs the CLI and returns the process exit code
func Execute() int {
	err := NewRootCmd().Execute()
	if err != nil && !cli.IsReported(err) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return cli.ExitCodeFor(err)
}
