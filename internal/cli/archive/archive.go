// Package archive implements the read-only `daykan archive` commands
package archive

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/daykan/internal/cli"
	archiveservice "github.com/thenoetrevino/daykan/internal/services/archive"
)

// ArchiveCmd returns the archive parent command. Without a subcommand it
// lists the days that have archived tasks.
func ArchiveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "archive",
		Short: "Browse archived tasks",
		Long: `Browse tasks archived by rollover.

Examples:
  daykan archive                 # days with archived tasks, newest first
  daykan archive day 2025-03-14
  daykan archive week 2025 11    # ISO week
  daykan archive month 2025 3
  daykan archive year 2025
`,
		Args: cobra.NoArgs,
		RunE: runIndex,
	}

	cli.AddOutputFlags(cmd)

	cmd.AddCommand(DayCmd())
	cmd.AddCommand(WeekCmd())
	cmd.AddCommand(MonthCmd())
	cmd.AddCommand(YearCmd())

	return cmd
}

// query fetches one listing from the archive service
type query func(cmd *cobra.Command, svc archiveservice.Service, args []string) (*archiveservice.Listing, error)

func listingCmd(use, short string, nargs int, q query) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(nargs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runListing(cmd, args, q)
		},
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runListing(cmd *cobra.Command, args []string, q query) error {
	formatter := cli.NewFormatter(cmd)

	cliInstance, closeCLI, err := cli.Open(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI()

	listing, err := q(cmd, cliInstance.App.ArchiveService, args)
	if err != nil {
		return formatter.Fail(err)
	}
	view := cli.NewArchiveView(listing)

	if formatter.Quiet {
		for _, task := range view.Tasks {
			if err := formatter.Success(task, nil); err != nil {
				return err
			}
		}
		return nil
	}

	return formatter.Success(view, func() string {
		return cli.RenderArchive(view)
	})
}
