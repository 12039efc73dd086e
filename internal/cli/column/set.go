package column

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/daykan/internal/cli"
	"github.com/thenoetrevino/daykan/internal/cli/styles"
)

// SetCmd returns the column set subcommand
func SetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <name>...",
		Short: "Rename the board's columns",
		Long: `Set the column names in order. Blank names are skipped, names past
the fifth are ignored and missing columns get placeholder names.
Tasks keep their column index.

Examples:
  daykan column set Todo Doing Done
  daykan column set "Ideas" "This Week" "Today" "Blocked" "Shipped"
`,
		Args: cobra.MinimumNArgs(1),
		RunE: runSet,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runSet(cmd *cobra.Command, args []string) error {
	formatter := cli.NewFormatter(cmd)

	cliInstance, closeCLI, err := cli.Open(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI()

	columns, err := cliInstance.App.ColumnService.SetColumns(cli.Context(cmd), args)
	if err != nil {
		return formatter.Fail(err)
	}

	if formatter.Quiet {
		return nil
	}
	return formatter.Success(columnsResult{Columns: columns}, func() string {
		return styles.SuccessStyle.Render("Columns updated") + "\n" + renderColumns(columns)
	})
}
