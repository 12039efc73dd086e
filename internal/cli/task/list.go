package task

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/daykan/internal/cli"
)

// ListCmd returns the task list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show today's board",
		Long: `List today's tasks grouped by column. Missed days are archived first.

Examples:
  daykan task list
  daykan task list --json
`,
		Args: cobra.NoArgs,
		RunE: runList,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	formatter := cli.NewFormatter(cmd)

	cliInstance, closeCLI, err := cli.Open(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI()

	board, err := cliInstance.App.TaskService.ListToday(cli.Context(cmd))
	if err != nil {
		return formatter.Fail(err)
	}
	view := cli.NewBoardView(board, cliInstance.App.Engine.Today())

	if formatter.Quiet {
		for _, col := range view.Columns {
			for _, task := range col.Tasks {
				if err := formatter.Success(task, nil); err != nil {
					return err
				}
			}
		}
		return nil
	}

	return formatter.Success(view, func() string {
		return cli.RenderBoard(view)
	})
}
