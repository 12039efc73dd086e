package task

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/daykan/internal/cli"
	"github.com/thenoetrevino/daykan/internal/cli/styles"
)

// MoveCmd returns the task move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <id> <column>",
		Short: "Move a task to another column",
		Long: `Move one of today's tasks to a column by index.

Examples:
  daykan task move 12 2
  daykan task move 12 4 --json
`,
		Args: cobra.ExactArgs(2),
		RunE: runMove,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runMove(cmd *cobra.Command, args []string) error {
	formatter := cli.NewFormatter(cmd)

	taskID, err := cli.ParseTaskID(args)
	if err != nil {
		return formatter.Fail(err)
	}
	column, err := cli.ParseColumnIndex(args[1])
	if err != nil {
		return formatter.Fail(err)
	}

	cliInstance, closeCLI, err := cli.Open(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI()

	ctx := cli.Context(cmd)
	if err := cliInstance.App.TaskService.MoveTask(ctx, taskID, column); err != nil {
		return formatter.FailWithSuggestion(err, "Only tasks on today's board can be moved; see 'daykan task list'")
	}

	task, err := cliInstance.App.TaskService.GetTask(ctx, taskID)
	if err != nil {
		return formatter.Fail(err)
	}
	columns, err := cliInstance.App.ColumnService.GetColumns(ctx)
	if err != nil {
		return formatter.Fail(err)
	}
	view := cli.NewTaskView(task, columns)

	return formatter.Success(view, func() string {
		return styles.SuccessStyle.Render(fmt.Sprintf("Moved task #%d", view.ID)) +
			" to " + view.ColumnName
	})
}
