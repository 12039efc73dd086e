package task

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/daykan/internal/cli"
)

// ShowCmd returns the task show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show task details",
		Long:  "Display a task, archived or not, with its description rendered as markdown.",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	formatter := cli.NewFormatter(cmd)

	taskID, err := cli.ParseTaskID(args)
	if err != nil {
		return formatter.Fail(err)
	}

	cliInstance, closeCLI, err := cli.Open(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI()

	ctx := cli.Context(cmd)
	task, err := cliInstance.App.TaskService.GetTask(ctx, taskID)
	if err != nil {
		return formatter.Fail(err)
	}

	// Archived tasks keep their column index but the names may have changed since.
	var columns []string
	if !task.Archived {
		columns, err = cliInstance.App.ColumnService.GetColumns(ctx)
		if err != nil {
			return formatter.Fail(err)
		}
	}
	view := cli.NewTaskView(task, columns)

	return formatter.Success(view, func() string {
		return cli.RenderTask(view)
	})
}
