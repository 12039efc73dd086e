package task

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/daykan/internal/cli"
	"github.com/thenoetrevino/daykan/internal/cli/styles"
	taskservice "github.com/thenoetrevino/daykan/internal/services/task"
)

// EditCmd returns the task edit subcommand
func EditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "edit <id>",
		Aliases: []string{"update"},
		Short:   "Change a task's title or description",
		Long: `Change the title and/or description of one of today's tasks.
Only the flags you pass are changed.

Examples:
  daykan task edit 12 --title="Write final report"
  daykan task edit 12 --description=""
  cat notes.md | daykan task edit 12 --description=-
`,
		Args: cobra.ExactArgs(1),
		RunE: runEdit,
	}

	cmd.Flags().String("title", "", "New title")
	cmd.Flags().String("description", "", "New description (use - for stdin)")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runEdit(cmd *cobra.Command, args []string) error {
	formatter := cli.NewFormatter(cmd)

	taskID, err := cli.ParseTaskID(args)
	if err != nil {
		return formatter.Fail(err)
	}

	req := taskservice.UpdateTaskRequest{TaskID: taskID}
	if cmd.Flags().Changed("title") {
		title, _ := cmd.Flags().GetString("title")
		req.Title = &title
	}
	if cmd.Flags().Changed("description") {
		description, _ := cmd.Flags().GetString("description")
		description, err = cli.ReadDescription(description)
		if err != nil {
			return formatter.Fail(err)
		}
		req.Description = &description
	}
	if req.Title == nil && req.Description == nil {
		return formatter.FailWithSuggestion(&cli.UsageError{Msg: "nothing to change"},
			"Pass --title and/or --description")
	}

	cliInstance, closeCLI, err := cli.Open(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI()

	ctx := cli.Context(cmd)
	task, err := cliInstance.App.TaskService.UpdateTask(ctx, req)
	if err != nil {
		return formatter.Fail(err)
	}
	columns, err := cliInstance.App.ColumnService.GetColumns(ctx)
	if err != nil {
		return formatter.Fail(err)
	}
	view := cli.NewTaskView(task, columns)

	return formatter.Success(view, func() string {
		return styles.SuccessStyle.Render(fmt.Sprintf("Updated task #%d", view.ID)) +
			fmt.Sprintf(" %q", view.Title)
	})
}
