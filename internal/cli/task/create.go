package task

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/daykan/internal/cli"
	"github.com/thenoetrevino/daykan/internal/cli/styles"
	taskservice "github.com/thenoetrevino/daykan/internal/services/task"
)

// CreateCmd returns the task create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a task on today's board",
		Long: `Create a task dated today.

Examples:
  # Simple task in the first column
  daykan task create --title="Write report"

  # Into a specific column (0-4) with a markdown description
  daykan task create --title="Review PR" --column=3 --description="Check *tests*"

  # Quiet mode for bash capture
  TASK_ID=$(daykan task create --title="Call Bob" --quiet)
`,
		Args: cobra.NoArgs,
		RunE: runCreate,
	}

	cmd.Flags().String("title", "", "Task title (required)")
	if err := cmd.MarkFlagRequired("title"); err != nil {
		slog.Error("error marking flag as required", "error", err)
	}
	cmd.Flags().String("description", "", "Task description (use - for stdin)")
	cmd.Flags().Int("column", 0, "Column index, 0 to 4")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	title, _ := cmd.Flags().GetString("title")
	description, _ := cmd.Flags().GetString("description")
	column, _ := cmd.Flags().GetInt("column")
	formatter := cli.NewFormatter(cmd)

	description, err := cli.ReadDescription(description)
	if err != nil {
		return formatter.Fail(err)
	}

	cliInstance, closeCLI, err := cli.Open(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI()

	ctx := cli.Context(cmd)
	task, err := cliInstance.App.TaskService.CreateTask(ctx, taskservice.CreateTaskRequest{
		Title:       title,
		Description: description,
		ColumnIndex: column,
	})
	if err != nil {
		return formatter.Fail(err)
	}

	columns, err := cliInstance.App.ColumnService.GetColumns(ctx)
	if err != nil {
		return formatter.Fail(err)
	}
	view := cli.NewTaskView(task, columns)

	return formatter.Success(view, func() string {
		return styles.SuccessStyle.Render(fmt.Sprintf("Created task #%d", view.ID)) +
			fmt.Sprintf(" %q in %s", view.Title, view.ColumnName)
	})
}
