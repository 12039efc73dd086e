package task

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/daykan/internal/cli"
	"github.com/thenoetrevino/daykan/internal/cli/styles"
)

// DeleteCmd returns the task delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete one of today's tasks",
		Long: `Permanently delete a task from today's board.
Archived tasks cannot be deleted.

Examples:
  daykan task delete 12
`,
		Args: cobra.ExactArgs(1),
		RunE: runDelete,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

type deleteResult struct {
	ID      int  `json:"id"`
	Deleted bool `json:"deleted"`
}

func (r deleteResult) GetID() int {
	return r.ID
}

func runDelete(cmd *cobra.Command, args []string) error {
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

	if err := cliInstance.App.TaskService.DeleteTask(cli.Context(cmd), taskID); err != nil {
		return formatter.Fail(err)
	}

	return formatter.Success(deleteResult{ID: taskID, Deleted: true}, func() string {
		return styles.SuccessStyle.Render(fmt.Sprintf("Deleted task #%d", taskID))
	})
}
