// Package rollover implements `daykan rollover`
package rollover

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/daykan/internal/cli"
	"github.com/thenoetrevino/daykan/internal/cli/styles"
	"github.com/thenoetrevino/daykan/internal/clock"
	"github.com/thenoetrevino/daykan/internal/metrics"
)

// RolloverCmd returns the rollover command
func RolloverCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rollover",
		Short: "Archive every missed day now",
		Long: `Run the rollover catch-up explicitly. Every other command does this
implicitly, so this is mostly useful from cron or for checking the watermark.`,
		Args: cobra.NoArgs,
		RunE: runRollover,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

type rolloverResult struct {
	Outcome       string `json:"outcome"`
	DaysProcessed int    `json:"days_processed"`
	TasksArchived int    `json:"tasks_archived"`
	LastActive    string `json:"last_active_date"`
}

func runRollover(cmd *cobra.Command, args []string) error {
	formatter := cli.NewFormatter(cmd)

	cliInstance, closeCLI, err := cli.Open(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI()

	a := cliInstance.App
	res, err := a.Engine.CatchUp(cli.Context(cmd), a.Clock().Now())
	if err != nil {
		return formatter.Fail(err)
	}

	result := rolloverResult{
		Outcome:       string(res.Outcome),
		DaysProcessed: res.DaysProcessed,
		TasksArchived: res.TasksArchived,
		LastActive:    clock.FormatDate(res.Watermark),
	}

	if formatter.Quiet {
		fmt.Println(result.TasksArchived)
		return nil
	}

	return formatter.Success(result, func() string {
		if res.Outcome == metrics.ResultNoop {
			return styles.SubtitleStyle.Render("Already up to date (last active " + result.LastActive + ")")
		}
		return styles.SuccessStyle.Render(fmt.Sprintf("Archived %d tasks from %d days", result.TasksArchived, result.DaysProcessed)) +
			fmt.Sprintf(" (outcome %s, last active %s)", result.Outcome, result.LastActive)
	})
}
