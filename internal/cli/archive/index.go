package archive

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/daykan/internal/cli"
	"github.com/thenoetrevino/daykan/internal/cli/styles"
	"github.com/thenoetrevino/daykan/internal/clock"
)

type indexResult struct {
	Dates []string `json:"dates"`
}

func runIndex(cmd *cobra.Command, args []string) error {
	formatter := cli.NewFormatter(cmd)

	cliInstance, closeCLI, err := cli.Open(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI()

	dates, err := cliInstance.App.ArchiveService.Dates(cli.Context(cmd))
	if err != nil {
		return formatter.Fail(err)
	}

	result := indexResult{Dates: make([]string, 0, len(dates))}
	for _, d := range dates {
		result.Dates = append(result.Dates, clock.FormatDate(d))
	}

	if formatter.Quiet {
		for _, d := range result.Dates {
			fmt.Println(d)
		}
		return nil
	}

	return formatter.Success(result, func() string {
		if len(result.Dates) == 0 {
			return styles.SubtitleStyle.Render("No archived tasks yet")
		}
		var b strings.Builder
		b.WriteString(styles.TitleStyle.Render("Archived days"))
		for _, d := range result.Dates {
			b.WriteString("\n  " + styles.ValueStyle.Render(d))
		}
		return b.String()
	})
}
