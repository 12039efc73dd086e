package column

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/daykan/internal/cli"
	"github.com/thenoetrevino/daykan/internal/cli/styles"
)

// ListCmd returns the column list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List column names in board order",
		Args:  cobra.NoArgs,
		RunE:  runList,
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

	columns, err := cliInstance.App.ColumnService.GetColumns(cli.Context(cmd))
	if err != nil {
		return formatter.Fail(err)
	}

	if formatter.Quiet {
		for _, name := range columns {
			fmt.Println(name)
		}
		return nil
	}

	return formatter.Success(columnsResult{Columns: columns}, func() string {
		return renderColumns(columns)
	})
}

func renderColumns(columns []string) string {
	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("Columns"))
	for i, name := range columns {
		b.WriteString(fmt.Sprintf("\n  %s %s", styles.LabelStyle.Render(fmt.Sprintf("%d", i)), styles.ValueStyle.Render(name)))
	}
	return b.String()
}
