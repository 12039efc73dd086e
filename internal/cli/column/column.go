// Package column implements the `daykan column` commands
package column

import (
	"github.com/spf13/cobra"
)

// ColumnCmd returns the column parent command
func ColumnCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "column",
		Short: "Show or rename the board's columns",
	}

	cmd.AddCommand(ListCmd())
	cmd.AddCommand(SetCmd())

	return cmd
}

// columnsResult is the JSON shape shared by the column commands
type columnsResult struct {
	Columns []string `json:"columns"`
}
