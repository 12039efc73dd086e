package archive

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/daykan/internal/cli"
	archiveservice "github.com/thenoetrevino/daykan/internal/services/archive"
)

// DayCmd returns the archive day subcommand
func DayCmd() *cobra.Command {
	return listingCmd("day <YYYY-MM-DD>", "Archived tasks of one day", 1,
		func(cmd *cobra.Command, svc archiveservice.Service, args []string) (*archiveservice.Listing, error) {
			return svc.Day(cli.Context(cmd), args[0])
		})
}

// WeekCmd returns the archive week subcommand
func WeekCmd() *cobra.Command {
	return listingCmd("week <year> <week>", "Archived tasks of an ISO week", 2,
		func(cmd *cobra.Command, svc archiveservice.Service, args []string) (*archiveservice.Listing, error) {
			return svc.Week(cli.Context(cmd), args[0], args[1])
		})
}

// MonthCmd returns the archive month subcommand
func MonthCmd() *cobra.Command {
	return listingCmd("month <year> <month>", "Archived tasks of a calendar month", 2,
		func(cmd *cobra.Command, svc archiveservice.Service, args []string) (*archiveservice.Listing, error) {
			return svc.Month(cli.Context(cmd), args[0], args[1])
		})
}

// YearCmd returns the archive year subcommand
func YearCmd() *cobra.Command {
	return listingCmd("year <year>", "Archived tasks of a calendar year", 1,
		func(cmd *cobra.Command, svc archiveservice.Service, args []string) (*archiveservice.Listing, error) {
			return svc.Year(cli.Context(cmd), args[0])
		})
}
