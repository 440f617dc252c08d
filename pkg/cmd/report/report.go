package report

import (
	"github.com/spf13/cobra"
)

func NewReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "console reports on the historical data",
	}

	cmd.AddCommand(NewStandingsCmd())
	cmd.AddCommand(NewSummaryCmd())

	return cmd
}

var asConstructors bool
