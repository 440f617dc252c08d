package report

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/mpapenbr/f1-history-service-go/log"
	"github.com/mpapenbr/f1-history-service-go/pkg/aggregate"
)

func NewSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary year",
		Short: "display the season highlights",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			displaySummary(cmd.Context(), args[0])
		},
	}
}

func displaySummary(ctx context.Context, yearArg string) {
	logger := log.GetFromContext(ctx).Named("report")
	year, _ := strconv.Atoi(yearArg)

	pool := connectDB(logger)
	defer pool.Close()

	service := aggregate.NewService(aggregate.WithConn(pool))
	summary, err := service.SeasonSummary(ctx, year)
	if err != nil {
		logger.Fatal("error loading summary", log.ErrorField(err))
	}

	fmt.Printf("Season %d\n", summary.Season)
	fmt.Printf("Races: %d\n", summary.Races)
	fmt.Printf("Distinct winners: %d\n", summary.DistinctWinners)
	fmt.Printf("Distinct pole sitters: %d\n", summary.DistinctPoleSitters)
	fmt.Printf("Drivers champion: %s\n", championLine(summary.DriverChampion))
	fmt.Printf("Constructors champion: %s\n",
		championLine(summary.ConstructorChampion))
	if summary.BiggestClimb != nil {
		fmt.Printf("Biggest climb: %s (+%d places, %s)\n",
			summary.BiggestClimb.Name,
			summary.BiggestClimb.PlacesGained,
			summary.BiggestClimb.RaceName)
	}
	for _, item := range summary.HatTricks {
		fmt.Printf("Hat tricks: %s (%d)\n", item.Name, item.Count)
	}
}

func championLine(arg *aggregate.Champion) string {
	if arg == nil {
		return "n/a"
	}
	names := lo.Map(arg.Leaders,
		func(item *aggregate.Standing, _ int) string {
			return fmt.Sprintf("%s (%s)", item.Name, item.Points.String())
		})
	if arg.Tied {
		return "tied: " + strings.Join(names, ", ")
	}
	return names[0]
}
