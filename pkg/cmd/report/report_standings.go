package report

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/mpapenbr/f1-history-service-go/log"
	"github.com/mpapenbr/f1-history-service-go/pkg/aggregate"
	"github.com/mpapenbr/f1-history-service-go/pkg/config"
	"github.com/mpapenbr/f1-history-service-go/pkg/db/postgres"
	"github.com/mpapenbr/f1-history-service-go/pkg/model"
	"github.com/mpapenbr/f1-history-service-go/pkg/utils"
)

func NewStandingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "standings year",
		Short: "display the final standings of a season",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			displayStandings(cmd.Context(), args[0])
		},
	}
	cmd.Flags().BoolVar(&asConstructors, "constructors", false,
		"show the constructor standings")
	return cmd
}

func displayStandings(ctx context.Context, yearArg string) {
	logger := log.GetFromContext(ctx).Named("report")
	year, _ := strconv.Atoi(yearArg)

	pool := connectDB(logger)
	defer pool.Close()

	kind := model.KindDriver
	if asConstructors {
		kind = model.KindConstructor
	}
	service := aggregate.NewService(aggregate.WithConn(pool))
	final, err := service.FinalStandings(ctx, year, kind)
	if err != nil {
		logger.Fatal("error loading standings", log.ErrorField(err))
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Rank\tName\tPoints\tWins\n")
	for _, item := range final {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\n",
			item.Rank, item.Name, item.Points.String(), item.Wins)
	}
	w.Flush()
}

func connectDB(logger *log.Logger) *pgxpool.Pool {
	timeout, err := time.ParseDuration(config.WaitForServices)
	if err != nil {
		logger.Warn("Invalid duration value. Setting default 60s",
			log.ErrorField(err))
		timeout = 60 * time.Second
	}
	postgresAddr := utils.ExtractFromDBURL(config.DB)
	if err = utils.WaitForTCP(postgresAddr, timeout); err != nil {
		logger.Fatal("database not ready", log.ErrorField(err))
	}
	return postgres.InitWithURL(config.DB)
}
